package codec

// DecodeRunLengthDeltaInt32 decodes a codec 8 blob: undo run-length, then
// undo delta (the first value is absolute, each subsequent value is added
// to the running total).
func DecodeRunLengthDeltaInt32(blob []byte, field string) ([]int32, error) {
	hdr, payload, err := ParseHeader(blob)
	if err != nil {
		return nil, err
	}

	if err := checkFamily(field, hdr.ID, IDRunLengthDelta); err != nil {
		return nil, err
	}

	deltas, err := runLengthDecodeInt32(payload, int(hdr.Count), field)
	if err != nil {
		return nil, err
	}

	undeltaInt32(deltas)

	return deltas, nil
}

// EncodeRunLengthDeltaInt32 encodes xs as a codec 8 blob: delta first, then
// run-length the deltas.
func EncodeRunLengthDeltaInt32(xs []int32) []byte {
	deltas := deltaInt32(xs)
	payload := runLengthEncodeInt32(deltas)

	return buildBlob(HeaderSize+len(payload), func(buf []byte) []byte {
		buf = AppendHeader(buf, IDRunLengthDelta, uint32(len(xs)), 0)
		return append(buf, payload...)
	})
}

// deltaInt32 returns a new slice holding xs[0] followed by xs[i]-xs[i-1].
func deltaInt32(xs []int32) []int32 {
	out := make([]int32, len(xs))
	var prev int32

	for i, v := range xs {
		if i == 0 {
			out[i] = v
		} else {
			out[i] = v - prev
		}

		prev = v
	}

	return out
}

// undeltaInt32 replaces deltas in place with their running prefix sum.
func undeltaInt32(deltas []int32) {
	var acc int32
	for i, d := range deltas {
		acc += d
		deltas[i] = acc
	}
}
