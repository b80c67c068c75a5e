package codec

import "github.com/arloliu/mmtf/internal/pool"

// DecodeRunLengthInt8 decodes a codec 15 blob: run-length encoded int8
// values (secStructList and similar small ordinal columns).
func DecodeRunLengthInt8(blob []byte, field string) ([]int8, error) {
	hdr, payload, err := ParseHeader(blob)
	if err != nil {
		return nil, err
	}

	if err := checkFamily(field, hdr.ID, IDRunLengthInt8); err != nil {
		return nil, err
	}

	ints, release := pool.GetInt32Slice(int(hdr.Count))
	defer release()

	if err := runLengthDecodeInt32Into(payload, int(hdr.Count), field, ints); err != nil {
		return nil, err
	}

	return narrowToInt8(ints), nil
}

// EncodeRunLengthInt8 encodes xs as a codec 15 blob.
func EncodeRunLengthInt8(xs []int8) []byte {
	payload := runLengthEncodeInt32(widenFromInt8(xs))

	return buildBlob(HeaderSize+len(payload), func(buf []byte) []byte {
		buf = AppendHeader(buf, IDRunLengthInt8, uint32(len(xs)), 0)
		return append(buf, payload...)
	})
}

// DecodeInt8Ordinal decodes a codec 16 blob: the same run-length shape as
// codec 15, used for fields treated as small ordinals rather than deltas.
func DecodeInt8Ordinal(blob []byte, field string) ([]int8, error) {
	hdr, payload, err := ParseHeader(blob)
	if err != nil {
		return nil, err
	}

	if err := checkFamily(field, hdr.ID, IDInt8Ordinal); err != nil {
		return nil, err
	}

	ints, release := pool.GetInt32Slice(int(hdr.Count))
	defer release()

	if err := runLengthDecodeInt32Into(payload, int(hdr.Count), field, ints); err != nil {
		return nil, err
	}

	return narrowToInt8(ints), nil
}

// EncodeInt8Ordinal encodes xs as a codec 16 blob.
func EncodeInt8Ordinal(xs []int8) []byte {
	payload := runLengthEncodeInt32(widenFromInt8(xs))

	return buildBlob(HeaderSize+len(payload), func(buf []byte) []byte {
		buf = AppendHeader(buf, IDInt8Ordinal, uint32(len(xs)), 0)
		return append(buf, payload...)
	})
}

func narrowToInt8(ints []int32) []int8 {
	out := make([]int8, len(ints))
	for i, v := range ints {
		out[i] = int8(v)
	}

	return out
}

func widenFromInt8(xs []int8) []int32 {
	out := make([]int32, len(xs))
	for i, v := range xs {
		out[i] = int32(v)
	}

	return out
}
