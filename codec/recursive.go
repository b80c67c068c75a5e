package codec

import "github.com/arloliu/mmtf/bytesutil"

const (
	recursiveMax int32 = 32767  // int16 max, the positive continuation marker
	recursiveMin int32 = -32768 // int16 min, the negative continuation marker
)

// decodeRecursiveInt16 expands an int16 BE stream of continuation-marked
// values back into count logical int32 values. Any element equal to
// recursiveMax or recursiveMin is accumulated rather than emitted.
func decodeRecursiveInt16(payload []byte, count int, field string) ([]int32, error) {
	out := make([]int32, 0, count)

	var acc int32
	for off := 0; len(out) < count; off += 2 {
		v, err := bytesutil.ReadInt16(payload, off, field)
		if err != nil {
			return nil, err
		}

		vi := int32(v)
		if vi == recursiveMax || vi == recursiveMin {
			acc += vi
			continue
		}

		out = append(out, acc+vi)
		acc = 0
	}

	return out, nil
}

// encodeRecursiveInt16 splits each logical int32 value into a chain of
// saturating int16 continuation markers followed by its residue.
func encodeRecursiveInt16(xs []int32) []int16 {
	out := make([]int16, 0, len(xs))

	for _, x := range xs {
		for x >= recursiveMax {
			out = append(out, int16(recursiveMax))
			x -= recursiveMax
		}

		for x <= recursiveMin {
			out = append(out, int16(recursiveMin))
			x -= recursiveMin
		}

		out = append(out, int16(x))
	}

	return out
}

func appendInt16s(dst []byte, vs []int16) []byte {
	for _, v := range vs {
		dst = bytesutil.AppendInt16(dst, v)
	}

	return dst
}

// DecodeDeltaRecursiveQuantFloat decodes a codec 10 blob: recursive-index
// expand to a logical int32 stream, undo delta, then divide by the divisor.
func DecodeDeltaRecursiveQuantFloat(blob []byte, field string) ([]float32, error) {
	hdr, payload, err := ParseHeader(blob)
	if err != nil {
		return nil, err
	}

	if err := checkFamily(field, hdr.ID, IDDeltaRecursiveI16); err != nil {
		return nil, err
	}

	ints, err := decodeRecursiveInt16(payload, int(hdr.Count), field)
	if err != nil {
		return nil, err
	}

	undeltaInt32(ints)

	return divideInt32(ints, hdr.Param), nil
}

// EncodeDeltaRecursiveQuantFloat encodes xs as a codec 10 blob using
// divisor d: quantize, delta, then recursive-index split.
func EncodeDeltaRecursiveQuantFloat(xs []float32, d int32) []byte {
	ints := multiplyFloat32(xs, d)
	deltas := deltaInt32(ints)
	marks := encodeRecursiveInt16(deltas)

	return buildBlob(HeaderSize+len(marks)*2, func(buf []byte) []byte {
		buf = AppendHeader(buf, IDDeltaRecursiveI16, uint32(len(xs)), d)
		return appendInt16s(buf, marks)
	})
}

// DecodeRecursiveQuantFloat decodes a codec 12 blob: recursive-index expand
// then divide by the divisor, with no delta stage.
func DecodeRecursiveQuantFloat(blob []byte, field string) ([]float32, error) {
	hdr, payload, err := ParseHeader(blob)
	if err != nil {
		return nil, err
	}

	if err := checkFamily(field, hdr.ID, IDRecursiveI16); err != nil {
		return nil, err
	}

	ints, err := decodeRecursiveInt16(payload, int(hdr.Count), field)
	if err != nil {
		return nil, err
	}

	return divideInt32(ints, hdr.Param), nil
}

// EncodeRecursiveQuantFloat encodes xs as a codec 12 blob using divisor d.
func EncodeRecursiveQuantFloat(xs []float32, d int32) []byte {
	ints := multiplyFloat32(xs, d)
	marks := encodeRecursiveInt16(ints)

	return buildBlob(HeaderSize+len(marks)*2, func(buf []byte) []byte {
		buf = AppendHeader(buf, IDRecursiveI16, uint32(len(xs)), d)
		return appendInt16s(buf, marks)
	})
}

// DecodeRecursiveInt32 decodes a codec 14 blob: recursive-index expand with
// no quantization, yielding plain int32 values.
func DecodeRecursiveInt32(blob []byte, field string) ([]int32, error) {
	hdr, payload, err := ParseHeader(blob)
	if err != nil {
		return nil, err
	}

	if err := checkFamily(field, hdr.ID, IDRecursiveI16Plain); err != nil {
		return nil, err
	}

	return decodeRecursiveInt16(payload, int(hdr.Count), field)
}

// EncodeRecursiveInt32 encodes xs as a codec 14 blob.
func EncodeRecursiveInt32(xs []int32) []byte {
	marks := encodeRecursiveInt16(xs)

	return buildBlob(HeaderSize+len(marks)*2, func(buf []byte) []byte {
		buf = AppendHeader(buf, IDRecursiveI16Plain, uint32(len(xs)), 0)
		return appendInt16s(buf, marks)
	})
}
