package codec

import (
	"github.com/arloliu/mmtf/bytesutil"
	"github.com/arloliu/mmtf/internal/pool"
)

// DecodeRunLengthQuantFloat decodes a codec 9 blob: run-length encoded
// int32 values, each divided by the header's divisor to recover a float.
func DecodeRunLengthQuantFloat(blob []byte, field string) ([]float32, error) {
	hdr, payload, err := ParseHeader(blob)
	if err != nil {
		return nil, err
	}

	if err := checkFamily(field, hdr.ID, IDRunLengthQuantF64); err != nil {
		return nil, err
	}

	ints, release := pool.GetInt32Slice(int(hdr.Count))
	defer release()

	if err := runLengthDecodeInt32Into(payload, int(hdr.Count), field, ints); err != nil {
		return nil, err
	}

	return divideInt32(ints, hdr.Param), nil
}

// EncodeRunLengthQuantFloat encodes xs as a codec 9 blob using divisor d.
func EncodeRunLengthQuantFloat(xs []float32, d int32) []byte {
	ints := multiplyFloat32(xs, d)
	payload := runLengthEncodeInt32(ints)

	return buildBlob(HeaderSize+len(payload), func(buf []byte) []byte {
		buf = AppendHeader(buf, IDRunLengthQuantF64, uint32(len(xs)), d)
		return append(buf, payload...)
	})
}

// DecodeQuantInt16Raw decodes a codec 11 blob: raw int16 values divided by
// the header's divisor.
func DecodeQuantInt16Raw(blob []byte, field string) ([]float32, error) {
	hdr, payload, err := ParseHeader(blob)
	if err != nil {
		return nil, err
	}

	if err := checkFamily(field, hdr.ID, IDQuantInt16Raw); err != nil {
		return nil, err
	}

	out := make([]float32, hdr.Count)
	for i := range out {
		v, err := bytesutil.ReadInt16(payload, i*2, field)
		if err != nil {
			return nil, err
		}

		out[i] = float32(v) / float32(hdr.Param)
	}

	return out, nil
}

// EncodeQuantInt16Raw encodes xs as a codec 11 blob using divisor d.
func EncodeQuantInt16Raw(xs []float32, d int32) []byte {
	return buildBlob(HeaderSize+len(xs)*2, func(buf []byte) []byte {
		buf = AppendHeader(buf, IDQuantInt16Raw, uint32(len(xs)), d)
		for _, v := range xs {
			buf = bytesutil.AppendInt16(buf, roundToInt16(v*float32(d)))
		}

		return buf
	})
}

// DecodeRunLengthQuantInt8 decodes a codec 13 blob: run-length encoded
// values divided by the header's divisor, the 8-bit-range analogue of
// codec 9.
func DecodeRunLengthQuantInt8(blob []byte, field string) ([]float32, error) {
	hdr, payload, err := ParseHeader(blob)
	if err != nil {
		return nil, err
	}

	if err := checkFamily(field, hdr.ID, IDRunLengthQuantI8); err != nil {
		return nil, err
	}

	ints, release := pool.GetInt32Slice(int(hdr.Count))
	defer release()

	if err := runLengthDecodeInt32Into(payload, int(hdr.Count), field, ints); err != nil {
		return nil, err
	}

	return divideInt32(ints, hdr.Param), nil
}

// EncodeRunLengthQuantInt8 encodes xs as a codec 13 blob using divisor d.
func EncodeRunLengthQuantInt8(xs []float32, d int32) []byte {
	ints := multiplyFloat32(xs, d)
	payload := runLengthEncodeInt32(ints)

	return buildBlob(HeaderSize+len(payload), func(buf []byte) []byte {
		buf = AppendHeader(buf, IDRunLengthQuantI8, uint32(len(xs)), d)
		return append(buf, payload...)
	})
}

func divideInt32(ints []int32, d int32) []float32 {
	out := make([]float32, len(ints))
	for i, v := range ints {
		out[i] = float32(v) / float32(d)
	}

	return out
}

func multiplyFloat32(xs []float32, d int32) []int32 {
	out := make([]int32, len(xs))
	for i, v := range xs {
		out[i] = roundToInt32(v * float32(d))
	}

	return out
}
