package codec

import (
	"github.com/arloliu/mmtf/bytesutil"
	"github.com/arloliu/mmtf/errs"
)

// Codec ids, per the wire format's 12-byte header.
const (
	IDFloat32Raw        uint32 = 1
	IDInt8Raw           uint32 = 2
	IDInt16Raw          uint32 = 3
	IDInt32Raw          uint32 = 4
	IDFixedString       uint32 = 5
	IDRunLengthChar     uint32 = 6
	IDRunLengthInt32    uint32 = 7
	IDRunLengthDelta    uint32 = 8
	IDRunLengthQuantF64 uint32 = 9
	IDDeltaRecursiveI16 uint32 = 10
	IDQuantInt16Raw     uint32 = 11
	IDRecursiveI16      uint32 = 12
	IDRunLengthQuantI8  uint32 = 13
	IDRecursiveI16Plain uint32 = 14
	IDRunLengthInt8     uint32 = 15
	IDInt8Ordinal       uint32 = 16
)

// DecodeFloat32Raw decodes a codec 1 blob (raw big-endian float32 array).
func DecodeFloat32Raw(blob []byte, field string) ([]float32, error) {
	hdr, payload, err := ParseHeader(blob)
	if err != nil {
		return nil, err
	}

	if err := checkFamily(field, hdr.ID, IDFloat32Raw); err != nil {
		return nil, err
	}

	out := make([]float32, hdr.Count)
	for i := range out {
		v, err := bytesutil.ReadFloat32(payload, i*4, field)
		if err != nil {
			return nil, err
		}

		out[i] = v
	}

	return out, nil
}

// EncodeFloat32Raw encodes xs as a codec 1 blob.
func EncodeFloat32Raw(xs []float32) []byte {
	return buildBlob(HeaderSize+len(xs)*4, func(buf []byte) []byte {
		buf = AppendHeader(buf, IDFloat32Raw, uint32(len(xs)), 0)
		for _, v := range xs {
			buf = bytesutil.AppendFloat32(buf, v)
		}

		return buf
	})
}

// DecodeInt8Raw decodes a codec 2 blob (raw signed bytes).
func DecodeInt8Raw(blob []byte, field string) ([]int8, error) {
	hdr, payload, err := ParseHeader(blob)
	if err != nil {
		return nil, err
	}

	if err := checkFamily(field, hdr.ID, IDInt8Raw); err != nil {
		return nil, err
	}

	if len(payload) < int(hdr.Count) {
		return nil, &errs.Truncated{Field: field, Need: int(hdr.Count), Have: len(payload)}
	}

	out := make([]int8, hdr.Count)
	for i := range out {
		out[i] = int8(payload[i])
	}

	return out, nil
}

// EncodeInt8Raw encodes xs as a codec 2 blob.
func EncodeInt8Raw(xs []int8) []byte {
	return buildBlob(HeaderSize+len(xs), func(buf []byte) []byte {
		buf = AppendHeader(buf, IDInt8Raw, uint32(len(xs)), 0)
		for _, v := range xs {
			buf = bytesutil.AppendInt8(buf, v)
		}

		return buf
	})
}

// DecodeInt16Raw decodes a codec 3 blob (raw big-endian int16 array).
func DecodeInt16Raw(blob []byte, field string) ([]int16, error) {
	hdr, payload, err := ParseHeader(blob)
	if err != nil {
		return nil, err
	}

	if err := checkFamily(field, hdr.ID, IDInt16Raw); err != nil {
		return nil, err
	}

	out := make([]int16, hdr.Count)
	for i := range out {
		v, err := bytesutil.ReadInt16(payload, i*2, field)
		if err != nil {
			return nil, err
		}

		out[i] = v
	}

	return out, nil
}

// EncodeInt16Raw encodes xs as a codec 3 blob.
func EncodeInt16Raw(xs []int16) []byte {
	return buildBlob(HeaderSize+len(xs)*2, func(buf []byte) []byte {
		buf = AppendHeader(buf, IDInt16Raw, uint32(len(xs)), 0)
		for _, v := range xs {
			buf = bytesutil.AppendInt16(buf, v)
		}

		return buf
	})
}

// DecodeInt32Raw decodes a codec 4 blob (raw big-endian int32 array).
func DecodeInt32Raw(blob []byte, field string) ([]int32, error) {
	hdr, payload, err := ParseHeader(blob)
	if err != nil {
		return nil, err
	}

	if err := checkFamily(field, hdr.ID, IDInt32Raw); err != nil {
		return nil, err
	}

	out := make([]int32, hdr.Count)
	for i := range out {
		v, err := bytesutil.ReadInt32(payload, i*4, field)
		if err != nil {
			return nil, err
		}

		out[i] = v
	}

	return out, nil
}

// EncodeInt32Raw encodes xs as a codec 4 blob.
func EncodeInt32Raw(xs []int32) []byte {
	return buildBlob(HeaderSize+len(xs)*4, func(buf []byte) []byte {
		buf = AppendHeader(buf, IDInt32Raw, uint32(len(xs)), 0)
		for _, v := range xs {
			buf = bytesutil.AppendInt32(buf, v)
		}

		return buf
	})
}
