// Package bytesutil provides the big-endian integer and fixed-width string
// primitives the MMTF column codecs are built on.
//
// The wire format mandates network byte order (big-endian) everywhere, so
// unlike the teacher's endian.EndianEngine abstraction (which lets a caller
// pick little- or big-endian per blob), this package is fixed to
// binary.BigEndian. The EndianEngine shape is still useful for combining
// read/write/append behind one interface, so BigEndian below is kept as a
// drop-in binary.ByteOrder + binary.AppendByteOrder value rather than a
// hand-rolled set of free functions.
package bytesutil

import (
	"encoding/binary"

	"github.com/arloliu/mmtf/errs"
)

// BigEndian is the fixed byte order used by every MMTF wire primitive.
var BigEndian = binary.BigEndian

// HeaderSize is the width of a column codec header: codec id, element
// count, and codec parameter, each a big-endian uint32.
const HeaderSize = 12

// ReadUint32 reads a big-endian uint32 at offset, failing if fewer than 4
// bytes remain.
func ReadUint32(b []byte, offset int, field string) (uint32, error) {
	if offset < 0 || offset+4 > len(b) {
		return 0, &errs.Truncated{Field: field, Need: offset + 4, Have: len(b)}
	}

	return BigEndian.Uint32(b[offset : offset+4]), nil
}

// ReadInt32 reads a big-endian signed int32 at offset.
func ReadInt32(b []byte, offset int, field string) (int32, error) {
	v, err := ReadUint32(b, offset, field)
	if err != nil {
		return 0, err
	}

	return int32(v), nil
}

// ReadInt16 reads a big-endian signed int16 at offset.
func ReadInt16(b []byte, offset int, field string) (int16, error) {
	if offset < 0 || offset+2 > len(b) {
		return 0, &errs.Truncated{Field: field, Need: offset + 2, Have: len(b)}
	}

	return int16(BigEndian.Uint16(b[offset : offset+2])), nil
}

// ReadInt8 reads a signed int8 at offset.
func ReadInt8(b []byte, offset int, field string) (int8, error) {
	if offset < 0 || offset+1 > len(b) {
		return 0, &errs.Truncated{Field: field, Need: offset + 1, Have: len(b)}
	}

	return int8(b[offset]), nil
}

// ReadFloat32 reads a big-endian IEEE-754 float32 at offset.
func ReadFloat32(b []byte, offset int, field string) (float32, error) {
	v, err := ReadUint32(b, offset, field)
	if err != nil {
		return 0, err
	}

	return math32FromBits(v), nil
}

// AppendUint32 appends a big-endian uint32 to dst.
func AppendUint32(dst []byte, v uint32) []byte {
	return BigEndian.AppendUint32(dst, v)
}

// AppendInt32 appends a big-endian int32 to dst.
func AppendInt32(dst []byte, v int32) []byte {
	return BigEndian.AppendUint32(dst, uint32(v))
}

// AppendInt16 appends a big-endian int16 to dst.
func AppendInt16(dst []byte, v int16) []byte {
	return BigEndian.AppendUint16(dst, uint16(v))
}

// AppendInt8 appends a signed int8 to dst.
func AppendInt8(dst []byte, v int8) []byte {
	return append(dst, byte(v))
}

// AppendFloat32 appends a big-endian IEEE-754 float32 to dst.
func AppendFloat32(dst []byte, v float32) []byte {
	return BigEndian.AppendUint32(dst, math32ToBits(v))
}

// PackFixed encodes each string in sv left-justified into a width-byte cell,
// NUL-padded. It fails with FieldTooLong if any entry exceeds width.
func PackFixed(sv []string, width int, field string) ([]byte, error) {
	out := make([]byte, len(sv)*width)
	for i, s := range sv {
		if len(s) > width {
			return nil, &errs.FieldTooLong{Field: field, Limit: width}
		}

		copy(out[i*width:(i+1)*width], s)
	}

	return out, nil
}

// UnpackFixed decodes a width-byte-cell NUL-padded buffer into count
// strings, trimming trailing 0x00 bytes from each cell.
func UnpackFixed(b []byte, width int, count int, field string) ([]string, error) {
	if width <= 0 {
		if count == 0 {
			return nil, nil
		}

		return nil, &errs.Truncated{Field: field, Need: count, Have: len(b)}
	}

	need := count * width
	if len(b) < need {
		return nil, &errs.Truncated{Field: field, Need: need, Have: len(b)}
	}

	out := make([]string, count)
	for i := 0; i < count; i++ {
		cell := b[i*width : (i+1)*width]

		end := len(cell)
		for end > 0 && cell[end-1] == 0x00 {
			end--
		}

		out[i] = string(cell[:end])
	}

	return out, nil
}
