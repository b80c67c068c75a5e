// Package codec implements the sixteen MMTF column codecs: the
// self-describing, header-prefixed binary encodings used for every
// per-atom, per-group, per-chain, and per-model column in a structure.
//
// Every blob shares the same 12-byte header (codec id, element count,
// codec parameter, all big-endian uint32/int32) followed by a
// codec-specific payload. Decoders accept the full blob including the
// header; encoders emit the header themselves so callers never
// hand-assemble it.
package codec

import (
	"github.com/arloliu/mmtf/bytesutil"
	"github.com/arloliu/mmtf/errs"
	"github.com/arloliu/mmtf/internal/pool"
)

// HeaderSize is the fixed size, in bytes, of every column blob's header.
const HeaderSize = bytesutil.HeaderSize

// Header is the 12-byte prefix shared by every column codec blob.
type Header struct {
	ID    uint32 // codec id, 1-16
	Count uint32 // logical element count after decoding
	Param int32  // codec-specific parameter (divisor, fixed width, ...)
}

// ParseHeader reads the 12-byte header from blob and returns it along with
// the remaining payload bytes.
func ParseHeader(blob []byte) (Header, []byte, error) {
	id, err := bytesutil.ReadUint32(blob, 0, "codec.header.id")
	if err != nil {
		return Header{}, nil, err
	}

	count, err := bytesutil.ReadUint32(blob, 4, "codec.header.count")
	if err != nil {
		return Header{}, nil, err
	}

	param, err := bytesutil.ReadInt32(blob, 8, "codec.header.param")
	if err != nil {
		return Header{}, nil, err
	}

	return Header{ID: id, Count: count, Param: param}, blob[HeaderSize:], nil
}

// AppendHeader appends a 12-byte header to dst and returns the extended slice.
func AppendHeader(dst []byte, id uint32, count uint32, param int32) []byte {
	dst = bytesutil.AppendUint32(dst, id)
	dst = bytesutil.AppendUint32(dst, count)
	dst = bytesutil.AppendInt32(dst, param)

	return dst
}

// buildBlob borrows a pooled scratch buffer sized to sizeHint, lets fn
// append the header and payload into it, then copies the result into a
// freshly allocated slice the caller owns before returning the buffer to
// the pool. Every column codec's Encode* function goes through this so
// the intermediate append growth is amortized across calls instead of
// allocating from scratch each time.
func buildBlob(sizeHint int, fn func(buf []byte) []byte) []byte {
	bb := pool.GetColumnBuffer()
	defer pool.PutColumnBuffer(bb)

	bb.Grow(sizeHint)
	bb.B = fn(bb.B)

	out := make([]byte, len(bb.B))
	copy(out, bb.B)

	return out
}

// checkFamily verifies that header.ID is one of the ids a field's declared
// element-type family accepts, returning CodecMismatch otherwise.
func checkFamily(field string, found uint32, family ...uint32) error {
	for _, id := range family {
		if id == found {
			return nil
		}
	}

	return &errs.CodecMismatch{Field: field, Expected: family[0], Found: found}
}
