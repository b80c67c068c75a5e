package codec

import (
	"github.com/arloliu/mmtf/bytesutil"
	"github.com/arloliu/mmtf/internal/pool"
)

// runLengthDecodeInt32Into expands (value, count) int32 pairs from payload
// into dst, which must have length count. Used by decoders that only need
// the expanded values as scratch for a further transform (char projection,
// quantization, narrowing), so the caller can supply a pooled buffer
// instead of an allocation that outlives the call.
func runLengthDecodeInt32Into(payload []byte, count int, field string, dst []int32) error {
	n := 0
	for off := 0; n < count; off += 8 {
		value, err := bytesutil.ReadInt32(payload, off, field)
		if err != nil {
			return err
		}

		repeat, err := bytesutil.ReadInt32(payload, off+4, field)
		if err != nil {
			return err
		}

		for range repeat {
			dst[n] = value
			n++
		}
	}

	return nil
}

// runLengthDecodeInt32 expands (value, count) int32 pairs into a freshly
// allocated flat int32 slice of count elements. Used when the expanded
// values are themselves the decoder's return value.
func runLengthDecodeInt32(payload []byte, count int, field string) ([]int32, error) {
	out := make([]int32, count)
	if err := runLengthDecodeInt32Into(payload, count, field, out); err != nil {
		return nil, err
	}

	return out, nil
}

// runLengthEncodeInt32 compresses xs into (value, count) int32 pairs.
func runLengthEncodeInt32(xs []int32) []byte {
	out := make([]byte, 0, len(xs)*2)

	i := 0
	for i < len(xs) {
		j := i + 1
		for j < len(xs) && xs[j] == xs[i] {
			j++
		}

		out = bytesutil.AppendInt32(out, xs[i])
		out = bytesutil.AppendInt32(out, int32(j-i))
		i = j
	}

	return out
}

// DecodeRunLengthChar decodes a codec 6 blob: each (char, count) pair
// projects through int32 and expands into count copies of a single-rune
// string. A char value of 0 expands to empty strings (the "not set" sentinel
// used by altLocList and insCodeList).
func DecodeRunLengthChar(blob []byte, field string) ([]string, error) {
	hdr, payload, err := ParseHeader(blob)
	if err != nil {
		return nil, err
	}

	if err := checkFamily(field, hdr.ID, IDRunLengthChar); err != nil {
		return nil, err
	}

	ints, release := pool.GetInt32Slice(int(hdr.Count))
	defer release()

	if err := runLengthDecodeInt32Into(payload, int(hdr.Count), field, ints); err != nil {
		return nil, err
	}

	out := make([]string, len(ints))
	for i, v := range ints {
		if v == 0 {
			continue
		}

		out[i] = string(rune(v))
	}

	return out, nil
}

// EncodeRunLengthChar encodes sv as a codec 6 blob. Empty strings are
// encoded as the char 0 sentinel.
func EncodeRunLengthChar(sv []string) []byte {
	ints := make([]int32, len(sv))
	for i, s := range sv {
		if s == "" {
			continue
		}

		ints[i] = int32(rune(s[0]))
	}

	payload := runLengthEncodeInt32(ints)

	return buildBlob(HeaderSize+len(payload), func(buf []byte) []byte {
		buf = AppendHeader(buf, IDRunLengthChar, uint32(len(sv)), 0)
		return append(buf, payload...)
	})
}

// DecodeRunLengthInt32 decodes a codec 7 blob (run-length of int32, no
// character projection).
func DecodeRunLengthInt32(blob []byte, field string) ([]int32, error) {
	hdr, payload, err := ParseHeader(blob)
	if err != nil {
		return nil, err
	}

	if err := checkFamily(field, hdr.ID, IDRunLengthInt32); err != nil {
		return nil, err
	}

	return runLengthDecodeInt32(payload, int(hdr.Count), field)
}

// EncodeRunLengthInt32 encodes xs as a codec 7 blob.
func EncodeRunLengthInt32(xs []int32) []byte {
	payload := runLengthEncodeInt32(xs)

	return buildBlob(HeaderSize+len(payload), func(buf []byte) []byte {
		buf = AppendHeader(buf, IDRunLengthInt32, uint32(len(xs)), 0)
		return append(buf, payload...)
	})
}
