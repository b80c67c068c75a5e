// Package transport handles the byte-stream framing MMTF files are
// commonly distributed under: a MessagePack-encoded structure wrapped in
// a general-purpose compressor (gzip being the overwhelmingly common
// choice for ".mmtf.gz" downloads, with zstd/s2/lz4 as faster or
// tighter alternatives). It sniffs a stream's magic bytes and picks the
// matching decompressor before the bytes ever reach envelope.Parse.
package transport

import "fmt"

// Compressor compresses a byte stream under one algorithm.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor's transform.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of a single compression algorithm.
type Codec interface {
	Compressor
	Decompressor
}

// Format identifies a transport-level compression algorithm.
type Format int

const (
	FormatNone Format = iota
	FormatGzip
	FormatZstd
	FormatS2
	FormatLZ4
)

func (f Format) String() string {
	switch f {
	case FormatNone:
		return "none"
	case FormatGzip:
		return "gzip"
	case FormatZstd:
		return "zstd"
	case FormatS2:
		return "s2"
	case FormatLZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// CreateCodec builds a fresh Codec for the given format.
func CreateCodec(f Format) (Codec, error) {
	switch f {
	case FormatNone:
		return NoOpCodec{}, nil
	case FormatGzip:
		return GzipCodec{}, nil
	case FormatZstd:
		return ZstdCodec{}, nil
	case FormatS2:
		return S2Codec{}, nil
	case FormatLZ4:
		return LZ4Codec{}, nil
	default:
		return nil, fmt.Errorf("mmtf: unsupported transport compression format %q", f)
	}
}

var builtinCodecs = map[Format]Codec{
	FormatNone: NoOpCodec{},
	FormatGzip: GzipCodec{},
	FormatZstd: ZstdCodec{},
	FormatS2:   S2Codec{},
	FormatLZ4:  LZ4Codec{},
}

// GetCodec retrieves a shared built-in Codec for the given format.
func GetCodec(f Format) (Codec, error) {
	if c, ok := builtinCodecs[f]; ok {
		return c, nil
	}

	return nil, fmt.Errorf("mmtf: unsupported transport compression format %q", f)
}
