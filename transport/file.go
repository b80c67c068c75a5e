package transport

import (
	"io"
	"os"
)

// ReadFile reads path and transparently decompresses it if its contents
// are gzip, zstd, s2, or lz4 framed. A bare MessagePack-encoded structure
// (no recognized magic prefix) is returned unchanged.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return DecodeAuto(data)
}

// ReadStream drains r and transparently decompresses the result the same
// way ReadFile does.
func ReadStream(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return DecodeAuto(data)
}

// WriteFile compresses data under the given format and writes it to path.
func WriteFile(path string, data []byte, f Format) error {
	codec, err := GetCodec(f)
	if err != nil {
		return err
	}

	out, err := codec.Compress(data)
	if err != nil {
		return err
	}

	return os.WriteFile(path, out, 0o644)
}
