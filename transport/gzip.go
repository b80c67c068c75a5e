package transport

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

// GzipCodec handles the ".mmtf.gz" distribution format: the overwhelming
// majority of MMTF files published by RCSB and mirrors are plain gzip.
type GzipCodec struct{}

var _ Codec = GzipCodec{}

func (GzipCodec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	w, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("mmtf: gzip writer: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("mmtf: gzip compress: %w", err)
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("mmtf: gzip compress: %w", err)
	}

	return buf.Bytes(), nil
}

func (GzipCodec) Decompress(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("mmtf: gzip reader: %w", err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("mmtf: gzip decompress: %w", err)
	}

	return out, nil
}
