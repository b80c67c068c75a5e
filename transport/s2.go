package transport

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/s2"
)

// S2Codec uses the framed s2 stream format (not the unframed block API),
// since transport compression always works over a whole file/stream and
// needs the self-describing magic prefix for Detect to recognize it.
type S2Codec struct{}

var _ Codec = S2Codec{}

func (S2Codec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	w := s2.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("mmtf: s2 compress: %w", err)
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("mmtf: s2 compress: %w", err)
	}

	return buf.Bytes(), nil
}

func (S2Codec) Decompress(data []byte) ([]byte, error) {
	r := s2.NewReader(bytes.NewReader(data))

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("mmtf: s2 decompress: %w", err)
	}

	return out, nil
}
