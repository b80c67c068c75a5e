package transport

// NoOpCodec passes data through unchanged. Used when a stream carries no
// transport compression (a bare MessagePack-encoded structure).
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

func (NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

func (NoOpCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
