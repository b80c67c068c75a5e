package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoOpRoundTrip(t *testing.T) {
	data := []byte("hello mmtf")

	c := NoOpCodec{}
	compressed, err := c.Compress(data)
	require.NoError(t, err)

	out, err := c.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestGzipRoundTrip(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog, repeated, repeated, repeated")

	c := GzipCodec{}
	compressed, err := c.Compress(data)
	require.NoError(t, err)
	assert.Equal(t, FormatGzip, Detect(compressed))

	out, err := c.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestLZ4RoundTrip(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog, repeated, repeated, repeated")

	c := LZ4Codec{}
	compressed, err := c.Compress(data)
	require.NoError(t, err)
	assert.Equal(t, FormatLZ4, Detect(compressed))

	out, err := c.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestS2RoundTrip(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog, repeated, repeated, repeated")

	c := S2Codec{}
	compressed, err := c.Compress(data)
	require.NoError(t, err)

	out, err := c.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestDetectNone(t *testing.T) {
	data := []byte{0x81, 0xa1, 'x'} // msgpack fixmap, not a recognized magic
	assert.Equal(t, FormatNone, Detect(data))
}

func TestDecodeAutoPassesThroughUnframedData(t *testing.T) {
	data := []byte{0x81, 0xa1, 'x'}

	out, err := DecodeAuto(data)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestCreateCodecUnknownFormat(t *testing.T) {
	_, err := CreateCodec(Format(99))
	require.Error(t, err)
}

func TestGetCodecUnknownFormat(t *testing.T) {
	_, err := GetCodec(Format(99))
	require.Error(t, err)
}
