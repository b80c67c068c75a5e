package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	capacity := 1024
	bb := NewByteBuffer(capacity)

	require.NotNil(t, bb)
	require.NotNil(t, bb.B)
	assert.Equal(t, 0, len(bb.B))
	assert.Equal(t, capacity, cap(bb.B))
}

func TestByteBuffer_Bytes(t *testing.T) {
	bb := NewByteBuffer(ColumnBufferDefaultSize)
	bb.B = append(bb.B, []byte("hello")...)

	assert.Equal(t, []byte("hello"), bb.Bytes())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(ColumnBufferDefaultSize)
	bb.B = append(bb.B, []byte("some data")...)
	bb.Reset()
	assert.Equal(t, 0, bb.Len())
	assert.GreaterOrEqual(t, bb.Cap(), ColumnBufferDefaultSize)
}

func TestByteBuffer_Grow(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.Grow(1000)
	assert.GreaterOrEqual(t, bb.Cap(), 1000)
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.MustWrite([]byte("payload"))

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
	assert.Equal(t, "payload", out.String())
}

func TestByteBufferPool_GetPut(t *testing.T) {
	pool := NewByteBufferPool(8, 64)

	bb := pool.Get()
	bb.MustWrite([]byte("data"))
	pool.Put(bb)

	bb2 := pool.Get()
	assert.Equal(t, 0, bb2.Len())
}

func TestByteBufferPool_DiscardsOversized(t *testing.T) {
	pool := NewByteBufferPool(8, 16)

	bb := pool.Get()
	bb.Grow(1000)
	pool.Put(bb) // should be discarded, not panic

	bb2 := pool.Get()
	require.NotNil(t, bb2)
}

func TestGetPutColumnBuffer(t *testing.T) {
	bb := GetColumnBuffer()
	require.NotNil(t, bb)
	bb.MustWrite([]byte("x"))
	PutColumnBuffer(bb)
}
