package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderRoundTrip(t *testing.T) {
	b := AppendHeader(nil, 7, 42, -5)
	hdr, payload, err := ParseHeader(b)
	require.NoError(t, err)
	assert.Equal(t, uint32(7), hdr.ID)
	assert.Equal(t, uint32(42), hdr.Count)
	assert.Equal(t, int32(-5), hdr.Param)
	assert.Empty(t, payload)
}

func TestCodec10SeedScenario(t *testing.T) {
	blob := []byte{
		0x00, 0x00, 0x00, 0x0a,
		0x00, 0x00, 0x00, 0x03,
		0x00, 0x00, 0x03, 0xe8,
		0x7f, 0xff, 0x44, 0xab, 0x01, 0x8f, 0xff, 0xca,
	}

	got, err := DecodeDeltaRecursiveQuantFloat(blob, "xCoordList")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.InDelta(t, 50.346, got[0], 1e-3)
	assert.InDelta(t, 50.745, got[1], 1e-3)
	assert.InDelta(t, 50.691, got[2], 1e-3)
}

func TestCodec9SeedScenario(t *testing.T) {
	blob := []byte{
		0x00, 0x00, 0x00, 0x09,
		0x00, 0x00, 0x00, 0x03,
		0x00, 0x00, 0x00, 0x64,
		0x00, 0x00, 0x00, 0x64, 0x00, 0x00, 0x00, 0x03,
	}

	got, err := DecodeRunLengthQuantFloat(blob, "occupancyList")
	require.NoError(t, err)
	assert.Equal(t, []float32{1.0, 1.0, 1.0}, got)
}

func TestCodec8SeedScenario(t *testing.T) {
	blob := AppendHeader(nil, IDRunLengthDelta, 7, 0)
	blob = append(blob, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x07)

	got, err := DecodeRunLengthDeltaInt32(blob, "groupIdList")
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 2, 3, 4, 5, 6, 7}, got)
}

func TestCodec6SeedScenario(t *testing.T) {
	blob := AppendHeader(nil, IDRunLengthChar, 4, 0)
	blob = append(blob, 0x00, 0x00, 0x00, 0x41, 0x00, 0x00, 0x00, 0x04)

	got, err := DecodeRunLengthChar(blob, "altLocList")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "A", "A", "A"}, got)
}

func TestCodec5SeedScenario(t *testing.T) {
	blob := AppendHeader(nil, IDFixedString, 6, 4)
	blob = append(blob, []byte("B\x00\x00\x00A\x00\x00\x00C\x00\x00\x00A\x00\x00\x00A\x00\x00\x00A\x00\x00\x00")...)

	got, err := DecodeFixedString(blob, "chainIdList")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A", "C", "A", "A", "A"}, got)
}

func TestFloat32RawRoundTrip(t *testing.T) {
	xs := []float32{1.5, -2.25, 0, 100.125}
	blob := EncodeFloat32Raw(xs)

	assert.Equal(t, uint32(IDFloat32Raw), bePeekID(t, blob))
	got, err := DecodeFloat32Raw(blob, "f")
	require.NoError(t, err)
	assert.Equal(t, xs, got)
}

func TestInt8RawRoundTrip(t *testing.T) {
	xs := []int8{-128, 0, 127, 5}
	blob := EncodeInt8Raw(xs)
	got, err := DecodeInt8Raw(blob, "f")
	require.NoError(t, err)
	assert.Equal(t, xs, got)
}

func TestInt16RawRoundTrip(t *testing.T) {
	xs := []int16{-32768, 32767, 0, 17}
	blob := EncodeInt16Raw(xs)
	got, err := DecodeInt16Raw(blob, "f")
	require.NoError(t, err)
	assert.Equal(t, xs, got)
}

func TestInt32RawRoundTrip(t *testing.T) {
	xs := []int32{-1, 0, 1, 1 << 20}
	blob := EncodeInt32Raw(xs)
	got, err := DecodeInt32Raw(blob, "f")
	require.NoError(t, err)
	assert.Equal(t, xs, got)
}

func TestFixedStringRoundTrip(t *testing.T) {
	sv := []string{"A", "BB", "", "DDDD"}
	blob, err := EncodeFixedString(sv, 4)
	require.NoError(t, err)

	got, err := DecodeFixedString(blob, "chainIdList")
	require.NoError(t, err)
	assert.Equal(t, sv, got)
}

func TestFixedStringTooLong(t *testing.T) {
	_, err := EncodeFixedString([]string{"TOOLONG"}, 4)
	require.Error(t, err)
}

func TestRunLengthCharRoundTrip(t *testing.T) {
	sv := []string{"A", "A", "", "", "B"}
	blob := EncodeRunLengthChar(sv)
	got, err := DecodeRunLengthChar(blob, "insCodeList")
	require.NoError(t, err)
	assert.Equal(t, sv, got)
}

func TestRunLengthInt32RoundTrip(t *testing.T) {
	xs := []int32{1, 1, 1, 2, 2, 3}
	blob := EncodeRunLengthInt32(xs)
	got, err := DecodeRunLengthInt32(blob, "f")
	require.NoError(t, err)
	assert.Equal(t, xs, got)
}

func TestRunLengthDeltaRoundTrip(t *testing.T) {
	xs := []int32{10, 11, 12, 12, 15, 9}
	blob := EncodeRunLengthDeltaInt32(xs)
	got, err := DecodeRunLengthDeltaInt32(blob, "f")
	require.NoError(t, err)
	assert.Equal(t, xs, got)
}

func TestRunLengthQuantFloatRoundTrip(t *testing.T) {
	xs := []float32{1.5, 1.5, 1.5, 2.25}
	blob := EncodeRunLengthQuantFloat(xs, 100)
	got, err := DecodeRunLengthQuantFloat(blob, "occupancyList")
	require.NoError(t, err)
	for i := range xs {
		assert.InDelta(t, xs[i], got[i], 0.01)
	}
}

func TestQuantInt16RawRoundTrip(t *testing.T) {
	xs := []float32{50.346, -12.5, 0}
	blob := EncodeQuantInt16Raw(xs, 1000)
	got, err := DecodeQuantInt16Raw(blob, "bFactorList")
	require.NoError(t, err)
	for i := range xs {
		assert.InDelta(t, xs[i], got[i], 0.001)
	}
}

func TestRunLengthQuantInt8RoundTrip(t *testing.T) {
	xs := []float32{1.0, 1.0, 2.0}
	blob := EncodeRunLengthQuantInt8(xs, 100)
	got, err := DecodeRunLengthQuantInt8(blob, "occupancyList")
	require.NoError(t, err)
	for i := range xs {
		assert.InDelta(t, xs[i], got[i], 0.01)
	}
}

func TestDeltaRecursiveQuantFloatRoundTrip(t *testing.T) {
	xs := []float32{50.346, 50.745, 50.691, -10.001, 0}
	blob := EncodeDeltaRecursiveQuantFloat(xs, 1000)
	got, err := DecodeDeltaRecursiveQuantFloat(blob, "xCoordList")
	require.NoError(t, err)
	for i := range xs {
		assert.InDelta(t, xs[i], got[i], 0.001)
	}
}

func TestRecursiveQuantFloatRoundTrip(t *testing.T) {
	xs := []float32{50.346, -50.745, 0}
	blob := EncodeRecursiveQuantFloat(xs, 1000)
	got, err := DecodeRecursiveQuantFloat(blob, "f")
	require.NoError(t, err)
	for i := range xs {
		assert.InDelta(t, xs[i], got[i], 0.001)
	}
}

func TestRecursiveInt32RoundTrip(t *testing.T) {
	xs := []int32{0, 1, -1, 100000, -100000}
	blob := EncodeRecursiveInt32(xs)
	got, err := DecodeRecursiveInt32(blob, "f")
	require.NoError(t, err)
	assert.Equal(t, xs, got)
}

func TestRecursiveIndexSaturation(t *testing.T) {
	cases := []struct {
		name string
		x    int32
	}{
		{"max", recursiveMax},
		{"max+1", recursiveMax + 1},
		{"min", recursiveMin},
		{"min-1", recursiveMin - 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			marks := encodeRecursiveInt16([]int32{tc.x})
			assert.GreaterOrEqual(t, len(marks), 2)

			blob := AppendHeader(nil, IDRecursiveI16Plain, 1, 0)
			blob = appendInt16s(blob, marks)

			got, err := DecodeRecursiveInt32(blob, "f")
			require.NoError(t, err)
			assert.Equal(t, []int32{tc.x}, got)
		})
	}
}

func TestRunLengthInt8RoundTrip(t *testing.T) {
	xs := []int8{1, 1, 1, -1, -1, 7}
	blob := EncodeRunLengthInt8(xs)
	got, err := DecodeRunLengthInt8(blob, "secStructList")
	require.NoError(t, err)
	assert.Equal(t, xs, got)
}

func TestInt8OrdinalRoundTrip(t *testing.T) {
	xs := []int8{1, 2, 3, 3}
	blob := EncodeInt8Ordinal(xs)
	got, err := DecodeInt8Ordinal(blob, "bondOrderList")
	require.NoError(t, err)
	assert.Equal(t, xs, got)
}

func TestCodecMismatch(t *testing.T) {
	blob := EncodeInt32Raw([]int32{1, 2, 3})
	_, err := DecodeFloat32Raw(blob, "xCoordList")
	require.Error(t, err)
}

func TestEmptyInputYieldsZeroCountHeader(t *testing.T) {
	blob := EncodeFloat32Raw(nil)
	assert.Len(t, blob, HeaderSize)
	hdr, _, err := ParseHeader(blob)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), hdr.Count)
}

func TestFloatColumnDispatch(t *testing.T) {
	blob := EncodeDeltaRecursiveQuantFloat([]float32{1, 2, 3}, 1000)
	got, err := DecodeFloatColumn(blob, "xCoordList")
	require.NoError(t, err)
	require.Len(t, got, 3)
}

func TestInt32ColumnDispatch(t *testing.T) {
	blob := EncodeRunLengthDeltaInt32([]int32{1, 2, 3})
	got, err := DecodeInt32Column(blob, "groupIdList")
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 2, 3}, got)
}

func bePeekID(t *testing.T, blob []byte) uint32 {
	t.Helper()
	hdr, _, err := ParseHeader(blob)
	require.NoError(t, err)

	return hdr.ID
}
