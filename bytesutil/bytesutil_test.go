package bytesutil

import (
	"errors"
	"testing"

	"github.com/arloliu/mmtf/errs"
	"github.com/stretchr/testify/require"
)

func TestReadWriteUint32RoundTrip(t *testing.T) {
	buf := AppendUint32(nil, 0xdeadbeef)
	got, err := ReadUint32(buf, 0, "test")
	require.NoError(t, err)
	require.Equal(t, uint32(0xdeadbeef), got)
}

func TestReadUint32Truncated(t *testing.T) {
	_, err := ReadUint32([]byte{0x01, 0x02}, 0, "hdr")
	require.Error(t, err)

	var trunc *errs.Truncated
	require.True(t, errors.As(err, &trunc))
	require.Equal(t, "hdr", trunc.Field)
}

func TestReadInt16RoundTrip(t *testing.T) {
	buf := AppendInt16(nil, -1234)
	got, err := ReadInt16(buf, 0, "test")
	require.NoError(t, err)
	require.Equal(t, int16(-1234), got)
}

func TestReadInt8RoundTrip(t *testing.T) {
	buf := AppendInt8(nil, -42)
	got, err := ReadInt8(buf, 0, "test")
	require.NoError(t, err)
	require.Equal(t, int8(-42), got)
}

func TestReadFloat32RoundTrip(t *testing.T) {
	buf := AppendFloat32(nil, 50.346)
	got, err := ReadFloat32(buf, 0, "test")
	require.NoError(t, err)
	require.InDelta(t, 50.346, float64(got), 1e-4)
}

func TestPackUnpackFixedRoundTrip(t *testing.T) {
	sv := []string{"A", "BBBB", "", "CC"}
	packed, err := PackFixed(sv, 4, "chainIdList")
	require.NoError(t, err)
	require.Len(t, packed, 16)

	got, err := UnpackFixed(packed, 4, 4, "chainIdList")
	require.NoError(t, err)
	require.Equal(t, sv, got)
}

func TestPackFixedTooLong(t *testing.T) {
	_, err := PackFixed([]string{"TOOLONG"}, 4, "chainIdList")
	require.Error(t, err)
}

func TestUnpackFixedTruncated(t *testing.T) {
	_, err := UnpackFixed([]byte{0x41, 0x00}, 4, 1, "chainIdList")
	require.Error(t, err)
}
