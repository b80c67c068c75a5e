package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetInt32Slice(t *testing.T) {
	s, cleanup := GetInt32Slice(5)
	defer cleanup()
	require.Len(t, s, 5)
}

func TestGetFloat32Slice(t *testing.T) {
	s, cleanup := GetFloat32Slice(3)
	defer cleanup()
	require.Len(t, s, 3)
}

func TestGetInt8Slice(t *testing.T) {
	s, cleanup := GetInt8Slice(7)
	defer cleanup()
	require.Len(t, s, 7)
}

func TestGetStringSlice(t *testing.T) {
	s, cleanup := GetStringSlice(4)
	defer cleanup()
	require.Len(t, s, 4)
}
