package ftype

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSizes(t *testing.T) {
	cases := []struct {
		typ  Type
		size int
	}{
		{Int8, 1}, {Int16, 2}, {Int32, 4}, {Int64, 8},
		{UInt8, 1}, {UInt16, 2}, {UInt32, 4}, {UInt64, 8},
		{Float32, 4}, {Float64, 8},
	}
	for _, c := range cases {
		require.Equal(t, c.size, c.typ.Size(), c.typ.String())
		require.True(t, c.typ.Valid())
	}
}

func TestFromCode(t *testing.T) {
	t.Run("known codes round-trip", func(t *testing.T) {
		for code, want := range codes {
			got, err := FromCode(code)
			require.NoError(t, err)
			require.Equal(t, want, got)
			require.Equal(t, code, got.Code())
		}
	})

	t.Run("unknown code", func(t *testing.T) {
		_, err := FromCode('x')
		require.Error(t, err)
	})
}

func TestFromTag(t *testing.T) {
	got, err := FromTag(int32(Int64))
	require.NoError(t, err)
	require.Equal(t, Int64, got)

	_, err = FromTag(99)
	require.Error(t, err)
}

func TestInvalidType(t *testing.T) {
	var t0 Type
	require.False(t, t0.Valid())
	require.Equal(t, 0, t0.Size())
	require.Equal(t, "Unknown", t0.String())
}
