package charset_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ycollier/yamlstream/internal/charset"
)

func TestWidth(t *testing.T) {
	cases := []struct {
		b    byte
		want int
	}{
		{'a', 1},
		{0xC2, 2},
		{0xE2, 3},
		{0xF0, 4},
		{0x80, 0}, // bare continuation byte, not a leading byte
	}
	for _, c := range cases {
		require.Equal(t, c.want, charset.Width(c.b))
	}
}

func TestIsPrintable(t *testing.T) {
	require.True(t, charset.IsPrintable([]byte("x"), 0))
	require.True(t, charset.IsPrintable([]byte("\t"), 0))
	require.False(t, charset.IsPrintable([]byte("\x01"), 0))
	require.False(t, charset.IsPrintable([]byte{0x7F}, 0))

	// U+FEFF (BOM) is explicitly excluded even mid-stream.
	bom := []byte{0xEF, 0xBB, 0xBF}
	require.False(t, charset.IsPrintable(bom, 0))

	// NEL, U+0085, encoded as 0xC2 0x85.
	nel := []byte{0xC2, 0x85}
	require.True(t, charset.IsPrintable(nel, 0))
}

func TestIsBreak(t *testing.T) {
	require.True(t, charset.IsBreak([]byte("\n"), 0))
	require.True(t, charset.IsBreak([]byte("\r"), 0))
	require.True(t, charset.IsBreak([]byte{0xC2, 0x85}, 0))
	require.False(t, charset.IsBreak([]byte("x"), 0))
}

func TestIsCRLF(t *testing.T) {
	require.True(t, charset.IsCRLF([]byte("\r\n"), 0))
	require.False(t, charset.IsCRLF([]byte("\n\r"), 0))
	require.False(t, charset.IsCRLF([]byte("\r"), 0))
}

func TestIsBOM(t *testing.T) {
	require.True(t, charset.IsBOM([]byte{0xEF, 0xBB, 0xBF, 'x'}))
	require.False(t, charset.IsBOM([]byte{0xEF, 0xBB}))
	require.False(t, charset.IsBOM([]byte("abc")))
}

func TestBlankZPredicates(t *testing.T) {
	s := []byte(" \t\n\x00")
	require.True(t, charset.IsBlankZ(s, 0))
	require.True(t, charset.IsBlankZ(s, 1))
	require.True(t, charset.IsBlankZ(s, 2))
	require.True(t, charset.IsZ(s, 3))
	require.False(t, charset.IsBlankZ([]byte("x"), 0))
}
