package reader_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ycollier/yamlstream/internal/event"
	"github.com/ycollier/yamlstream/internal/reader"
)

func TestEncodingAutodetectUTF8BOM(t *testing.T) {
	src := append([]byte{0xEF, 0xBB, 0xBF}, []byte("hi")...)
	r := reader.New(strings.NewReader(string(src)))
	require.NoError(t, r.Ensure(1))
	require.Equal(t, event.UTF8Encoding, r.Encoding)
	require.Equal(t, byte('h'), r.Buffer[r.BufferPos])
}

func TestEncodingAutodetectPlainUTF8(t *testing.T) {
	r := reader.New(strings.NewReader("abc"))
	require.NoError(t, r.Ensure(1))
	require.Equal(t, event.UTF8Encoding, r.Encoding)
}

func TestEncodingUTF16LEBOM(t *testing.T) {
	// BOM + "a" (0x61 0x00) + "b" (0x62 0x00)
	src := []byte{0xFF, 0xFE, 0x61, 0x00, 0x62, 0x00}
	r := reader.New(strings.NewReader(string(src)))
	require.NoError(t, r.Ensure(2))
	require.Equal(t, event.UTF16LEEncoding, r.Encoding)
	require.Equal(t, byte('a'), r.Buffer[r.BufferPos])
}

func TestSetEncodingOverridesAutodetect(t *testing.T) {
	r := reader.New(strings.NewReader("abc"))
	r.SetEncoding(event.UTF8Encoding)
	require.NoError(t, r.Ensure(1))
	require.Equal(t, event.UTF8Encoding, r.Encoding)
}

func TestReadAdvancesMarkAndSkipsBreaks(t *testing.T) {
	r := reader.New(strings.NewReader("a\nb"))
	require.NoError(t, r.Ensure(3))
	var out []byte
	out = r.Read(out)
	require.Equal(t, "a", string(out))
	require.Equal(t, 1, r.Mark.Column)

	out = r.ReadLine(out)
	require.Equal(t, "a\n", string(out))
	require.Equal(t, 0, r.Mark.Column)
	require.Equal(t, 1, r.Mark.Line)
}

func TestControlCharacterRejected(t *testing.T) {
	r := reader.New(strings.NewReader("a\x01b"))
	require.NoError(t, r.Ensure(1))
	var out []byte
	out = r.Read(out)
	require.Equal(t, "a", string(out))
	err := r.Ensure(1)
	require.Error(t, err)
}
