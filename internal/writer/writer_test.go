package writer_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ycollier/yamlstream/internal/event"
	"github.com/ycollier/yamlstream/internal/writer"
)

func TestWriteUTF8PassesThrough(t *testing.T) {
	var buf bytes.Buffer
	w := writer.New(&buf)
	w.SetEncoding(event.UTF8Encoding)
	require.NoError(t, w.WriteAll([]byte("héllo")))
	require.NoError(t, w.Flush())
	require.Equal(t, "héllo", buf.String())
}

func TestWriteUTF16LEAddsBOMOnce(t *testing.T) {
	var buf bytes.Buffer
	w := writer.New(&buf)
	w.SetEncoding(event.UTF16LEEncoding)
	require.NoError(t, w.WriteAll([]byte("ab")))
	require.NoError(t, w.Flush())
	out := buf.Bytes()
	require.Equal(t, []byte{0xFF, 0xFE, 'a', 0x00, 'b', 0x00}, out)
}

func TestWriteUTF16BESurrogatePair(t *testing.T) {
	var buf bytes.Buffer
	w := writer.New(&buf)
	w.SetEncoding(event.UTF16BEEncoding)
	// U+1F600, encoded in UTF-8 as 4 bytes.
	require.NoError(t, w.WriteAll([]byte("\U0001F600")))
	require.NoError(t, w.Flush())
	out := buf.Bytes()
	require.Equal(t, []byte{0xFE, 0xFF, 0xD8, 0x3D, 0xDE, 0x00}, out)
}

func TestFlushIsSafeWithEmptyBuffer(t *testing.T) {
	var buf bytes.Buffer
	w := writer.New(&buf)
	require.NoError(t, w.Flush())
	require.Equal(t, 0, buf.Len())
}

func TestAnyEncodingDefaultsToUTF8PassThrough(t *testing.T) {
	var buf bytes.Buffer
	w := writer.New(&buf)
	require.NoError(t, w.WriteAll([]byte("plain")))
	require.NoError(t, w.Flush())
	require.Equal(t, "plain", buf.String())
}
