// Package writer implements the character-to-byte pipeline stage: it
// accepts UTF-8-encoded character data from the emitter, re-encodes it
// to the stream's output encoding, and buffers it before handing it to
// the sink io.Writer. It mirrors the Reader's buffer-refill discipline
// in reverse: where the Reader tops up a raw buffer and decodes forward
// into a character buffer, the Writer accumulates encoded bytes and
// drains them to the sink once a threshold is crossed.
package writer

import (
	"io"

	"github.com/ycollier/yamlstream/internal/charset"
	"github.com/ycollier/yamlstream/internal/event"
	"github.com/ycollier/yamlstream/internal/yerrors"
)

const bufferSize = 16 * 1024

// Writer buffers encoded output bytes ahead of a sink io.Writer,
// emitting a byte-order-mark once up front for the UTF-16 encodings.
type Writer struct {
	dst io.Writer

	Encoding event.Encoding

	buffer     []byte
	bomWritten bool
}

// New creates a Writer draining to dst. Encoding is left as
// event.AnyEncoding, resolving to UTF-8 unless SetEncoding is called
// before the first write; this lets the emitter decide the encoding
// from its STREAM-START event the same way the Reader autodetects one.
func New(dst io.Writer) *Writer {
	return &Writer{
		dst:      dst,
		buffer:   make([]byte, 0, bufferSize),
	}
}

// SetEncoding sets the output encoding. Must be called before the first
// write.
func (w *Writer) SetEncoding(enc event.Encoding) {
	if enc == event.AnyEncoding {
		enc = event.UTF8Encoding
	}
	w.Encoding = enc
}

func newWriterError(problem string) error {
	return yerrors.New(yerrors.Writer, problem)
}

// ensureBOM writes the byte-order mark once, lazily, on the first
// output. UTF-8 gets no BOM; the stream only ever needs one for the
// UTF-16 encodings, where byte order is otherwise ambiguous.
func (w *Writer) ensureBOM() error {
	if w.bomWritten {
		return nil
	}
	w.bomWritten = true
	switch w.Encoding {
	case event.UTF16LEEncoding:
		return w.appendRaw([]byte{0xFF, 0xFE})
	case event.UTF16BEEncoding:
		return w.appendRaw([]byte{0xFE, 0xFF})
	default:
		return nil
	}
}

func (w *Writer) appendRaw(b []byte) error {
	w.buffer = append(w.buffer, b...)
	if len(w.buffer) >= bufferSize {
		return w.Flush()
	}
	return nil
}

// encodeRune re-encodes a decoded code point into the output encoding.
func (w *Writer) encodeRune(v rune, utf8 []byte) error {
	if w.Encoding == event.UTF8Encoding || w.Encoding == event.AnyEncoding {
		return w.appendRaw(utf8)
	}

	big := w.Encoding == event.UTF16BEEncoding
	putUnit := func(u uint16) error {
		var b [2]byte
		if big {
			b[0], b[1] = byte(u>>8), byte(u)
		} else {
			b[0], b[1] = byte(u), byte(u>>8)
		}
		return w.appendRaw(b[:])
	}

	if v > 0xFFFF {
		v -= 0x10000
		hi := uint16(0xD800 + (v >> 10))
		lo := uint16(0xDC00 + (v & 0x3FF))
		if err := putUnit(hi); err != nil {
			return err
		}
		return putUnit(lo)
	}
	return putUnit(uint16(v))
}

func decodeRune(b []byte) (rune, int) {
	w := charset.Width(b[0])
	switch w {
	case 1:
		return rune(b[0]), 1
	case 2:
		return (rune(b[0]&0x1F) << 6) | rune(b[1]&0x3F), 2
	case 3:
		return (rune(b[0]&0x0F) << 12) | (rune(b[1]&0x3F) << 6) | rune(b[2]&0x3F), 3
	case 4:
		return (rune(b[0]&0x07) << 18) | (rune(b[1]&0x3F) << 12) | (rune(b[2]&0x3F) << 6) | rune(b[3]&0x3F), 4
	default:
		return 0, 1
	}
}

// WriteByte writes a single ASCII byte, e.g. an indicator character or
// a space. Callers only ever pass bytes below 0x80.
func (w *Writer) WriteByte(b byte) error {
	if err := w.ensureBOM(); err != nil {
		return err
	}
	return w.encodeRune(rune(b), []byte{b})
}

// Write re-encodes and buffers the single UTF-8 character at the start
// of b, returning the number of bytes of b (in its original UTF-8 form)
// consumed.
func (w *Writer) Write(b []byte) (int, error) {
	if err := w.ensureBOM(); err != nil {
		return 0, err
	}
	v, n := decodeRune(b)
	if err := w.encodeRune(v, b[:n]); err != nil {
		return 0, err
	}
	return n, nil
}

// WriteAll re-encodes and buffers every character in b.
func (w *Writer) WriteAll(b []byte) error {
	for len(b) > 0 {
		n, err := w.Write(b)
		if err != nil {
			return err
		}
		b = b[n:]
	}
	return nil
}

// WriteBreak writes the single line-break character at the start of b
// exactly as Write does; it performs no normalization.
func (w *Writer) WriteBreak(b []byte) (int, error) {
	return w.Write(b)
}

// Flush drains any buffered bytes to the sink. It may be called at any
// point, including mid-document, since the buffer always holds whole
// encoded units rather than a partial code point.
func (w *Writer) Flush() error {
	if len(w.buffer) == 0 {
		return nil
	}
	n, err := w.dst.Write(w.buffer)
	w.buffer = w.buffer[:copy(w.buffer, w.buffer[n:])]
	if err != nil {
		return newWriterError(err.Error())
	}
	return nil
}
