// Package reader implements the byte-to-character pipeline stage: BOM
// sensing, encoding autodetection, and a manual UTF-8/UTF-16{LE,BE}
// decode-and-validate loop into a character buffer the scanner consumes
// directly.
package reader

import (
	"io"

	"github.com/ycollier/yamlstream/internal/charset"
	"github.com/ycollier/yamlstream/internal/event"
	"github.com/ycollier/yamlstream/internal/yerrors"
)

const (
	rawBufferSize = 16 * 1024
	bufferSize    = rawBufferSize * 3
)

var (
	bomUTF8    = [...]byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = [...]byte{0xFF, 0xFE}
	bomUTF16BE = [...]byte{0xFE, 0xFF}
)

// Reader decodes a byte stream into a buffer of valid YAML characters,
// re-encoded as UTF-8 regardless of the source encoding. Fields are
// exported for direct use by the scanner, matching the teacher's
// field-access style rather than hiding state behind accessors.
type Reader struct {
	src io.Reader
	eof bool

	RawBuffer    []byte
	RawBufferPos int

	Buffer    []byte
	BufferPos int
	Unread    int // number of decoded characters available at BufferPos

	Encoding       event.Encoding
	encodingFixed  bool
	Offset         int
	Mark           event.Position
}

// New creates a Reader pulling from src. The encoding is autodetected
// from the first bytes read unless SetEncoding is called first.
func New(src io.Reader) *Reader {
	return &Reader{
		src:       src,
		RawBuffer: make([]byte, 0, rawBufferSize),
		Buffer:    make([]byte, 0, bufferSize),
	}
}

// SetEncoding overrides autodetection with an explicit encoding. Must be
// called before the first Ensure.
func (r *Reader) SetEncoding(enc event.Encoding) {
	r.Encoding = enc
	r.encodingFixed = true
}

func newReaderError(problem string) error {
	return yerrors.New(yerrors.Reader, problem)
}

func newDecoderError(problem string, mark event.Position) error {
	return yerrors.At(yerrors.Decoder, problem, mark)
}

// determineEncoding inspects the first few raw bytes for a BOM. Called
// once, lazily, on the first Ensure.
func (r *Reader) determineEncoding() error {
	for !r.eof && len(r.RawBuffer)-r.RawBufferPos < 3 {
		if err := r.updateRawBuffer(); err != nil {
			return err
		}
	}
	if r.encodingFixed {
		return nil
	}

	b := r.RawBuffer[r.RawBufferPos:]
	switch {
	case len(b) >= 3 && b[0] == bomUTF8[0] && b[1] == bomUTF8[1] && b[2] == bomUTF8[2]:
		r.Encoding = event.UTF8Encoding
		r.RawBufferPos += 3
		r.Offset += 3
	case len(b) >= 2 && b[0] == bomUTF16LE[0] && b[1] == bomUTF16LE[1]:
		r.Encoding = event.UTF16LEEncoding
		r.RawBufferPos += 2
		r.Offset += 2
	case len(b) >= 2 && b[0] == bomUTF16BE[0] && b[1] == bomUTF16BE[1]:
		r.Encoding = event.UTF16BEEncoding
		r.RawBufferPos += 2
		r.Offset += 2
	default:
		r.Encoding = event.UTF8Encoding
	}
	r.encodingFixed = true
	return nil
}

// updateRawBuffer tops up RawBuffer from src, unless it's already full
// or the source is exhausted.
func (r *Reader) updateRawBuffer() error {
	if r.eof {
		return nil
	}
	if r.RawBufferPos > 0 {
		copy(r.RawBuffer, r.RawBuffer[r.RawBufferPos:])
		r.RawBuffer = r.RawBuffer[:len(r.RawBuffer)-r.RawBufferPos]
		r.RawBufferPos = 0
	}
	if len(r.RawBuffer) == cap(r.RawBuffer) {
		return nil
	}
	n, err := r.src.Read(r.RawBuffer[len(r.RawBuffer):cap(r.RawBuffer)])
	r.RawBuffer = r.RawBuffer[:len(r.RawBuffer)+n]
	if err != nil {
		if err == io.EOF {
			r.eof = true
			return nil
		}
		return newReaderError(err.Error())
	}
	if n == 0 {
		r.eof = true
	}
	return nil
}

// Ensure guarantees Unread >= length decoded characters are available at
// BufferPos, refilling and decoding as needed. Once the source is
// exhausted, Ensure pads the buffer with trailing NULs so callers can
// keep reading a fixed lookahead without special-casing EOS.
func (r *Reader) Ensure(length int) error {
	if r.Unread >= length {
		return nil
	}
	if !r.encodingFixed {
		if err := r.determineEncoding(); err != nil {
			return err
		}
	}

	if r.BufferPos > 0 {
		copy(r.Buffer, r.Buffer[r.BufferPos:])
		r.Buffer = r.Buffer[:len(r.Buffer)-r.BufferPos]
		r.BufferPos = 0
	}

	for r.Unread < length {
		if !r.eof && len(r.RawBuffer)-r.RawBufferPos < 4 {
			if err := r.updateRawBuffer(); err != nil {
				return err
			}
			continue
		}

		raw := r.RawBuffer[r.RawBufferPos:]
		if len(raw) == 0 {
			if !r.eof {
				if err := r.updateRawBuffer(); err != nil {
					return err
				}
				continue
			}
			r.Buffer = append(r.Buffer, 0)
			r.Unread++
			continue
		}

		var v rune
		var w int
		switch r.Encoding {
		case event.UTF16LEEncoding, event.UTF16BEEncoding:
			if len(raw) < 2 {
				if !r.eof {
					if err := r.updateRawBuffer(); err != nil {
						return err
					}
					continue
				}
				return newDecoderError("incomplete UTF-16 character", r.Mark)
			}
			lo, hi := 0, 1
			if r.Encoding == event.UTF16BEEncoding {
				lo, hi = 1, 0
			}
			unit := uint16(raw[lo]) | uint16(raw[hi])<<8
			if unit&0xFC00 == 0xD800 {
				if len(raw) < 4 {
					if !r.eof {
						if err := r.updateRawBuffer(); err != nil {
							return err
						}
						continue
					}
					return newDecoderError("incomplete UTF-16 surrogate pair", r.Mark)
				}
				unit2 := uint16(raw[2+lo]) | uint16(raw[2+hi])<<8
				if unit2&0xFC00 != 0xDC00 {
					return newDecoderError("invalid UTF-16 low surrogate", r.Mark)
				}
				v = 0x10000 + (rune(unit&0x3FF) << 10) + rune(unit2&0x3FF)
				w = 4
			} else if unit&0xFC00 == 0xDC00 {
				return newDecoderError("unexpected UTF-16 low surrogate", r.Mark)
			} else {
				v = rune(unit)
				w = 2
			}
		default: // UTF-8
			octet := raw[0]
			switch {
			case octet&0x80 == 0x00:
				w, v = 1, rune(octet)
			case octet&0xE0 == 0xC0:
				w, v = 2, rune(octet&0x1F)
			case octet&0xF0 == 0xE0:
				w, v = 3, rune(octet&0x0F)
			case octet&0xF8 == 0xF0:
				w, v = 4, rune(octet&0x07)
			default:
				return newDecoderError("invalid leading UTF-8 octet", r.Mark)
			}
			if len(raw) < w {
				if !r.eof {
					if err := r.updateRawBuffer(); err != nil {
						return err
					}
					continue
				}
				return newDecoderError("incomplete UTF-8 octet sequence", r.Mark)
			}
			for k := 1; k < w; k++ {
				if raw[k]&0xC0 != 0x80 {
					return newDecoderError("invalid trailing UTF-8 octet", r.Mark)
				}
				v = (v << 6) + rune(raw[k]&0x3F)
			}
			minLen := [...]int{0, 0, 0x80, 0x800, 0x10000}
			if w > 1 && v < rune(minLen[w]) {
				return newDecoderError("invalid length of a UTF-8 sequence", r.Mark)
			}
		}

		if !(v == 0x09 || v == 0x0A || v == 0x0D ||
			(v >= 0x20 && v <= 0x7E) ||
			v == 0x85 ||
			(v >= 0xA0 && v <= 0xD7FF) ||
			(v >= 0xE000 && v <= 0xFFFD) ||
			(v >= 0x10000 && v <= 0x10FFFF)) {
			return newDecoderError("control characters are not allowed", r.Mark)
		}

		r.RawBufferPos += w
		r.Offset += w

		switch {
		case v <= 0x7F:
			r.Buffer = append(r.Buffer, byte(v))
		case v <= 0x7FF:
			r.Buffer = append(r.Buffer, byte(0xC0+(v>>6)), byte(0x80+(v&0x3F)))
		case v <= 0xFFFF:
			r.Buffer = append(r.Buffer, byte(0xE0+(v>>12)), byte(0x80+((v>>6)&0x3F)), byte(0x80+(v&0x3F)))
		default:
			r.Buffer = append(r.Buffer, byte(0xF0+(v>>18)), byte(0x80+((v>>12)&0x3F)), byte(0x80+((v>>6)&0x3F)), byte(0x80+(v&0x3F)))
		}
		r.Unread++
	}
	return nil
}

// Skip consumes one decoded character, advancing Mark (Index by the
// character's byte width).
func (r *Reader) Skip() {
	w := charset.Width(r.Buffer[r.BufferPos])
	isBreak := charset.IsBreak(r.Buffer, r.BufferPos)
	r.Mark.Index += w
	if isBreak {
		r.Mark.Line++
		r.Mark.Column = 0
	} else {
		r.Mark.Column++
	}
	r.BufferPos += w
	r.Unread--
}

// SkipLine consumes a full CR/LF/CRLF line break as a single unit.
func (r *Reader) SkipLine() {
	if charset.IsCRLF(r.Buffer, r.BufferPos) {
		r.Mark.Index += 2
		r.Mark.Line++
		r.Mark.Column = 0
		r.BufferPos += 2
		r.Unread -= 2
	} else if charset.IsBreak(r.Buffer, r.BufferPos) {
		r.Skip()
	}
}

// Read consumes one decoded character and appends it to s.
func (r *Reader) Read(s []byte) []byte {
	w := charset.Width(r.Buffer[r.BufferPos])
	s = append(s, r.Buffer[r.BufferPos:r.BufferPos+w]...)
	r.Skip()
	return s
}

// ReadLine consumes a line break, normalizing it to a single '\n',
// ' ', or ' ' as appropriate, and appends it to s.
func (r *Reader) ReadLine(s []byte) []byte {
	buf, pos := r.Buffer, r.BufferPos
	switch {
	case buf[pos] == '\r' && pos+1 < len(buf) && buf[pos+1] == '\n':
		s = append(s, '\n')
		r.Mark.Index += 2
		r.Mark.Line++
		r.Mark.Column = 0
		r.BufferPos += 2
		r.Unread -= 2
	case buf[pos] == '\r' || buf[pos] == '\n':
		s = append(s, '\n')
		r.Skip()
	case buf[pos] == 0xC2 && pos+1 < len(buf) && buf[pos+1] == 0x85:
		s = append(s, '\n')
		r.Skip()
	default:
		s = append(s, buf[pos], buf[pos+1], buf[pos+2])
		r.Skip()
	}
	return s
}
