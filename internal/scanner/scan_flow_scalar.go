package scanner

import (
	"github.com/ycollier/yamlstream/internal/charset"
	"github.com/ycollier/yamlstream/internal/event"
)

// scanFlowScalar scans a single- or double-quoted scalar.
func (s *Scanner) scanFlowScalar(single bool) (*event.Token, error) {
	start := s.mark()
	s.skip()

	var value []byte
	for {
		if err := s.ensure(4); err != nil {
			return nil, err
		}
		if charset.IsZ(s.buf(), s.pos()) {
			return nil, newScannerError(s, start, "found unexpected end of stream while scanning a quoted scalar")
		}

		if err := s.ensure(1); err != nil {
			return nil, err
		}

		// A run of blanks and/or line breaks is folded: a run with no
		// break in it is copied verbatim (at most one leading/trailing
		// blank run inside the scalar), a run with exactly one break
		// becomes a single space, and a run with n>1 breaks becomes n-1
		// literal newlines, matching the folded block scalar rule.
		if charset.IsBlank(s.buf(), s.pos()) || charset.IsBreak(s.buf(), s.pos()) {
			var breaks int
			var blankRun []byte
			for charset.IsBlank(s.buf(), s.pos()) || charset.IsBreak(s.buf(), s.pos()) {
				if charset.IsBlank(s.buf(), s.pos()) {
					blankRun = append(blankRun, s.buf()[s.pos()])
					s.skip()
				} else {
					if err := s.ensure(2); err != nil {
						return nil, err
					}
					s.skipLine()
					breaks++
				}
				if err := s.ensure(1); err != nil {
					return nil, err
				}
			}
			switch {
			case breaks == 0:
				value = append(value, blankRun...)
			case breaks == 1:
				value = append(value, ' ')
			default:
				for i := 0; i < breaks-1; i++ {
					value = append(value, '\n')
				}
			}
			continue
		}

		if single && s.buf()[s.pos()] == '\'' && s.pos()+1 < len(s.buf()) && s.buf()[s.pos()+1] == '\'' {
			value = append(value, '\'')
			s.skip()
			s.skip()
			continue
		}
		if single && s.buf()[s.pos()] == '\'' {
			break
		}
		if !single && s.buf()[s.pos()] == '"' {
			break
		}

		if !single && s.buf()[s.pos()] == '\\' && charset.IsBreak(s.buf(), s.pos()+1) {
			s.skip()
			if err := s.ensure(2); err != nil {
				return nil, err
			}
			s.skipLine()
			continue
		}
		if !single && s.buf()[s.pos()] == '\\' {
			esc, err := s.scanFlowScalarEscape(start)
			if err != nil {
				return nil, err
			}
			value = append(value, esc...)
			continue
		}

		value = s.read(value)
	}
	s.skip()

	style := event.SingleQuotedStyle
	if !single {
		style = event.DoubleQuotedStyle
	}
	return &event.Token{Type: event.ScalarToken, StartMark: start, EndMark: s.mark(), Value: value, Style: style}, nil
}

func (s *Scanner) scanFlowScalarEscape(start event.Position) ([]byte, error) {
	s.skip() // consume '\\'
	if err := s.ensure(1); err != nil {
		return nil, err
	}
	c := s.buf()[s.pos()]
	var width int
	switch c {
	case 'x':
		width = 2
	case 'u':
		width = 4
	case 'U':
		width = 8
	}
	if width > 0 {
		s.skip()
		if err := s.ensure(width); err != nil {
			return nil, err
		}
		var v rune
		for i := 0; i < width; i++ {
			if !charset.IsHex(s.buf(), s.pos()+i) {
				return nil, newScannerError(s, start, "did not find expected hexadecimal number")
			}
			v = v<<4 + rune(charset.AsHex(s.buf(), s.pos()+i))
		}
		for i := 0; i < width; i++ {
			s.skip()
		}
		return encodeUTF8Rune(v), nil
	}

	var out byte
	var ok = true
	switch c {
	case '0':
		out = 0
	case 'a':
		out = '\a'
	case 'b':
		out = '\b'
	case 't', '\t':
		out = '\t'
	case 'n':
		out = '\n'
	case 'v':
		out = '\v'
	case 'f':
		out = '\f'
	case 'r':
		out = '\r'
	case 'e':
		out = 0x1B
	case '"':
		out = '"'
	case '\'':
		out = '\''
	case '\\':
		out = '\\'
	case 'N':
		s.skip()
		return []byte{0xC2, 0x85}, nil
	case '_':
		s.skip()
		return []byte{0xC2, 0xA0}, nil
	case 'L':
		s.skip()
		return []byte{0xE2, 0x80, 0xA8}, nil
	case 'P':
		s.skip()
		return []byte{0xE2, 0x80, 0xA9}, nil
	default:
		ok = false
	}
	if !ok {
		return nil, newScannerError(s, start, "found unknown escape character")
	}
	s.skip()
	return []byte{out}, nil
}

func encodeUTF8Rune(v rune) []byte {
	switch {
	case v <= 0x7F:
		return []byte{byte(v)}
	case v <= 0x7FF:
		return []byte{byte(0xC0 + (v >> 6)), byte(0x80 + (v & 0x3F))}
	case v <= 0xFFFF:
		return []byte{byte(0xE0 + (v >> 12)), byte(0x80 + ((v >> 6) & 0x3F)), byte(0x80 + (v & 0x3F))}
	default:
		return []byte{byte(0xF0 + (v >> 18)), byte(0x80 + ((v >> 12) & 0x3F)), byte(0x80 + ((v >> 6) & 0x3F)), byte(0x80 + (v & 0x3F))}
	}
}
