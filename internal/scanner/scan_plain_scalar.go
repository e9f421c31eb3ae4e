package scanner

import (
	"github.com/ycollier/yamlstream/internal/charset"
	"github.com/ycollier/yamlstream/internal/event"
)

// scanPlainScalar scans an unquoted scalar. Plain scalars end at an
// unindented line, a ": " (or, in flow context, any flow indicator), or
// a " #" comment start; there is no escape mechanism.
func (s *Scanner) scanPlainScalar() (*event.Token, error) {
	start := s.mark()
	indent := s.indent + 1

	var value, pending []byte
	afterBlank, trailingBreak := false, false
	endMark := s.mark()

	for {
		if err := s.ensure(2); err != nil {
			return nil, err
		}
		if afterBlank && s.buf()[s.pos()] == '#' {
			break
		}
		if s.mark().Column < indent && charset.IsBreakZ(s.buf(), s.pos()) {
			break
		}
		if s.buf()[s.pos()] == ':' && charset.IsBlankZ(s.buf(), s.pos()+1) {
			break
		}
		if s.flowLevel > 0 {
			switch s.buf()[s.pos()] {
			case ',', '[', ']', '{', '}', ':':
				goto done
			}
		}

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
			afterBlank, trailingBreak = true, breaks > 0
			if s.mark().Column < indent {
				break
			}
			switch {
			case breaks == 0:
				pending = append(pending, blankRun...)
			case breaks == 1:
				pending = append(pending, ' ')
			default:
				for i := 0; i < breaks-1; i++ {
					pending = append(pending, '\n')
				}
			}
			continue
		}

		value = append(value, pending...)
		pending = pending[:0]
		value = s.read(value)
		endMark = s.mark()
		afterBlank, trailingBreak = false, false
	}
done:

	if trailingBreak {
		s.simpleKeyAllowed = true
	}
	return &event.Token{Type: event.ScalarToken, StartMark: start, EndMark: endMark, Value: value, Style: event.PlainScalarStyle}, nil
}
