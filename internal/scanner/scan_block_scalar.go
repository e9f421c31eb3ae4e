package scanner

import (
	"github.com/ycollier/yamlstream/internal/charset"
	"github.com/ycollier/yamlstream/internal/event"
)

// scanBlockScalar scans a literal (|) or folded (>) block scalar,
// including its chomping/indentation header, leading and trailing blank
// lines, and (for folded scalars) the line-folding rule.
func (s *Scanner) scanBlockScalar(literal bool) (*event.Token, error) {
	start := s.mark()
	s.skip()

	chomping := 0 // 0: clip, +1: keep, -1: strip
	increment := 0

	if err := s.ensure(1); err != nil {
		return nil, err
	}
	if s.buf()[s.pos()] == '+' || s.buf()[s.pos()] == '-' {
		if s.buf()[s.pos()] == '+' {
			chomping = 1
		} else {
			chomping = -1
		}
		s.skip()
		if err := s.ensure(1); err != nil {
			return nil, err
		}
		if charset.IsDigit(s.buf(), s.pos()) {
			if s.buf()[s.pos()] == '0' {
				return nil, newScannerError(s, start, "found an indentation indicator equal to 0")
			}
			increment = charset.AsDigit(s.buf(), s.pos())
			s.skip()
		}
	} else if charset.IsDigit(s.buf(), s.pos()) {
		if s.buf()[s.pos()] == '0' {
			return nil, newScannerError(s, start, "found an indentation indicator equal to 0")
		}
		increment = charset.AsDigit(s.buf(), s.pos())
		s.skip()
		if err := s.ensure(1); err != nil {
			return nil, err
		}
		if s.buf()[s.pos()] == '+' || s.buf()[s.pos()] == '-' {
			if s.buf()[s.pos()] == '+' {
				chomping = 1
			} else {
				chomping = -1
			}
			s.skip()
		}
	}

	if err := s.ensure(1); err != nil {
		return nil, err
	}
	for charset.IsBlank(s.buf(), s.pos()) {
		s.skip()
		if err := s.ensure(1); err != nil {
			return nil, err
		}
	}
	if s.buf()[s.pos()] == '#' {
		for !charset.IsBreakZ(s.buf(), s.pos()) {
			s.skip()
			if err := s.ensure(1); err != nil {
				return nil, err
			}
		}
	}
	if !charset.IsBreakZ(s.buf(), s.pos()) {
		return nil, newScannerError(s, start, "did not find expected comment or line break")
	}
	if charset.IsBreak(s.buf(), s.pos()) {
		if err := s.ensure(2); err != nil {
			return nil, err
		}
		s.skipLine()
	}

	indent := 0
	if increment > 0 {
		if s.indent >= 0 {
			indent = s.indent + increment
		} else {
			indent = increment
		}
	}

	// Collect raw lines (content plus a flag for "this line was blank"),
	// skipping indentation spaces, until a line shallower than indent (or
	// end of stream) is reached. Folding and chomping are applied to the
	// collected lines afterward, which keeps the indentation-detection
	// loop free of fold-specific special cases.
	var lines [][]byte
	var blanks []bool
	endMark := s.mark()

	for {
		if err := s.ensure(1); err != nil {
			return nil, err
		}
		for (indent == 0 || s.mark().Column < indent) && charset.IsSpace(s.buf(), s.pos()) {
			s.skip()
			if err := s.ensure(1); err != nil {
				return nil, err
			}
		}
		if indent == 0 && s.mark().Column > 0 {
			indent = s.mark().Column
		}
		if charset.IsBreakZ(s.buf(), s.pos()) || s.mark().Column < indent {
			break
		}

		var line []byte
		for !charset.IsBreakZ(s.buf(), s.pos()) {
			line = s.read(line)
			if err := s.ensure(1); err != nil {
				return nil, err
			}
		}
		lines = append(lines, line)
		blanks = append(blanks, len(line) == 0)
		endMark = s.mark()

		if err := s.ensure(2); err != nil {
			return nil, err
		}
		if !charset.IsBreak(s.buf(), s.pos()) {
			break
		}
		s.skipLine()
	}

	var value []byte
	for i, line := range lines {
		value = append(value, line...)
		last := i == len(lines)-1
		if last {
			break
		}
		switch {
		case literal:
			value = append(value, '\n')
		case blanks[i] || blanks[i+1]:
			value = append(value, '\n')
		default:
			value = append(value, ' ')
		}
	}

	switch {
	case chomping < 0:
		// strip: no trailing break kept.
	case chomping > 0:
		value = append(value, '\n')
	case len(lines) > 0:
		value = append(value, '\n')
	}

	style := event.LiteralScalarStyle
	if !literal {
		style = event.FoldedScalarStyle
	}
	return &event.Token{Type: event.ScalarToken, StartMark: start, EndMark: endMark, Value: value, Style: style}, nil
}
