package scanner

import (
	"github.com/ycollier/yamlstream/internal/charset"
	"github.com/ycollier/yamlstream/internal/event"
)

// scanAnchor scans an anchor (&name) or alias (*name) token.
func (s *Scanner) scanAnchor(typ event.TokenType) (*event.Token, error) {
	start := s.mark()
	s.skip()
	var value []byte
	if err := s.ensure(1); err != nil {
		return nil, err
	}
	for charset.IsAlpha(s.buf(), s.pos()) {
		value = append(value, s.buf()[s.pos()])
		s.skip()
		if err := s.ensure(1); err != nil {
			return nil, err
		}
	}
	if len(value) == 0 {
		return nil, newScannerError(s, start, "did not find expected alphabetic or numeric character")
	}
	if !(charset.IsBlankZ(s.buf(), s.pos()) || s.buf()[s.pos()] == '?' || s.buf()[s.pos()] == ':' ||
		s.buf()[s.pos()] == ',' || s.buf()[s.pos()] == ']' || s.buf()[s.pos()] == '}' ||
		s.buf()[s.pos()] == '%' || s.buf()[s.pos()] == '@' || s.buf()[s.pos()] == '`') {
		return nil, newScannerError(s, start, "did not find expected alphabetic or numeric character")
	}
	return &event.Token{Type: typ, StartMark: start, EndMark: s.mark(), Value: value}, nil
}
