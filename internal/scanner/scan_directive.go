package scanner

import (
	"github.com/ycollier/yamlstream/internal/charset"
	"github.com/ycollier/yamlstream/internal/event"
)

// scanDirective scans a %YAML or %TAG directive line.
func (s *Scanner) scanDirective() (*event.Token, error) {
	start := s.mark()
	s.skip()

	name, err := s.scanDirectiveName(start)
	if err != nil {
		return nil, err
	}

	var tok event.Token
	switch string(name) {
	case "YAML":
		major, minor, err := s.scanVersionDirectiveValue(start)
		if err != nil {
			return nil, err
		}
		tok = event.Token{Type: event.VersionDirectiveToken, StartMark: start, Major: major, Minor: minor}
	case "TAG":
		handle, prefix, err := s.scanTagDirectiveValue(start)
		if err != nil {
			return nil, err
		}
		tok = event.Token{Type: event.TagDirectiveToken, StartMark: start, Value: handle, Prefix: prefix}
	default:
		if err := s.ensure(1); err != nil {
			return nil, err
		}
		for !charset.IsBreakZ(s.buf(), s.pos()) {
			s.skip()
			if err := s.ensure(1); err != nil {
				return nil, err
			}
		}
		tok = event.Token{Type: event.VersionDirectiveToken, StartMark: start}
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
	tok.EndMark = s.mark()
	return &tok, nil
}

func (s *Scanner) scanDirectiveName(start event.Position) ([]byte, error) {
	var name []byte
	if err := s.ensure(1); err != nil {
		return nil, err
	}
	for charset.IsAlpha(s.buf(), s.pos()) {
		name = append(name, s.buf()[s.pos()])
		s.skip()
		if err := s.ensure(1); err != nil {
			return nil, err
		}
	}
	if len(name) == 0 {
		return nil, newScannerError(s, start, "could not find expected directive name")
	}
	if !charset.IsBlankZ(s.buf(), s.pos()) {
		return nil, newScannerError(s, start, "could not find expected alphabetic or numeric character")
	}
	return name, nil
}

func (s *Scanner) scanVersionDirectiveValue(start event.Position) (int8, int8, error) {
	if err := s.ensure(1); err != nil {
		return 0, 0, err
	}
	for charset.IsBlank(s.buf(), s.pos()) {
		s.skip()
		if err := s.ensure(1); err != nil {
			return 0, 0, err
		}
	}
	major, err := s.scanVersionDirectiveNumber(start)
	if err != nil {
		return 0, 0, err
	}
	if s.buf()[s.pos()] != '.' {
		return 0, 0, newScannerError(s, start, "did not find expected digit or '.' character")
	}
	s.skip()
	minor, err := s.scanVersionDirectiveNumber(start)
	if err != nil {
		return 0, 0, err
	}
	return major, minor, nil
}

func (s *Scanner) scanVersionDirectiveNumber(start event.Position) (int8, error) {
	var value int
	var length int
	if err := s.ensure(1); err != nil {
		return 0, err
	}
	for charset.IsDigit(s.buf(), s.pos()) {
		length++
		if length > maxNumberLen {
			return 0, newScannerError(s, start, "found extremely long version number")
		}
		value = value*10 + charset.AsDigit(s.buf(), s.pos())
		s.skip()
		if err := s.ensure(1); err != nil {
			return 0, err
		}
	}
	if length == 0 {
		return 0, newScannerError(s, start, "did not find expected version number")
	}
	return int8(value), nil
}

func (s *Scanner) scanTagDirectiveValue(start event.Position) (handle, prefix []byte, err error) {
	if err := s.ensure(1); err != nil {
		return nil, nil, err
	}
	for charset.IsBlank(s.buf(), s.pos()) {
		s.skip()
		if err := s.ensure(1); err != nil {
			return nil, nil, err
		}
	}
	handle, err = s.scanTagHandle(true, start)
	if err != nil {
		return nil, nil, err
	}
	if err := s.ensure(1); err != nil {
		return nil, nil, err
	}
	if !charset.IsBlank(s.buf(), s.pos()) {
		return nil, nil, newScannerError(s, start, "did not find expected whitespace")
	}
	for charset.IsBlank(s.buf(), s.pos()) {
		s.skip()
		if err := s.ensure(1); err != nil {
			return nil, nil, err
		}
	}
	prefix, err = s.scanTagURI(true, nil, start)
	if err != nil {
		return nil, nil, err
	}
	if err := s.ensure(1); err != nil {
		return nil, nil, err
	}
	if !charset.IsBlankZ(s.buf(), s.pos()) {
		return nil, nil, newScannerError(s, start, "did not find expected whitespace or line break")
	}
	return handle, prefix, nil
}
