package scanner

import (
	"github.com/ycollier/yamlstream/internal/charset"
	"github.com/ycollier/yamlstream/internal/event"
)

// scanTag scans a tag token: either a verbatim "!<uri>", a "!handle!suffix",
// or a bare "!suffix" resolved against the "!" handle.
func (s *Scanner) scanTag() (*event.Token, error) {
	start := s.mark()
	var handle, suffix []byte

	if err := s.ensure(2); err != nil {
		return nil, err
	}
	if s.buf()[s.pos()+1] == '<' {
		s.skip()
		s.skip()
		var err error
		suffix, err = s.scanTagURI(false, nil, start)
		if err != nil {
			return nil, err
		}
		if err := s.ensure(1); err != nil {
			return nil, err
		}
		if s.buf()[s.pos()] != '>' {
			return nil, newScannerError(s, start, "did not find the expected '>'")
		}
		s.skip()
	} else {
		var err error
		handle, err = s.scanTagHandle(false, start)
		if err != nil {
			return nil, err
		}
		if len(handle) >= 2 && handle[0] == '!' && handle[len(handle)-1] == '!' {
			suffix, err = s.scanTagURI(false, nil, start)
			if err != nil {
				return nil, err
			}
		} else {
			suffix, err = s.scanTagURI(false, handle, start)
			if err != nil {
				return nil, err
			}
			handle = []byte("!")
		}
	}

	if err := s.ensure(1); err != nil {
		return nil, err
	}
	if !charset.IsBlankZ(s.buf(), s.pos()) {
		return nil, newScannerError(s, start, "did not find expected whitespace or line break")
	}
	return &event.Token{Type: event.TagToken, StartMark: start, EndMark: s.mark(), Value: handle, Suffix: suffix}, nil
}

func (s *Scanner) scanTagHandle(directive bool, start event.Position) ([]byte, error) {
	if err := s.ensure(1); err != nil {
		return nil, err
	}
	if s.buf()[s.pos()] != '!' {
		return nil, newScannerError(s, start, "did not find expected '!'")
	}
	handle := []byte{'!'}
	s.skip()
	if err := s.ensure(1); err != nil {
		return nil, err
	}
	for charset.IsAlpha(s.buf(), s.pos()) {
		handle = append(handle, s.buf()[s.pos()])
		s.skip()
		if err := s.ensure(1); err != nil {
			return nil, err
		}
	}
	if s.buf()[s.pos()] == '!' {
		handle = append(handle, '!')
		s.skip()
	} else if directive && string(handle) != "!" {
		return nil, newScannerError(s, start, "did not find expected '!'")
	}
	return handle, nil
}

func (s *Scanner) scanTagURI(directive bool, head []byte, start event.Position) ([]byte, error) {
	var uri []byte
	if len(head) > 1 {
		uri = append(uri, head[1:]...)
	}
	if err := s.ensure(1); err != nil {
		return nil, err
	}
	for charset.IsAlpha(s.buf(), s.pos()) || isURIPunct(s.buf()[s.pos()]) {
		if s.buf()[s.pos()] == '%' {
			esc, err := s.scanURIEscapes(start)
			if err != nil {
				return nil, err
			}
			uri = append(uri, esc...)
		} else {
			uri = append(uri, s.buf()[s.pos()])
			s.skip()
		}
		if err := s.ensure(1); err != nil {
			return nil, err
		}
	}
	if len(uri) == 0 {
		return nil, newScannerError(s, start, "did not find expected tag URI")
	}
	return uri, nil
}

func isURIPunct(b byte) bool {
	switch b {
	case ';', '/', '?', ':', '@', '&', '=', '+', '$', ',', '.', '!', '~', '*', '\'', '(', ')', '[', ']', '%', '-':
		return true
	}
	return false
}

func (s *Scanner) scanURIEscapes(start event.Position) ([]byte, error) {
	var out []byte
	for {
		if err := s.ensure(3); err != nil {
			return nil, err
		}
		if !(s.buf()[s.pos()] == '%' && charset.IsHex(s.buf(), s.pos()+1) && charset.IsHex(s.buf(), s.pos()+2)) {
			return nil, newScannerError(s, start, "did not find URI escaped octet")
		}
		octet := byte(charset.AsHex(s.buf(), s.pos()+1)<<4 + charset.AsHex(s.buf(), s.pos()+2))
		out = append(out, octet)
		s.skip()
		s.skip()
		s.skip()
		if err := s.ensure(1); err != nil {
			return nil, err
		}
		if s.buf()[s.pos()] != '%' {
			break
		}
	}
	return out, nil
}
