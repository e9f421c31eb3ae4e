package scanner

import (
	"github.com/ycollier/yamlstream/internal/charset"
	"github.com/ycollier/yamlstream/internal/event"
)

func (s *Scanner) fetchStreamStart() error {
	if err := s.ensure(1); err != nil {
		return err
	}
	s.indent = -1
	s.simpleKeyAllowed = true
	s.streamStartProduced = true
	tok := event.Token{
		Type:      event.StreamStartToken,
		StartMark: s.mark(),
		EndMark:   s.mark(),
		Encoding:  s.R.Encoding,
	}
	s.insertToken(-1, &tok)
	return nil
}

func (s *Scanner) fetchStreamEnd() error {
	if s.mark().Column != 0 {
		s.R.Mark.Column = 0
		s.R.Mark.Line++
	}
	if err := s.unrollIndent(-1); err != nil {
		return err
	}
	if err := s.removeSimpleKey(); err != nil {
		return err
	}
	s.simpleKeyAllowed = false
	s.streamEndProduced = true
	tok := event.Token{Type: event.StreamEndToken, StartMark: s.mark(), EndMark: s.mark()}
	s.insertToken(-1, &tok)
	return nil
}

func (s *Scanner) fetchDocumentIndicator(typ event.TokenType) error {
	if err := s.unrollIndent(-1); err != nil {
		return err
	}
	if err := s.removeSimpleKey(); err != nil {
		return err
	}
	s.simpleKeyAllowed = false
	start := s.mark()
	s.skip()
	s.skip()
	s.skip()
	tok := event.Token{Type: typ, StartMark: start, EndMark: s.mark()}
	s.insertToken(-1, &tok)
	return nil
}

func (s *Scanner) fetchFlowCollectionStart(typ event.TokenType) error {
	if err := s.saveSimpleKey(); err != nil {
		return err
	}
	if err := s.increaseFlowLevel(); err != nil {
		return err
	}
	s.simpleKeyAllowed = true
	start := s.mark()
	s.skip()
	tok := event.Token{Type: typ, StartMark: start, EndMark: s.mark()}
	s.insertToken(-1, &tok)
	return nil
}

func (s *Scanner) fetchFlowCollectionEnd(typ event.TokenType) error {
	if err := s.removeSimpleKey(); err != nil {
		return err
	}
	s.decreaseFlowLevel()
	s.simpleKeyAllowed = false
	start := s.mark()
	s.skip()
	tok := event.Token{Type: typ, StartMark: start, EndMark: s.mark()}
	s.insertToken(-1, &tok)
	return nil
}

func (s *Scanner) fetchFlowEntry() error {
	if err := s.removeSimpleKey(); err != nil {
		return err
	}
	s.simpleKeyAllowed = true
	start := s.mark()
	s.skip()
	tok := event.Token{Type: event.FlowEntryToken, StartMark: start, EndMark: s.mark()}
	s.insertToken(-1, &tok)
	return nil
}

func (s *Scanner) fetchBlockEntry() error {
	if s.flowLevel == 0 {
		if !s.simpleKeyAllowed {
			return newScannerError(s, s.mark(), "block sequence entries are not allowed in this context")
		}
		if err := s.rollIndent(s.mark().Column, -1, event.BlockSequenceStartToken, s.mark()); err != nil {
			return err
		}
	}
	if err := s.removeSimpleKey(); err != nil {
		return err
	}
	s.simpleKeyAllowed = true
	start := s.mark()
	s.skip()
	tok := event.Token{Type: event.BlockEntryToken, StartMark: start, EndMark: s.mark()}
	s.insertToken(-1, &tok)
	return nil
}

func (s *Scanner) fetchKey() error {
	if s.flowLevel == 0 {
		if !s.simpleKeyAllowed {
			return newScannerError(s, s.mark(), "mapping keys are not allowed in this context")
		}
		if err := s.rollIndent(s.mark().Column, -1, event.BlockMappingStartToken, s.mark()); err != nil {
			return err
		}
	}
	if err := s.removeSimpleKey(); err != nil {
		return err
	}
	s.simpleKeyAllowed = s.flowLevel == 0
	start := s.mark()
	s.skip()
	tok := event.Token{Type: event.KeyToken, StartMark: start, EndMark: s.mark()}
	s.insertToken(-1, &tok)
	return nil
}

func (s *Scanner) fetchValue() error {
	key := &s.simpleKeys[len(s.simpleKeys)-1]
	valid, err := s.simpleKeyIsValid(key)
	if err != nil {
		return err
	}
	if valid {
		tok := event.Token{Type: event.KeyToken, StartMark: key.mark, EndMark: key.mark}
		s.insertToken(key.tokenNumber-s.tokensParsed, &tok)

		if err := s.rollIndent(key.mark.Column, key.tokenNumber, event.BlockMappingStartToken, key.mark); err != nil {
			return err
		}
		key.possible = false
		delete(s.simpleKeysByTok, key.tokenNumber)
		s.simpleKeyAllowed = false
	} else {
		if s.flowLevel == 0 {
			if !s.simpleKeyAllowed {
				return newScannerError(s, s.mark(), "mapping values are not allowed in this context")
			}
			if err := s.rollIndent(s.mark().Column, -1, event.BlockMappingStartToken, s.mark()); err != nil {
				return err
			}
		}
		s.simpleKeyAllowed = s.flowLevel == 0
	}
	start := s.mark()
	s.skip()
	tok := event.Token{Type: event.ValueToken, StartMark: start, EndMark: s.mark()}
	s.insertToken(-1, &tok)
	return nil
}

func (s *Scanner) fetchAnchor(typ event.TokenType) error {
	if err := s.saveSimpleKey(); err != nil {
		return err
	}
	s.simpleKeyAllowed = false
	tok, err := s.scanAnchor(typ)
	if err != nil {
		return err
	}
	s.insertToken(-1, tok)
	return nil
}

func (s *Scanner) fetchTag() error {
	if err := s.saveSimpleKey(); err != nil {
		return err
	}
	s.simpleKeyAllowed = false
	tok, err := s.scanTag()
	if err != nil {
		return err
	}
	s.insertToken(-1, tok)
	return nil
}

func (s *Scanner) fetchBlockScalar(literal bool) error {
	if err := s.removeSimpleKey(); err != nil {
		return err
	}
	s.simpleKeyAllowed = true
	tok, err := s.scanBlockScalar(literal)
	if err != nil {
		return err
	}
	s.insertToken(-1, tok)
	return nil
}

func (s *Scanner) fetchFlowScalar(single bool) error {
	if err := s.saveSimpleKey(); err != nil {
		return err
	}
	s.simpleKeyAllowed = false
	tok, err := s.scanFlowScalar(single)
	if err != nil {
		return err
	}
	s.insertToken(-1, tok)
	return nil
}

func (s *Scanner) fetchPlainScalar() error {
	if err := s.saveSimpleKey(); err != nil {
		return err
	}
	s.simpleKeyAllowed = false
	tok, err := s.scanPlainScalar()
	if err != nil {
		return err
	}
	s.insertToken(-1, tok)
	return nil
}

func (s *Scanner) fetchDirective() error {
	if err := s.unrollIndent(-1); err != nil {
		return err
	}
	if err := s.removeSimpleKey(); err != nil {
		return err
	}
	s.simpleKeyAllowed = false
	tok, err := s.scanDirective()
	if err != nil {
		return err
	}
	s.insertToken(-1, tok)
	return nil
}

// scanToNextToken eats whitespace and comments until the next token's
// first character is reached.
func (s *Scanner) scanToNextToken() error {
	for {
		if err := s.ensure(1); err != nil {
			return err
		}
		if s.mark().Column == 0 && charset.IsBOM(s.buf()[s.pos():]) {
			s.skip()
		}

		if err := s.ensure(1); err != nil {
			return err
		}
		for s.buf()[s.pos()] == ' ' || ((s.flowLevel > 0 || !s.simpleKeyAllowed) && s.buf()[s.pos()] == '\t') {
			s.skip()
			if err := s.ensure(1); err != nil {
				return err
			}
		}

		if s.buf()[s.pos()] == '#' {
			for !charset.IsBreakZ(s.buf(), s.pos()) {
				s.skip()
				if err := s.ensure(1); err != nil {
					return err
				}
			}
		}

		if charset.IsBreak(s.buf(), s.pos()) {
			if err := s.ensure(2); err != nil {
				return err
			}
			s.skipLine()
			if s.flowLevel == 0 {
				s.simpleKeyAllowed = true
			}
		} else {
			break
		}
	}
	return nil
}
