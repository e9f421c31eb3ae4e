package scanner

import "github.com/ycollier/yamlstream/internal/event"

// rollIndent pushes a new, deeper indentation level and emits the
// corresponding BLOCK-*-START token, unless the column isn't actually
// deeper (nothing to roll) or we're inside flow context (indentation is
// irrelevant there).
func (s *Scanner) rollIndent(column, number int, typ event.TokenType, mark event.Position) error {
	if s.flowLevel > 0 {
		return nil
	}
	if s.indent < column {
		s.indents = append(s.indents, s.indent)
		if len(s.indents) > maxIndents {
			return newScannerError(s, mark, "too many nested indentation levels")
		}
		s.indent = column
		tok := event.Token{Type: typ, StartMark: mark, EndMark: mark}
		if number == -1 {
			s.insertToken(-1, &tok)
		} else {
			s.insertToken(number-s.tokensParsed, &tok)
		}
	}
	return nil
}

// unrollIndent pops indentation levels greater than column, emitting a
// BLOCK-END for each.
func (s *Scanner) unrollIndent(column int) error {
	if s.flowLevel > 0 {
		return nil
	}
	for s.indent > column {
		tok := event.Token{Type: event.BlockEndToken, StartMark: s.mark(), EndMark: s.mark()}
		s.insertToken(-1, &tok)
		s.indent = s.indents[len(s.indents)-1]
		s.indents = s.indents[:len(s.indents)-1]
	}
	return nil
}

func (s *Scanner) increaseFlowLevel() error {
	s.simpleKeys = append(s.simpleKeys, simpleKey{})
	s.flowLevel++
	if s.flowLevel > maxFlowLevel {
		return newScannerError(s, s.mark(), "too many nested flow levels")
	}
	return nil
}

func (s *Scanner) decreaseFlowLevel() {
	if s.flowLevel > 0 {
		s.flowLevel--
		s.simpleKeys = s.simpleKeys[:len(s.simpleKeys)-1]
	}
}

// saveSimpleKey records the current position as a possible simple-key
// start, if one is currently allowed, replacing this flow level's
// previous candidate (an error if that candidate was required).
func (s *Scanner) saveSimpleKey() error {
	required := s.flowLevel == 0 && s.indent == s.mark().Column
	if s.simpleKeyAllowed {
		if err := s.removeSimpleKey(); err != nil {
			return err
		}
		key := simpleKey{
			possible:    true,
			required:    required,
			tokenNumber: s.tokensParsed + (len(s.tokens) - s.tokensHead),
			mark:        s.mark(),
		}
		if len(s.simpleKeys) == 0 {
			s.simpleKeys = append(s.simpleKeys, key)
		} else {
			s.simpleKeys[len(s.simpleKeys)-1] = key
		}
		s.simpleKeysByTok[key.tokenNumber] = len(s.simpleKeys) - 1
	}
	return nil
}

// removeSimpleKey invalidates the simple-key candidate at the current
// flow level, erroring if it was required (an unterminated "key:").
func (s *Scanner) removeSimpleKey() error {
	if len(s.simpleKeys) == 0 {
		return nil
	}
	key := &s.simpleKeys[len(s.simpleKeys)-1]
	if key.possible && key.required {
		return newScannerError(s, key.mark, "could not find expected ':'")
	}
	key.possible = false
	return nil
}

// simpleKeyIsValid reports whether key is still eligible: it hasn't
// expired by crossing a line break or exceeding the length limit.
func (s *Scanner) simpleKeyIsValid(key *simpleKey) (bool, error) {
	if !key.possible {
		return false, nil
	}
	if key.mark.Line != s.mark().Line || s.mark().Index-key.mark.Index > maxSimpleKey {
		if key.required {
			return false, newScannerError(s, key.mark, "could not find expected ':'")
		}
		key.possible = false
		return false, nil
	}
	return true, nil
}

// staleSimpleKeys expires candidates at flow levels shallower than or
// equal to the current one that have gone stale, called before every
// new token fetch so the parser never sees a retroactive KEY insertion
// after it's too late to splice one in.
func (s *Scanner) staleSimpleKeys() error {
	for i := range s.simpleKeys {
		key := &s.simpleKeys[i]
		if key.possible && (key.mark.Line != s.mark().Line || s.mark().Index-key.mark.Index > maxSimpleKey) {
			if key.required {
				return newScannerError(s, key.mark, "could not find expected ':'")
			}
			key.possible = false
		}
	}
	return nil
}
