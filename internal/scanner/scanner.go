// Package scanner implements the tokenizer: it turns a decoded character
// stream into a queue of marked tokens, managing the indentation stack
// and the simple-key lookahead machinery described in spec.md §4.2.
package scanner

import (
	"io"

	"github.com/ycollier/yamlstream/internal/charset"
	"github.com/ycollier/yamlstream/internal/event"
	"github.com/ycollier/yamlstream/internal/reader"
	"github.com/ycollier/yamlstream/internal/yerrors"
)

const (
	maxIndents    = 10000
	maxFlowLevel  = 10000
	maxSimpleKey  = 1024
	maxNumberLen  = 2
)

type lifecycleState int8

const (
	lifecycleReady lifecycleState = iota
	lifecycleRunning
	lifecyclePoisoned
	lifecycleDone
)

// simpleKey is a candidate position where a mapping key without the '?'
// indicator could begin.
type simpleKey struct {
	possible    bool
	required    bool
	tokenNumber int
	mark        event.Position
}

// Scanner consumes a character stream and produces a stream of tokens.
type Scanner struct {
	R *reader.Reader

	state lifecycleState

	streamStartProduced bool
	streamEndProduced   bool

	flowLevel int

	tokens         []event.Token
	tokensHead     int
	tokensParsed   int
	tokenAvailable bool

	indent  int
	indents []int

	simpleKeyAllowed bool
	simpleKeys       []simpleKey
	simpleKeysByTok  map[int]int
}

// New creates a Scanner reading from src.
func New(src io.Reader) *Scanner {
	return &Scanner{
		R:               reader.New(src),
		indent:          -1,
		simpleKeyAllowed: true,
		simpleKeysByTok: map[int]int{},
	}
}

// SetEncoding overrides encoding autodetection. Must be called before
// the first token is scanned.
func (s *Scanner) SetEncoding(enc event.Encoding) { s.R.SetEncoding(enc) }

func newScannerError(s *Scanner, mark event.Position, problem string) error {
	s.state = lifecyclePoisoned
	return yerrors.At(yerrors.Scanner, problem, mark)
}

func newScannerErrorContext(s *Scanner, context string, contextMark event.Position, problem string, mark event.Position) error {
	s.state = lifecyclePoisoned
	return yerrors.WithContext(yerrors.Scanner, context, contextMark, problem, mark)
}

// Peek returns the next token without consuming it.
func (s *Scanner) Peek() (*event.Token, error) {
	if s.state == lifecyclePoisoned {
		return nil, yerrors.New(yerrors.Scanner, "scanner is poisoned after a previous error")
	}
	if !s.tokenAvailable {
		if err := s.fetchMoreTokens(); err != nil {
			return nil, err
		}
	}
	return &s.tokens[s.tokensHead], nil
}

// Next consumes and returns the next token.
func (s *Scanner) Next() (*event.Token, error) {
	tok, err := s.Peek()
	if err != nil {
		return nil, err
	}
	s.tokenAvailable = false
	s.tokensParsed++
	s.tokensHead++
	popped := tok.Type == event.StreamEndToken
	if popped {
		s.state = lifecycleDone
	} else {
		s.state = lifecycleRunning
	}
	return tok, nil
}

// insertToken inserts tok into the queue at position number (relative
// to tokensHead), or appends it when number < 0. This is the scanner's
// one non-linear operation: it lets a KEY token be spliced in behind a
// scalar that was already scanned, per the simple-key mechanism.
func (s *Scanner) insertToken(number int, tok *event.Token) {
	head := s.tokensHead
	if number == -1 {
		s.tokens = append(s.tokens, *tok)
		return
	}
	pos := head + number
	s.tokens = append(s.tokens, event.Token{})
	copy(s.tokens[pos+1:], s.tokens[pos:])
	s.tokens[pos] = *tok
}

func (s *Scanner) skip()                  { s.R.Skip() }
func (s *Scanner) skipLine()              { s.R.SkipLine() }
func (s *Scanner) read(b []byte) []byte   { return s.R.Read(b) }
func (s *Scanner) readLine(b []byte) []byte { return s.R.ReadLine(b) }

func (s *Scanner) ensure(n int) error {
	if err := s.R.Ensure(n); err != nil {
		s.state = lifecyclePoisoned
		return err
	}
	return nil
}

func (s *Scanner) buf() []byte { return s.R.Buffer }
func (s *Scanner) pos() int    { return s.R.BufferPos }
func (s *Scanner) mark() event.Position { return s.R.Mark }

// fetchMoreTokens keeps fetching until the queue's head is something the
// parser can safely consume: either a token with no chance of a
// retroactive KEY insertion ahead of it, or the queue is non-empty and
// nothing with Possible=true remains at or before the head.
func (s *Scanner) fetchMoreTokens() error {
	for {
		needMore := false
		if len(s.tokens) == s.tokensHead {
			needMore = true
		} else {
			for i := range s.simpleKeys {
				sk := &s.simpleKeys[i]
				if sk.possible && sk.tokenNumber == s.tokensParsed {
					needMore = true
					break
				}
			}
		}
		if !needMore {
			break
		}
		if err := s.fetchNextToken(); err != nil {
			return err
		}
	}
	s.tokenAvailable = true
	return nil
}

// fetchNextToken scans the next token and appends it to the queue,
// together with any BLOCK-END, BLOCK-*-START or spliced KEY tokens that
// the indentation and simple-key bookkeeping add around it.
func (s *Scanner) fetchNextToken() error {
	if !s.streamStartProduced {
		return s.fetchStreamStart()
	}

	if err := s.scanToNextToken(); err != nil {
		return err
	}
	if err := s.staleSimpleKeys(); err != nil {
		return err
	}
	if err := s.ensure(1); err != nil {
		return err
	}

	if err := s.unrollIndent(s.mark().Column); err != nil {
		return err
	}

	if err := s.ensure(4); err != nil {
		return err
	}
	if charset.IsZ(s.buf(), s.pos()) {
		return s.fetchStreamEnd()
	}

	b := s.buf()
	p := s.pos()

	if s.mark().Column == 0 && b[p] == '%' {
		return s.fetchDirective()
	}
	if s.mark().Column == 0 && p+3 <= len(b) && b[p] == '-' && b[p+1] == '-' && b[p+2] == '-' && charset.IsBlankZ(b, p+3) {
		return s.fetchDocumentIndicator(event.DocumentStartToken)
	}
	if s.mark().Column == 0 && p+3 <= len(b) && b[p] == '.' && b[p+1] == '.' && b[p+2] == '.' && charset.IsBlankZ(b, p+3) {
		return s.fetchDocumentIndicator(event.DocumentEndToken)
	}
	switch b[p] {
	case '[':
		return s.fetchFlowCollectionStart(event.FlowSequenceStartToken)
	case '{':
		return s.fetchFlowCollectionStart(event.FlowMappingStartToken)
	case ']':
		return s.fetchFlowCollectionEnd(event.FlowSequenceEndToken)
	case '}':
		return s.fetchFlowCollectionEnd(event.FlowMappingEndToken)
	case ',':
		return s.fetchFlowEntry()
	case '-':
		if charset.IsBlankZ(b, p+1) {
			return s.fetchBlockEntry()
		}
	case '?':
		if s.flowLevel > 0 || charset.IsBlankZ(b, p+1) {
			return s.fetchKey()
		}
	case ':':
		if s.flowLevel > 0 || charset.IsBlankZ(b, p+1) {
			return s.fetchValue()
		}
	case '*':
		return s.fetchAnchor(event.AliasToken)
	case '&':
		return s.fetchAnchor(event.AnchorToken)
	case '!':
		return s.fetchTag()
	case '|':
		if s.flowLevel == 0 {
			return s.fetchBlockScalar(true)
		}
	case '>':
		if s.flowLevel == 0 {
			return s.fetchBlockScalar(false)
		}
	case '\'':
		return s.fetchFlowScalar(true)
	case '"':
		return s.fetchFlowScalar(false)
	}

	// A plain scalar may start with any character except the reserved
	// indicator set below, or with '-'/'?'/':' when followed by a
	// non-blank (the constructs above already claimed those three when
	// followed by a blank). Anything else reaching here is an error.
	reserved := b[p] == '-' || b[p] == '?' || b[p] == ':' ||
		b[p] == ',' || b[p] == '[' || b[p] == ']' || b[p] == '{' || b[p] == '}' ||
		b[p] == '#' || b[p] == '&' || b[p] == '*' || b[p] == '!' ||
		b[p] == '|' || b[p] == '>' || b[p] == '\'' || b[p] == '"' ||
		b[p] == '%' || b[p] == '@' || b[p] == '`'
	switch {
	case !charset.IsBlankZ(b, p) && !reserved:
		return s.fetchPlainScalar()
	case b[p] == '-' && !charset.IsBlank(b, p+1):
		return s.fetchPlainScalar()
	case s.flowLevel == 0 && (b[p] == '?' || b[p] == ':') && !charset.IsBlankZ(b, p+1):
		return s.fetchPlainScalar()
	}
	return newScannerError(s, s.mark(), "found character that cannot start any token")
}
