package yaml

import (
	"io"

	"github.com/ycollier/yamlstream/internal/parser"
	"github.com/ycollier/yamlstream/internal/scanner"
)

// Parser turns a byte stream into a sequence of Events. Create one with
// NewParser and call Parse repeatedly; it returns a zero-value Event
// with a nil error once STREAM-END has been produced.
type Parser struct {
	s *scanner.Scanner
	p *parser.Parser
}

// NewParser creates a Parser reading YAML text from r.
func NewParser(r io.Reader) *Parser {
	sc := scanner.New(r)
	return &Parser{s: sc, p: parser.New(sc)}
}

// SetEncoding overrides encoding autodetection. Must be called before
// the first Parse.
func (p *Parser) SetEncoding(enc Encoding) {
	p.s.SetEncoding(enc)
}

// Parse returns the next Event in the stream.
func (p *Parser) Parse() (*Event, error) {
	return p.p.Parse()
}
