// Package parser implements the pushdown automaton that turns a token
// stream into the ten-event grammar described in spec.md §4.3: it
// tracks nesting via an explicit state stack instead of native
// recursion, so a deeply nested document never grows the Go call stack.
package parser

import (
	"bytes"

	"github.com/ycollier/yamlstream/internal/event"
	"github.com/ycollier/yamlstream/internal/scanner"
	"github.com/ycollier/yamlstream/internal/yerrors"
)

type state int8

const (
	stateStreamStart state = iota
	stateImplicitDocumentStart
	stateDocumentStart
	stateDocumentContent
	stateDocumentEnd
	stateBlockNode
	stateBlockNodeOrIndentlessSequence
	stateFlowNode
	stateBlockSequenceFirstEntry
	stateBlockSequenceEntry
	stateIndentlessSequenceEntry
	stateBlockMappingFirstKey
	stateBlockMappingKey
	stateBlockMappingValue
	stateFlowSequenceFirstEntry
	stateFlowSequenceEntry
	stateFlowSequenceEntryMappingKey
	stateFlowSequenceEntryMappingValue
	stateFlowSequenceEntryMappingEnd
	stateFlowMappingFirstKey
	stateFlowMappingKey
	stateFlowMappingValue
	stateFlowMappingEmptyValue
	stateEnd
)

// Parser turns a scanner's token stream into a stream of events,
// resolving tag handles against the directives in scope and
// synthesizing empty-scalar events where the grammar allows an omitted
// node.
type Parser struct {
	S *scanner.Scanner

	state  state
	states []state
	marks  []event.Position

	streamEndProduced bool
	poisoned          bool

	tagDirectives []event.TagDirective
}

// New creates a Parser reading tokens from s.
func New(s *scanner.Scanner) *Parser {
	return &Parser{S: s}
}

func newParserError(problem string, mark event.Position) error {
	return yerrors.At(yerrors.Parser, problem, mark)
}

func newParserErrorContext(context string, contextMark event.Position, problem string, mark event.Position) error {
	return yerrors.WithContext(yerrors.Parser, context, contextMark, problem, mark)
}

func (p *Parser) peek() (*event.Token, error) {
	tok, err := p.S.Peek()
	if err != nil {
		p.poisoned = true
		return nil, err
	}
	return tok, nil
}

func (p *Parser) skip() error {
	if _, err := p.S.Next(); err != nil {
		p.poisoned = true
		return err
	}
	return nil
}

func (p *Parser) pushState(s state) { p.states = append(p.states, s) }

func (p *Parser) popState() state {
	s := p.states[len(p.states)-1]
	p.states = p.states[:len(p.states)-1]
	return s
}

func (p *Parser) pushMark(mark event.Position) { p.marks = append(p.marks, mark) }

func (p *Parser) popMark() event.Position {
	m := p.marks[len(p.marks)-1]
	p.marks = p.marks[:len(p.marks)-1]
	return m
}

// Parse returns the next event in the stream. It returns a
// zero-value event with a nil error once STREAM-END has been consumed;
// callers loop on Type != NoEvent to drive the stream. After any
// scanner or parser error, every later call returns an error.
func (p *Parser) Parse() (*event.Event, error) {
	if p.poisoned {
		return nil, yerrors.New(yerrors.Parser, "parser is poisoned after a previous error")
	}
	if p.streamEndProduced || p.state == stateEnd {
		return &event.Event{}, nil
	}
	ev, err := p.dispatch()
	if err != nil {
		p.poisoned = true
	}
	return ev, err
}

func (p *Parser) dispatch() (*event.Event, error) {
	switch p.state {
	case stateStreamStart:
		return p.parseStreamStart()
	case stateImplicitDocumentStart:
		return p.parseDocumentStart(true)
	case stateDocumentStart:
		return p.parseDocumentStart(false)
	case stateDocumentContent:
		return p.parseDocumentContent()
	case stateDocumentEnd:
		return p.parseDocumentEnd()
	case stateBlockNode:
		return p.parseNode(true, false)
	case stateBlockNodeOrIndentlessSequence:
		return p.parseNode(true, true)
	case stateFlowNode:
		return p.parseNode(false, false)
	case stateBlockSequenceFirstEntry:
		return p.parseBlockSequenceEntry(true)
	case stateBlockSequenceEntry:
		return p.parseBlockSequenceEntry(false)
	case stateIndentlessSequenceEntry:
		return p.parseIndentlessSequenceEntry()
	case stateBlockMappingFirstKey:
		return p.parseBlockMappingKey(true)
	case stateBlockMappingKey:
		return p.parseBlockMappingKey(false)
	case stateBlockMappingValue:
		return p.parseBlockMappingValue()
	case stateFlowSequenceFirstEntry:
		return p.parseFlowSequenceEntry(true)
	case stateFlowSequenceEntry:
		return p.parseFlowSequenceEntry(false)
	case stateFlowSequenceEntryMappingKey:
		return p.parseFlowSequenceEntryMappingKey()
	case stateFlowSequenceEntryMappingValue:
		return p.parseFlowSequenceEntryMappingValue()
	case stateFlowSequenceEntryMappingEnd:
		return p.parseFlowSequenceEntryMappingEnd()
	case stateFlowMappingFirstKey:
		return p.parseFlowMappingKey(true)
	case stateFlowMappingKey:
		return p.parseFlowMappingKey(false)
	case stateFlowMappingValue:
		return p.parseFlowMappingValue(false)
	case stateFlowMappingEmptyValue:
		return p.parseFlowMappingValue(true)
	default:
		panic("parser: invalid state")
	}
}

// processEmptyScalar synthesizes the implicit-null scalar event the
// grammar allows wherever a node was optional and omitted (e.g. "key:"
// with nothing after the colon).
func processEmptyScalar(mark event.Position) *event.Event {
	return &event.Event{
		Type:      event.ScalarEvent,
		StartMark: mark,
		EndMark:   mark,
		Implicit:  true,
		Style:     int8(event.PlainScalarStyle),
	}
}

func appendTagDirective(directives []event.TagDirective, value event.TagDirective, allowDuplicates bool, mark event.Position) ([]event.TagDirective, error) {
	for i := range directives {
		if bytes.Equal(value.Handle, directives[i].Handle) {
			if allowDuplicates {
				return directives, nil
			}
			return nil, newParserError("found duplicate %TAG directive", mark)
		}
	}
	return append(directives, value), nil
}
