package parser

import "github.com/ycollier/yamlstream/internal/event"

// parseBlockSequenceEntry implements:
//
//	block_sequence ::= BLOCK-SEQUENCE-START (BLOCK-ENTRY block_node?)* BLOCK-END
func (p *Parser) parseBlockSequenceEntry(first bool) (*event.Event, error) {
	if first {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		p.pushMark(tok.StartMark)
		if err := p.skip(); err != nil {
			return nil, err
		}
	}

	tok, err := p.peek()
	if err != nil {
		return nil, err
	}

	if tok.Type == event.BlockEntryToken {
		mark := tok.EndMark
		if err := p.skip(); err != nil {
			return nil, err
		}
		tok, err = p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Type != event.BlockEntryToken && tok.Type != event.BlockEndToken {
			p.pushState(stateBlockSequenceEntry)
			return p.parseNode(true, false)
		}
		p.state = stateBlockSequenceEntry
		return processEmptyScalar(mark), nil
	}
	if tok.Type == event.BlockEndToken {
		p.state = p.popState()
		p.popMark()
		ev := &event.Event{Type: event.SequenceEndEvent, StartMark: tok.StartMark, EndMark: tok.EndMark}
		if err := p.skip(); err != nil {
			return nil, err
		}
		return ev, nil
	}

	contextMark := p.popMark()
	return nil, newParserErrorContext("while parsing a block collection", contextMark, "did not find expected '-' indicator", tok.StartMark)
}

// parseIndentlessSequenceEntry implements:
//
//	indentless_sequence ::= (BLOCK-ENTRY block_node?)+
func (p *Parser) parseIndentlessSequenceEntry() (*event.Event, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Type == event.BlockEntryToken {
		mark := tok.EndMark
		if err := p.skip(); err != nil {
			return nil, err
		}
		tok, err = p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Type != event.BlockEntryToken && tok.Type != event.KeyToken &&
			tok.Type != event.ValueToken && tok.Type != event.BlockEndToken {
			p.pushState(stateIndentlessSequenceEntry)
			return p.parseNode(true, false)
		}
		p.state = stateIndentlessSequenceEntry
		return processEmptyScalar(mark), nil
	}
	p.state = p.popState()
	return &event.Event{Type: event.SequenceEndEvent, StartMark: tok.StartMark, EndMark: tok.StartMark}, nil
}

// parseBlockMappingKey implements:
//
//	block_mapping ::= BLOCK-MAPPING-START
//	  ((KEY block_node_or_indentless_sequence?)?
//	  (VALUE block_node_or_indentless_sequence?)?)*
//	  BLOCK-END
func (p *Parser) parseBlockMappingKey(first bool) (*event.Event, error) {
	if first {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		p.pushMark(tok.StartMark)
		if err := p.skip(); err != nil {
			return nil, err
		}
	}

	tok, err := p.peek()
	if err != nil {
		return nil, err
	}

	if tok.Type == event.KeyToken {
		mark := tok.EndMark
		if err := p.skip(); err != nil {
			return nil, err
		}
		tok, err = p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Type != event.KeyToken && tok.Type != event.ValueToken && tok.Type != event.BlockEndToken {
			p.pushState(stateBlockMappingValue)
			return p.parseNode(true, true)
		}
		p.state = stateBlockMappingValue
		return processEmptyScalar(mark), nil
	}
	if tok.Type == event.BlockEndToken {
		p.state = p.popState()
		p.popMark()
		ev := &event.Event{Type: event.MappingEndEvent, StartMark: tok.StartMark, EndMark: tok.EndMark}
		if err := p.skip(); err != nil {
			return nil, err
		}
		return ev, nil
	}

	contextMark := p.popMark()
	return nil, newParserErrorContext("while parsing a block mapping", contextMark, "did not find expected key", tok.StartMark)
}

func (p *Parser) parseBlockMappingValue() (*event.Event, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Type == event.ValueToken {
		mark := tok.EndMark
		if err := p.skip(); err != nil {
			return nil, err
		}
		tok, err = p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Type != event.KeyToken && tok.Type != event.ValueToken && tok.Type != event.BlockEndToken {
			p.pushState(stateBlockMappingKey)
			return p.parseNode(true, true)
		}
		p.state = stateBlockMappingKey
		return processEmptyScalar(mark), nil
	}
	p.state = stateBlockMappingKey
	return processEmptyScalar(tok.StartMark), nil
}
