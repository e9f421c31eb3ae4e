package parser

import "github.com/ycollier/yamlstream/internal/event"

// parseFlowSequenceEntry implements:
//
//	flow_sequence ::= FLOW-SEQUENCE-START (flow_sequence_entry FLOW-ENTRY)*
//	                  flow_sequence_entry? FLOW-SEQUENCE-END
//	flow_sequence_entry ::= flow_node | KEY flow_node? (VALUE flow_node?)?
func (p *Parser) parseFlowSequenceEntry(first bool) (*event.Event, error) {
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

	if tok.Type != event.FlowSequenceEndToken {
		if !first {
			if tok.Type == event.FlowEntryToken {
				if err := p.skip(); err != nil {
					return nil, err
				}
				tok, err = p.peek()
				if err != nil {
					return nil, err
				}
			} else {
				contextMark := p.popMark()
				return nil, newParserErrorContext("while parsing a flow sequence", contextMark, "did not find expected ',' or ']'", tok.StartMark)
			}
		}

		if tok.Type == event.KeyToken {
			p.state = stateFlowSequenceEntryMappingKey
			ev := &event.Event{Type: event.MappingStartEvent, StartMark: tok.StartMark, EndMark: tok.EndMark, Implicit: true, Style: int8(event.FlowMappingStyle)}
			if err := p.skip(); err != nil {
				return nil, err
			}
			return ev, nil
		}
		if tok.Type != event.FlowSequenceEndToken {
			p.pushState(stateFlowSequenceEntry)
			return p.parseNode(false, false)
		}
	}

	p.state = p.popState()
	p.popMark()
	ev := &event.Event{Type: event.SequenceEndEvent, StartMark: tok.StartMark, EndMark: tok.EndMark}
	if err := p.skip(); err != nil {
		return nil, err
	}
	return ev, nil
}

func (p *Parser) parseFlowSequenceEntryMappingKey() (*event.Event, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Type != event.ValueToken && tok.Type != event.FlowEntryToken && tok.Type != event.FlowSequenceEndToken {
		p.pushState(stateFlowSequenceEntryMappingValue)
		return p.parseNode(false, false)
	}
	mark := tok.EndMark
	if err := p.skip(); err != nil {
		return nil, err
	}
	p.state = stateFlowSequenceEntryMappingValue
	return processEmptyScalar(mark), nil
}

func (p *Parser) parseFlowSequenceEntryMappingValue() (*event.Event, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Type == event.ValueToken {
		if err := p.skip(); err != nil {
			return nil, err
		}
		tok, err = p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Type != event.FlowEntryToken && tok.Type != event.FlowSequenceEndToken {
			p.pushState(stateFlowSequenceEntryMappingEnd)
			return p.parseNode(false, false)
		}
	}
	p.state = stateFlowSequenceEntryMappingEnd
	return processEmptyScalar(tok.StartMark), nil
}

func (p *Parser) parseFlowSequenceEntryMappingEnd() (*event.Event, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	p.state = stateFlowSequenceEntry
	return &event.Event{Type: event.MappingEndEvent, StartMark: tok.StartMark, EndMark: tok.StartMark}, nil
}

// parseFlowMappingKey implements:
//
//	flow_mapping ::= FLOW-MAPPING-START (flow_mapping_entry FLOW-ENTRY)*
//	                 flow_mapping_entry? FLOW-MAPPING-END
//	flow_mapping_entry ::= flow_node | KEY flow_node? (VALUE flow_node?)?
func (p *Parser) parseFlowMappingKey(first bool) (*event.Event, error) {
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

	if tok.Type != event.FlowMappingEndToken {
		if !first {
			if tok.Type == event.FlowEntryToken {
				if err := p.skip(); err != nil {
					return nil, err
				}
				tok, err = p.peek()
				if err != nil {
					return nil, err
				}
			} else {
				contextMark := p.popMark()
				return nil, newParserErrorContext("while parsing a flow mapping", contextMark, "did not find expected ',' or '}'", tok.StartMark)
			}
		}

		if tok.Type == event.KeyToken {
			if err := p.skip(); err != nil {
				return nil, err
			}
			tok, err = p.peek()
			if err != nil {
				return nil, err
			}
			if tok.Type != event.ValueToken && tok.Type != event.FlowEntryToken && tok.Type != event.FlowMappingEndToken {
				p.pushState(stateFlowMappingValue)
				return p.parseNode(false, false)
			}
			p.state = stateFlowMappingValue
			return processEmptyScalar(tok.StartMark), nil
		}
		if tok.Type != event.FlowMappingEndToken {
			p.pushState(stateFlowMappingEmptyValue)
			return p.parseNode(false, false)
		}
	}

	p.state = p.popState()
	p.popMark()
	ev := &event.Event{Type: event.MappingEndEvent, StartMark: tok.StartMark, EndMark: tok.EndMark}
	if err := p.skip(); err != nil {
		return nil, err
	}
	return ev, nil
}

func (p *Parser) parseFlowMappingValue(empty bool) (*event.Event, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if empty {
		p.state = stateFlowMappingKey
		return processEmptyScalar(tok.StartMark), nil
	}
	if tok.Type == event.ValueToken {
		if err := p.skip(); err != nil {
			return nil, err
		}
		tok, err = p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Type != event.FlowEntryToken && tok.Type != event.FlowMappingEndToken {
			p.pushState(stateFlowMappingKey)
			return p.parseNode(false, false)
		}
	}
	p.state = stateFlowMappingKey
	return processEmptyScalar(tok.StartMark), nil
}
