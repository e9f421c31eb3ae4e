package parser

import (
	"bytes"

	"github.com/ycollier/yamlstream/internal/event"
)

// parseNode implements the shared node-properties production:
//
//	node ::= ALIAS | properties (content)? | content
//	properties ::= TAG ANCHOR? | ANCHOR TAG?
//
// block allows block-only constructs (block sequence/mapping start);
// indentlessSequence additionally allows a bare BLOCK-ENTRY to open an
// indentless sequence, which only the key and value positions of a
// block mapping permit.
func (p *Parser) parseNode(block, indentlessSequence bool) (*event.Event, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}

	if tok.Type == event.AliasToken {
		p.state = p.popState()
		ev := &event.Event{Type: event.AliasEvent, StartMark: tok.StartMark, EndMark: tok.EndMark, Anchor: tok.Value}
		if err := p.skip(); err != nil {
			return nil, err
		}
		return ev, nil
	}

	startMark := tok.StartMark
	endMark := tok.StartMark

	var haveTag bool
	var tagHandle, tagSuffix, anchor []byte
	var tagMark event.Position

	if tok.Type == event.AnchorToken {
		anchor = tok.Value
		startMark, endMark = tok.StartMark, tok.EndMark
		if err := p.skip(); err != nil {
			return nil, err
		}
		tok, err = p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Type == event.TagToken {
			haveTag = true
			tagHandle, tagSuffix, tagMark = tok.Value, tok.Suffix, tok.StartMark
			endMark = tok.EndMark
			if err := p.skip(); err != nil {
				return nil, err
			}
			tok, err = p.peek()
			if err != nil {
				return nil, err
			}
		}
	} else if tok.Type == event.TagToken {
		haveTag = true
		tagHandle, tagSuffix, tagMark = tok.Value, tok.Suffix, tok.StartMark
		startMark = tok.StartMark
		endMark = tok.EndMark
		if err := p.skip(); err != nil {
			return nil, err
		}
		tok, err = p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Type == event.AnchorToken {
			anchor = tok.Value
			endMark = tok.EndMark
			if err := p.skip(); err != nil {
				return nil, err
			}
			tok, err = p.peek()
			if err != nil {
				return nil, err
			}
		}
	}

	var tag []byte
	if haveTag {
		if len(tagHandle) == 0 {
			tag = tagSuffix
		} else {
			for i := range p.tagDirectives {
				if bytes.Equal(p.tagDirectives[i].Handle, tagHandle) {
					tag = append(append([]byte(nil), p.tagDirectives[i].Prefix...), tagSuffix...)
					break
				}
			}
			if len(tag) == 0 {
				return nil, newParserErrorContext("while parsing a node", startMark, "found undefined tag handle", tagMark)
			}
		}
	}

	implicit := len(tag) == 0
	if indentlessSequence && tok.Type == event.BlockEntryToken {
		p.state = stateIndentlessSequenceEntry
		return &event.Event{
			Type: event.SequenceStartEvent, StartMark: startMark, EndMark: tok.EndMark,
			Anchor: anchor, Tag: tag, Implicit: implicit, Style: int8(event.BlockSequenceStyle),
		}, nil
	}

	if tok.Type == event.ScalarToken {
		endMark = tok.EndMark
		var plainImplicit, quotedImplicit bool
		if (len(tag) == 0 && tok.Style == event.PlainScalarStyle) || (len(tag) == 1 && tag[0] == '!') {
			plainImplicit = true
		} else if len(tag) == 0 {
			quotedImplicit = true
		}
		p.state = p.popState()
		ev := &event.Event{
			Type: event.ScalarEvent, StartMark: startMark, EndMark: endMark,
			Anchor: anchor, Tag: tag, Value: tok.Value,
			Implicit: plainImplicit, QuotedImplicit: quotedImplicit, Style: int8(tok.Style),
		}
		if err := p.skip(); err != nil {
			return nil, err
		}
		return ev, nil
	}

	switch tok.Type {
	case event.FlowSequenceStartToken:
		p.state = stateFlowSequenceFirstEntry
		return &event.Event{Type: event.SequenceStartEvent, StartMark: startMark, EndMark: tok.EndMark, Anchor: anchor, Tag: tag, Implicit: implicit, Style: int8(event.FlowSequenceStyle)}, nil
	case event.FlowMappingStartToken:
		p.state = stateFlowMappingFirstKey
		return &event.Event{Type: event.MappingStartEvent, StartMark: startMark, EndMark: tok.EndMark, Anchor: anchor, Tag: tag, Implicit: implicit, Style: int8(event.FlowMappingStyle)}, nil
	case event.BlockSequenceStartToken:
		if block {
			p.state = stateBlockSequenceFirstEntry
			return &event.Event{Type: event.SequenceStartEvent, StartMark: startMark, EndMark: tok.EndMark, Anchor: anchor, Tag: tag, Implicit: implicit, Style: int8(event.BlockSequenceStyle)}, nil
		}
	case event.BlockMappingStartToken:
		if block {
			p.state = stateBlockMappingFirstKey
			return &event.Event{Type: event.MappingStartEvent, StartMark: startMark, EndMark: tok.EndMark, Anchor: anchor, Tag: tag, Implicit: implicit, Style: int8(event.BlockMappingStyle)}, nil
		}
	}

	if len(anchor) > 0 || len(tag) > 0 {
		p.state = p.popState()
		return &event.Event{Type: event.ScalarEvent, StartMark: startMark, EndMark: endMark, Anchor: anchor, Tag: tag, Implicit: implicit, Style: int8(event.PlainScalarStyle)}, nil
	}

	return nil, newParserErrorContext("while parsing a node", startMark, "did not find expected node content", tok.StartMark)
}
