package parser

import "github.com/ycollier/yamlstream/internal/event"

// parseStreamStart implements: stream ::= STREAM-START ...
func (p *Parser) parseStreamStart() (*event.Event, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Type != event.StreamStartToken {
		return nil, newParserError("did not find expected <stream-start>", tok.StartMark)
	}
	p.state = stateImplicitDocumentStart
	ev := &event.Event{Type: event.StreamStartEvent, StartMark: tok.StartMark, EndMark: tok.EndMark, Encoding: tok.Encoding}
	if err := p.skip(); err != nil {
		return nil, err
	}
	return ev, nil
}

// parseDocumentStart implements:
//
//	implicit_document ::= block_node DOCUMENT-END*
//	explicit_document ::= DIRECTIVE* DOCUMENT-START block_node? DOCUMENT-END*
func (p *Parser) parseDocumentStart(implicit bool) (*event.Event, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}

	if !implicit {
		for tok.Type == event.DocumentEndToken {
			if err := p.skip(); err != nil {
				return nil, err
			}
			tok, err = p.peek()
			if err != nil {
				return nil, err
			}
		}
	}

	if implicit && tok.Type != event.VersionDirectiveToken &&
		tok.Type != event.TagDirectiveToken &&
		tok.Type != event.DocumentStartToken &&
		tok.Type != event.StreamEndToken {
		if err := p.processDirectives(nil, nil); err != nil {
			return nil, err
		}
		p.pushState(stateDocumentEnd)
		p.state = stateBlockNode
		return &event.Event{Type: event.DocumentStartEvent, Implicit: true, StartMark: tok.StartMark, EndMark: tok.EndMark}, nil
	}

	if tok.Type != event.StreamEndToken {
		var versionDirective *event.VersionDirective
		var tagDirectives []event.TagDirective
		startMark := tok.StartMark
		if err := p.processDirectives(&versionDirective, &tagDirectives); err != nil {
			return nil, err
		}
		tok, err = p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Type != event.DocumentStartToken {
			return nil, newParserError("did not find expected <document start>", tok.StartMark)
		}
		p.pushState(stateDocumentEnd)
		p.state = stateDocumentContent
		ev := &event.Event{
			Type:             event.DocumentStartEvent,
			StartMark:        startMark,
			EndMark:          tok.EndMark,
			VersionDirective: versionDirective,
			TagDirectives:    tagDirectives,
		}
		if err := p.skip(); err != nil {
			return nil, err
		}
		return ev, nil
	}

	p.state = stateEnd
	p.streamEndProduced = true
	ev := &event.Event{Type: event.StreamEndEvent, StartMark: tok.StartMark, EndMark: tok.EndMark}
	if err := p.skip(); err != nil {
		return nil, err
	}
	return ev, nil
}

func (p *Parser) parseDocumentContent() (*event.Event, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Type == event.VersionDirectiveToken || tok.Type == event.TagDirectiveToken ||
		tok.Type == event.DocumentStartToken || tok.Type == event.DocumentEndToken ||
		tok.Type == event.StreamEndToken {
		p.state = p.popState()
		return processEmptyScalar(tok.StartMark), nil
	}
	return p.parseNode(true, false)
}

func (p *Parser) parseDocumentEnd() (*event.Event, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	startMark := tok.StartMark
	endMark := tok.StartMark

	implicit := true
	if tok.Type == event.DocumentEndToken {
		endMark = tok.EndMark
		if err := p.skip(); err != nil {
			return nil, err
		}
		implicit = false
	}

	p.tagDirectives = p.tagDirectives[:0]
	p.state = stateDocumentStart
	return &event.Event{Type: event.DocumentEndEvent, StartMark: startMark, EndMark: endMark, Implicit: implicit}, nil
}

// processDirectives consumes %YAML/%TAG directives, validating version
// compatibility and registering handles, then appends the two defaults
// that are always in scope.
func (p *Parser) processDirectives(versionOut **event.VersionDirective, tagsOut *[]event.TagDirective) error {
	var version *event.VersionDirective
	var tags []event.TagDirective

	tok, err := p.peek()
	if err != nil {
		return err
	}

	for tok.Type == event.VersionDirectiveToken || tok.Type == event.TagDirectiveToken {
		if tok.Type == event.VersionDirectiveToken {
			if version != nil {
				return newParserError("found duplicate %YAML directive", tok.StartMark)
			}
			if tok.Major != 1 || tok.Minor != 1 {
				return newParserError("found incompatible YAML document", tok.StartMark)
			}
			version = &event.VersionDirective{Major: tok.Major, Minor: tok.Minor}
		} else {
			value := event.TagDirective{Handle: tok.Value, Prefix: tok.Prefix}
			p.tagDirectives, err = appendTagDirective(p.tagDirectives, value, false, tok.StartMark)
			if err != nil {
				return err
			}
			tags = append(tags, value)
		}
		if err := p.skip(); err != nil {
			return err
		}
		tok, err = p.peek()
		if err != nil {
			return err
		}
	}

	for _, d := range event.DefaultTagDirectives {
		p.tagDirectives, err = appendTagDirective(p.tagDirectives, d, true, tok.StartMark)
		if err != nil {
			return err
		}
	}

	if versionOut != nil {
		*versionOut = version
	}
	if tagsOut != nil {
		*tagsOut = tags
	}
	return nil
}
