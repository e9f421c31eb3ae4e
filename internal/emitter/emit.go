package emitter

import (
	"github.com/ycollier/yamlstream/internal/event"
)

// emitDocumentStart expects DOCUMENT-START or STREAM-END.
func emitDocumentStart(e *Emitter, ev *event.Event, first bool) error {
	if ev.Type == event.DocumentStartEvent {
		return emitDocumentStartEvent(e, ev, first)
	}
	if ev.Type == event.StreamEndEvent {
		if e.openEnded {
			if err := writeIndicator(e, []byte("..."), true, false, false); err != nil {
				return err
			}
			if err := writeIndent(e); err != nil {
				return err
			}
		}
		e.state = emitEndState
		return nil
	}
	return newEmitterError("expected DOCUMENT-START or STREAM-END")
}

func emitDocumentStartEvent(e *Emitter, ev *event.Event, first bool) error {
	if ev.VersionDirective != nil {
		if err := analyzeVersionDirective(ev.VersionDirective); err != nil {
			return err
		}
	}

	for i := range ev.TagDirectives {
		td := &ev.TagDirectives[i]
		if err := analyzeTagDirective(td); err != nil {
			return err
		}
		if err := appendTagDirective(e, td, false); err != nil {
			return err
		}
	}
	for i := range event.DefaultTagDirectives {
		td := &event.DefaultTagDirectives[i]
		if err := appendTagDirective(e, td, true); err != nil {
			return err
		}
	}

	implicit := ev.Implicit
	if !first {
		implicit = false
	}

	if e.openEnded && (ev.VersionDirective != nil || len(ev.TagDirectives) > 0) {
		if err := writeIndicator(e, []byte("..."), true, false, false); err != nil {
			return err
		}
		if err := writeIndent(e); err != nil {
			return err
		}
	}

	if ev.VersionDirective != nil {
		implicit = false
		if err := writeIndicator(e, []byte("%YAML 1.1"), true, false, false); err != nil {
			return err
		}
		if err := writeIndent(e); err != nil {
			return err
		}
	}

	if len(ev.TagDirectives) > 0 {
		implicit = false
		for i := range ev.TagDirectives {
			td := &ev.TagDirectives[i]
			if err := writeIndicator(e, []byte("%TAG"), true, false, false); err != nil {
				return err
			}
			if err := writeTagHandle(e, td.Handle); err != nil {
				return err
			}
			if err := writeTagContent(e, td.Prefix, true); err != nil {
				return err
			}
			if err := writeIndent(e); err != nil {
				return err
			}
		}
	}

	if !implicit {
		if err := writeIndent(e); err != nil {
			return err
		}
		if err := writeIndicator(e, []byte("---"), true, false, false); err != nil {
			return err
		}
		if err := writeIndent(e); err != nil {
			return err
		}
	}

	e.state = emitDocumentContentState
	return nil
}

// selectScalarStyle narrows event.AnyScalarStyle (or a style the
// content can't safely carry) down to one concrete style.
func selectScalarStyle(e *Emitter, ev *event.Event) error {
	noTag := len(e.tagData.Handle) == 0 && len(e.tagData.Suffix) == 0
	if noTag && !ev.Implicit && !ev.QuotedImplicit {
		return newEmitterError("neither tag nor implicit flags are specified")
	}

	style := ev.ScalarStyleValue()
	if style == event.AnyScalarStyle {
		style = event.PlainScalarStyle
	}
	if e.simpleKeyContext && e.scalarData.multiline {
		style = event.DoubleQuotedStyle
	}

	if style == event.PlainScalarStyle {
		if e.flowLevel > 0 && !e.scalarData.flowPlainAllowed ||
			e.flowLevel == 0 && !e.scalarData.blockPlainAllowed {
			style = event.SingleQuotedStyle
		}
		if len(e.scalarData.value) == 0 && (e.flowLevel > 0 || e.simpleKeyContext) {
			style = event.SingleQuotedStyle
		}
		if noTag && !ev.Implicit {
			style = event.SingleQuotedStyle
		}
	}
	if style == event.SingleQuotedStyle {
		if !e.scalarData.singleQuotedAllowed {
			style = event.DoubleQuotedStyle
		}
	}
	if style == event.LiteralScalarStyle || style == event.FoldedScalarStyle {
		if !e.scalarData.blockAllowed || e.flowLevel > 0 || e.simpleKeyContext {
			style = event.DoubleQuotedStyle
		}
	}

	if noTag && !ev.QuotedImplicit && style != event.PlainScalarStyle {
		e.tagData.Handle = []byte{'!'}
	}
	e.scalarData.style = style
	return nil
}

func stateMachine(e *Emitter, ev *event.Event) error {
	switch e.state {
	case emitStreamStartState:
		return emitStreamStart(e, ev)
	case emitFirstDocumentStartState:
		return emitDocumentStart(e, ev, true)
	case emitDocumentStartState:
		return emitDocumentStart(e, ev, false)
	case emitDocumentContentState:
		return emitDocumentContent(e, ev)
	case emitDocumentEndState:
		return emitDocumentEnd(e, ev)
	case emitFlowSequenceFirstItemState:
		return emitFlowSequenceItem(e, ev, true)
	case emitFlowSequenceItemState:
		return emitFlowSequenceItem(e, ev, false)
	case emitFlowMappingFirstKeyState:
		return emitFlowMappingKey(e, ev, true)
	case emitFlowMappingKeyState:
		return emitFlowMappingKey(e, ev, false)
	case emitFlowMappingSimpleValueState:
		return emitFlowMappingValue(e, ev, true)
	case emitFlowMappingValueState:
		return emitFlowMappingValue(e, ev, false)
	case emitBlockSequenceFirstItemState:
		return emitBlockSequenceItem(e, ev, true)
	case emitBlockSequenceItemState:
		return emitBlockSequenceItem(e, ev, false)
	case emitBlockMappingFirstKeyState:
		return emitBlockMappingKey(e, ev, true)
	case emitBlockMappingKeyState:
		return emitBlockMappingKey(e, ev, false)
	case emitBlockMappingSimpleValueState:
		return emitBlockMappingValue(e, ev, true)
	case emitBlockMappingValueState:
		return emitBlockMappingValue(e, ev, false)
	case emitEndState:
		return newEmitterError("expected nothing after STREAM-END")
	}
	panic("emitter: invalid state")
}

// emitStreamStart expects STREAM-START.
func emitStreamStart(e *Emitter, ev *event.Event) error {
	if ev.Type != event.StreamStartEvent {
		return newEmitterError("expected STREAM-START")
	}
	if e.W.Encoding == event.AnyEncoding {
		enc := ev.Encoding
		if enc == event.AnyEncoding {
			enc = event.UTF8Encoding
		}
		e.W.SetEncoding(enc)
	}
	if e.indent < 2 || e.indent > 9 {
		e.indent = 2
	}
	if e.width >= 0 && e.width <= e.indent*2 {
		e.width = 80
	}
	if e.width < 0 {
		e.width = 1<<31 - 1
	}

	e.indentLevel = -1
	e.line = 0
	e.column = 0
	e.lastCharWhitepace = true
	e.lastCharIndent = true

	e.state = emitFirstDocumentStartState
	return nil
}

// emitDocumentContent expects the root node.
func emitDocumentContent(e *Emitter, ev *event.Event) error {
	e.states = append(e.states, emitDocumentEndState)
	return emitNode(e, ev, true, false)
}

// emitDocumentEnd expects DOCUMENT-END.
func emitDocumentEnd(e *Emitter, ev *event.Event) error {
	if ev.Type != event.DocumentEndEvent {
		return newEmitterError("expected DOCUMENT-END")
	}
	if err := writeIndent(e); err != nil {
		return err
	}
	if !ev.Implicit {
		if err := writeIndicator(e, []byte("..."), true, false, false); err != nil {
			return err
		}
		if err := writeIndent(e); err != nil {
			return err
		}
	}
	e.state = emitDocumentStartState
	e.tagDirectives = e.tagDirectives[:0]
	return nil
}

// emitFlowSequenceItem expects a flow item node.
func emitFlowSequenceItem(e *Emitter, ev *event.Event, first bool) error {
	if first {
		if err := writeIndicator(e, []byte{'['}, true, true, false); err != nil {
			return err
		}
		e.increaseIndent(true, false)
		e.flowLevel++
	}

	if ev.Type == event.SequenceEndEvent {
		e.flowLevel--
		e.indentLevel = e.indentStack[len(e.indentStack)-1]
		e.indentStack = e.indentStack[:len(e.indentStack)-1]
		if e.column == 0 {
			if err := writeIndent(e); err != nil {
				return err
			}
		}
		if err := writeIndicator(e, []byte{']'}, false, false, false); err != nil {
			return err
		}
		e.state = e.states[len(e.states)-1]
		e.states = e.states[:len(e.states)-1]
		return nil
	}

	if !first {
		if err := writeIndicator(e, []byte{','}, false, false, false); err != nil {
			return err
		}
	}
	if e.column == 0 || e.column > e.width {
		if err := writeIndent(e); err != nil {
			return err
		}
	}
	e.states = append(e.states, emitFlowSequenceItemState)
	return emitNode(e, ev, false, false)
}

// emitFlowMappingKey expects a flow key node.
func emitFlowMappingKey(e *Emitter, ev *event.Event, first bool) error {
	if first {
		if err := writeIndicator(e, []byte{'{'}, true, true, false); err != nil {
			return err
		}
		e.increaseIndent(true, false)
		e.flowLevel++
	}

	if ev.Type == event.MappingEndEvent {
		e.flowLevel--
		e.indentLevel = e.indentStack[len(e.indentStack)-1]
		e.indentStack = e.indentStack[:len(e.indentStack)-1]
		if err := writeIndicator(e, []byte{'}'}, false, false, false); err != nil {
			return err
		}
		e.state = e.states[len(e.states)-1]
		e.states = e.states[:len(e.states)-1]
		return nil
	}

	if !first {
		if err := writeIndicator(e, []byte{','}, false, false, false); err != nil {
			return err
		}
	}
	if e.column == 0 || e.column > e.width {
		if err := writeIndent(e); err != nil {
			return err
		}
	}

	if checkSimpleKey(e) {
		e.states = append(e.states, emitFlowMappingSimpleValueState)
		return emitNode(e, ev, false, true)
	}
	if err := writeIndicator(e, []byte{'?'}, true, false, false); err != nil {
		return err
	}
	e.states = append(e.states, emitFlowMappingValueState)
	return emitNode(e, ev, false, false)
}

// emitFlowMappingValue expects a flow value node.
func emitFlowMappingValue(e *Emitter, ev *event.Event, simple bool) error {
	if simple {
		if err := writeIndicator(e, []byte{':'}, false, false, false); err != nil {
			return err
		}
	} else {
		if e.column > e.width {
			if err := writeIndent(e); err != nil {
				return err
			}
		}
		if err := writeIndicator(e, []byte{':'}, true, false, false); err != nil {
			return err
		}
	}
	e.states = append(e.states, emitFlowMappingKeyState)
	return emitNode(e, ev, false, false)
}

// emitBlockSequenceItem expects a block item node.
func emitBlockSequenceItem(e *Emitter, ev *event.Event, first bool) error {
	if first {
		e.increaseIndent(false, false)
	}
	if ev.Type == event.SequenceEndEvent {
		e.indentLevel = e.indentStack[len(e.indentStack)-1]
		e.indentStack = e.indentStack[:len(e.indentStack)-1]
		e.state = e.states[len(e.states)-1]
		e.states = e.states[:len(e.states)-1]
		return nil
	}
	if err := writeIndent(e); err != nil {
		return err
	}
	if err := writeIndicator(e, []byte{'-'}, true, false, true); err != nil {
		return err
	}
	e.states = append(e.states, emitBlockSequenceItemState)
	return emitNode(e, ev, false, false)
}

// emitBlockMappingKey expects a block key node.
func emitBlockMappingKey(e *Emitter, ev *event.Event, first bool) error {
	if first {
		e.increaseIndent(false, false)
	}
	if ev.Type == event.MappingEndEvent {
		e.indentLevel = e.indentStack[len(e.indentStack)-1]
		e.indentStack = e.indentStack[:len(e.indentStack)-1]
		e.state = e.states[len(e.states)-1]
		e.states = e.states[:len(e.states)-1]
		return nil
	}
	if err := writeIndent(e); err != nil {
		return err
	}
	if checkSimpleKey(e) {
		e.states = append(e.states, emitBlockMappingSimpleValueState)
		return emitNode(e, ev, false, true)
	}
	if err := writeIndicator(e, []byte{'?'}, true, false, true); err != nil {
		return err
	}
	e.states = append(e.states, emitBlockMappingValueState)
	return emitNode(e, ev, false, false)
}

// emitBlockMappingValue expects a block value node.
func emitBlockMappingValue(e *Emitter, ev *event.Event, simple bool) error {
	if simple {
		if err := writeIndicator(e, []byte{':'}, false, false, false); err != nil {
			return err
		}
	} else {
		if err := writeIndent(e); err != nil {
			return err
		}
		if err := writeIndicator(e, []byte{':'}, true, false, true); err != nil {
			return err
		}
	}
	e.states = append(e.states, emitBlockMappingKeyState)
	return emitNode(e, ev, false, false)
}

// emitNode expects a node: ALIAS, SCALAR, SEQUENCE-START, or
// MAPPING-START.
func emitNode(e *Emitter, ev *event.Event, root, simpleKey bool) error {
	e.rootContext = root
	e.simpleKeyContext = simpleKey

	switch ev.Type {
	case event.AliasEvent:
		return emitAlias(e, ev)
	case event.ScalarEvent:
		return emitScalar(e, ev)
	case event.SequenceStartEvent:
		return emitSequenceStart(e, ev)
	case event.MappingStartEvent:
		return emitMappingStart(e, ev)
	default:
		return newEmitterError("expected SCALAR, SEQUENCE-START, MAPPING-START, or ALIAS")
	}
}

// emitAlias expects ALIAS.
func emitAlias(e *Emitter, _ *event.Event) error {
	if err := processAnchor(e); err != nil {
		return err
	}
	e.state = e.states[len(e.states)-1]
	e.states = e.states[:len(e.states)-1]
	return nil
}

// emitScalar expects SCALAR.
func emitScalar(e *Emitter, ev *event.Event) error {
	if err := selectScalarStyle(e, ev); err != nil {
		return err
	}
	if err := processAnchor(e); err != nil {
		return err
	}
	if err := processTag(e); err != nil {
		return err
	}
	e.increaseIndent(true, false)
	if err := processScalar(e); err != nil {
		return err
	}
	e.indentLevel = e.indentStack[len(e.indentStack)-1]
	e.indentStack = e.indentStack[:len(e.indentStack)-1]
	e.state = e.states[len(e.states)-1]
	e.states = e.states[:len(e.states)-1]
	return nil
}

// emitSequenceStart expects SEQUENCE-START.
func emitSequenceStart(e *Emitter, ev *event.Event) error {
	if err := processAnchor(e); err != nil {
		return err
	}
	if err := processTag(e); err != nil {
		return err
	}
	if e.flowLevel > 0 || ev.SequenceStyleValue() == event.FlowSequenceStyle || checkEmptySequence(e) {
		e.state = emitFlowSequenceFirstItemState
	} else {
		e.state = emitBlockSequenceFirstItemState
	}
	return nil
}

// emitMappingStart expects MAPPING-START.
func emitMappingStart(e *Emitter, ev *event.Event) error {
	if err := processAnchor(e); err != nil {
		return err
	}
	if err := processTag(e); err != nil {
		return err
	}
	if e.flowLevel > 0 || ev.MappingStyleValue() == event.FlowMappingStyle || checkEmptyMapping(e) {
		e.state = emitFlowMappingFirstKeyState
	} else {
		e.state = emitBlockMappingFirstKeyState
	}
	return nil
}
