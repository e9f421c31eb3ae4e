// Package emitter implements the event-to-byte pipeline stage: it
// accumulates just enough lookahead to decide block vs. flow layout,
// picks a scalar style consistent with its content, and drives the
// low-level character writers that produce indentation, indicators,
// and the four scalar quoting styles.
package emitter

import (
	"io"

	"github.com/ycollier/yamlstream/internal/event"
	"github.com/ycollier/yamlstream/internal/writer"
	"github.com/ycollier/yamlstream/internal/yerrors"
)

type emitterState int8

const (
	emitStreamStartState emitterState = iota

	emitFirstDocumentStartState
	emitDocumentStartState
	emitDocumentContentState
	emitDocumentEndState
	emitFlowSequenceFirstItemState
	emitFlowSequenceItemState
	emitFlowMappingFirstKeyState
	emitFlowMappingKeyState
	emitFlowMappingSimpleValueState
	emitFlowMappingValueState
	emitBlockSequenceFirstItemState
	emitBlockSequenceItemState
	emitBlockMappingFirstKeyState
	emitBlockMappingKeyState
	emitBlockMappingSimpleValueState
	emitBlockMappingValueState
	emitEndState
)

// Emitter turns an event stream into YAML text, buffering just enough
// lookahead (via eventsQueue) to know whether a collection should be
// rendered empty-flow (e.g. "[]") before committing to block layout.
type Emitter struct {
	W *writer.Writer

	indent int
	width  int

	state  emitterState
	states []emitterState

	eventsQueue []event.Event
	eventsHead  int

	indentStack []int

	tagDirectives []event.TagDirective

	indentLevel int
	flowLevel   int

	rootContext      bool
	simpleKeyContext bool

	line              int
	column            int
	lastCharWhitepace bool
	lastCharIndent    bool
	openEnded         bool

	anchorData struct {
		Anchor []byte
		Alias  bool
	}

	tagData struct {
		Handle []byte
		Suffix []byte
	}

	scalarData struct {
		value               []byte
		multiline           bool
		flowPlainAllowed    bool
		blockPlainAllowed   bool
		singleQuotedAllowed bool
		blockAllowed        bool
		style               event.ScalarStyle
	}

	poisoned bool
}

// New creates an Emitter writing YAML text to w, with the module's
// default indent of 2 spaces.
func New(w io.Writer) *Emitter {
	return &Emitter{
		W:      writer.New(w),
		states: make([]emitterState, 0, 16),
		width:  80,
		indent: 2,
	}
}

func newEmitterError(problem string) error {
	return yerrors.New(yerrors.Emitter, problem)
}

// SetIndent overrides the default indent width; at the first
// STREAM-START event a value outside [2,9] is replaced by the default
// of 2.
func (e *Emitter) SetIndent(spaces int) {
	if spaces < 0 {
		panic("yaml: cannot indent to a negative number of spaces")
	}
	e.indent = spaces
}

// SetEncoding selects the output byte encoding. Must be called before
// the first Emit.
func (e *Emitter) SetEncoding(enc event.Encoding) {
	e.W.SetEncoding(enc)
}

// Emit feeds one event into the emitter. Events are queued until
// enough lookahead has accumulated to resolve styling decisions, then
// drained through the state machine. STREAM-END triggers an automatic
// Flush of any buffered output.
func (e *Emitter) Emit(ev *event.Event) error {
	if e.poisoned {
		return newEmitterError("emitter is poisoned after a previous error")
	}
	e.eventsQueue = append(e.eventsQueue, *ev)
	for e.readyToEmit() {
		cur := &e.eventsQueue[e.eventsHead]
		if err := analyzeEvent(e, cur); err != nil {
			e.poisoned = true
			return err
		}
		if err := stateMachine(e, cur); err != nil {
			e.poisoned = true
			return err
		}
		e.eventsHead++
	}
	if ev.Type == event.StreamEndEvent {
		return e.Flush()
	}
	return nil
}

// Flush drains any buffered output bytes to the underlying io.Writer.
func (e *Emitter) Flush() error {
	return e.W.Flush()
}

func (e *Emitter) put(value byte) error {
	if err := e.W.WriteByte(value); err != nil {
		return err
	}
	e.column++
	return nil
}

func (e *Emitter) putBreak() error {
	if err := e.W.WriteByte('\n'); err != nil {
		return err
	}
	e.column = 0
	e.line++
	e.lastCharIndent = true
	return nil
}

func (e *Emitter) write(b []byte) (int, error) {
	n, err := e.W.Write(b)
	if err != nil {
		return 0, err
	}
	e.column++
	return n, nil
}

func (e *Emitter) writeAll(b []byte) error {
	e.column += len([]rune(string(b)))
	return e.W.WriteAll(b)
}

func (e *Emitter) writeBreak(b []byte) (int, error) {
	if b[0] == '\n' {
		if err := e.putBreak(); err != nil {
			return 0, err
		}
		return 1, nil
	}
	n, err := e.write(b)
	if err != nil {
		return 0, err
	}
	e.column = 0
	e.line++
	e.lastCharIndent = true
	return n, nil
}

// readyToEmit reports whether enough lookahead has accumulated to emit
// the event at eventsHead: a DOCUMENT-START waits for one more event, a
// SEQUENCE-START for two and a MAPPING-START for three (fewer if the
// node closes sooner), so checkEmptySequence/checkEmptyMapping and the
// simple-key check can look past the start event.
func (e *Emitter) readyToEmit() bool {
	if e.eventsHead == len(e.eventsQueue) {
		return false
	}
	var accumulate int
	switch e.eventsQueue[e.eventsHead].Type {
	case event.DocumentStartEvent:
		accumulate = 1
	case event.SequenceStartEvent:
		accumulate = 2
	case event.MappingStartEvent:
		accumulate = 3
	default:
		return true
	}
	if len(e.eventsQueue)-e.eventsHead > accumulate {
		return true
	}
	var level int
	for i := e.eventsHead; i < len(e.eventsQueue); i++ {
		switch e.eventsQueue[i].Type {
		case event.StreamStartEvent, event.DocumentStartEvent, event.SequenceStartEvent, event.MappingStartEvent:
			level++
		case event.StreamEndEvent, event.DocumentEndEvent, event.SequenceEndEvent, event.MappingEndEvent:
			level--
		}
		if level == 0 {
			return true
		}
	}
	return false
}

func (e *Emitter) increaseIndent(flow, indentless bool) {
	e.indentStack = append(e.indentStack, e.indentLevel)
	if e.indentLevel < 0 {
		if flow {
			e.indentLevel = e.indent
		} else {
			e.indentLevel = 0
		}
		return
	}
	if !indentless {
		if e.states[len(e.states)-1] == emitBlockSequenceItemState {
			e.indentLevel += 2
		} else {
			e.indentLevel = e.indent * ((e.indentLevel + e.indent) / e.indent)
		}
	}
}

func appendTagDirective(e *Emitter, value *event.TagDirective, allowDuplicates bool) error {
	for i := range e.tagDirectives {
		if string(value.Handle) == string(e.tagDirectives[i].Handle) {
			if allowDuplicates {
				return nil
			}
			return newEmitterError("duplicate %TAG directive")
		}
	}
	tagCopy := event.TagDirective{
		Handle: append([]byte(nil), value.Handle...),
		Prefix: append([]byte(nil), value.Prefix...),
	}
	e.tagDirectives = append(e.tagDirectives, tagCopy)
	return nil
}
