package yaml

import (
	"io"

	"github.com/ycollier/yamlstream/internal/emitter"
)

// Emitter turns a sequence of Events into YAML text written to an
// io.Writer. Create one with NewEmitter and call Emit for every event
// in the stream, in grammar order, ending with a STREAM-END event.
type Emitter struct {
	e *emitter.Emitter
}

// NewEmitter creates an Emitter writing YAML text to w, with the
// default 2-space indent.
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{e: emitter.New(w)}
}

// SetIndent overrides the indent width; once emitting starts, a value
// outside [2,9] is replaced by the default of 2.
func (e *Emitter) SetIndent(spaces int) {
	e.e.SetIndent(spaces)
}

// SetEncoding selects the output byte encoding. Must be called before
// the first Emit.
func (e *Emitter) SetEncoding(enc Encoding) {
	e.e.SetEncoding(enc)
}

// Emit feeds one event to the emitter.
func (e *Emitter) Emit(ev *Event) error {
	return e.e.Emit(ev)
}

// Flush drains any buffered output. Emit already calls this
// automatically after a STREAM-END event; Flush is for callers that
// want to force a partial drain mid-stream.
func (e *Emitter) Flush() error {
	return e.e.Flush()
}
