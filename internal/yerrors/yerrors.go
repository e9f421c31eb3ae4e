// Package yerrors defines the error taxonomy shared by every stage of
// the pipeline: a single Error type whose Kind field names the raising
// layer, so callers branch with errors.As and then on Kind. Messages
// render as "yaml: <kind>: <problem>", followed by " at line L, column
// C" when a mark is known and ", in <context> at ..." when a context is.
package yerrors

import (
	"fmt"

	"github.com/ycollier/yamlstream/internal/event"
)

// Kind identifies which layer raised an error, matching the taxonomy in
// spec.md §7. Composer and serializer kinds are not represented because
// that layer is out of this module's scope.
type Kind int8

const (
	Memory Kind = iota
	Reader
	Decoder
	Scanner
	Parser
	Writer
	Emitter
	Resolver
)

func (k Kind) String() string {
	switch k {
	case Memory:
		return "memory"
	case Reader:
		return "reader"
	case Decoder:
		return "decoder"
	case Scanner:
		return "scanner"
	case Parser:
		return "parser"
	case Writer:
		return "writer"
	case Emitter:
		return "emitter"
	case Resolver:
		return "resolver"
	default:
		return "error"
	}
}

// Error is the error type produced by every public entry point in the
// pipeline. Context/ContextMark are set for scanner/parser errors that
// have a "while parsing a block mapping"-style context distinct from the
// problem site itself.
type Error struct {
	Kind        Kind
	Problem     string
	Mark        event.Position
	HasMark     bool
	Context     string
	ContextMark event.Position
	HasContext  bool
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("yaml: %s: %s", e.Kind, e.Problem)
	if e.HasMark {
		msg = fmt.Sprintf("yaml: %s: %s at %s", e.Kind, e.Problem, e.Mark)
	}
	if e.HasContext {
		msg += fmt.Sprintf(", in %s at %s", e.Context, e.ContextMark)
	}
	return msg
}

// New builds a mark-less error of the given kind.
func New(kind Kind, problem string) error {
	return &Error{Kind: kind, Problem: problem}
}

// At builds a mark-bearing error of the given kind.
func At(kind Kind, problem string, mark event.Position) error {
	return &Error{Kind: kind, Problem: problem, Mark: mark, HasMark: true}
}

// WithContext builds a mark-and-context-bearing error, as scanner and
// parser errors commonly carry both the problem's own mark and the mark
// of the construct being parsed when the problem was found.
func WithContext(kind Kind, context string, contextMark event.Position, problem string, mark event.Position) error {
	return &Error{
		Kind:        kind,
		Problem:     problem,
		Mark:        mark,
		HasMark:     true,
		Context:     context,
		ContextMark: contextMark,
		HasContext:  true,
	}
}
