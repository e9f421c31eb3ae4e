package yaml_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	yaml "github.com/ycollier/yamlstream"
)

// semanticEvents strips position information so two event sequences can
// be compared for grammar/content equivalence regardless of where in
// the source text they occurred.
func semanticEvents(events []yaml.Event) []yaml.Event {
	out := make([]yaml.Event, len(events))
	for i, e := range events {
		e.StartMark = yaml.Position{}
		e.EndMark = yaml.Position{}
		out[i] = e
	}
	return out
}

func reEmit(t *testing.T, events []yaml.Event) []yaml.Event {
	t.Helper()
	var buf bytes.Buffer
	e := yaml.NewEmitter(&buf)
	for i := range events {
		require.NoError(t, e.Emit(&events[i]))
	}
	require.NoError(t, e.Flush())
	return parseAll(t, buf.String())
}

func TestRoundTripPreservesEventGrammar(t *testing.T) {
	docs := []string{
		"a: 1\nb: 2\n",
		"[1, 2, 3]\n",
		"- &x foo\n- *x\n",
		"top:\n  nested: value\n  list:\n    - one\n    - two\n",
		"{a: 1, b: [2, 3]}\n",
	}
	for _, src := range docs {
		original := parseAll(t, src)
		roundTripped := reEmit(t, original)

		require.Equal(t, eventTypes(original), eventTypes(roundTripped), "source: %q", src)

		diff := cmp.Diff(
			semanticEvents(original), semanticEvents(roundTripped),
			cmpopts.IgnoreFields(yaml.Event{}, "VersionDirective", "TagDirectives"),
		)
		require.Empty(t, diff, "source: %q", src)
	}
}

func TestRoundTripScalarValuesSurvive(t *testing.T) {
	src := "plain: hello world\nquoted: \"q1\"\nsingle: 'q2'\n"
	original := parseAll(t, src)
	roundTripped := reEmit(t, original)

	var originalValues, roundTrippedValues []string
	for _, e := range original {
		if e.Type == yaml.ScalarEventT {
			originalValues = append(originalValues, string(e.Value))
		}
	}
	for _, e := range roundTripped {
		if e.Type == yaml.ScalarEventT {
			roundTrippedValues = append(roundTrippedValues, string(e.Value))
		}
	}
	require.Equal(t, originalValues, roundTrippedValues)
}

func TestRoundTripThroughIOWriterAndReader(t *testing.T) {
	src := "name: example\ntags:\n  - one\n  - two\n"
	p := yaml.NewParser(strings.NewReader(src))

	var buf bytes.Buffer
	e := yaml.NewEmitter(&buf)
	for {
		ev, err := p.Parse()
		require.NoError(t, err)
		require.NoError(t, e.Emit(ev))
		if ev.Type == yaml.StreamEndEventT {
			break
		}
	}
	require.NoError(t, e.Flush())
	require.NotEmpty(t, buf.String())

	reparsed := parseAll(t, buf.String())
	require.Equal(t, eventTypes(parseAll(t, src)), eventTypes(reparsed))
}
