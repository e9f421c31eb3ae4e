package yaml_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	yaml "github.com/ycollier/yamlstream"
)

func parseAll(t *testing.T, src string) []yaml.Event {
	t.Helper()
	p := yaml.NewParser(strings.NewReader(src))
	var events []yaml.Event
	for {
		ev, err := p.Parse()
		require.NoError(t, err)
		events = append(events, *ev)
		if ev.Type == yaml.StreamEndEventT {
			break
		}
	}
	return events
}

func eventTypes(events []yaml.Event) []yaml.EventType {
	types := make([]yaml.EventType, len(events))
	for i, e := range events {
		types[i] = e.Type
	}
	return types
}

func TestParseBlockMapping(t *testing.T) {
	events := parseAll(t, "a: 1\nb: 2\n")
	require.Equal(t, []yaml.EventType{
		yaml.StreamStartEventT,
		yaml.DocumentStartEventT,
		yaml.MappingStartEventT,
		yaml.ScalarEventT, yaml.ScalarEventT,
		yaml.ScalarEventT, yaml.ScalarEventT,
		yaml.MappingEndEventT,
		yaml.DocumentEndEventT,
		yaml.StreamEndEventT,
	}, eventTypes(events))

	require.Equal(t, "a", string(events[3].Value))
	require.Equal(t, "1", string(events[4].Value))
	require.Equal(t, "b", string(events[5].Value))
	require.Equal(t, "2", string(events[6].Value))
}

func TestParseFlowSequence(t *testing.T) {
	events := parseAll(t, "[1, 2, 3]\n")
	require.Equal(t, []yaml.EventType{
		yaml.StreamStartEventT,
		yaml.DocumentStartEventT,
		yaml.SequenceStartEventT,
		yaml.ScalarEventT, yaml.ScalarEventT, yaml.ScalarEventT,
		yaml.SequenceEndEventT,
		yaml.DocumentEndEventT,
		yaml.StreamEndEventT,
	}, eventTypes(events))
	require.Equal(t, yaml.FlowSequenceStyle, events[2].SequenceStyleValue())
}

func TestParseAnchorAndAlias(t *testing.T) {
	events := parseAll(t, "- &x foo\n- *x\n")
	require.Equal(t, []yaml.EventType{
		yaml.StreamStartEventT,
		yaml.DocumentStartEventT,
		yaml.SequenceStartEventT,
		yaml.ScalarEventT,
		yaml.AliasEventT,
		yaml.SequenceEndEventT,
		yaml.DocumentEndEventT,
		yaml.StreamEndEventT,
	}, eventTypes(events))
	require.Equal(t, "x", string(events[3].Anchor))
	require.Equal(t, "x", string(events[4].Anchor))
}

func TestParseMultipleDocuments(t *testing.T) {
	events := parseAll(t, "---\na: 1\n---\nb: 2\n")
	var starts, ends int
	for _, e := range events {
		if e.Type == yaml.DocumentStartEventT {
			starts++
		}
		if e.Type == yaml.DocumentEndEventT {
			ends++
		}
	}
	require.Equal(t, 2, starts)
	require.Equal(t, 2, ends)
}

func TestParseSyntaxErrorPoisonsParser(t *testing.T) {
	p := yaml.NewParser(strings.NewReader("a: 'never closes\n"))
	var lastErr error
	for {
		ev, err := p.Parse()
		if err != nil {
			lastErr = err
			break
		}
		if ev.Type == yaml.StreamEndEventT {
			break
		}
	}
	require.Error(t, lastErr)

	_, err := p.Parse()
	require.Error(t, err)
}
