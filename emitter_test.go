package yaml_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	yaml "github.com/ycollier/yamlstream"
)

func emitAll(t *testing.T, events []*yaml.Event) string {
	t.Helper()
	var buf bytes.Buffer
	e := yaml.NewEmitter(&buf)
	for _, ev := range events {
		require.NoError(t, e.Emit(ev))
	}
	require.NoError(t, e.Flush())
	return buf.String()
}

func TestEmitBlockMapping(t *testing.T) {
	events := []*yaml.Event{
		yaml.NewStreamStartEvent(yaml.UTF8Encoding),
		yaml.NewDocumentStartEvent(nil, nil, true),
		yaml.NewMappingStartEvent(nil, nil, true, yaml.BlockMappingStyle),
		yaml.NewScalarEvent(nil, nil, []byte("a"), true, false, yaml.PlainScalarStyle),
		yaml.NewScalarEvent(nil, nil, []byte("1"), true, false, yaml.PlainScalarStyle),
		yaml.NewMappingEndEvent(),
		yaml.NewDocumentEndEvent(true),
		yaml.NewStreamEndEvent(),
	}
	out := emitAll(t, events)
	require.Contains(t, out, "a:")
	require.Contains(t, out, "1")
	require.True(t, strings.HasSuffix(out, "\n"))
}

func TestEmitFlowSequence(t *testing.T) {
	events := []*yaml.Event{
		yaml.NewStreamStartEvent(yaml.UTF8Encoding),
		yaml.NewDocumentStartEvent(nil, nil, true),
		yaml.NewSequenceStartEvent(nil, nil, true, yaml.FlowSequenceStyle),
		yaml.NewScalarEvent(nil, nil, []byte("1"), true, false, yaml.PlainScalarStyle),
		yaml.NewScalarEvent(nil, nil, []byte("2"), true, false, yaml.PlainScalarStyle),
		yaml.NewSequenceEndEvent(),
		yaml.NewDocumentEndEvent(true),
		yaml.NewStreamEndEvent(),
	}
	out := emitAll(t, events)
	require.True(t, strings.HasPrefix(out, "["))
	require.Contains(t, out, "1")
	require.Contains(t, out, "2")
	require.True(t, strings.Contains(out, "]"))
}

func TestEmitQuotedImplicitScalarIsSingleQuoted(t *testing.T) {
	events := []*yaml.Event{
		yaml.NewStreamStartEvent(yaml.UTF8Encoding),
		yaml.NewDocumentStartEvent(nil, nil, true),
		yaml.NewScalarEvent(nil, nil, []byte("true"), false, true, yaml.AnyScalarStyle),
		yaml.NewDocumentEndEvent(true),
		yaml.NewStreamEndEvent(),
	}
	out := emitAll(t, events)
	require.Contains(t, out, "'true'")
}

func TestEmitPoisonsOnInvalidEventOrder(t *testing.T) {
	var buf bytes.Buffer
	e := yaml.NewEmitter(&buf)
	require.Error(t, e.Emit(yaml.NewMappingEndEvent()))
	require.Error(t, e.Emit(yaml.NewStreamStartEvent(yaml.UTF8Encoding)))
}

func TestEmitNestedBlockSequenceUnderMappingKey(t *testing.T) {
	events := []*yaml.Event{
		yaml.NewStreamStartEvent(yaml.UTF8Encoding),
		yaml.NewDocumentStartEvent(nil, nil, true),
		yaml.NewMappingStartEvent(nil, nil, true, yaml.BlockMappingStyle),
		yaml.NewScalarEvent(nil, nil, []byte("a"), true, false, yaml.PlainScalarStyle),
		yaml.NewSequenceStartEvent(nil, nil, true, yaml.BlockSequenceStyle),
		yaml.NewScalarEvent(nil, nil, []byte("x"), true, false, yaml.PlainScalarStyle),
		yaml.NewSequenceEndEvent(),
		yaml.NewMappingEndEvent(),
		yaml.NewDocumentEndEvent(true),
		yaml.NewStreamEndEvent(),
	}
	out := emitAll(t, events)
	require.Contains(t, out, "a:\n")
	require.Contains(t, out, "- x\n")
	require.True(t, strings.HasPrefix(out, "a:\n"))
}
