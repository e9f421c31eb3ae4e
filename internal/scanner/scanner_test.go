package scanner_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ycollier/yamlstream/internal/event"
	"github.com/ycollier/yamlstream/internal/scanner"
	"github.com/ycollier/yamlstream/internal/yerrors"
)

func tokenTypes(t *testing.T, src string) []event.TokenType {
	t.Helper()
	s := scanner.New(strings.NewReader(src))
	var types []event.TokenType
	for {
		tok, err := s.Next()
		require.NoError(t, err)
		types = append(types, tok.Type)
		if tok.Type == event.StreamEndToken {
			break
		}
	}
	return types
}

func TestScanSimpleBlockMapping(t *testing.T) {
	got := tokenTypes(t, "a: 1\nb: 2\n")
	require.Equal(t, []event.TokenType{
		event.StreamStartToken,
		event.BlockMappingStartToken,
		event.KeyToken, event.ScalarToken,
		event.ValueToken, event.ScalarToken,
		event.KeyToken, event.ScalarToken,
		event.ValueToken, event.ScalarToken,
		event.BlockEndToken,
		event.StreamEndToken,
	}, got)
}

func TestScanFlowSequence(t *testing.T) {
	got := tokenTypes(t, "[1, 2, 3]\n")
	require.Equal(t, []event.TokenType{
		event.StreamStartToken,
		event.FlowSequenceStartToken,
		event.ScalarToken,
		event.FlowEntryToken, event.ScalarToken,
		event.FlowEntryToken, event.ScalarToken,
		event.FlowSequenceEndToken,
		event.StreamEndToken,
	}, got)
}

func TestScanAnchorAliasAndTag(t *testing.T) {
	got := tokenTypes(t, "a: &x !!str hi\nb: *x\n")
	require.Contains(t, got, event.AnchorToken)
	require.Contains(t, got, event.TagToken)
	require.Contains(t, got, event.AliasToken)
}

func TestPeekDoesNotConsume(t *testing.T) {
	s := scanner.New(strings.NewReader("x: 1\n"))
	first, err := s.Peek()
	require.NoError(t, err)
	require.Equal(t, event.StreamStartToken, first.Type)
	second, err := s.Peek()
	require.NoError(t, err)
	require.Equal(t, event.StreamStartToken, second.Type)
}

func TestScanLeadingTabIndentationIsAnError(t *testing.T) {
	s := scanner.New(strings.NewReader("\t- x\n"))
	var lastErr error
	for {
		tok, err := s.Next()
		if err != nil {
			lastErr = err
			break
		}
		if tok.Type == event.StreamEndToken {
			break
		}
	}
	require.Error(t, lastErr)

	yerr, ok := lastErr.(*yerrors.Error)
	require.True(t, ok, "expected *yerrors.Error, got %T", lastErr)
	require.Equal(t, "found character that cannot start any token", yerr.Problem)
	require.Equal(t, event.Position{Index: 0, Line: 0, Column: 0}, yerr.Mark)
}

func TestScanUnterminatedQuotedScalarIsAnError(t *testing.T) {
	s := scanner.New(strings.NewReader("a: 'never closes\n"))
	var lastErr error
	for {
		tok, err := s.Next()
		if err != nil {
			lastErr = err
			break
		}
		if tok.Type == event.StreamEndToken {
			break
		}
	}
	require.Error(t, lastErr)
}
