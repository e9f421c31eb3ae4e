package resolve_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ycollier/yamlstream/internal/resolve"
)

func TestStandardResolve(t *testing.T) {
	cases := []struct {
		value string
		tag   string
		ok    bool
	}{
		{"true", resolve.BoolTag, true},
		{"False", resolve.BoolTag, true},
		{"y", resolve.BoolTag, true},
		{"Y", resolve.BoolTag, true},
		{"yes", resolve.BoolTag, true},
		{"Yes", resolve.BoolTag, true},
		{"YES", resolve.BoolTag, true},
		{"n", resolve.BoolTag, true},
		{"no", resolve.BoolTag, true},
		{"No", resolve.BoolTag, true},
		{"NO", resolve.BoolTag, true},
		{"on", resolve.BoolTag, true},
		{"On", resolve.BoolTag, true},
		{"ON", resolve.BoolTag, true},
		{"off", resolve.BoolTag, true},
		{"Off", resolve.BoolTag, true},
		{"OFF", resolve.BoolTag, true},
		{"", resolve.NullTag, true},
		{"~", resolve.NullTag, true},
		{"null", resolve.NullTag, true},
		{".inf", resolve.FloatTag, true},
		{"-.Inf", resolve.FloatTag, true},
		{".nan", resolve.FloatTag, true},
		{"123", resolve.IntTag, true},
		{"-123", resolve.IntTag, true},
		{"0x1A", resolve.IntTag, true},
		{"0o17", resolve.IntTag, true},
		{"1_000", resolve.IntTag, true},
		{"3.14", resolve.FloatTag, true},
		{"1e10", resolve.FloatTag, true},
		{"2001-12-14", resolve.TimestampTag, true},
		{"<<", resolve.MergeTag, true},
		{"hello world", resolve.StrTag, false},
		{"yes please", resolve.StrTag, false},
		{"- not a number", resolve.StrTag, false},
	}
	var r resolve.Standard
	for _, c := range cases {
		tag, ok := r.Resolve(c.value)
		require.Equal(t, c.tag, tag, "value %q", c.value)
		require.Equal(t, c.ok, ok, "value %q", c.value)
	}
}

func TestShortLongTagRoundTrip(t *testing.T) {
	long := "tag:yaml.org,2002:str"
	require.Equal(t, "!!str", resolve.ShortTag(long))
	require.Equal(t, long, resolve.LongTag("!!str"))
	require.Equal(t, "!mine", resolve.ShortTag("!mine"))
}

func TestResolveExplicit(t *testing.T) {
	require.True(t, resolve.ResolveExplicit(resolve.IntTag))
	require.True(t, resolve.ResolveExplicit(""))
	require.False(t, resolve.ResolveExplicit("!custom"))
}
