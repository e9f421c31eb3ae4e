// Package resolve classifies an unresolved scalar's effective tag from
// its plain-scalar content, the way the YAML core schema does:
// booleans, nulls, and a handful of float spellings are recognized by
// pattern, everything else unquoted falls back to !!str. Resolution
// here stops at the tag; no component in this module's scope consumes
// a constructed Go value, so (unlike the teacher) nothing here parses
// the scalar payload into an int/float/timestamp.
package resolve

import (
	"regexp"
	"strings"
	"sync"
)

// Built-in tag URIs, short form.
const (
	NullTag      = "!!null"
	BoolTag      = "!!bool"
	StrTag       = "!!str"
	IntTag       = "!!int"
	FloatTag     = "!!float"
	TimestampTag = "!!timestamp"
	SeqTag       = "!!seq"
	MapTag       = "!!map"
	BinaryTag    = "!!binary"
	MergeTag     = "!!merge"
)

const longTagPrefix = "tag:yaml.org,2002:"

var (
	longTagsMu sync.Mutex
	longTags   = make(map[string]string)
	shortTags  = make(map[string]string)
)

// ShortTag converts a "tag:yaml.org,2002:foo"-style URI to "!!foo",
// memoizing the conversion.
func ShortTag(tag string) string {
	if strings.HasPrefix(tag, longTagPrefix) {
		longTagsMu.Lock()
		defer longTagsMu.Unlock()
		if stag, ok := shortTags[tag]; ok {
			return stag
		}
		stag := "!!" + tag[len(longTagPrefix):]
		shortTags[tag] = stag
		return stag
	}
	return tag
}

// LongTag converts a "!!foo" short tag to its full URI, memoizing the
// conversion.
func LongTag(tag string) string {
	if strings.HasPrefix(tag, "!!") {
		longTagsMu.Lock()
		defer longTagsMu.Unlock()
		if ltag, ok := longTags[tag]; ok {
			return ltag
		}
		ltag := longTagPrefix + tag[2:]
		longTags[tag] = ltag
		return ltag
	}
	return tag
}

func resolvableTag(tag string) bool {
	switch tag {
	case "", StrTag, BoolTag, IntTag, FloatTag, NullTag, TimestampTag:
		return true
	}
	return false
}

type resolveMapItem struct {
	tag string
}

var (
	resolveTable    = make([]byte, 256)
	resolveMap      = make(map[string]resolveMapItem)
	initResolveOnce sync.Once
)

func initResolve() {
	t := resolveTable
	t[int('+')] = 'S'
	t[int('-')] = 'S'
	for _, c := range "0123456789" {
		t[int(c)] = 'D'
	}
	for _, c := range "yYnNtTfFoO~" {
		t[int(c)] = 'M'
	}
	t[int('.')] = '.'
	t[int('<')] = 'M'

	list := []struct {
		tag string
		l   []string
	}{
		{tag: BoolTag, l: []string{
			"true", "True", "TRUE", "false", "False", "FALSE",
			"y", "Y", "yes", "Yes", "YES", "n", "N", "no", "No", "NO",
			"on", "On", "ON", "off", "Off", "OFF",
		}},
		{tag: NullTag, l: []string{"", "~", "null", "Null", "NULL"}},
		{tag: FloatTag, l: []string{".nan", ".NaN", ".NAN", ".inf", ".Inf", ".INF", "+.inf", "+.Inf", "+.INF", "-.inf", "-.Inf", "-.INF"}},
		{tag: MergeTag, l: []string{"<<"}},
	}
	for _, item := range list {
		for _, s := range item.l {
			resolveMap[s] = resolveMapItem{tag: item.tag}
		}
	}
}

var yamlStyleFloat = regexp.MustCompile(`^[-+]?(\.\d+|\d+(\.\d*)?)([eE][-+]?\d+)?$`)
var yamlStyleInt = regexp.MustCompile(`^[-+]?(0b[01_]+|0o?[0-7_]+|(0|[1-9][0-9_]*)|0x[0-9a-fA-F_]+)$`)
var yamlStyleTimestamp = regexp.MustCompile(`^[0-9][0-9][0-9][0-9]-[0-9][0-9]?-[0-9][0-9]?`)

// Resolver classifies a scalar's implicit tag from its content.
type Resolver interface {
	// Resolve returns the tag a plain (unquoted, untagged) scalar with
	// the given content would implicitly carry, and whether resolution
	// recognized the content as anything more specific than !!str.
	Resolve(value string) (tag string, ok bool)
}

// Standard implements the YAML core schema's plain-scalar resolution
// rules: the null/bool/merge keyword set, the float sentinel spellings,
// and int/float/timestamp-shaped patterns, defaulting to !!str.
type Standard struct{}

// Resolve implements Resolver.
func (Standard) Resolve(value string) (string, bool) {
	initResolveOnce.Do(initResolve)

	hint := byte('N')
	if value != "" {
		hint = resolveTable[value[0]]
	}
	if hint == 0 {
		return StrTag, false
	}

	if item, ok := resolveMap[value]; ok {
		return item.tag, true
	}

	switch hint {
	case 'M':
		return StrTag, false
	case '.':
		if yamlStyleFloat.MatchString(value) {
			return FloatTag, true
		}
	case 'D', 'S':
		plain := strings.ReplaceAll(value, "_", "")
		if yamlStyleInt.MatchString(plain) {
			return IntTag, true
		}
		if yamlStyleFloat.MatchString(plain) {
			return FloatTag, true
		}
		if yamlStyleTimestamp.MatchString(value) {
			return TimestampTag, true
		}
	}
	return StrTag, false
}

// ResolveExplicit reports whether an explicitly given tag is one this
// module recognizes as resolvable at all (as opposed to a user-defined
// tag, which is passed through untouched).
func ResolveExplicit(tag string) bool {
	return resolvableTag(ShortTag(tag))
}
