// Package yaml is the public surface of this module: a streaming YAML
// 1.1 byte↔event pipeline. It re-exports the event vocabulary and
// wraps the internal Reader/Scanner/Parser and Writer/Emitter stages
// behind two small types, Parser and Emitter, so callers never import
// an internal package directly.
package yaml

import "github.com/ycollier/yamlstream/internal/event"

// Event is a single parsing event: STREAM-START/END, DOCUMENT-START/END,
// ALIAS, SCALAR, SEQUENCE-START/END, or MAPPING-START/END.
type Event = event.Event

// EventType enumerates the kinds of Event.
type EventType = event.EventType

const (
	NoEvent             = event.NoEvent
	StreamStartEventT   = event.StreamStartEvent
	StreamEndEventT     = event.StreamEndEvent
	DocumentStartEventT = event.DocumentStartEvent
	DocumentEndEventT   = event.DocumentEndEvent
	AliasEventT         = event.AliasEvent
	ScalarEventT        = event.ScalarEvent
	SequenceStartEventT = event.SequenceStartEvent
	SequenceEndEventT   = event.SequenceEndEvent
	MappingStartEventT  = event.MappingStartEvent
	MappingEndEventT    = event.MappingEndEvent
)

// Position is a (byte offset, line, column) triple, zero-based, carried
// by every Event and Error.
type Position = event.Position

// Encoding identifies a stream's byte encoding.
type Encoding = event.Encoding

const (
	AnyEncoding     = event.AnyEncoding
	UTF8Encoding    = event.UTF8Encoding
	UTF16LEEncoding = event.UTF16LEEncoding
	UTF16BEEncoding = event.UTF16BEEncoding
)

// ScalarStyle, SequenceStyle, and MappingStyle select how a node is
// rendered on output, and (for scalars) how it was quoted on input.
type ScalarStyle = event.ScalarStyle
type SequenceStyle = event.SequenceStyle
type MappingStyle = event.MappingStyle

const (
	AnyScalarStyle     = event.AnyScalarStyle
	PlainScalarStyle   = event.PlainScalarStyle
	SingleQuotedStyle  = event.SingleQuotedStyle
	DoubleQuotedStyle  = event.DoubleQuotedStyle
	LiteralScalarStyle = event.LiteralScalarStyle
	FoldedScalarStyle  = event.FoldedScalarStyle
)

const (
	AnySequenceStyle   = event.AnySequenceStyle
	BlockSequenceStyle = event.BlockSequenceStyle
	FlowSequenceStyle  = event.FlowSequenceStyle
)

const (
	AnyMappingStyle   = event.AnyMappingStyle
	BlockMappingStyle = event.BlockMappingStyle
	FlowMappingStyle  = event.FlowMappingStyle
)

// VersionDirective and TagDirective carry a document's %YAML/%TAG
// directives.
type VersionDirective = event.VersionDirective
type TagDirective = event.TagDirective

// DefaultTagDirectives are always in scope, alongside whatever %TAG
// directives a document declares.
var DefaultTagDirectives = event.DefaultTagDirectives

// Built-in tag URIs, long form (tag:yaml.org,2002:...).
const (
	NullTag      = event.NullTag
	BoolTag      = event.BoolTag
	StrTag       = event.StrTag
	IntTag       = event.IntTag
	FloatTag     = event.FloatTag
	TimestampTag = event.TimestampTag
	SeqTag       = event.SeqTag
	MapTag       = event.MapTag
)
