// Package event defines the shared data model for the byte↔event
// pipeline: marks, tokens, events, encodings, styles, and the default
// tag-directive table. It has no behavior of its own — every other
// internal package depends on it and nothing in it depends on them.
package event

import "fmt"

// Position is a zero-based (byte-index, line, column) triple attached to
// every token, event, and error.
type Position struct {
	Index  int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line+1, p.Column+1)
}

// Encoding identifies the byte encoding of a stream.
type Encoding int8

const (
	AnyEncoding Encoding = iota
	UTF8Encoding
	UTF16LEEncoding
	UTF16BEEncoding
)

func (e Encoding) String() string {
	switch e {
	case UTF8Encoding:
		return "UTF-8"
	case UTF16LEEncoding:
		return "UTF-16LE"
	case UTF16BEEncoding:
		return "UTF-16BE"
	default:
		return "any"
	}
}

// LineBreak identifies the line-break convention used on output.
type LineBreak int8

const (
	AnyBreak LineBreak = iota
	CRBreak
	LNBreak
	CRLNBreak
)

// VersionDirective is a %YAML directive's major/minor pair.
type VersionDirective struct {
	Major int8
	Minor int8
}

// TagDirective is a %TAG directive: a (handle, prefix) pair. Both sides
// are always non-empty once scanned.
type TagDirective struct {
	Handle []byte
	Prefix []byte
}

// DefaultTagDirectives are always in scope, in addition to whatever
// %TAG directives a document declares.
var DefaultTagDirectives = []TagDirective{
	{Handle: []byte("!"), Prefix: []byte("!")},
	{Handle: []byte("!!"), Prefix: []byte("tag:yaml.org,2002:")},
}

// Built-in tag URIs.
const (
	NullTag      = "tag:yaml.org,2002:null"
	BoolTag      = "tag:yaml.org,2002:bool"
	StrTag       = "tag:yaml.org,2002:str"
	IntTag       = "tag:yaml.org,2002:int"
	FloatTag     = "tag:yaml.org,2002:float"
	TimestampTag = "tag:yaml.org,2002:timestamp"
	SeqTag       = "tag:yaml.org,2002:seq"
	MapTag       = "tag:yaml.org,2002:map"

	DefaultScalarTag   = StrTag
	DefaultSequenceTag = SeqTag
	DefaultMappingTag  = MapTag
)

// ScalarStyle is a bitmask: more than one bit may be legal for a given
// scalar, and the emitter narrows down to exactly one.
type ScalarStyle int8

const AnyScalarStyle ScalarStyle = 0

const (
	PlainScalarStyle ScalarStyle = 1 << iota
	SingleQuotedStyle
	DoubleQuotedStyle
	LiteralScalarStyle
	FoldedScalarStyle
)

// SequenceStyle and MappingStyle select flow vs. block layout.
type SequenceStyle int8

const (
	AnySequenceStyle SequenceStyle = iota
	BlockSequenceStyle
	FlowSequenceStyle
)

type MappingStyle int8

const (
	AnyMappingStyle MappingStyle = iota
	BlockMappingStyle
	FlowMappingStyle
)

// TokenType enumerates the scanner's token kinds.
type TokenType int8

const (
	NoToken TokenType = iota
	StreamStartToken
	StreamEndToken
	VersionDirectiveToken
	TagDirectiveToken
	DocumentStartToken
	DocumentEndToken
	BlockSequenceStartToken
	BlockMappingStartToken
	BlockEndToken
	FlowSequenceStartToken
	FlowSequenceEndToken
	FlowMappingStartToken
	FlowMappingEndToken
	BlockEntryToken
	FlowEntryToken
	KeyToken
	ValueToken
	AliasToken
	AnchorToken
	TagToken
	ScalarToken
)

func (t TokenType) String() string {
	switch t {
	case StreamStartToken:
		return "STREAM-START"
	case StreamEndToken:
		return "STREAM-END"
	case VersionDirectiveToken:
		return "VERSION-DIRECTIVE"
	case TagDirectiveToken:
		return "TAG-DIRECTIVE"
	case DocumentStartToken:
		return "DOCUMENT-START"
	case DocumentEndToken:
		return "DOCUMENT-END"
	case BlockSequenceStartToken:
		return "BLOCK-SEQUENCE-START"
	case BlockMappingStartToken:
		return "BLOCK-MAPPING-START"
	case BlockEndToken:
		return "BLOCK-END"
	case FlowSequenceStartToken:
		return "FLOW-SEQUENCE-START"
	case FlowSequenceEndToken:
		return "FLOW-SEQUENCE-END"
	case FlowMappingStartToken:
		return "FLOW-MAPPING-START"
	case FlowMappingEndToken:
		return "FLOW-MAPPING-END"
	case BlockEntryToken:
		return "BLOCK-ENTRY"
	case FlowEntryToken:
		return "FLOW-ENTRY"
	case KeyToken:
		return "KEY"
	case ValueToken:
		return "VALUE"
	case AliasToken:
		return "ALIAS"
	case AnchorToken:
		return "ANCHOR"
	case TagToken:
		return "TAG"
	case ScalarToken:
		return "SCALAR"
	default:
		return "NO-TOKEN"
	}
}

// Token is a tagged variant: every field that isn't relevant to Type is
// left zero. It owns its byte-slice payloads.
type Token struct {
	Type      TokenType
	StartMark Position
	EndMark   Position

	// STREAM-START
	Encoding Encoding

	// VERSION-DIRECTIVE
	Major int8
	Minor int8

	// TAG-DIRECTIVE: Value is the handle, Prefix the prefix.
	// ANCHOR/ALIAS: Value is the name.
	// TAG: Value is the handle, Suffix is the tag suffix.
	// SCALAR: Value is the scalar payload.
	Value  []byte
	Suffix []byte
	Prefix []byte

	// SCALAR
	Style ScalarStyle
}

// EventType enumerates the ten (plus none) event kinds in the
// parser/emitter contract.
type EventType int8

const (
	NoEvent EventType = iota
	StreamStartEvent
	StreamEndEvent
	DocumentStartEvent
	DocumentEndEvent
	AliasEvent
	ScalarEvent
	SequenceStartEvent
	SequenceEndEvent
	MappingStartEvent
	MappingEndEvent
)

func (t EventType) String() string {
	switch t {
	case StreamStartEvent:
		return "STREAM-START"
	case StreamEndEvent:
		return "STREAM-END"
	case DocumentStartEvent:
		return "DOCUMENT-START"
	case DocumentEndEvent:
		return "DOCUMENT-END"
	case AliasEvent:
		return "ALIAS"
	case ScalarEvent:
		return "SCALAR"
	case SequenceStartEvent:
		return "SEQUENCE-START"
	case SequenceEndEvent:
		return "SEQUENCE-END"
	case MappingStartEvent:
		return "MAPPING-START"
	case MappingEndEvent:
		return "MAPPING-END"
	default:
		return "NO-EVENT"
	}
}

// Event is a tagged variant over the ten event kinds in the grammar:
//
//	stream    ::= STREAM-START document* STREAM-END
//	document  ::= DOCUMENT-START node DOCUMENT-END
//	node      ::= ALIAS | SCALAR | SEQUENCE | MAPPING
//	SEQUENCE  ::= SEQUENCE-START node* SEQUENCE-END
//	MAPPING   ::= MAPPING-START (node node)* MAPPING-END
type Event struct {
	Type      EventType
	StartMark Position
	EndMark   Position

	// STREAM-START
	Encoding Encoding

	// DOCUMENT-START
	VersionDirective *VersionDirective
	TagDirectives    []TagDirective

	// ALIAS, SCALAR, SEQUENCE-START, MAPPING-START
	Anchor []byte

	// SCALAR, SEQUENCE-START, MAPPING-START
	Tag []byte

	// SCALAR
	Value []byte

	// DOCUMENT-START/END: Implicit means "no explicit --- / ... marker".
	// SCALAR: Implicit means "plain style and no tag was given" (a.k.a.
	// plain-implicit). QuotedImplicit means "non-plain style but no tag
	// was given" (a.k.a. quoted-implicit).
	// SEQUENCE-START/MAPPING-START: Implicit means "no explicit tag".
	Implicit       bool
	QuotedImplicit bool

	// SCALAR: the chosen/requested scalar style.
	// SEQUENCE-START: the chosen/requested sequence style (cast from
	// SequenceStyle).
	// MAPPING-START: the chosen/requested mapping style (cast from
	// MappingStyle).
	Style int8
}

// ScalarStyleValue returns Style interpreted as a ScalarStyle.
func (e *Event) ScalarStyleValue() ScalarStyle { return ScalarStyle(e.Style) }

// SequenceStyleValue returns Style interpreted as a SequenceStyle.
func (e *Event) SequenceStyleValue() SequenceStyle { return SequenceStyle(e.Style) }

// MappingStyleValue returns Style interpreted as a MappingStyle.
func (e *Event) MappingStyleValue() MappingStyle { return MappingStyle(e.Style) }
