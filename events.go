//
// Copyright (c) 2011-2019 Canonical Ltd
// Copyright (c) 2006-2010 Kirill Simonov
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
// of the Software, and to permit persons to whom the Software is furnished to do
// so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package yaml

// Convenience constructors for building an Event to feed an Emitter.
// There is no composer layer in this module, so — unlike the
// equivalent unexported helpers in a full encode/decode package —
// these are exported for direct use by callers driving the Emitter.

// NewStreamStartEvent creates STREAM-START.
func NewStreamStartEvent(enc Encoding) *Event {
	return &Event{Type: StreamStartEventT, Encoding: enc}
}

// NewStreamEndEvent creates STREAM-END.
func NewStreamEndEvent() *Event {
	return &Event{Type: StreamEndEventT}
}

// NewDocumentStartEvent creates DOCUMENT-START.
func NewDocumentStartEvent(version *VersionDirective, tags []TagDirective, implicit bool) *Event {
	return &Event{Type: DocumentStartEventT, VersionDirective: version, TagDirectives: tags, Implicit: implicit}
}

// NewDocumentEndEvent creates DOCUMENT-END.
func NewDocumentEndEvent(implicit bool) *Event {
	return &Event{Type: DocumentEndEventT, Implicit: implicit}
}

// NewAliasEvent creates ALIAS.
func NewAliasEvent(anchor []byte) *Event {
	return &Event{Type: AliasEventT, Anchor: anchor}
}

// NewScalarEvent creates SCALAR.
func NewScalarEvent(anchor, tag, value []byte, plainImplicit, quotedImplicit bool, style ScalarStyle) *Event {
	return &Event{
		Type:           ScalarEventT,
		Anchor:         anchor,
		Tag:            tag,
		Value:          value,
		Implicit:       plainImplicit,
		QuotedImplicit: quotedImplicit,
		Style:          int8(style),
	}
}

// NewSequenceStartEvent creates SEQUENCE-START.
func NewSequenceStartEvent(anchor, tag []byte, implicit bool, style SequenceStyle) *Event {
	return &Event{Type: SequenceStartEventT, Anchor: anchor, Tag: tag, Implicit: implicit, Style: int8(style)}
}

// NewSequenceEndEvent creates SEQUENCE-END.
func NewSequenceEndEvent() *Event {
	return &Event{Type: SequenceEndEventT}
}

// NewMappingStartEvent creates MAPPING-START.
func NewMappingStartEvent(anchor, tag []byte, implicit bool, style MappingStyle) *Event {
	return &Event{Type: MappingStartEventT, Anchor: anchor, Tag: tag, Implicit: implicit, Style: int8(style)}
}

// NewMappingEndEvent creates MAPPING-END.
func NewMappingEndEvent() *Event {
	return &Event{Type: MappingEndEventT}
}
