package emitter

import "github.com/ycollier/yamlstream/internal/event"

// checkEmptySequence reports whether the events queued at eventsHead
// represent an empty sequence, i.e. SEQUENCE-START immediately
// followed by SEQUENCE-END.
func checkEmptySequence(e *Emitter) bool {
	if len(e.eventsQueue)-e.eventsHead < 2 {
		return false
	}
	return e.eventsQueue[e.eventsHead].Type == event.SequenceStartEvent &&
		e.eventsQueue[e.eventsHead+1].Type == event.SequenceEndEvent
}

// checkEmptyMapping reports whether the events queued at eventsHead
// represent an empty mapping.
func checkEmptyMapping(e *Emitter) bool {
	if len(e.eventsQueue)-e.eventsHead < 2 {
		return false
	}
	return e.eventsQueue[e.eventsHead].Type == event.MappingStartEvent &&
		e.eventsQueue[e.eventsHead+1].Type == event.MappingEndEvent
}

// checkSimpleKey reports whether the node at eventsHead is short and
// plain enough to serve as a mapping key without the "? " explicit-key
// indicator.
func checkSimpleKey(e *Emitter) bool {
	var length int
	switch e.eventsQueue[e.eventsHead].Type {
	case event.AliasEvent:
		length += len(e.anchorData.Anchor)
	case event.ScalarEvent:
		if e.scalarData.multiline {
			return false
		}
		length += len(e.anchorData.Anchor) + len(e.tagData.Handle) + len(e.tagData.Suffix) + len(e.scalarData.value)
	case event.SequenceStartEvent:
		if !checkEmptySequence(e) {
			return false
		}
		length += len(e.anchorData.Anchor) + len(e.tagData.Handle) + len(e.tagData.Suffix)
	case event.MappingStartEvent:
		if !checkEmptyMapping(e) {
			return false
		}
		length += len(e.anchorData.Anchor) + len(e.tagData.Handle) + len(e.tagData.Suffix)
	default:
		return false
	}
	return length <= 128
}
