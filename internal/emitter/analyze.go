package emitter

import (
	"bytes"

	"github.com/ycollier/yamlstream/internal/charset"
	"github.com/ycollier/yamlstream/internal/event"
)

func analyzeAnchor(e *Emitter, anchor []byte, alias bool) error {
	if len(anchor) == 0 {
		if alias {
			return newEmitterError("alias value must not be empty")
		}
		return newEmitterError("anchor value must not be empty")
	}
	for i := 0; i < len(anchor); i += charset.Width(anchor[i]) {
		if !charset.IsAlpha(anchor, i) {
			if alias {
				return newEmitterError("alias value must contain alphanumerical characters only")
			}
			return newEmitterError("anchor value must contain alphanumerical characters only")
		}
	}
	e.anchorData.Anchor = anchor
	e.anchorData.Alias = alias
	return nil
}

func analyzeTag(e *Emitter, tag []byte) error {
	if len(tag) == 0 {
		return newEmitterError("tag value must not be empty")
	}
	for i := range e.tagDirectives {
		td := &e.tagDirectives[i]
		if bytes.HasPrefix(tag, td.Prefix) {
			e.tagData.Handle = td.Handle
			e.tagData.Suffix = tag[len(td.Prefix):]
			return nil
		}
	}
	e.tagData.Suffix = tag
	return nil
}

func analyzeVersionDirective(vd *event.VersionDirective) error {
	if vd.Major != 1 || vd.Minor != 1 {
		return newEmitterError("incompatible %YAML directive")
	}
	return nil
}

func analyzeTagDirective(td *event.TagDirective) error {
	handle := td.Handle
	prefix := td.Prefix
	if len(handle) == 0 {
		return newEmitterError("tag handle must not be empty")
	}
	if handle[0] != '!' {
		return newEmitterError("tag handle must start with '!'")
	}
	if handle[len(handle)-1] != '!' {
		return newEmitterError("tag handle must end with '!'")
	}
	for i := 1; i < len(handle)-1; i += charset.Width(handle[i]) {
		if !charset.IsAlpha(handle, i) {
			return newEmitterError("tag handle must contain alphanumerical characters only")
		}
	}
	if len(prefix) == 0 {
		return newEmitterError("tag prefix must not be empty")
	}
	return nil
}

// analyzeScalar inspects value once per emitted scalar to decide which
// of the five styles are safe to use for it, recording the result in
// e.scalarData for selectScalarStyle.
func analyzeScalar(e *Emitter, value []byte) {
	var blockIndicators, flowIndicators, lineBreaks, specialCharacters, tabCharacters bool
	var leadingSpace, leadingBreak, trailingSpace, trailingBreak, breakSpace, spaceBreak bool
	var precededByWhitespace, followedByWhitespace, previousSpace, previousBreak bool

	e.scalarData.value = value

	if len(value) == 0 {
		e.scalarData.multiline = false
		e.scalarData.flowPlainAllowed = false
		e.scalarData.blockPlainAllowed = true
		e.scalarData.singleQuotedAllowed = true
		e.scalarData.blockAllowed = false
		return
	}

	if len(value) >= 3 && ((value[0] == '-' && value[1] == '-' && value[2] == '-') || (value[0] == '.' && value[1] == '.' && value[2] == '.')) {
		blockIndicators = true
		flowIndicators = true
	}

	precededByWhitespace = true
	for i, w := 0, 0; i < len(value); i += w {
		w = charset.Width(value[i])
		followedByWhitespace = i+w >= len(value) || charset.IsBlank(value, i+w)

		if i == 0 {
			switch value[i] {
			case '#', ',', '[', ']', '{', '}', '&', '*', '!', '|', '>', '\'', '"', '%', '@', '`':
				flowIndicators = true
				blockIndicators = true
			case '?', ':':
				flowIndicators = true
				if followedByWhitespace {
					blockIndicators = true
				}
			case '-':
				if followedByWhitespace {
					flowIndicators = true
					blockIndicators = true
				}
			}
		} else {
			switch value[i] {
			case ',', '?', '[', ']', '{', '}':
				flowIndicators = true
			case ':':
				flowIndicators = true
				if followedByWhitespace {
					blockIndicators = true
				}
			case '#':
				if precededByWhitespace {
					flowIndicators = true
					blockIndicators = true
				}
			}
		}

		if value[i] == '\t' {
			tabCharacters = true
		} else if !charset.IsPrintable(value, i) {
			specialCharacters = true
		}
		if charset.IsSpace(value, i) {
			if i == 0 {
				leadingSpace = true
			}
			if i+charset.Width(value[i]) == len(value) {
				trailingSpace = true
			}
			if previousBreak {
				breakSpace = true
			}
			previousSpace = true
			previousBreak = false
		} else if charset.IsBreak(value, i) {
			lineBreaks = true
			if i == 0 {
				leadingBreak = true
			}
			if i+charset.Width(value[i]) == len(value) {
				trailingBreak = true
			}
			if previousSpace {
				spaceBreak = true
			}
			previousSpace = false
			previousBreak = true
		} else {
			previousSpace = false
			previousBreak = false
		}

		precededByWhitespace = charset.IsBlankZ(value, i)
	}

	e.scalarData.multiline = lineBreaks
	e.scalarData.flowPlainAllowed = true
	e.scalarData.blockPlainAllowed = true
	e.scalarData.singleQuotedAllowed = true
	e.scalarData.blockAllowed = true

	if leadingSpace || leadingBreak || trailingSpace || trailingBreak {
		e.scalarData.flowPlainAllowed = false
		e.scalarData.blockPlainAllowed = false
	}
	if trailingSpace {
		e.scalarData.blockAllowed = false
	}
	if breakSpace {
		e.scalarData.flowPlainAllowed = false
		e.scalarData.blockPlainAllowed = false
		e.scalarData.singleQuotedAllowed = false
	}
	if spaceBreak || tabCharacters || specialCharacters {
		e.scalarData.flowPlainAllowed = false
		e.scalarData.blockPlainAllowed = false
		e.scalarData.singleQuotedAllowed = false
	}
	if spaceBreak || specialCharacters {
		e.scalarData.blockAllowed = false
	}
	if lineBreaks {
		e.scalarData.flowPlainAllowed = false
		e.scalarData.blockPlainAllowed = false
	}
	if flowIndicators {
		e.scalarData.flowPlainAllowed = false
	}
	if blockIndicators {
		e.scalarData.blockPlainAllowed = false
	}
}

func analyzeEvent(e *Emitter, ev *event.Event) error {
	e.anchorData.Anchor = nil
	e.tagData.Handle = nil
	e.tagData.Suffix = nil
	e.scalarData.value = nil

	var err error
	switch ev.Type {
	case event.AliasEvent:
		err = analyzeAnchor(e, ev.Anchor, true)
		if err != nil {
			return err
		}
	case event.ScalarEvent:
		if len(ev.Anchor) > 0 {
			err = analyzeAnchor(e, ev.Anchor, false)
			if err != nil {
				return err
			}
		}
		if len(ev.Tag) > 0 && !ev.Implicit && !ev.QuotedImplicit {
			err = analyzeTag(e, ev.Tag)
			if err != nil {
				return err
			}
		}
		analyzeScalar(e, ev.Value)
	case event.SequenceStartEvent, event.MappingStartEvent:
		if len(ev.Anchor) > 0 {
			err = analyzeAnchor(e, ev.Anchor, false)
			if err != nil {
				return err
			}
		}
		if len(ev.Tag) > 0 && !ev.Implicit {
			err = analyzeTag(e, ev.Tag)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
