package emitter

import "github.com/ycollier/yamlstream/internal/event"

func processAnchor(e *Emitter) error {
	if e.anchorData.Anchor == nil {
		return nil
	}
	c := byte('&')
	if e.anchorData.Alias {
		c = '*'
	}
	if err := writeIndicator(e, []byte{c}, true, false, false); err != nil {
		return err
	}
	return writeAnchor(e, e.anchorData.Anchor)
}

func processTag(e *Emitter) error {
	if len(e.tagData.Handle) == 0 && len(e.tagData.Suffix) == 0 {
		return nil
	}
	if len(e.tagData.Handle) > 0 {
		if err := writeTagHandle(e, e.tagData.Handle); err != nil {
			return err
		}
		if len(e.tagData.Suffix) > 0 {
			if err := writeTagContent(e, e.tagData.Suffix, false); err != nil {
				return err
			}
		}
		return nil
	}
	if err := writeIndicator(e, []byte("!<"), true, false, false); err != nil {
		return err
	}
	if err := writeTagContent(e, e.tagData.Suffix, false); err != nil {
		return err
	}
	return writeIndicator(e, []byte{'>'}, false, false, false)
}

func processScalar(e *Emitter) error {
	switch e.scalarData.style {
	case event.PlainScalarStyle:
		return writePlainScalar(e, e.scalarData.value, !e.simpleKeyContext)
	case event.SingleQuotedStyle:
		return writeSingleQuotedScalar(e, e.scalarData.value, !e.simpleKeyContext)
	case event.DoubleQuotedStyle:
		return writeDoubleQuotedScalar(e, e.scalarData.value, !e.simpleKeyContext)
	case event.LiteralScalarStyle:
		return writeLiteralScalar(e, e.scalarData.value)
	case event.FoldedScalarStyle:
		return writeFoldedScalar(e, e.scalarData.value)
	}
	return newEmitterError("unknown scalar style")
}
