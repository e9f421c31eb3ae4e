package emitter

import "github.com/ycollier/yamlstream/internal/charset"

func writeIndent(e *Emitter) error {
	indent := e.indentLevel
	if indent < 0 {
		indent = 0
	}
	if !e.lastCharIndent || e.column > indent || (e.column == indent && !e.lastCharWhitepace) {
		if err := e.putBreak(); err != nil {
			return err
		}
	}
	for e.column < indent {
		if err := e.put(' '); err != nil {
			return err
		}
	}
	e.lastCharWhitepace = true
	return nil
}

func writeIndicator(e *Emitter, indicator []byte, needWhitespace, isWhitespace, isIndention bool) error {
	if needWhitespace && !e.lastCharWhitepace {
		if err := e.put(' '); err != nil {
			return err
		}
	}
	if err := e.writeAll(indicator); err != nil {
		return err
	}
	e.lastCharWhitepace = isWhitespace
	e.lastCharIndent = e.lastCharIndent && isIndention
	e.openEnded = false
	return nil
}

func writeAnchor(e *Emitter, value []byte) error {
	if err := e.writeAll(value); err != nil {
		return err
	}
	e.lastCharWhitepace = false
	e.lastCharIndent = false
	return nil
}

func writeTagHandle(e *Emitter, value []byte) error {
	if !e.lastCharWhitepace {
		if err := e.put(' '); err != nil {
			return err
		}
	}
	if err := e.writeAll(value); err != nil {
		return err
	}
	e.lastCharWhitepace = false
	e.lastCharIndent = false
	return nil
}

func writeTagContent(e *Emitter, value []byte, needWhitespace bool) error {
	if needWhitespace && !e.lastCharWhitepace {
		if err := e.put(' '); err != nil {
			return err
		}
	}
	for len(value) > 0 {
		var mustWrite bool
		switch value[0] {
		case ';', '/', '?', ':', '@', '&', '=', '+', '$', ',', '_', '.', '~', '*', '\'', '(', ')', '[', ']':
			mustWrite = true
		default:
			mustWrite = charset.IsAlpha(value, 0)
		}
		if mustWrite {
			n, err := e.write(value)
			if err != nil {
				return err
			}
			value = value[n:]
			continue
		}
		w := charset.Width(value[0])
		for k := 0; k < w; k++ {
			octet := value[0]
			if err := e.put('%'); err != nil {
				return err
			}
			c := octet >> 4
			if c < 10 {
				c += '0'
			} else {
				c += 'A' - 10
			}
			if err := e.put(c); err != nil {
				return err
			}
			c = octet & 0x0f
			if c < 10 {
				c += '0'
			} else {
				c += 'A' - 10
			}
			if err := e.put(c); err != nil {
				return err
			}
		}
		value = value[w:]
	}
	e.lastCharWhitepace = false
	e.lastCharIndent = false
	return nil
}

func writePlainScalar(e *Emitter, value []byte, allowBreaks bool) error {
	totalLen := len(value)
	if totalLen > 0 && !e.lastCharWhitepace {
		if err := e.put(' '); err != nil {
			return err
		}
	}

	var err error
	spaces := false
	breaks := false
	for len(value) > 0 {
		w := charset.Width(value[0])
		if charset.IsSpace(value, 0) {
			nextIsSpace := len(value) > w && charset.IsSpace(value, w)
			if allowBreaks && !spaces && e.column > e.width && !nextIsSpace {
				if err = writeIndent(e); err != nil {
					return err
				}
			} else {
				w, err = e.write(value)
				if err != nil {
					return err
				}
			}
			value = value[w:]
			spaces = true
			continue
		}
		if charset.IsBreak(value, 0) {
			if !breaks && value[0] == '\n' {
				if err = e.putBreak(); err != nil {
					return err
				}
			}
			w, err = e.writeBreak(value)
			if err != nil {
				return err
			}
			value = value[w:]
			breaks = true
			continue
		}
		if breaks {
			if err = writeIndent(e); err != nil {
				return err
			}
		}
		w, err = e.write(value)
		if err != nil {
			return err
		}
		value = value[w:]
		e.lastCharIndent = false
		spaces = false
		breaks = false
	}

	if totalLen > 0 {
		e.lastCharWhitepace = false
	}
	e.lastCharIndent = false
	if e.rootContext {
		e.openEnded = true
	}
	return nil
}

func writeSingleQuotedScalar(e *Emitter, value []byte, allowBreaks bool) error {
	if err := writeIndicator(e, []byte{'\''}, true, false, false); err != nil {
		return err
	}

	var err error
	spaces := false
	breaks := false
	count := 0
	for len(value) > 0 {
		count++
		w := charset.Width(value[0])
		hasMore := len(value) > w
		if charset.IsSpace(value, 0) {
			if allowBreaks && !spaces && e.column > e.width && count > 1 && hasMore && !charset.IsSpace(value, 1) {
				if err = writeIndent(e); err != nil {
					return err
				}
			} else {
				w, err = e.write(value)
				if err != nil {
					return err
				}
			}
			spaces = true
			value = value[w:]
			continue
		}
		if charset.IsBreak(value, 0) {
			if !breaks && value[0] == '\n' {
				if err = e.putBreak(); err != nil {
					return err
				}
			}
			w, err = e.writeBreak(value)
			if err != nil {
				return err
			}
			breaks = true
			value = value[w:]
			continue
		}
		if breaks {
			if err = writeIndent(e); err != nil {
				return err
			}
		}
		if value[0] == '\'' {
			if err = e.put('\''); err != nil {
				return err
			}
		}
		w, err = e.write(value)
		if err != nil {
			return err
		}
		value = value[w:]
		e.lastCharIndent = false
		spaces = false
		breaks = false
	}
	if err := writeIndicator(e, []byte{'\''}, false, false, false); err != nil {
		return err
	}
	e.lastCharWhitepace = false
	e.lastCharIndent = false
	return nil
}

func writeDoubleQuotedScalar(e *Emitter, value []byte, allowBreaks bool) error {
	spaces := false
	if err := writeIndicator(e, []byte{'"'}, true, false, false); err != nil {
		return err
	}
	isBom := len(value) >= 3 && charset.IsBOM(value)
	var err error
	count := 0
	for len(value) > 0 {
		var w int
		count++
		if !charset.IsPrintable(value, 0) || isBom || charset.IsBreak(value, 0) || value[0] == '"' || value[0] == '\\' {
			value, err = writeDoubleQuotedEscapedChar(e, value)
			if err != nil {
				return err
			}
			spaces = false
			continue
		}
		if charset.IsSpace(value, 0) {
			w = charset.Width(value[0])
			if allowBreaks && !spaces && e.column > e.width && count > 1 && len(value) > w {
				if err = writeIndent(e); err != nil {
					return err
				}
				if charset.IsSpace(value, 1) {
					if err = e.put('\\'); err != nil {
						return err
					}
				}
			} else {
				w, err = e.write(value)
				if err != nil {
					return err
				}
			}
			value = value[w:]
			spaces = true
			continue
		}
		w, err = e.write(value)
		if err != nil {
			return err
		}
		value = value[w:]
		spaces = false
	}
	if err := writeIndicator(e, []byte{'"'}, false, false, false); err != nil {
		return err
	}
	e.lastCharWhitepace = false
	e.lastCharIndent = false
	return nil
}

func writeDoubleQuotedEscapedChar(e *Emitter, value []byte) ([]byte, error) {
	octet := value[0]

	var v rune
	var w int
	switch {
	case octet&0x80 == 0x00:
		w, v = 1, rune(octet&0x7F)
	case octet&0xE0 == 0xC0:
		w, v = 2, rune(octet&0x1F)
	case octet&0xF0 == 0xE0:
		w, v = 3, rune(octet&0x0F)
	case octet&0xF8 == 0xF0:
		w, v = 4, rune(octet&0x07)
	}
	for k := 1; k < w; k++ {
		octet = value[k]
		v = (v << 6) + (rune(octet) & 0x3F)
	}
	value = value[w:]

	if err := e.put('\\'); err != nil {
		return nil, err
	}

	var err error
	switch v {
	case 0x00:
		err = e.put('0')
	case 0x07:
		err = e.put('a')
	case 0x08:
		err = e.put('b')
	case 0x09:
		err = e.put('t')
	case 0x0A:
		err = e.put('n')
	case 0x0b:
		err = e.put('v')
	case 0x0c:
		err = e.put('f')
	case 0x0d:
		err = e.put('r')
	case 0x1b:
		err = e.put('e')
	case 0x22:
		err = e.put('"')
	case 0x5c:
		err = e.put('\\')
	case 0x85:
		err = e.put('N')
	case 0xA0:
		err = e.put('_')
	case 0x2028:
		err = e.put('L')
	case 0x2029:
		err = e.put('P')
	default:
		switch {
		case v <= 0xFF:
			err = e.put('x')
			w = 2
		case v <= 0xFFFF:
			err = e.put('u')
			w = 4
		default:
			err = e.put('U')
			w = 8
		}
		if err != nil {
			return nil, err
		}
		for k := (w - 1) * 4; err == nil && k >= 0; k -= 4 {
			digit := byte((v >> uint(k)) & 0x0F)
			if digit < 10 {
				err = e.put(digit + '0')
			} else {
				err = e.put(digit + 'A' - 10)
			}
			if err != nil {
				return nil, err
			}
		}
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func writeBlockScalarHints(e *Emitter, value []byte) error {
	if charset.IsSpace(value, 0) || charset.IsBreak(value, 0) {
		indentHint := []byte{'0' + byte(e.indent)}
		if err := writeIndicator(e, indentHint, false, false, false); err != nil {
			return err
		}
	}

	e.openEnded = false

	var chompHint byte
	if len(value) == 0 {
		chompHint = '-'
	} else {
		i := len(value) - 1
		for value[i]&0xC0 == 0x80 {
			i--
		}
		switch {
		case !charset.IsBreak(value, i):
			chompHint = '-'
		case i == 0:
			chompHint = '+'
			e.openEnded = true
		default:
			i--
			for value[i]&0xC0 == 0x80 {
				i--
			}
			if charset.IsBreak(value, i) {
				chompHint = '+'
				e.openEnded = true
			}
		}
	}
	if chompHint != 0 {
		if err := writeIndicator(e, []byte{chompHint}, false, false, false); err != nil {
			return err
		}
	}
	return nil
}

func writeLiteralScalar(e *Emitter, value []byte) error {
	if err := writeIndicator(e, []byte{'|'}, true, false, false); err != nil {
		return err
	}
	if err := writeBlockScalarHints(e, value); err != nil {
		return err
	}
	e.lastCharWhitepace = true
	breaks := true
	for len(value) > 0 {
		var w int
		var err error
		if charset.IsBreak(value, 0) {
			w, err = e.writeBreak(value)
			if err != nil {
				return err
			}
			breaks = true
			value = value[w:]
			continue
		}
		if breaks {
			if err = writeIndent(e); err != nil {
				return err
			}
		}
		w, err = e.write(value)
		if err != nil {
			return err
		}
		value = value[w:]
		e.lastCharIndent = false
		breaks = false
	}
	return nil
}

func writeFoldedScalar(e *Emitter, value []byte) error {
	if err := writeIndicator(e, []byte{'>'}, true, false, false); err != nil {
		return err
	}
	if err := writeBlockScalarHints(e, value); err != nil {
		return err
	}

	e.lastCharWhitepace = true
	breaks := true
	leadingSpaces := true
	for len(value) > 0 {
		w := charset.Width(value[0])
		var err error
		if charset.IsBreak(value, 0) {
			if !breaks && !leadingSpaces && value[0] == '\n' {
				k := 0
				for charset.IsBreak(value, k) {
					k += charset.Width(value[k])
				}
				if !charset.IsBlankZ(value, k) {
					if err = e.putBreak(); err != nil {
						return err
					}
				}
			}
			w, err = e.writeBreak(value)
			if err != nil {
				return err
			}
			value = value[w:]
			breaks = true
			continue
		}
		if breaks {
			if err = writeIndent(e); err != nil {
				return err
			}
			leadingSpaces = charset.IsBlank(value, 0)
		}
		nextIsSpace := len(value) > w && charset.IsSpace(value, w)
		if !breaks && charset.IsSpace(value, 0) && !nextIsSpace && e.column > e.width {
			if err = writeIndent(e); err != nil {
				return err
			}
		} else {
			w, err = e.write(value)
			if err != nil {
				return err
			}
		}
		value = value[w:]
		e.lastCharIndent = false
		breaks = false
	}
	return nil
}
