package numinput

// caretAfterEdit computes where the caret goes after raw, edited with the
// caret at offset caret, was rewritten to c.formatted. The caret keeps its
// distance from the end of the text unless a grouping symbol was inserted
// at it or the edit reflowed the text around the decimal symbol.
func (c *Controller) caretAfterEdit(raw string, caret int, paste bool) int {
	f := c.format
	text := c.formatted
	rawLen, newLen := runeLen(raw), runeLen(text)
	fromRight := rawLen - caret

	// A pasted span is not a single keystroke; only the right anchor applies.
	if !paste {
		if f.GroupingSymbol != "" && runeAt(text, caret) == f.GroupingSymbol &&
			countSymbol(text, f.GroupingSymbol) == countSymbol(raw, f.GroupingSymbol)+1 {
			return newLen - fromRight - 1
		}

		if dec := runeIndex(raw, f.DecimalSymbol); f.DecimalSymbol != "" && dec >= 0 {
			afterDec := dec + 1
			if abs(newLen-rawLen) > 1 && caret <= afterDec {
				return runeIndex(text, f.DecimalSymbol) + 1
			}
			// The fraction was already full, so the typed digit replaced one.
			if !c.opts.AutoDecimalDigits && caret > afterDec &&
				len(f.OnlyDigits(runeTail(raw, afterDec)))-1 == f.MaximumFractionDigits {
				fromRight--
			}
		}
	}

	if c.state == Focused && c.hide.HideCurrencySymbol {
		return newLen - fromRight
	}
	return max(newLen-max(fromRight, runeLen(f.Suffix)), runeLen(f.Prefix))
}

// caretAfterFocus maps the caret offset in before (the text at focus time)
// onto the re-rendered text.
func (c *Controller) caretAfterFocus(before string, caret int) int {
	f := c.format
	prefixLen, suffixLen := runeLen(f.Prefix), runeLen(f.Suffix)

	if !c.hide.HideCurrencySymbol {
		if caret > runeLen(before)-suffixLen {
			return runeLen(c.formatted) - suffixLen
		}
		if caret < prefixLen {
			return prefixLen
		}
	}

	pos := caret
	if c.hide.HideCurrencySymbol {
		pos -= prefixLen
	}
	if c.hide.HideGroupingSymbol {
		pos -= countSymbol(runeHead(before, caret), f.GroupingSymbol)
	}
	return max(pos, 0)
}
