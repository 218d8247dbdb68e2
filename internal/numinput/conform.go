package numinput

import (
	"strings"

	"github.com/govalues/decimal"
	"go.uber.org/zap"

	"github.com/muurk/numfield/internal/mask"
	"github.com/muurk/numfield/internal/numfmt"
)

// conform runs one conformance pass: raw becomes the displayed text and the
// value is re-parsed from it. trimNegligible drops trailing zero fraction
// digits (focus re-render only).
func (c *Controller) conform(raw string, trimNegligible bool) {
	at, normalize := c.pending.take()

	text := ""
	if raw != "" {
		if normalize {
			raw = c.format.NormalizeDecimalSymbol(raw, at)
		}
		text = c.conformText(raw, trimNegligible)
	}

	c.field.SetText(text)
	c.formatted = text
	c.number, c.valid = c.format.Parse(text)

	c.log.Debug("Conformed",
		zap.String("raw", raw),
		zap.String("text", text),
		zap.Stringer("state", c.state),
		zap.Bool("valid", c.valid),
	)

	c.notifyInput()
}

func (c *Controller) conformText(raw string, trimNegligible bool) string {
	f := c.format
	focused := c.state == Focused

	var text string
	res := c.mask.Conform(raw, c.formatted)
	switch res.Kind {
	case mask.KindNumber:
		text = c.renderNumber(res, focused, trimNegligible)
	default:
		text = res.Text
	}

	if !c.opts.AllowNegative {
		text = strings.Replace(text, f.NegativePrefix, f.Prefix, 1)
	}
	if focused && c.hide.HideCurrencySymbol {
		text = strings.Replace(text, f.NegativePrefix, f.MinusSymbol, 1)
		if f.Prefix != "" {
			text = strings.Replace(text, f.Prefix, "", 1)
		}
		if f.Suffix != "" {
			text = strings.Replace(text, f.Suffix, "", 1)
		}
	}
	return text
}

// renderNumber formats a parsed mask result. While focused every configured
// fraction digit may be shown; in either state no more zeros are padded than
// the user typed.
func (c *Controller) renderNumber(res mask.Result, focused, trimNegligible bool) string {
	f := c.format

	if res.Number.Abs().Cmp(f.SafeCeiling()) > 0 {
		c.log.Debug("Beyond safe ceiling, keeping previous text", zap.Stringer("number", res.Number))
		return c.formatted
	}

	maxFD := f.MaximumFractionDigits
	minFD := f.MinimumFractionDigits
	if focused {
		minFD = maxFD
	}
	if trimNegligible {
		minFD = len(strings.TrimRight(res.FractionDigits, "0"))
	} else {
		minFD = min(minFD, len(res.FractionDigits))
	}

	return f.Format(res.Number, numfmt.FormatOptions{
		UseGrouping:           !(focused && c.hide.HideGroupingSymbol),
		MinimumFractionDigits: minFD,
		MaximumFractionDigits: maxFD,
	})
}

// commit runs a committed pass: the value is clamped and rendered with the
// configured fraction digits. OnChange fires when forced or when the
// committed value differs from d.
func (c *Controller) commit(d decimal.Decimal, valid, forced bool) {
	if valid {
		clamped := d
		if !c.valueRange.Contains(d) {
			clamped = c.valueRange.Clamp(d)
			c.log.Debug("Value clamped",
				zap.Stringer("value", d),
				zap.Stringer("clamped", clamped),
			)
		}
		c.conform(c.format.FormatDefault(clamped), false)
	} else {
		c.conform("", false)
	}

	changed := valid != c.valid || (valid && d.Cmp(c.number) != 0)
	if forced || changed {
		c.notifyChange()
	}
}
