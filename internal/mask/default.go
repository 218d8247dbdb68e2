package mask

import (
	"strings"

	"github.com/govalues/decimal"

	"github.com/muurk/numfield/internal/numfmt"
)

// Default conforms free-form numeric entry where the user types the decimal
// symbol explicitly.
type Default struct {
	format *numfmt.Format
}

// NewDefault creates a Default strategy for f.
func NewDefault(f *numfmt.Format) *Default {
	return &Default{format: f}
}

// Conform implements Strategy.
func (m *Default) Conform(raw, prior string) Result {
	f := m.format

	negative := f.IsNegative(raw)
	value := f.StripMinusSymbol(f.StripCurrencySymbol(raw))

	if incomplete, ok := m.incomplete(value, negative, prior); ok {
		return Text(incomplete)
	}

	integer, fraction, hasFraction := value, "", false
	if f.DecimalSymbol != "" {
		parts := strings.Split(value, f.DecimalSymbol)
		integer = parts[0]
		if len(parts) > 1 {
			fraction = strings.Join(parts[1:], "")
			hasFraction = true
		}
	}

	integerDigits := removeLeadingZeros(f.OnlyDigits(integer))
	fractionDigits := truncate(f.OnlyDigits(fraction), f.MaximumFractionDigits)

	invalidFraction := hasFraction && fractionDigits == ""
	invalidNegative := integerDigits == "" && negative &&
		(prior == dropLastRune(raw) || prior != f.NegativePrefix)
	if invalidFraction || invalidNegative {
		return Text(prior)
	}

	if integerDigits == "" {
		return Text("")
	}

	literal := integerDigits
	if fractionDigits != "" {
		literal += "." + fractionDigits
	}
	if negative {
		literal = "-" + literal
	}
	d, err := decimal.Parse(literal)
	if err != nil {
		// More digits than a decimal can hold: keep what was displayed.
		return Text(prior)
	}
	if negative && d.IsZero() {
		// A decimal has no negative zero; "-0.0" stays text until a
		// significant digit makes it a negative number.
		body := integerDigits
		if hasFraction {
			body += f.DecimalSymbol + fractionDigits
		}
		return Text(f.InsertCurrencySymbol(body, true))
	}
	return Number(d, fractionDigits)
}

// incomplete handles states that are not yet a number but must survive the
// keystroke: a lone minus sign, a trailing decimal symbol, and a leading
// decimal symbol.
func (m *Default) incomplete(value string, negative bool, prior string) (string, bool) {
	f := m.format

	if value == "" && negative && prior != f.NegativePrefix {
		return f.NegativePrefix + f.Suffix, true
	}
	if f.MaximumFractionDigits == 0 || f.DecimalSymbol == "" {
		return "", false
	}
	if f.IsFractionIncomplete(value) {
		return f.InsertCurrencySymbol(value, negative), true
	}
	if rest, ok := strings.CutPrefix(value, f.DecimalSymbol); ok {
		digits := truncate(f.OnlyDigits(rest), f.MaximumFractionDigits)
		return f.InsertCurrencySymbol("0"+f.DecimalSymbol+digits, negative), true
	}
	return "", false
}
