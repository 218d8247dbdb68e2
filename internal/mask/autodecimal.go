package mask

import (
	"strings"

	"github.com/govalues/decimal"

	"github.com/muurk/numfield/internal/numfmt"
)

// AutoDecimal conforms entry with a fixed number of fraction digits. The
// decimal symbol is never typed; every digit shifts the value left by one
// place.
type AutoDecimal struct {
	format *numfmt.Format
}

// NewAutoDecimal creates an AutoDecimal strategy for f.
func NewAutoDecimal(f *numfmt.Format) *AutoDecimal {
	return &AutoDecimal{format: f}
}

// Conform implements Strategy.
func (m *AutoDecimal) Conform(raw, prior string) Result {
	f := m.format
	scale := f.MaximumFractionDigits

	if raw == "" {
		return Text("")
	}

	// Deleting the last digit of a zero amount clears the field.
	if zero, ok := f.Parse(prior); ok && zero.IsZero() &&
		dropLastRune(f.StripCurrencySymbol(prior)) == f.StripCurrencySymbol(raw) {
		return Text("")
	}

	negative := f.IsNegative(raw)
	digits := removeLeadingZeros(f.OnlyDigits(raw))

	if strings.Trim(digits, "0") == "" {
		if negative {
			// A decimal has no negative zero; keep the sign as text until the
			// first significant digit arrives.
			zero := f.Format(decimal.Decimal{}, numfmt.FormatOptions{
				MinimumFractionDigits: scale,
				MaximumFractionDigits: scale,
			})
			return Text(f.InsertCurrencySymbol(f.StripCurrencySymbol(zero), true))
		}
		digits = "0"
	}

	literal := digits
	if negative {
		literal = "-" + literal
	}
	n, err := decimal.Parse(literal)
	if err != nil {
		return Text(prior)
	}
	d, err := numfmt.Shift(n, -scale)
	if err != nil {
		return Text(prior)
	}

	return Number(d, fractionDigits(digits, scale))
}

// fractionDigits returns the last scale digits of an unscaled digit string,
// left-padded with zeros.
func fractionDigits(digits string, scale int) string {
	if scale == 0 {
		return ""
	}
	if len(digits) < scale {
		digits = strings.Repeat("0", scale-len(digits)) + digits
	}
	return digits[len(digits)-scale:]
}
