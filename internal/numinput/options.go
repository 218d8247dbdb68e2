package numinput

import (
	"github.com/govalues/decimal"
)

// DistractionFree selects which parts of the formatting are hidden while the
// field has focus.
type DistractionFree struct {
	HideCurrencySymbol          bool
	HideNegligibleDecimalDigits bool
	HideGroupingSymbol          bool
}

var (
	// DistractionFreeAll hides every optional part of the formatting on focus.
	DistractionFreeAll = DistractionFree{
		HideCurrencySymbol:          true,
		HideNegligibleDecimalDigits: true,
		HideGroupingSymbol:          true,
	}

	// DistractionFreeNone keeps the full formatting on focus.
	DistractionFreeNone = DistractionFree{}
)

// Any reports whether at least one flag is set.
func (d DistractionFree) Any() bool {
	return d.HideCurrencySymbol || d.HideNegligibleDecimalDigits || d.HideGroupingSymbol
}

// ValueRange bounds committed values. A nil bound is open and falls back to
// the format's safe ceiling.
type ValueRange struct {
	Min *decimal.Decimal
	Max *decimal.Decimal
}

// Options configures a Controller.
type Options struct {
	Locale   string // BCP 47 tag, empty for en-US
	Currency string // ISO 4217 code, empty for plain decimal numbers

	// ValueAsInteger exposes values scaled by 10^MaximumFractionDigits.
	ValueAsInteger bool

	DistractionFree DistractionFree

	// Precision fixes the number of fraction digits. Nil uses the currency's
	// standard digits.
	Precision *int

	// AutoDecimalDigits shifts typed digits in from the right so the decimal
	// symbol is never typed. It disables HideNegligibleDecimalDigits.
	AutoDecimalDigits bool

	ValueRange    ValueRange
	AllowNegative bool
}

// DefaultOptions returns the options used when nothing else is configured:
// en-US plain decimals, full distraction-free mode and negative values
// allowed.
func DefaultOptions() Options {
	return Options{
		DistractionFree: DistractionFreeAll,
		AllowNegative:   true,
	}
}
