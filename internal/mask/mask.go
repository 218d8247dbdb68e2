package mask

import (
	"strings"

	"github.com/govalues/decimal"

	"github.com/muurk/numfield/internal/numfmt"
)

// Kind identifies the variant held by a Result.
type Kind int

const (
	// KindText means Result.Text is displayed verbatim.
	KindText Kind = iota
	// KindNumber means Result.Number was parsed with Result.FractionDigits
	// explicit fraction digits.
	KindNumber
)

// String returns a human-readable name for the kind
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	default:
		return "unknown"
	}
}

// Result is the outcome of conforming raw text to a mask.
type Result struct {
	Kind           Kind
	Text           string
	Number         decimal.Decimal
	FractionDigits string
}

// Text returns a verbatim-text result.
func Text(s string) Result {
	return Result{Kind: KindText, Text: s}
}

// Number returns a parsed-number result.
func Number(d decimal.Decimal, fractionDigits string) Result {
	return Result{Kind: KindNumber, Number: d, FractionDigits: fractionDigits}
}

// Strategy conforms edited text to a number mask.
type Strategy interface {
	Conform(raw, prior string) Result
}

// For selects the strategy for a configuration.
func For(f *numfmt.Format, autoDecimalDigits bool) Strategy {
	if autoDecimalDigits {
		return NewAutoDecimal(f)
	}
	return NewDefault(f)
}

// removeLeadingZeros strips leading zeros but keeps a single zero.
func removeLeadingZeros(digits string) string {
	trimmed := strings.TrimLeft(digits, "0")
	if trimmed == "" && digits != "" {
		return "0"
	}
	return trimmed
}

// dropLastRune returns s without its final rune.
func dropLastRune(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
