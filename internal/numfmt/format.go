package numfmt

import (
	"fmt"
	"strings"

	"github.com/govalues/decimal"
)

// DecimalSymbols lists every character accepted as a typed decimal symbol,
// regardless of locale.
var DecimalSymbols = []string{",", ".", "٫"}

// Options configures a Format.
type Options struct {
	Locale    string // BCP 47 tag, empty for DefaultLocale
	Currency  string // ISO 4217 code, empty for plain decimal numbers
	Precision *int   // Fixed fraction digits, nil for the currency/locale default
}

// FormatOptions controls a single rendering.
type FormatOptions struct {
	UseGrouping           bool
	MinimumFractionDigits int
	MaximumFractionDigits int
}

// Format is a locale number/currency formatter. Its fields are read-only
// after New returns.
type Format struct {
	Locale   string
	Currency string

	Prefix         string
	Suffix         string
	NegativePrefix string
	MinusSymbol    string
	DecimalSymbol  string
	GroupingSymbol string

	MinimumFractionDigits int
	MaximumFractionDigits int

	primaryGroupSize int
	groupSize        int
	digits           [10]string
}

// New creates a Format for the given options.
func New(opts Options) (*Format, error) {
	sym, err := DeriveSymbols(opts.Locale, opts.Currency)
	if err != nil {
		return nil, err
	}

	f := &Format{
		Locale:           opts.Locale,
		Currency:         strings.ToUpper(opts.Currency),
		Prefix:           sym.Prefix,
		Suffix:           sym.Suffix,
		NegativePrefix:   sym.NegativePrefix,
		MinusSymbol:      sym.MinusSymbol,
		DecimalSymbol:    sym.DecimalSymbol,
		GroupingSymbol:   sym.GroupingSymbol,
		primaryGroupSize: sym.PrimaryGroupSize,
		groupSize:        sym.GroupSize,
		digits:           sym.Digits,
	}
	if f.Locale == "" {
		f.Locale = DefaultLocale
	}

	switch {
	case opts.Precision != nil:
		if *opts.Precision < 0 || *opts.Precision > decimal.MaxScale {
			return nil, fmt.Errorf("precision must be between 0 and %d, got %d", decimal.MaxScale, *opts.Precision)
		}
		f.MinimumFractionDigits = *opts.Precision
		f.MaximumFractionDigits = *opts.Precision
	case sym.DecimalLength >= 0:
		f.MinimumFractionDigits = sym.DecimalLength
		f.MaximumFractionDigits = sym.DecimalLength
	default:
		f.MinimumFractionDigits = 0
		f.MaximumFractionDigits = 3
	}

	if f.MaximumFractionDigits == 0 {
		f.DecimalSymbol = ""
		f.MinimumFractionDigits = 0
	}

	return f, nil
}

// SafeCeiling returns the largest integer the format can carry exactly: a
// decimal has decimal.MaxPrec digits, of which MaximumFractionDigits are
// reserved for the fraction.
func (f *Format) SafeCeiling() decimal.Decimal {
	n := decimal.MaxPrec - f.MaximumFractionDigits
	if n < 1 {
		n = 1
	}
	return decimal.MustParse(strings.Repeat("9", n))
}

// DefaultOptions returns the rendering options configured for the format.
func (f *Format) DefaultOptions() FormatOptions {
	return FormatOptions{
		UseGrouping:           true,
		MinimumFractionDigits: f.MinimumFractionDigits,
		MaximumFractionDigits: f.MaximumFractionDigits,
	}
}

// FormatDefault renders d with the configured fraction digits and grouping.
func (f *Format) FormatDefault(d decimal.Decimal) string {
	return f.Format(d, f.DefaultOptions())
}

// Format renders d. The value is rounded half away from zero to
// MaximumFractionDigits and trailing zeros are trimmed down to
// MinimumFractionDigits.
func (f *Format) Format(d decimal.Decimal, opts FormatOptions) string {
	maxFD := opts.MaximumFractionDigits
	if maxFD < 0 {
		maxFD = 0
	}
	if maxFD > decimal.MaxScale {
		maxFD = decimal.MaxScale
	}
	minFD := opts.MinimumFractionDigits
	if minFD < 0 {
		minFD = 0
	}
	if minFD > maxFD {
		minFD = maxFD
	}

	r := Round(d, maxFD)
	negative := r.IsNeg()

	integer, fraction := splitPoint(r.Abs().String())
	fraction = strings.TrimRight(fraction, "0")
	if len(fraction) < minFD {
		fraction += strings.Repeat("0", minFD-len(fraction))
	}

	if opts.UseGrouping {
		integer = f.group(integer)
	}

	body := integer
	if fraction != "" && f.DecimalSymbol != "" {
		body += f.DecimalSymbol + fraction
	}
	body = f.localizeDigits(body)

	if negative {
		return f.NegativePrefix + body + f.Suffix
	}
	return f.Prefix + body + f.Suffix
}

// Parse converts text back to a number. It returns false for empty text and
// for anything that is not a rendering the format could have produced
// (ignoring currency symbols, grouping and missing fraction padding).
func (f *Format) Parse(text string) (decimal.Decimal, bool) {
	if text == "" {
		return decimal.Decimal{}, false
	}

	negative := f.IsNegative(text)
	s := f.NormalizeDigits(text)
	s = f.StripCurrencySymbol(s)
	s = f.StripMinusSymbol(s)

	integer, fraction := s, ""
	if f.DecimalSymbol != "" {
		if i := strings.Index(s, f.DecimalSymbol); i >= 0 {
			integer, fraction = s[:i], s[i+len(f.DecimalSymbol):]
		}
	}

	if !isDigits(fraction) || !f.isValidInteger(integer) {
		return decimal.Decimal{}, false
	}

	literal := f.stripGrouping(integer)
	if fraction != "" {
		literal += "." + fraction
	}
	if negative {
		literal = "-" + literal
	}

	d, err := decimal.Parse(literal)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// NormalizeDecimalSymbol rewrites a decimal symbol variant typed at the
// rune offset at into the locale decimal symbol. Text without a variant at
// that offset is returned unchanged.
func (f *Format) NormalizeDecimalSymbol(text string, at int) string {
	if f.DecimalSymbol == "" {
		return text
	}
	runes := []rune(text)
	if at < 0 || at >= len(runes) {
		return text
	}
	typed := string(runes[at])
	for _, s := range DecimalSymbols {
		if typed == s {
			return string(runes[:at]) + f.DecimalSymbol + string(runes[at+1:])
		}
	}
	return text
}

// NormalizeDigits maps locale digits to ASCII digits.
func (f *Format) NormalizeDigits(text string) string {
	return normalizeWith(f.digits, text)
}

// OnlyDigits returns the ASCII digits of text, in order.
func (f *Format) OnlyDigits(text string) string {
	text = f.NormalizeDigits(text)
	var b strings.Builder
	for i := 0; i < len(text); i++ {
		if c := text[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// IsNegative reports whether text starts with the negative prefix or a minus.
func (f *Format) IsNegative(text string) bool {
	if f.NegativePrefix != "" && strings.HasPrefix(text, f.NegativePrefix) {
		return true
	}
	return strings.HasPrefix(strings.Replace(text, "-", f.MinusSymbol, 1), f.MinusSymbol)
}

// StripCurrencySymbol removes the first prefix and suffix occurrence.
func (f *Format) StripCurrencySymbol(text string) string {
	if f.Prefix != "" {
		text = strings.Replace(text, f.Prefix, "", 1)
	}
	if f.Suffix != "" {
		text = strings.Replace(text, f.Suffix, "", 1)
	}
	return text
}

// StripMinusSymbol removes the first minus sign, ASCII or locale glyph.
func (f *Format) StripMinusSymbol(text string) string {
	return strings.Replace(strings.Replace(text, "-", f.MinusSymbol, 1), f.MinusSymbol, "", 1)
}

// InsertCurrencySymbol wraps a bare number in the prefix (or negative
// prefix) and suffix.
func (f *Format) InsertCurrencySymbol(text string, negative bool) string {
	if negative {
		return f.NegativePrefix + text + f.Suffix
	}
	return f.Prefix + text + f.Suffix
}

// IsFractionIncomplete reports whether text is an integer immediately
// followed by a trailing decimal symbol (e.g. "1,234.").
func (f *Format) IsFractionIncomplete(text string) bool {
	if f.DecimalSymbol == "" {
		return false
	}
	text = f.NormalizeDigits(text)
	integer, ok := strings.CutSuffix(text, f.DecimalSymbol)
	if !ok || strings.Contains(integer, f.DecimalSymbol) {
		return false
	}
	return f.isValidInteger(integer)
}

// isValidInteger accepts "0" or a number without leading zeros, either
// ungrouped or grouped exactly as the locale groups it.
func (f *Format) isValidInteger(integer string) bool {
	plain := f.stripGrouping(integer)
	if plain == "" || !isDigits(plain) || (len(plain) > 1 && plain[0] == '0') {
		return false
	}
	return integer == plain || integer == f.group(plain)
}

func (f *Format) stripGrouping(s string) string {
	if f.GroupingSymbol == "" {
		return s
	}
	return strings.ReplaceAll(s, f.GroupingSymbol, "")
}

// group inserts grouping symbols into a string of ASCII digits.
func (f *Format) group(digits string) string {
	if f.GroupingSymbol == "" || f.primaryGroupSize <= 0 || len(digits) <= f.primaryGroupSize {
		return digits
	}

	head := digits[:len(digits)-f.primaryGroupSize]
	groups := []string{digits[len(digits)-f.primaryGroupSize:]}
	size := f.groupSize
	if size <= 0 {
		size = f.primaryGroupSize
	}
	for len(head) > size {
		groups = append(groups, head[len(head)-size:])
		head = head[:len(head)-size]
	}
	groups = append(groups, head)

	var b strings.Builder
	for i := len(groups) - 1; i >= 0; i-- {
		b.WriteString(groups[i])
		if i > 0 {
			b.WriteString(f.GroupingSymbol)
		}
	}
	return b.String()
}

func (f *Format) localizeDigits(s string) string {
	if f.digits == asciiDigits {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteString(f.digits[r-'0'])
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Shift returns d * 10^exp, computed by moving the decimal point so no
// precision is lost. It fails when the result needs more than
// decimal.MaxPrec digits.
func Shift(d decimal.Decimal, exp int) (decimal.Decimal, error) {
	if exp == 0 {
		return d, nil
	}

	integer, fraction := splitPoint(d.Abs().String())
	digits := integer + fraction
	point := len(integer) + exp

	switch {
	case point <= 0:
		digits = strings.Repeat("0", 1-point) + digits
		point = 1
	case point > len(digits):
		digits += strings.Repeat("0", point-len(digits))
	}

	literal := digits[:point]
	if point < len(digits) {
		literal += "." + strings.TrimRight(digits[point:], "0")
		literal = strings.TrimSuffix(literal, ".")
	}
	literal = strings.TrimLeft(literal, "0")
	if literal == "" || literal[0] == '.' {
		literal = "0" + literal
	}
	if d.IsNeg() {
		literal = "-" + literal
	}

	r, err := decimal.Parse(literal)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("shift %v by 10^%d: %w", d, exp, err)
	}
	return r, nil
}

// splitPoint splits a plain decimal literal at its point.
func splitPoint(s string) (integer, fraction string) {
	integer, fraction, _ = strings.Cut(s, ".")
	return integer, fraction
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Round rounds d to scale fraction digits with ties away from zero, as
// locale number formatting does. decimal.Decimal.Round breaks ties to even.
func Round(d decimal.Decimal, scale int) decimal.Decimal {
	if scale >= d.Scale() {
		return d
	}
	abs := d.Abs()
	r := abs.Trunc(scale)
	rem, err := abs.Sub(r)
	if err != nil {
		return d.Round(scale)
	}
	if rem.Cmp(decimal.MustNew(5, scale+1)) >= 0 {
		if r, err = r.Add(decimal.MustNew(1, scale)); err != nil {
			return d.Round(scale)
		}
	}
	if d.IsNeg() && !r.IsZero() {
		r = r.Neg()
	}
	return r
}
