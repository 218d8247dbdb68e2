package numfmt

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en-US"

// noBreakSpace separates a currency symbol from the amount in locales that
// place the symbol apart from the digits.
const noBreakSpace = "\u00a0"

// sampleNumber is rendered to discover grouping and decimal symbols. It has
// enough integer digits to expose both the primary and secondary group size.
const sampleNumber = 1234567.5

// Symbols holds the locale metadata derived from a sample rendering.
type Symbols struct {
	Prefix           string // Rendered before positive amounts (e.g. "$")
	Suffix           string // Rendered after all amounts (e.g. " €")
	NegativePrefix   string // Rendered before negative amounts (e.g. "-$")
	MinusSymbol      string // Locale minus glyph
	GroupingSymbol   string // Thousands separator, empty if the locale does not group
	DecimalSymbol    string // Fraction separator
	PrimaryGroupSize int    // Digits in the rightmost group (3 for most locales)
	GroupSize        int    // Digits in every other group (2 for en-IN)
	DecimalLength    int    // Standard fraction digits of the currency, -1 without currency
	Digits           [10]string
}

// placement describes where a locale renders the currency symbol.
type placement int

const (
	placePrefix       placement = iota // ¤#,##0.00
	placePrefixSpaced                  // ¤ #,##0.00
	placeSuffixSpaced                  // #,##0.00 ¤
)

// currencyPlacements maps a language (or language-region) to its currency
// pattern. Languages not listed use placePrefix.
var currencyPlacements = map[string]placement{
	"bg": placeSuffixSpaced,
	"ca": placeSuffixSpaced,
	"cs": placeSuffixSpaced,
	"da": placeSuffixSpaced,
	"de": placeSuffixSpaced,
	"el": placeSuffixSpaced,
	"es": placeSuffixSpaced,
	"et": placeSuffixSpaced,
	"fi": placeSuffixSpaced,
	"fr": placeSuffixSpaced,
	"hr": placeSuffixSpaced,
	"hu": placeSuffixSpaced,
	"is": placeSuffixSpaced,
	"it": placeSuffixSpaced,
	"lt": placeSuffixSpaced,
	"lv": placeSuffixSpaced,
	"nb": placeSuffixSpaced,
	"no": placeSuffixSpaced,
	"pl": placeSuffixSpaced,
	"ro": placeSuffixSpaced,
	"ru": placeSuffixSpaced,
	"sk": placeSuffixSpaced,
	"sl": placeSuffixSpaced,
	"sv": placeSuffixSpaced,
	"uk": placeSuffixSpaced,
	"vi": placeSuffixSpaced,
	"nl": placePrefixSpaced,
	"pt": placePrefixSpaced,

	"de-AT": placePrefixSpaced,
	"de-CH": placePrefixSpaced,
	"pt-PT": placeSuffixSpaced,
}

// ParseLocale parses a BCP 47 locale, defaulting to DefaultLocale when empty.
func ParseLocale(locale string) (language.Tag, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return tag, nil
}

// DeriveSymbols derives prefix, suffix and separator symbols for a locale and
// an optional ISO 4217 currency code. It has no side effects.
func DeriveSymbols(locale, currencyCode string) (Symbols, error) {
	tag, err := ParseLocale(locale)
	if err != nil {
		return Symbols{}, err
	}

	p := message.NewPrinter(tag)

	sym := Symbols{
		MinusSymbol:      "-",
		GroupingSymbol:   ",",
		DecimalSymbol:    ".",
		PrimaryGroupSize: 3,
		GroupSize:        3,
		DecimalLength:    -1,
		Digits:           localDigits(p),
	}

	sample := normalizeWith(sym.Digits, p.Sprint(number.Decimal(sampleNumber, number.MinFractionDigits(1))))
	deriveSeparators(&sym, sample)

	if currencyCode == "" {
		sym.NegativePrefix = sym.MinusSymbol
		return sym, nil
	}

	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return Symbols{}, fmt.Errorf("invalid currency %q: %w", currencyCode, err)
	}

	scale, _ := currency.Standard.Rounding(unit)
	sym.DecimalLength = scale

	symbol := strings.TrimSpace(p.Sprint(currency.NarrowSymbol(unit)))
	if symbol == "" {
		symbol = unit.String()
	}

	switch placementFor(tag) {
	case placeSuffixSpaced:
		sym.Suffix = noBreakSpace + symbol
		sym.NegativePrefix = sym.MinusSymbol
	case placePrefixSpaced:
		sym.Prefix = symbol + noBreakSpace
		sym.NegativePrefix = sym.Prefix + sym.MinusSymbol
	default:
		sym.Prefix = symbol
		sym.NegativePrefix = sym.MinusSymbol + symbol
	}

	return sym, nil
}

// placementFor resolves the currency placement for a tag, preferring an
// exact language-region entry over the bare language.
func placementFor(tag language.Tag) placement {
	base, _ := tag.Base()
	region, conf := tag.Region()
	if conf == language.Exact {
		if p, ok := currencyPlacements[base.String()+"-"+region.String()]; ok {
			return p
		}
	}
	return currencyPlacements[base.String()]
}

// localDigits renders 0-9 in the printer's numbering system. Locales whose
// digits do not render as single runes fall back to ASCII.
func localDigits(p *message.Printer) [10]string {
	var digits [10]string
	for i := range digits {
		d := p.Sprint(number.Decimal(i))
		if utf8.RuneCountInString(d) != 1 {
			return asciiDigits
		}
		digits[i] = d
	}
	return digits
}

var asciiDigits = [10]string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}

// normalizeWith maps locale digits to ASCII digits.
func normalizeWith(digits [10]string, s string) string {
	if digits == asciiDigits {
		return s
	}
	pairs := make([]string, 0, 20)
	for i, d := range digits {
		pairs = append(pairs, d, asciiDigits[i])
	}
	return strings.NewReplacer(pairs...).Replace(s)
}

// deriveSeparators reads the grouping symbol, decimal symbol and group sizes
// from the rendered sample "1?234?567?5".
func deriveSeparators(sym *Symbols, sample string) {
	runes := []rune(sample)

	first := indexRune(runes, '1')
	seven := indexRune(runes, '7')
	five := lastIndexRune(runes, '5')
	if first < 0 || seven < 0 || five <= seven+1 {
		return
	}

	sym.DecimalSymbol = string(runes[seven+1 : five])

	integer := runes[first : seven+1]
	sym.GroupingSymbol = ""
	for _, r := range integer {
		if r < '0' || r > '9' {
			sym.GroupingSymbol = string(r)
			break
		}
	}
	if sym.GroupingSymbol == "" {
		return
	}

	groups := strings.Split(string(integer), sym.GroupingSymbol)
	sym.PrimaryGroupSize = len(groups[len(groups)-1])
	sym.GroupSize = sym.PrimaryGroupSize
	if len(groups) > 2 {
		sym.GroupSize = len(groups[len(groups)-2])
	}
}

func indexRune(runes []rune, r rune) int {
	for i, c := range runes {
		if c == r {
			return i
		}
	}
	return -1
}

func lastIndexRune(runes []rune, r rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == r {
			return i
		}
	}
	return -1
}
