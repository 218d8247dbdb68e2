// Package numfmt formats and parses locale-aware numbers and currency amounts.
//
// A Format is built once per field configuration from a BCP 47 locale, an
// optional ISO 4217 currency code and an optional precision. It exposes the
// locale metadata the input controller needs (prefix, suffix, grouping and
// decimal symbols, fraction-digit bounds) together with the string
// operations used while conforming typed text.
//
// # Locale Introspection
//
// Symbols are not hard-coded per locale. DeriveSymbols renders a sample
// number through golang.org/x/text/message and reads the grouping symbol,
// decimal symbol, group sizes and native digits back out of the rendering:
//
//	sym, err := numfmt.DeriveSymbols("de-DE", "EUR")
//	// sym.GroupingSymbol == "."
//	// sym.DecimalSymbol  == ","
//	// sym.Suffix         == " €"
//
// # Numeric Type
//
// Values are github.com/govalues/decimal decimals. Rounding to the
// configured fraction digits is half away from zero. The largest magnitude a
// Format can render exactly is reported by SafeCeiling.
//
// # Usage Example
//
//	f, err := numfmt.New(numfmt.Options{Locale: "en-US", Currency: "USD"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	d, _ := f.Parse("$1,234.5")
//	fmt.Println(f.FormatDefault(d)) // $1,234.50
package numfmt
