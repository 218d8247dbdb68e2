package numfmt

import (
	"testing"

	"github.com/govalues/decimal"
)

func mustFormat(t *testing.T, opts Options) *Format {
	t.Helper()
	f, err := New(opts)
	if err != nil {
		t.Fatalf("New(%+v) error = %v", opts, err)
	}
	return f
}

func intPtr(i int) *int { return &i }

func TestDeriveSymbols(t *testing.T) {
	tests := []struct {
		name           string
		locale         string
		currency       string
		wantPrefix     string
		wantSuffix     string
		wantNegPrefix  string
		wantGrouping   string
		wantDecimal    string
		wantDecimalLen int
	}{
		{"en-US dollars", "en-US", "USD", "$", "", "-$", ",", ".", 2},
		{"default locale dollars", "", "USD", "$", "", "-$", ",", ".", 2},
		{"de-DE euros", "de-DE", "EUR", "", "\u00a0€", "-", ".", ",", 2},
		{"en-US yen", "en-US", "JPY", "¥", "", "-¥", ",", ".", 0},
		{"en-US plain decimal", "en-US", "", "", "", "-", ",", ".", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sym, err := DeriveSymbols(tt.locale, tt.currency)
			if err != nil {
				t.Fatalf("DeriveSymbols() error = %v", err)
			}
			if sym.Prefix != tt.wantPrefix {
				t.Errorf("Prefix = %q, want %q", sym.Prefix, tt.wantPrefix)
			}
			if sym.Suffix != tt.wantSuffix {
				t.Errorf("Suffix = %q, want %q", sym.Suffix, tt.wantSuffix)
			}
			if sym.NegativePrefix != tt.wantNegPrefix {
				t.Errorf("NegativePrefix = %q, want %q", sym.NegativePrefix, tt.wantNegPrefix)
			}
			if sym.GroupingSymbol != tt.wantGrouping {
				t.Errorf("GroupingSymbol = %q, want %q", sym.GroupingSymbol, tt.wantGrouping)
			}
			if sym.DecimalSymbol != tt.wantDecimal {
				t.Errorf("DecimalSymbol = %q, want %q", sym.DecimalSymbol, tt.wantDecimal)
			}
			if sym.DecimalLength != tt.wantDecimalLen {
				t.Errorf("DecimalLength = %d, want %d", sym.DecimalLength, tt.wantDecimalLen)
			}
		})
	}
}

func TestDeriveSymbols_Invalid(t *testing.T) {
	if _, err := DeriveSymbols("not a locale!", "USD"); err == nil {
		t.Error("DeriveSymbols() with invalid locale should fail")
	}
	if _, err := DeriveSymbols("en-US", "DOLLARS"); err == nil {
		t.Error("DeriveSymbols() with invalid currency should fail")
	}
}

func TestNew_FractionDigits(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantMin int
		wantMax int
		wantDec string
	}{
		{"currency default", Options{Locale: "en-US", Currency: "USD"}, 2, 2, "."},
		{"explicit precision", Options{Locale: "en-US", Currency: "USD", Precision: intPtr(4)}, 4, 4, "."},
		{"zero precision drops decimal symbol", Options{Locale: "en-US", Currency: "USD", Precision: intPtr(0)}, 0, 0, ""},
		{"plain decimal", Options{Locale: "en-US"}, 0, 3, "."},
		{"yen", Options{Locale: "en-US", Currency: "JPY"}, 0, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := mustFormat(t, tt.opts)
			if f.MinimumFractionDigits != tt.wantMin || f.MaximumFractionDigits != tt.wantMax {
				t.Errorf("fraction digits = %d..%d, want %d..%d",
					f.MinimumFractionDigits, f.MaximumFractionDigits, tt.wantMin, tt.wantMax)
			}
			if f.DecimalSymbol != tt.wantDec {
				t.Errorf("DecimalSymbol = %q, want %q", f.DecimalSymbol, tt.wantDec)
			}
		})
	}
}

func TestNew_InvalidPrecision(t *testing.T) {
	for _, p := range []int{-1, decimal.MaxScale + 1} {
		if _, err := New(Options{Currency: "USD", Precision: intPtr(p)}); err == nil {
			t.Errorf("New() with precision %d should fail", p)
		}
	}
}

func TestFormat(t *testing.T) {
	usd := mustFormat(t, Options{Locale: "en-US", Currency: "USD"})
	eur := mustFormat(t, Options{Locale: "de-DE", Currency: "EUR"})

	tests := []struct {
		name  string
		f     *Format
		value string
		opts  FormatOptions
		want  string
	}{
		{"default dollars", usd, "1234", usd.DefaultOptions(), "$1,234.00"},
		{"negative dollars", usd, "-1234.5", usd.DefaultOptions(), "-$1,234.50"},
		{"millions", usd, "1234567.891", usd.DefaultOptions(), "$1,234,567.89"},
		{"no grouping", usd, "1234567", FormatOptions{MinimumFractionDigits: 0, MaximumFractionDigits: 2}, "$1234567"},
		{"trim to minimum", usd, "1.50", FormatOptions{UseGrouping: true, MinimumFractionDigits: 1, MaximumFractionDigits: 2}, "$1.5"},
		{"half away from zero", usd, "0.125", usd.DefaultOptions(), "$0.13"},
		{"negative half away from zero", usd, "-0.125", usd.DefaultOptions(), "-$0.13"},
		{"below half", usd, "0.124", usd.DefaultOptions(), "$0.12"},
		{"tie without fraction digits", usd, "2.5", FormatOptions{UseGrouping: true}, "$3"},
		{"rounding to zero is not negative", usd, "-0.001", usd.DefaultOptions(), "$0.00"},
		{"euros", eur, "1234.5", eur.DefaultOptions(), "1.234,50\u00a0€"},
		{"negative euros", eur, "-5", eur.DefaultOptions(), "-5,00\u00a0€"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.f.Format(decimal.MustParse(tt.value), tt.opts)
			if got != tt.want {
				t.Errorf("Format(%s) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	usd := mustFormat(t, Options{Locale: "en-US", Currency: "USD"})
	eur := mustFormat(t, Options{Locale: "de-DE", Currency: "EUR"})

	tests := []struct {
		name   string
		f      *Format
		text   string
		want   string
		wantOK bool
	}{
		{"grouped dollars", usd, "$1,234.56", "1234.56", true},
		{"ungrouped dollars", usd, "1234.5", "1234.5", true},
		{"negative dollars", usd, "-$1,234", "-1234", true},
		{"bare minus", usd, "-12", "-12", true},
		{"trailing decimal", usd, "$12.", "12", true},
		{"zero", usd, "$0.00", "0", true},
		{"empty", usd, "", "", false},
		{"misplaced grouping", usd, "$12,34", "", false},
		{"leading zero", usd, "$012", "", false},
		{"leading decimal", usd, ".5", "", false},
		{"letters", usd, "$12a", "", false},
		{"euros", eur, "1.234,56\u00a0€", "1234.56", true},
		{"negative euros", eur, "-1.234,56\u00a0€", "-1234.56", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.f.Parse(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("Parse(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
			}
			if ok && got.Cmp(decimal.MustParse(tt.want)) != 0 {
				t.Errorf("Parse(%q) = %v, want %s", tt.text, got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	usd := mustFormat(t, Options{Locale: "en-US", Currency: "USD"})

	for _, v := range []string{"0", "1", "-1", "0.5", "1234.56", "-987654.32", "1000000"} {
		t.Run(v, func(t *testing.T) {
			d := decimal.MustParse(v)
			got, ok := usd.Parse(usd.FormatDefault(d))
			if !ok {
				t.Fatalf("Parse(FormatDefault(%s)) failed", v)
			}
			if got.Cmp(d) != 0 {
				t.Errorf("Parse(FormatDefault(%s)) = %v", v, got)
			}
		})
	}
}

func TestNormalizeDecimalSymbol(t *testing.T) {
	usd := mustFormat(t, Options{Locale: "en-US", Currency: "USD"})
	eur := mustFormat(t, Options{Locale: "de-DE", Currency: "EUR"})

	tests := []struct {
		name string
		f    *Format
		text string
		at   int
		want string
	}{
		{"comma typed in en-US", usd, "$12,", 3, "$12."},
		{"period typed in de-DE", eur, "12.", 2, "12,"},
		{"arabic separator", usd, "$12٫", 3, "$12."},
		{"grouping before offset untouched", usd, "$1,234,", 6, "$1,234."},
		{"no variant at offset", usd, "$12,3", 2, "$12,3"},
		{"offset out of range", usd, "$12", 7, "$12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.NormalizeDecimalSymbol(tt.text, tt.at); got != tt.want {
				t.Errorf("NormalizeDecimalSymbol(%q, %d) = %q, want %q", tt.text, tt.at, got, tt.want)
			}
		})
	}
}

func TestStringHelpers(t *testing.T) {
	usd := mustFormat(t, Options{Locale: "en-US", Currency: "USD"})

	if got := usd.OnlyDigits("-$1,234.5x6"); got != "123456" {
		t.Errorf("OnlyDigits() = %q, want %q", got, "123456")
	}
	if !usd.IsNegative("-$5") || !usd.IsNegative("-5") || usd.IsNegative("$5") {
		t.Error("IsNegative() misclassified input")
	}
	if got := usd.StripCurrencySymbol("-$5"); got != "-5" {
		t.Errorf("StripCurrencySymbol() = %q, want %q", got, "-5")
	}
	if got := usd.StripMinusSymbol("-5"); got != "5" {
		t.Errorf("StripMinusSymbol() = %q, want %q", got, "5")
	}
	if got := usd.InsertCurrencySymbol("5", true); got != "-$5" {
		t.Errorf("InsertCurrencySymbol() = %q, want %q", got, "-$5")
	}
	if !usd.IsFractionIncomplete("1,234.") || usd.IsFractionIncomplete("1,234.5") || usd.IsFractionIncomplete("12,34.") {
		t.Error("IsFractionIncomplete() misclassified input")
	}
}

func TestSafeCeiling(t *testing.T) {
	usd := mustFormat(t, Options{Currency: "USD"})
	want := decimal.MustParse("99999999999999999")
	if got := usd.SafeCeiling(); got.Cmp(want) != 0 {
		t.Errorf("SafeCeiling() = %v, want %v", got, want)
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		value string
		scale int
		want  string
	}{
		{"2.5", 0, "3"},
		{"-2.5", 0, "-3"},
		{"2.4", 0, "2"},
		{"0.125", 2, "0.13"},
		{"1.005", 2, "1.01"},
		{"9.995", 2, "10"},
		{"1.5", 3, "1.5"},
		{"-0.004", 2, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got := Round(decimal.MustParse(tt.value), tt.scale)
			if got.Cmp(decimal.MustParse(tt.want)) != 0 {
				t.Errorf("Round(%s, %d) = %v, want %s", tt.value, tt.scale, got, tt.want)
			}
		})
	}

	if got := Round(decimal.MustParse("-0.004"), 2); got.IsNeg() {
		t.Errorf("Round(-0.004, 2) = %v, want unsigned zero", got)
	}
}

func TestShift(t *testing.T) {
	tests := []struct {
		value string
		exp   int
		want  string
	}{
		{"1050", -2, "10.5"},
		{"10.5", 2, "1050"},
		{"0.05", 2, "5"},
		{"5", -3, "0.005"},
		{"-123.45", 2, "-12345"},
		{"0", 5, "0"},
		{"7", 0, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := Shift(decimal.MustParse(tt.value), tt.exp)
			if err != nil {
				t.Fatalf("Shift() error = %v", err)
			}
			if got.Cmp(decimal.MustParse(tt.want)) != 0 {
				t.Errorf("Shift(%s, %d) = %v, want %s", tt.value, tt.exp, got, tt.want)
			}
		})
	}

	if _, err := Shift(decimal.MustParse("9999999999999999999"), 2); err == nil {
		t.Error("Shift() beyond decimal precision should fail")
	}
}
