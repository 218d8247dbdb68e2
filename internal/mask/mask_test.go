package mask

import (
	"strings"
	"testing"

	"github.com/govalues/decimal"

	"github.com/muurk/numfield/internal/numfmt"
)

func newFormat(t *testing.T, opts numfmt.Options) *numfmt.Format {
	t.Helper()
	f, err := numfmt.New(opts)
	if err != nil {
		t.Fatalf("numfmt.New(%+v) error = %v", opts, err)
	}
	return f
}

type want struct {
	kind     Kind
	text     string
	number   string
	fraction string
}

func checkResult(t *testing.T, got Result, w want) {
	t.Helper()
	if got.Kind != w.kind {
		t.Fatalf("Kind = %v, want %v (result %+v)", got.Kind, w.kind, got)
	}
	switch w.kind {
	case KindText:
		if got.Text != w.text {
			t.Errorf("Text = %q, want %q", got.Text, w.text)
		}
	case KindNumber:
		if got.Number.Cmp(decimal.MustParse(w.number)) != 0 {
			t.Errorf("Number = %v, want %s", got.Number, w.number)
		}
		if got.FractionDigits != w.fraction {
			t.Errorf("FractionDigits = %q, want %q", got.FractionDigits, w.fraction)
		}
	}
}

func TestDefault_Conform(t *testing.T) {
	usd := newFormat(t, numfmt.Options{Locale: "en-US", Currency: "USD"})
	m := NewDefault(usd)

	tests := []struct {
		name  string
		raw   string
		prior string
		want  want
	}{
		{"plain digits", "1234", "", want{kind: KindNumber, number: "1234"}},
		{"grouped digits", "$1,2345", "$1,234", want{kind: KindNumber, number: "12345"}},
		{"leading zeros removed", "$007", "$0", want{kind: KindNumber, number: "7"}},
		{"negative number", "-$12", "$12", want{kind: KindNumber, number: "-12"}},
		{"fraction digits", "$1.5", "$1.", want{kind: KindNumber, number: "1.5", fraction: "5"}},
		{"fraction truncated to maximum", "$1.234", "$1.23", want{kind: KindNumber, number: "1.23", fraction: "23"}},
		{"lone minus", "-", "", want{kind: KindText, text: "-$"}},
		{"minus removed from lone prefix", "-$", "-$", want{kind: KindText, text: ""}},
		{"trailing decimal", "$1,234.", "$1,234", want{kind: KindText, text: "$1,234."}},
		{"negative trailing decimal", "-$5.", "-$5", want{kind: KindText, text: "-$5."}},
		{"negative zero keeps sign", "-$0", "-$", want{kind: KindText, text: "-$0"}},
		{"negative zero leading zeros", "-$00", "-$0", want{kind: KindText, text: "-$0"}},
		{"negative zero trailing decimal", "-$0.", "-$0", want{kind: KindText, text: "-$0."}},
		{"negative zero fraction keeps sign", "-$0.0", "-$0.", want{kind: KindText, text: "-$0.0"}},
		{"negative fraction below one", "-$0.05", "-$0.0", want{kind: KindNumber, number: "-0.05", fraction: "05"}},
		{"leading decimal", ".5", "", want{kind: KindText, text: "$0.5"}},
		{"leading decimal truncated", ".567", "", want{kind: KindText, text: "$0.56"}},
		{"invalid fraction keeps prior", "$1.x", "$1.", want{kind: KindText, text: "$1."}},
		{"only currency symbol", "$", "$1", want{kind: KindText, text: ""}},
		{"overflow keeps prior", "$" + strings.Repeat("9", 25), "$99", want{kind: KindText, text: "$99"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkResult(t, m.Conform(tt.raw, tt.prior), tt.want)
		})
	}
}

func TestDefault_ConformWithoutFraction(t *testing.T) {
	jpy := newFormat(t, numfmt.Options{Locale: "en-US", Currency: "JPY"})
	m := NewDefault(jpy)

	checkResult(t, m.Conform("¥1,2345", "¥1,234"), want{kind: KindNumber, number: "12345"})
	checkResult(t, m.Conform("-", ""), want{kind: KindText, text: "-¥"})
	checkResult(t, m.Conform("-¥0", "-¥"), want{kind: KindText, text: "-¥0"})
}

func TestAutoDecimal_Conform(t *testing.T) {
	usd := newFormat(t, numfmt.Options{Locale: "en-US", Currency: "USD"})
	m := NewAutoDecimal(usd)

	tests := []struct {
		name  string
		raw   string
		prior string
		want  want
	}{
		{"first digit", "1", "", want{kind: KindNumber, number: "0.01", fraction: "01"}},
		{"second digit", "$0.012", "$0.01", want{kind: KindNumber, number: "0.12", fraction: "12"}},
		{"third digit", "$0.123", "$0.12", want{kind: KindNumber, number: "1.23", fraction: "23"}},
		{"delete a digit", "$1.2", "$1.23", want{kind: KindNumber, number: "0.12", fraction: "12"}},
		{"negative", "-$0.123", "$0.12", want{kind: KindNumber, number: "-1.23", fraction: "23"}},
		{"zero", "$0.00", "", want{kind: KindNumber, number: "0", fraction: "00"}},
		{"lone minus", "-", "", want{kind: KindText, text: "-$0.00"}},
		{"delete from zero clears", "$0.0", "$0.00", want{kind: KindText, text: ""}},
		{"empty", "", "$1.00", want{kind: KindText, text: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkResult(t, m.Conform(tt.raw, tt.prior), tt.want)
		})
	}
}

func TestFor(t *testing.T) {
	usd := newFormat(t, numfmt.Options{Currency: "USD"})

	if _, ok := For(usd, false).(*Default); !ok {
		t.Error("For(autoDecimal=false) should return *Default")
	}
	if _, ok := For(usd, true).(*AutoDecimal); !ok {
		t.Error("For(autoDecimal=true) should return *AutoDecimal")
	}
}

func TestKind_String(t *testing.T) {
	if KindText.String() != "text" || KindNumber.String() != "number" || Kind(9).String() != "unknown" {
		t.Error("Kind.String() returned unexpected names")
	}
}
