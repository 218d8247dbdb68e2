package numinput

import (
	"testing"

	"github.com/govalues/decimal"
)

func TestNewRange(t *testing.T) {
	ceiling := decimal.MustParse("99999999999999999")

	tests := []struct {
		name    string
		vr      ValueRange
		wantMin string
		wantMax string
		wantErr bool
	}{
		{"Valid: open", ValueRange{}, "-99999999999999999", "99999999999999999", false},
		{"Valid: bounded", ValueRange{Min: dec("0"), Max: dec("100")}, "0", "100", false},
		{"Valid: single point", ValueRange{Min: dec("5"), Max: dec("5")}, "5", "5", false},
		{"Valid: min below ceiling", ValueRange{Min: dec("-1000000000000000000")}, "-99999999999999999", "99999999999999999", false},
		{"Invalid: min above max", ValueRange{Min: dec("10"), Max: dec("5")}, "", "", true},
		{"Invalid: min above ceiling", ValueRange{Min: dec("1000000000000000000")}, "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRange(tt.vr, ceiling)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewRange() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !IsRangeError(err) {
					t.Errorf("NewRange() error = %v, want a range error", err)
				}
				return
			}
			if r.Min.Cmp(decimal.MustParse(tt.wantMin)) != 0 || r.Max.Cmp(decimal.MustParse(tt.wantMax)) != 0 {
				t.Errorf("NewRange() = [%v, %v], want [%s, %s]", r.Min, r.Max, tt.wantMin, tt.wantMax)
			}
		})
	}
}

func TestRange_Clamp(t *testing.T) {
	r := Range{Min: decimal.MustParse("-10"), Max: decimal.MustParse("10.5")}

	tests := []struct {
		value string
		want  string
	}{
		{"0", "0"},
		{"-10", "-10"},
		{"-10.01", "-10"},
		{"10.5", "10.5"},
		{"11", "10.5"},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got := r.Clamp(decimal.MustParse(tt.value))
			if got.Cmp(decimal.MustParse(tt.want)) != 0 {
				t.Errorf("Clamp(%s) = %v, want %s", tt.value, got, tt.want)
			}
			if !r.Contains(got) {
				t.Errorf("Contains(Clamp(%s)) = false", tt.value)
			}
		})
	}
}

func TestConfigError(t *testing.T) {
	err := NewFormatError("invalid number format", errTest)
	if err.Error() != "Format Error: invalid number format (caused by: boom)" {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.Unwrap() != errTest {
		t.Error("Unwrap() should return the cause")
	}
	if IsRangeError(err) {
		t.Error("IsRangeError() = true for a format error")
	}
	if NewRangeError("empty").Error() != "Range Error: empty" {
		t.Errorf("Error() = %q", NewRangeError("empty").Error())
	}
	if ErrorType(9).String() != "ErrorType(9)" {
		t.Errorf("String() = %q", ErrorType(9).String())
	}
}

type testError string

func (e testError) Error() string { return string(e) }

const errTest = testError("boom")
