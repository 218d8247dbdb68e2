package numinput

import (
	"fmt"

	"github.com/govalues/decimal"
)

// Range is an inclusive, non-empty value range.
type Range struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

// NewRange clamps each bound of vr into [-ceiling, ceiling]. Open bounds
// take the ceiling itself. It fails when the clamped range is empty.
func NewRange(vr ValueRange, ceiling decimal.Decimal) (Range, error) {
	r := Range{Min: ceiling.Neg(), Max: ceiling}
	if vr.Min != nil && vr.Min.Cmp(r.Min) > 0 {
		r.Min = *vr.Min
	}
	if vr.Max != nil && vr.Max.Cmp(r.Max) < 0 {
		r.Max = *vr.Max
	}
	if r.Min.Cmp(r.Max) > 0 {
		return Range{}, NewRangeError(fmt.Sprintf("minimum %v is greater than maximum %v", r.Min, r.Max))
	}
	return r, nil
}

// Clamp returns d limited to the range.
func (r Range) Clamp(d decimal.Decimal) decimal.Decimal {
	if d.Cmp(r.Min) < 0 {
		return r.Min
	}
	if d.Cmp(r.Max) > 0 {
		return r.Max
	}
	return d
}

// Contains reports whether d lies within the range.
func (r Range) Contains(d decimal.Decimal) bool {
	return d.Cmp(r.Min) >= 0 && d.Cmp(r.Max) <= 0
}
