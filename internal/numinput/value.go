package numinput

import (
	"github.com/govalues/decimal"
	"go.uber.org/zap"

	"github.com/muurk/numfield/internal/numfmt"
)

// Value is the externally visible state of the field.
type Value struct {
	Number    decimal.Decimal // Zero when Valid is false
	Valid     bool            // False when the field holds no number
	Formatted string          // Text currently displayed
}

// String returns the number, or "null" when absent.
func (v Value) String() string {
	if !v.Valid {
		return "null"
	}
	return v.Number.String()
}

// Value returns the current value without trailing fraction zeros. With
// ValueAsInteger the number is scaled by 10^MaximumFractionDigits and
// rounded to an integer.
func (c *Controller) Value() Value {
	v := Value{Number: c.number.Trim(0), Valid: c.valid, Formatted: c.formatted}
	if !c.valid || !c.opts.ValueAsInteger {
		return v
	}

	scale := c.format.MaximumFractionDigits
	n, err := numfmt.Shift(numfmt.Round(c.number, scale), scale)
	if err != nil {
		c.log.Warn("Cannot scale value to integer", zap.Error(err))
		return Value{Formatted: c.formatted}
	}
	v.Number = n.Trim(0)
	return v
}

// SetValue assigns a value from outside. With ValueAsInteger, d is read as
// scaled by 10^MaximumFractionDigits. Assigning the current value is a
// no-op; any other value is committed and OnChange fires.
func (c *Controller) SetValue(d decimal.Decimal) {
	if c.opts.ValueAsInteger {
		scaled, err := numfmt.Shift(d, -c.format.MaximumFractionDigits)
		if err != nil {
			c.log.Warn("Cannot scale integer value", zap.Error(err))
			return
		}
		d = scaled
	}
	if c.valid && d.Cmp(c.number) == 0 {
		return
	}
	c.commit(d, true, true)
}

// ClearValue removes the value. OnChange fires if there was one.
func (c *Controller) ClearValue() {
	if !c.valid && c.formatted == "" {
		return
	}
	c.commit(decimal.Decimal{}, false, true)
}
