package protocol

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/govalues/decimal"

	"github.com/muurk/numfield/internal/numinput"
)

// EventType identifies a client event.
type EventType string

const (
	EventConfigure EventType = "configure"
	EventInput     EventType = "input"
	EventPaste     EventType = "paste"
	EventFocus     EventType = "focus"
	EventBlur      EventType = "blur"
	EventKeyPress  EventType = "keypress"
	EventChange    EventType = "change"
	EventSetValue  EventType = "set_value"
)

// Selection is a rune-offset selection; Start == End is a caret.
type Selection struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Event is a decoded client frame.
type Event struct {
	Type      EventType  `json:"type"`
	Text      *string    `json:"text,omitempty"`      // input, paste
	Selection *Selection `json:"selection,omitempty"` // input, paste, focus, keypress
	Key       string     `json:"key,omitempty"`       // keypress
	Value     *Decimal   `json:"value,omitempty"`     // set_value, nil clears
	Options   *Options   `json:"options,omitempty"`   // configure
}

// String returns a debug representation of the event
func (e *Event) String() string {
	switch e.Type {
	case EventInput, EventPaste:
		return fmt.Sprintf("Event{type=%s, text=%q, selection=%v}", e.Type, deref(e.Text), e.Selection)
	case EventKeyPress:
		return fmt.Sprintf("Event{type=%s, key=%q}", e.Type, e.Key)
	case EventSetValue:
		if e.Value == nil {
			return fmt.Sprintf("Event{type=%s, value=null}", e.Type)
		}
		return fmt.Sprintf("Event{type=%s, value=%v}", e.Type, e.Value.Decimal)
	default:
		return fmt.Sprintf("Event{type=%s}", e.Type)
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// DecodeEvent parses and validates a client frame.
func DecodeEvent(data []byte) (*Event, error) {
	var ev Event
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&ev); err != nil {
		if IsDecodeError(err) {
			return nil, err
		}
		return nil, newDecodeError(ErrTypeSyntax, "malformed event", err)
	}

	switch ev.Type {
	case EventInput, EventPaste:
		if ev.Text == nil {
			return nil, newDecodeError(ErrTypeMissingField, fmt.Sprintf("%s event requires text", ev.Type), nil)
		}
	case EventKeyPress:
		if ev.Key == "" {
			return nil, newDecodeError(ErrTypeMissingField, "keypress event requires key", nil)
		}
	case EventConfigure:
		if ev.Options == nil {
			return nil, newDecodeError(ErrTypeMissingField, "configure event requires options", nil)
		}
	case EventFocus, EventBlur, EventChange, EventSetValue:
	case "":
		return nil, newDecodeError(ErrTypeMissingField, "event type is required", nil)
	default:
		return nil, newDecodeError(ErrTypeUnknownEvent, fmt.Sprintf("unknown event type %q", ev.Type), nil)
	}

	if s := ev.Selection; s != nil && (s.Start < 0 || s.End < s.Start) {
		return nil, newDecodeError(ErrTypeInvalidValue, fmt.Sprintf("invalid selection [%d, %d]", s.Start, s.End), nil)
	}

	return &ev, nil
}

// Decimal is a decimal that decodes from a JSON number or string and
// encodes as a string.
type Decimal struct {
	decimal.Decimal
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(data, `"`))
	v, err := decimal.Parse(s)
	if err != nil {
		return newDecodeError(ErrTypeInvalidValue, fmt.Sprintf("invalid decimal %s", data), err)
	}
	d.Decimal = v
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Decimal) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Decimal.String())
}

// DistractionFree decodes from a boolean (all flags) or an object of flags.
type DistractionFree struct {
	HideCurrencySymbol          bool `json:"hideCurrencySymbol"`
	HideNegligibleDecimalDigits bool `json:"hideNegligibleDecimalDigits"`
	HideGroupingSymbol          bool `json:"hideGroupingSymbol"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *DistractionFree) UnmarshalJSON(data []byte) error {
	var all bool
	if err := json.Unmarshal(data, &all); err == nil {
		*d = DistractionFree{all, all, all}
		return nil
	}
	type plain DistractionFree
	if err := json.Unmarshal(data, (*plain)(d)); err != nil {
		return newDecodeError(ErrTypeInvalidValue, "distractionFree must be a boolean or an object", err)
	}
	return nil
}

// ValueRange bounds; either may be omitted.
type ValueRange struct {
	Min *Decimal `json:"min,omitempty"`
	Max *Decimal `json:"max,omitempty"`
}

// Options are the field options as sent by a widget.
type Options struct {
	Locale            string           `json:"locale,omitempty"`
	Currency          string           `json:"currency,omitempty"`
	ValueAsInteger    bool             `json:"valueAsInteger,omitempty"`
	DistractionFree   *DistractionFree `json:"distractionFree,omitempty"`
	Precision         *int             `json:"precision,omitempty"`
	AutoDecimalDigits bool             `json:"autoDecimalDigits,omitempty"`
	ValueRange        *ValueRange      `json:"valueRange,omitempty"`
	AllowNegative     *bool            `json:"allowNegative,omitempty"`
}

// ControllerOptions converts wire options to controller options. Omitted
// fields take the numinput defaults.
func (o *Options) ControllerOptions() numinput.Options {
	opts := numinput.DefaultOptions()
	opts.Locale = o.Locale
	opts.Currency = o.Currency
	opts.ValueAsInteger = o.ValueAsInteger
	opts.Precision = o.Precision
	opts.AutoDecimalDigits = o.AutoDecimalDigits
	if o.DistractionFree != nil {
		opts.DistractionFree = numinput.DistractionFree(*o.DistractionFree)
	}
	if o.AllowNegative != nil {
		opts.AllowNegative = *o.AllowNegative
	}
	if r := o.ValueRange; r != nil {
		if r.Min != nil {
			opts.ValueRange.Min = &r.Min.Decimal
		}
		if r.Max != nil {
			opts.ValueRange.Max = &r.Max.Decimal
		}
	}
	return opts
}
