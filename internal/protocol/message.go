package protocol

import (
	"encoding/json"
	"sync/atomic"

	"github.com/muurk/numfield/internal/numfmt"
	"github.com/muurk/numfield/internal/numinput"
)

// MessageType identifies a server message.
type MessageType string

const (
	MessageReady  MessageType = "ready"
	MessageRender MessageType = "render"
	MessageNotify MessageType = "notify"
	MessageError  MessageType = "error"
)

// Notification names carried by notify messages.
const (
	NotifyInput  = "input"
	NotifyChange = "change"
)

// Value is the wire form of numinput.Value. Number is nil when the field
// holds no number.
type Value struct {
	Number    *string `json:"number"`
	Formatted string  `json:"formatted"`
}

// FormatInfo describes the effective format of a session.
type FormatInfo struct {
	Locale                string `json:"locale"`
	Currency              string `json:"currency,omitempty"`
	Prefix                string `json:"prefix"`
	Suffix                string `json:"suffix"`
	NegativePrefix        string `json:"negativePrefix"`
	DecimalSymbol         string `json:"decimalSymbol"`
	GroupingSymbol        string `json:"groupingSymbol"`
	MinimumFractionDigits int    `json:"minimumFractionDigits"`
	MaximumFractionDigits int    `json:"maximumFractionDigits"`
}

// Message is a server frame.
type Message struct {
	Seq       uint32      `json:"seq"`
	Type      MessageType `json:"type"`
	Text      *string     `json:"text,omitempty"`
	Selection *Selection  `json:"selection,omitempty"`
	InputMode string      `json:"inputMode,omitempty"`
	Event     string      `json:"event,omitempty"`
	Value     *Value      `json:"value,omitempty"`
	Format    *FormatInfo `json:"format,omitempty"`
	Error     string      `json:"error,omitempty"`
}

var seqCounter uint32

// GenerateSeq returns the next message sequence number.
func GenerateSeq() uint32 {
	return atomic.AddUint32(&seqCounter, 1)
}

// NewReady creates the greeting sent after connect and after every
// successful configure.
func NewReady(f *numfmt.Format) *Message {
	return &Message{
		Seq:  GenerateSeq(),
		Type: MessageReady,
		Format: &FormatInfo{
			Locale:                f.Locale,
			Currency:              f.Currency,
			Prefix:                f.Prefix,
			Suffix:                f.Suffix,
			NegativePrefix:        f.NegativePrefix,
			DecimalSymbol:         f.DecimalSymbol,
			GroupingSymbol:        f.GroupingSymbol,
			MinimumFractionDigits: f.MinimumFractionDigits,
			MaximumFractionDigits: f.MaximumFractionDigits,
		},
	}
}

// NewRender creates a render message for the field's current state.
func NewRender(text string, start, end int, mode numinput.InputMode) *Message {
	return &Message{
		Seq:       GenerateSeq(),
		Type:      MessageRender,
		Text:      &text,
		Selection: &Selection{Start: start, End: end},
		InputMode: string(mode),
	}
}

// NewNotify creates an input or change notification.
func NewNotify(event string, v numinput.Value) *Message {
	return &Message{
		Seq:   GenerateSeq(),
		Type:  MessageNotify,
		Event: event,
		Value: WireValue(v),
	}
}

// NewError creates an error message.
func NewError(err error) *Message {
	return &Message{
		Seq:   GenerateSeq(),
		Type:  MessageError,
		Error: err.Error(),
	}
}

// WireValue converts a controller value to its wire form.
func WireValue(v numinput.Value) *Value {
	w := &Value{Formatted: v.Formatted}
	if v.Valid {
		n := v.Number.String()
		w.Number = &n
	}
	return w
}

// Encode serializes m to JSON.
func (m *Message) Encode() ([]byte, error) {
	return json.Marshal(m)
}
