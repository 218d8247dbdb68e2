// Package numinput binds a text field to a canonical decimal value.
//
// A Controller owns the text displayed in a Field and keeps it in sync with
// the number it represents on every keystroke, focus change and external
// assignment. The host delivers field events (Input, Paste, Focus, Blur,
// KeyPress, Change) and the controller rewrites the field text and caret.
//
// # Focus States
//
// The controller is either Unfocused or Focused. While focused, the
// distraction-free flags may hide the currency symbol, the grouping symbol
// and negligible trailing fraction digits. On blur the value is committed:
// it is clamped into the configured range and rendered with the full
// formatting again.
//
// # Notifications
//
// OnInput fires after every conformance pass, once the field already shows
// the new text. OnChange fires only for committed values: on blur when the
// committed value differs from the typed one, and always on SetValue,
// ClearValue, SetOptions and the host's change event.
//
// # Caret Offsets
//
// Selection offsets are counted in runes, not bytes. Currency symbols,
// no-break spaces and locale digits are frequently multi-byte.
//
// # Usage Example
//
//	opts := numinput.DefaultOptions()
//	opts.Currency = "USD"
//
//	field := numinput.NewMemoryField("")
//	c, err := numinput.New(field, opts, numinput.Callbacks{
//	    OnChange: func(v numinput.Value) { fmt.Println(v.Formatted) },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	field.Insert("1234")
//	c.Input()
//	c.Blur() // $1,234.00
//
// A Controller is not safe for concurrent use. Hosts deliver events from a
// single goroutine.
package numinput
