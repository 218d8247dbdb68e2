// Package tui hosts a numfield input controller in the terminal.
//
// FieldModel is a Bubble Tea model wrapping a bubbles/textinput. An adapter
// exposes the textinput to the controller as a numinput.Field, so every
// keystroke takes the same path it would in any other host: the key is
// applied to the text, then the controller conforms the result and places
// the caret.
//
// # Key Bindings
//
//   - tab: focus or blur the field
//   - esc: blur
//   - enter: host change event (re-emits the value)
//   - ctrl+u: clear the value
//   - q: quit while unfocused; ctrl+c always quits
//
// Bracketed paste is delivered to the controller as a paste.
//
// # Selection
//
// A textinput has a cursor but no selection. The adapter models the only
// selection the controller creates, the whole text after a focus with a
// selection, as a flag; the next edit replaces the text.
//
// # Deferred Focus
//
// The controller's deferred focus step is queued and delivered as a
// message, so it runs after the focus key has been processed.
//
// # Usage Example
//
//	m, err := tui.NewFieldModel("Price", opts, nil)
//	if err != nil {
//	    return err
//	}
//	v, err := tui.Run(m)
//	fmt.Println(v)
package tui
