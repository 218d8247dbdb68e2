// Package protocol implements the JSON wire protocol between a remote field
// widget and a numfield server.
//
// The widget (a browser input, a native text box) owns nothing but pixels.
// It forwards its field events to the server, which runs the input
// controller and answers with the text and selection to display plus the
// value notifications.
//
// # Client Events
//
// Every client frame is one JSON object with a "type":
//   - configure: replace the field options ("options")
//   - input, paste: the field text and selection after an edit
//   - focus: the selection at focus time
//   - keypress: a key about to be inserted ("key") and the selection
//   - blur, change: no payload
//   - set_value: assign a decimal string ("value"), null clears
//
// Example:
//
//	{"type":"input","text":"$1,2345","selection":{"start":7,"end":7}}
//
// # Server Messages
//
// Each server frame carries a sequence number and a "type":
//   - ready: the effective format (prefix, suffix, symbols, digits)
//   - render: text, selection and input mode to apply to the widget
//   - notify: an "input" or "change" notification with the value
//   - error: a decode or configuration error; the session stays open
//
// A render always precedes the notifications it caused, so a widget never
// observes a value that refers to text it has not displayed yet.
//
// Numbers travel as decimal strings to keep them exact:
//
//	{"seq":12,"type":"notify","event":"change","value":{"number":"1234.5","formatted":"$1,234.50"}}
//
// # Error Handling
//
// DecodeEvent returns a *DecodeError describing what was wrong with a client
// frame: malformed JSON, an unknown event type, a missing field or an
// invalid value.
//
// # Thread Safety
//
// Decoding and encoding are stateless. Sequence numbers come from an atomic
// counter.
package protocol
