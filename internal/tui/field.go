package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/muurk/numfield/internal/numinput"
)

// textField adapts a textinput to numinput.Field. A textinput has a cursor
// but no selection, so only the two selections a controller produces are
// representable: a caret and the whole text.
type textField struct {
	input     *textinput.Model
	selectAll bool
	mode      numinput.InputMode
}

func newTextField(input *textinput.Model) *textField {
	return &textField{input: input, mode: numinput.InputModeDecimal}
}

// Text implements numinput.Field.
func (f *textField) Text() string {
	return f.input.Value()
}

// SetText implements numinput.Field.
func (f *textField) SetText(text string) {
	f.input.SetValue(text)
	f.input.CursorEnd()
	f.selectAll = false
}

// Selection implements numinput.Field.
func (f *textField) Selection() (int, int) {
	if f.selectAll {
		return 0, len([]rune(f.input.Value()))
	}
	pos := f.input.Position()
	return pos, pos
}

// SetSelection implements numinput.Field. Partial ranges collapse to a
// caret at their end.
func (f *textField) SetSelection(start, end int) {
	n := len([]rune(f.input.Value()))
	if start > end {
		start, end = end, start
	}
	f.selectAll = start != end && start <= 0 && end >= n && n > 0
	if f.selectAll {
		f.input.CursorEnd()
		return
	}
	f.input.SetCursor(end)
}

// SetInputMode implements numinput.Field. Terminals have a single keyboard;
// the mode is shown in the side panel.
func (f *textField) SetInputMode(mode numinput.InputMode) {
	f.mode = mode
}

// replaceSelection clears the text when everything is selected so the next
// keystroke replaces it.
func (f *textField) replaceSelection() {
	if f.selectAll {
		f.input.SetValue("")
		f.input.CursorStart()
		f.selectAll = false
	}
}
