package numinput

// InputMode hints which virtual keyboard a host should present.
type InputMode string

const (
	InputModeDecimal InputMode = "decimal"
	InputModeNumeric InputMode = "numeric"
)

// Field is the host text field. Selection offsets are rune offsets;
// implementations clamp out-of-range offsets into the text.
type Field interface {
	Text() string
	// SetText replaces the text and moves the caret to its end.
	SetText(text string)
	Selection() (start, end int)
	SetSelection(start, end int)
	SetInputMode(mode InputMode)
}

// MemoryField is an in-memory Field. Remote hosts mirror their widget into
// one; tests edit it directly.
type MemoryField struct {
	text       []rune
	start, end int
	mode       InputMode
}

// NewMemoryField returns a field holding text with the caret at its end.
func NewMemoryField(text string) *MemoryField {
	f := &MemoryField{}
	f.SetText(text)
	return f
}

// Text implements Field.
func (f *MemoryField) Text() string {
	return string(f.text)
}

// SetText implements Field.
func (f *MemoryField) SetText(text string) {
	f.text = []rune(text)
	f.start, f.end = len(f.text), len(f.text)
}

// Selection implements Field.
func (f *MemoryField) Selection() (int, int) {
	return f.start, f.end
}

// SetSelection implements Field.
func (f *MemoryField) SetSelection(start, end int) {
	start, end = f.clamp(start), f.clamp(end)
	if end < start {
		start, end = end, start
	}
	f.start, f.end = start, end
}

// SetInputMode implements Field.
func (f *MemoryField) SetInputMode(mode InputMode) {
	f.mode = mode
}

// InputMode returns the last mode set by the controller.
func (f *MemoryField) InputMode() InputMode {
	return f.mode
}

// Edit replaces the text and places the caret at the given offset, as a
// remote widget reports after the user edited it.
func (f *MemoryField) Edit(text string, caret int) {
	f.text = []rune(text)
	f.SetSelection(caret, caret)
}

// Insert replaces the selection with s and leaves the caret after it.
func (f *MemoryField) Insert(s string) {
	ins := []rune(s)
	text := make([]rune, 0, len(f.text)-(f.end-f.start)+len(ins))
	text = append(text, f.text[:f.start]...)
	text = append(text, ins...)
	text = append(text, f.text[f.end:]...)
	caret := f.start + len(ins)
	f.text = text
	f.start, f.end = caret, caret
}

// Backspace deletes the selection, or the rune before the caret.
func (f *MemoryField) Backspace() {
	if f.start == f.end {
		if f.start == 0 {
			return
		}
		f.start--
	}
	f.Insert("")
}

// Delete deletes the selection, or the rune after the caret.
func (f *MemoryField) Delete() {
	if f.start == f.end {
		if f.end == len(f.text) {
			return
		}
		f.end++
	}
	f.Insert("")
}

func (f *MemoryField) clamp(i int) int {
	if i < 0 {
		return 0
	}
	if i > len(f.text) {
		return len(f.text)
	}
	return i
}
