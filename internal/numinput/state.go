package numinput

// FocusState is the focus state of the field.
type FocusState int

const (
	Unfocused FocusState = iota
	Focused
)

// String returns a human-readable name for the state
func (s FocusState) String() string {
	switch s {
	case Unfocused:
		return "unfocused"
	case Focused:
		return "focused"
	default:
		return "unknown"
	}
}

// decimalMarker remembers where a decimal symbol keystroke landed. It is
// consumed by the next conformance pass.
type decimalMarker struct {
	at  int
	set bool
}

func (m *decimalMarker) record(at int) {
	m.at, m.set = at, true
}

func (m *decimalMarker) take() (int, bool) {
	at, ok := m.at, m.set
	m.clear()
	return at, ok
}

func (m *decimalMarker) clear() {
	m.at, m.set = 0, false
}
