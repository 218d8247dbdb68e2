package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/govalues/decimal"

	"github.com/muurk/numfield/internal/numinput"
)

func usdOptions() numinput.Options {
	opts := numinput.DefaultOptions()
	opts.Locale = "en-US"
	opts.Currency = "USD"
	return opts
}

func newModel(t *testing.T, initial *decimal.Decimal) FieldModel {
	t.Helper()
	m, err := NewFieldModel("test", usdOptions(), initial)
	if err != nil {
		t.Fatalf("NewFieldModel() error = %v", err)
	}
	return m
}

func press(m FieldModel, msgs ...tea.Msg) FieldModel {
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(FieldModel)
	}
	return m
}

func runes(s string) []tea.Msg {
	var msgs []tea.Msg
	for _, r := range s {
		msgs = append(msgs, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return msgs
}

var (
	tab       = tea.KeyMsg{Type: tea.KeyTab}
	enter     = tea.KeyMsg{Type: tea.KeyEnter}
	backspace = tea.KeyMsg{Type: tea.KeyBackspace}
	ctrlU     = tea.KeyMsg{Type: tea.KeyCtrlU}
)

// focus presses tab and delivers the deferred focus step.
func focus(m FieldModel) FieldModel {
	return press(m, tab, focusSettledMsg{})
}

func assertText(t *testing.T, m FieldModel, want string) {
	t.Helper()
	if got := m.state.input.Value(); got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
}

func TestFieldModel_IgnoresTypingWhileUnfocused(t *testing.T) {
	m := press(newModel(t, nil), runes("12")...)
	assertText(t, m, "")
}

func TestFieldModel_TypeFocusBlur(t *testing.T) {
	m := focus(newModel(t, nil))
	if m.state.ctrl.State() != numinput.Focused {
		t.Fatalf("State() = %v, want focused", m.state.ctrl.State())
	}

	m = press(m, runes("1234")...)
	assertText(t, m, "1234")

	m = press(m, backspace)
	assertText(t, m, "123")

	m = press(m, runes("4")...)
	m = press(m, tab)
	assertText(t, m, "$1,234.00")

	v := m.Value()
	if !v.Valid || v.Number.Cmp(decimal.MustParse("1234")) != 0 {
		t.Errorf("Value() = %v, want 1234", v)
	}
}

func TestFieldModel_FocusHidesFormatting(t *testing.T) {
	initial := decimal.MustParse("1234.5")
	m := newModel(t, &initial)
	assertText(t, m, "$1,234.50")

	m = focus(m)
	assertText(t, m, "1234.5")
}

func TestFieldModel_SelectAllReplaced(t *testing.T) {
	initial := decimal.MustParse("5")
	m := newModel(t, &initial)

	m = press(m, tab)
	// The terminal has no mouse selection; emulate one made before the
	// deferred focus step.
	m.state.field.SetSelection(0, 5)
	m = press(m, focusSettledMsg{})
	if !m.state.field.selectAll {
		t.Fatal("focus with a selection should select all")
	}
	if !strings.Contains(m.View(), "5") {
		t.Error("View() should render the selected text")
	}

	m = press(m, runes("7")...)
	assertText(t, m, "7")
	if m.state.field.selectAll {
		t.Error("typing should clear the selection")
	}
}

func TestFieldModel_Paste(t *testing.T) {
	m := focus(newModel(t, nil))
	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1234567"), Paste: true})
	assertText(t, m, "1234567")
}

func TestFieldModel_ChangeAndClear(t *testing.T) {
	initial := decimal.MustParse("5")
	m := newModel(t, &initial)
	before := len(m.state.events)

	m = press(m, enter)
	if len(m.state.events) != before+1 || !strings.HasPrefix(m.state.events[len(m.state.events)-1], "change") {
		t.Errorf("events = %v, want a change entry", m.state.events)
	}

	m = press(m, ctrlU)
	assertText(t, m, "")
	if m.Value().Valid {
		t.Error("Value() should be absent after clear")
	}
}

func TestFieldModel_Quit(t *testing.T) {
	m := newModel(t, nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q while unfocused should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q while unfocused should return tea.Quit")
	}

	m = focus(m)
	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if m.state.ctrl.State() != numinput.Focused {
		t.Error("q while focused should be treated as input")
	}
	assertText(t, m, "")
}

func TestFieldModel_EventLogBounded(t *testing.T) {
	m := focus(newModel(t, nil))
	m = press(m, runes("1234567890123")...)
	if len(m.state.events) > maxLogEntries {
		t.Errorf("event log has %d entries, want at most %d", len(m.state.events), maxLogEntries)
	}
}

func TestFieldModel_View(t *testing.T) {
	initial := decimal.MustParse("42")
	m := newModel(t, &initial)
	m = press(m, tea.WindowSizeMsg{Width: 100, Height: 30})

	view := m.View()
	for _, want := range []string{AppName, "$42.00", "number", "42", "unfocused"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestTextField_Selection(t *testing.T) {
	m := newModel(t, nil)
	f := m.state.field

	f.SetText("12345")
	if start, end := f.Selection(); start != 5 || end != 5 {
		t.Errorf("Selection() after SetText = (%d, %d), want (5, 5)", start, end)
	}

	f.SetSelection(2, 2)
	if start, end := f.Selection(); start != 2 || end != 2 {
		t.Errorf("Selection() = (%d, %d), want (2, 2)", start, end)
	}

	f.SetSelection(5, 0)
	if start, end := f.Selection(); start != 0 || end != 5 {
		t.Errorf("Selection() = (%d, %d), want (0, 5)", start, end)
	}

	// Partial ranges collapse to their end.
	f.SetSelection(1, 3)
	if start, end := f.Selection(); start != 3 || end != 3 {
		t.Errorf("Selection() = (%d, %d), want (3, 3)", start, end)
	}

	f.SetInputMode(numinput.InputModeNumeric)
	if f.mode != numinput.InputModeNumeric {
		t.Errorf("mode = %q, want numeric", f.mode)
	}
}
