package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/govalues/decimal"

	"github.com/muurk/numfield/internal/logging"
	"github.com/muurk/numfield/internal/numinput"
)

// focusSettledMsg runs the controller's deferred focus step once the focus
// key has been fully processed.
type focusSettledMsg struct{}

func settleFocus() tea.Msg {
	return focusSettledMsg{}
}

// fieldState is shared by every copy of a FieldModel. The controller holds
// the textField, which points into input, so it must not move.
type fieldState struct {
	input    textinput.Model
	field    *textField
	ctrl     *numinput.Controller
	deferred []func()
	events   []string
}

func (s *fieldState) record(event string, v numinput.Value) {
	entry := fmt.Sprintf("%-6s %s", event, v)
	s.events = append(s.events, entry)
	if len(s.events) > maxLogEntries {
		s.events = s.events[len(s.events)-maxLogEntries:]
	}
}

func (s *fieldState) runDeferred() {
	for len(s.deferred) > 0 {
		fn := s.deferred[0]
		s.deferred = s.deferred[1:]
		fn()
	}
}

// FieldModel is an interactive currency field in the terminal.
type FieldModel struct {
	Title  string
	Width  int
	Height int

	state *fieldState
	keys  fieldKeyMap
	help  help.Model
}

// NewFieldModel creates an unfocused field. A non-nil initial value is
// assigned as if set from outside.
func NewFieldModel(title string, opts numinput.Options, initial *decimal.Decimal) (FieldModel, error) {
	s := &fieldState{input: textinput.New()}
	s.input.Prompt = ""
	s.input.Placeholder = "type a number"
	s.field = newTextField(&s.input)

	ctrl, err := numinput.New(s.field, opts, numinput.Callbacks{
		OnInput:  func(v numinput.Value) { s.record("input", v) },
		OnChange: func(v numinput.Value) { s.record("change", v) },
	},
		numinput.WithScheduler(func(fn func()) { s.deferred = append(s.deferred, fn) }),
		numinput.WithLogger(logging.Named("numinput")),
	)
	if err != nil {
		return FieldModel{}, err
	}
	s.ctrl = ctrl

	if initial != nil {
		ctrl.SetValue(*initial)
	}

	return FieldModel{
		Title: title,
		state: s,
		keys:  newFieldKeyMap(),
		help:  help.New(),
	}, nil
}

// Value returns the controller's current value.
func (m FieldModel) Value() numinput.Value {
	return m.state.ctrl.Value()
}

// Controller exposes the field's controller.
func (m FieldModel) Controller() *numinput.Controller {
	return m.state.ctrl
}

// Init implements tea.Model.
func (m FieldModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m FieldModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case focusSettledMsg:
		m.state.runDeferred()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Cursor blink and other textinput messages.
	var cmd tea.Cmd
	m.state.input, cmd = m.state.input.Update(msg)
	return m, cmd
}

func (m FieldModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.state
	focused := s.ctrl.State() == numinput.Focused

	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.keys.Focus):
		if focused {
			return m.blur()
		}
		return m.focus()
	case key.Matches(msg, m.keys.Blur):
		if focused {
			return m.blur()
		}
		return m, nil
	case key.Matches(msg, m.keys.Commit):
		s.ctrl.Change()
		return m, nil
	case key.Matches(msg, m.keys.Clear):
		s.ctrl.ClearValue()
		return m, nil
	case !focused:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	return m.edit(msg)
}

func (m FieldModel) focus() (tea.Model, tea.Cmd) {
	s := m.state
	blink := s.input.Focus()
	s.ctrl.Focus()
	return m, tea.Batch(blink, settleFocus)
}

func (m FieldModel) blur() (tea.Model, tea.Cmd) {
	s := m.state
	s.field.selectAll = false
	s.ctrl.Blur()
	s.input.Blur()
	return m, nil
}

// edit routes a key to the textinput and the resulting text through the
// controller.
func (m FieldModel) edit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.state
	var cmd tea.Cmd

	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		s.field.replaceSelection()
		if !msg.Paste && len(msg.Runes) == 1 {
			s.ctrl.KeyPress(string(msg.Runes))
		}
		s.input, cmd = s.input.Update(msg)
		if msg.Paste {
			s.ctrl.Paste()
		} else {
			s.ctrl.Input()
		}

	case tea.KeyBackspace, tea.KeyDelete:
		if s.field.selectAll {
			s.field.replaceSelection()
		} else {
			s.input, cmd = s.input.Update(msg)
		}
		s.ctrl.Input()

	default:
		s.field.selectAll = false
		s.input, cmd = s.input.Update(msg)
	}

	return m, cmd
}

// View implements tea.Model.
func (m FieldModel) View() string {
	content := m.buildContent()
	return RenderApplicationContainer(content, m.help.View(m.keys), m.Width, m.Height)
}

func (m FieldModel) buildContent() string {
	s := m.state
	focused := s.ctrl.State() == numinput.Focused

	var b strings.Builder
	if m.Title != "" {
		b.WriteString(RenderTitle(m.Title))
		b.WriteString("\n")
	}

	box := BlurredInputStyle
	if focused {
		box = FocusedInputStyle
	}
	fieldView := box.Render(m.renderInput())

	panel := PanelStyle.Render(m.buildPanel())

	if m.Width > 0 && m.Width < MinTerminalWidth {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, fieldView, panel))
	} else {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, fieldView, "  ", panel))
	}
	return b.String()
}

func (m FieldModel) renderInput() string {
	s := m.state
	if s.field.selectAll {
		return SelectionStyle.Render(s.input.Value())
	}
	return s.input.View()
}

func (m FieldModel) buildPanel() string {
	s := m.state
	v := s.ctrl.Value()
	f := s.ctrl.Format()

	number := AbsentStyle.Render("null")
	if v.Valid {
		number = ValueStyle.Render(v.Number.String())
	}

	currency := f.Currency
	if currency == "" {
		currency = "none"
	}

	rows := []string{
		RenderRow("number", number),
		RenderRow("formatted", fmt.Sprintf("%q", v.Formatted)),
		RenderRow("state", s.ctrl.State().String()),
		RenderRow("keyboard", string(s.field.mode)),
		RenderRow("format", fmt.Sprintf("%s %s, %d-%d digits", f.Locale, currency,
			f.MinimumFractionDigits, f.MaximumFractionDigits)),
		RenderRow("range", fmt.Sprintf("%s .. %s", s.ctrl.Range().Min, s.ctrl.Range().Max)),
		"",
		RenderSubtitle("events"),
	}
	for _, e := range s.events {
		rows = append(rows, LogStyle.Render(e))
	}
	return strings.Join(rows, "\n")
}

// Run runs the field full-screen and returns the value it held on exit.
func Run(m FieldModel) (numinput.Value, error) {
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return numinput.Value{}, fmt.Errorf("field program failed: %w", err)
	}
	return final.(FieldModel).Value(), nil
}
