package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Param is a labelled value shown in a header or result. A slice keeps the
// display order stable.
type Param struct {
	Key   string
	Value string
}

// Header is the banner printed before command output.
type Header struct {
	Title   string  // e.g., "FORMAT"
	Command string  // e.g., "numfield format 1234.5"
	Params  []Param // e.g., {"Locale", "de-DE"}
	Width   int
}

// NewHeader creates a new header with the given values
func NewHeader(title, command string, params ...Param) *Header {
	return &Header{
		Title:   title,
		Command: command,
		Params:  params,
		Width:   GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (h *Header) SetWidth(width int) *Header {
	h.Width = width
	return h
}

// Render returns the styled header as a string
func (h *Header) Render() string {
	width := clampWidth(h.Width)

	top := lipgloss.JoinVertical(lipgloss.Left,
		HeaderTitleStyle.Render(strings.ToUpper(h.Title)),
		HeaderCommandStyle.Render(h.Command),
	)

	content := top
	if len(h.Params) > 0 {
		lines := make([]string, 0, len(h.Params))
		for _, p := range h.Params {
			lines = append(lines, HeaderParamKeyStyle.Render(p.Key+":")+" "+HeaderParamValueStyle.Render(p.Value))
		}
		// Border and padding take six columns.
		content = lipgloss.JoinVertical(lipgloss.Left, top, RenderHorizontalDivider(width-6), strings.Join(lines, "\n"))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width - 2).
		Render(content)
}

// Plain renders the header without styling.
func (h *Header) Plain() string {
	var b strings.Builder
	b.WriteString(strings.ToUpper(h.Title))
	b.WriteString("\n")
	if h.Command != "" {
		b.WriteString(h.Command)
		b.WriteString("\n")
	}
	writePlainParams(&b, h.Params, "  ")
	return b.String()
}

// String implements fmt.Stringer
func (h *Header) String() string {
	return h.Render()
}

func writePlainParams(b *strings.Builder, params []Param, indent string) {
	for _, p := range params {
		b.WriteString(indent)
		b.WriteString(p.Key)
		b.WriteString(": ")
		b.WriteString(p.Value)
		b.WriteString("\n")
	}
}
