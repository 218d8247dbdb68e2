package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ResultType indicates success or failure
type ResultType int

const (
	ResultSuccess ResultType = iota
	ResultFailure
	ResultWarning
)

// Label returns the word shown next to the marker.
func (t ResultType) Label() string {
	switch t {
	case ResultFailure:
		return "FAILED"
	case ResultWarning:
		return "WARNING"
	default:
		return "SUCCESS"
	}
}

func (t ResultType) marker() string {
	switch t {
	case ResultFailure:
		return FailureMarker
	case ResultWarning:
		return WarningMarker
	default:
		return SuccessMarker
	}
}

func (t ResultType) color() lipgloss.Color {
	switch t {
	case ResultFailure:
		return ErrorColor
	case ResultWarning:
		return WarningColor
	default:
		return SuccessColor
	}
}

func (t ResultType) titleStyle() lipgloss.Style {
	switch t {
	case ResultFailure:
		return ErrorTitleStyle
	case ResultWarning:
		return WarningTitleStyle
	default:
		return SuccessTitleStyle
	}
}

// Result represents a result box (success, failure, or warning)
type Result struct {
	Type    ResultType
	Title   string   // e.g., "Value committed"
	Details []Param  // Shown in order
	Error   error    // Failure results only
	Hints   []string // Suggestions shown below the error
	Width   int
}

// NewSuccessResult creates a success result box
func NewSuccessResult(title string, details ...Param) *Result {
	return &Result{Type: ResultSuccess, Title: title, Details: details, Width: GetTerminalWidth()}
}

// NewFailureResult creates a failure result box
func NewFailureResult(title string, err error, hints ...string) *Result {
	return &Result{Type: ResultFailure, Title: title, Error: err, Hints: hints, Width: GetTerminalWidth()}
}

// NewWarningResult creates a warning result box
func NewWarningResult(title string, details ...Param) *Result {
	return &Result{Type: ResultWarning, Title: title, Details: details, Width: GetTerminalWidth()}
}

// SetWidth sets the terminal width for responsive rendering
func (r *Result) SetWidth(width int) *Result {
	r.Width = width
	return r
}

// AddDetail appends a detail line
func (r *Result) AddDetail(key, value string) *Result {
	r.Details = append(r.Details, Param{Key: key, Value: value})
	return r
}

// Render returns the styled result box as a string
func (r *Result) Render() string {
	width := clampWidth(r.Width)

	lines := []string{
		"",
		r.Type.titleStyle().Render(fmt.Sprintf("   %s  %s  ─  %s", r.Type.marker(), r.Type.Label(), r.Title)),
		"",
	}

	for _, d := range r.Details {
		lines = append(lines, ResultKeyStyle.Render("   "+d.Key+":")+" "+ResultValueStyle.Render(d.Value))
	}
	if len(r.Details) > 0 {
		lines = append(lines, "")
	}

	if r.Error != nil {
		lines = append(lines, ErrorMessageStyle.Render("   Error: "+r.Error.Error()), "")
	}

	if len(r.Hints) > 0 {
		lines = append(lines, r.renderHints(width), "")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(r.Type.color()).
		Width(width - 2).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
}

func (r *Result) renderHints(width int) string {
	lines := []string{HintTitleStyle.Render("Hints:"), ""}
	for _, hint := range r.Hints {
		lines = append(lines, HintItemStyle.Render("  • "+hint))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(MutedColor).
		Width(max(width-12, 40)).
		Padding(0, 1).
		MarginLeft(3).
		Render(strings.Join(lines, "\n"))
}

// Plain renders the result without styling, one fact per line.
func (r *Result) Plain() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", r.Type.Label(), r.Title)
	writePlainParams(&b, r.Details, "  ")
	if r.Error != nil {
		fmt.Fprintf(&b, "  Error: %v\n", r.Error)
	}
	for _, hint := range r.Hints {
		fmt.Fprintf(&b, "  - %s\n", hint)
	}
	return b.String()
}

// String implements fmt.Stringer
func (r *Result) String() string {
	return r.Render()
}
