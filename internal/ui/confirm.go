package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Confirm prints a warning with its consequences and asks for a yes/no
// answer on in. Anything other than "y" or "yes" declines, as does EOF.
func (p *Printer) Confirm(in io.Reader, title string, consequences ...string) bool {
	r := NewWarningResult(title)
	r.Hints = consequences
	p.PrintResult(r)

	prompt := "Proceed? [y/N]: "
	if p.styled {
		prompt = lipgloss.NewStyle().Foreground(WarningColor).Bold(true).Render(prompt)
	}
	p.Print(prompt)

	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		p.Newline()
		return false
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}

	cancelled := "Operation cancelled."
	if p.styled {
		cancelled = lipgloss.NewStyle().Foreground(MutedColor).Render("  " + cancelled)
	}
	_, _ = fmt.Fprintln(p.out, cancelled)
	return false
}
