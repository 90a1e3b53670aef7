// Package render formats evaluation reports and failure trees for
// terminal output.
package render

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/vow/internal/runner"
	"github.com/alexisbeaulieu97/vow/pkg/contracts"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	satisfiedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	violatedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	summaryStyle   = lipgloss.NewStyle().MarginTop(1)
)

const (
	defaultWidth = 80
	timeRounding = 100 * time.Microsecond
)

// Width returns the terminal width, falling back to a sane default when
// stdout is not a terminal.
func Width() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

// Report renders a full evaluation report: one line per contract, a
// failure tree under each violated contract, and a summary.
func Report(rep *runner.Report) string {
	var b strings.Builder

	header := rep.Suite
	if rep.Document != "" {
		header = fmt.Sprintf("%s — %s", rep.Suite, rep.Document)
	}
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", min(Width(), defaultWidth))))
	b.WriteString("\n")

	for _, result := range rep.Results {
		if result.Satisfied() {
			b.WriteString(satisfiedStyle.Render(fmt.Sprintf("✔ %s", result.ID)))
			b.WriteString(mutedStyle.Render(fmt.Sprintf(" (%s)", result.Field)))
			b.WriteString("\n")
			continue
		}

		b.WriteString(violatedStyle.Render(fmt.Sprintf("✘ %s", result.ID)))
		b.WriteString(mutedStyle.Render(fmt.Sprintf(" (%s)", result.Field)))
		b.WriteString("\n")
		b.WriteString(FailureTree(result.Verdict.Failure(), 1))
	}

	status := satisfiedStyle.Render("all contracts satisfied")
	if rep.Failed() {
		status = violatedStyle.Render(fmt.Sprintf("%d contract(s) violated", rep.Violated))
	}
	b.WriteString(summaryStyle.Render(fmt.Sprintf(
		"%d checked, %d satisfied, %d violated in %s — %s",
		len(rep.Results), rep.Satisfied, rep.Violated, rep.Duration.Round(timeRounding), status,
	)))
	b.WriteString("\n")

	return b.String()
}

// FailureTree renders a failure and its nested failures as an indented
// tree, one leaf violation per line.
func FailureTree(f *contracts.Failure, depth int) string {
	if f == nil {
		return ""
	}

	var b strings.Builder
	indent := strings.Repeat("  ", depth)

	if f.IsLeaf() {
		b.WriteString(indent)
		b.WriteString(violatedStyle.Render("· " + f.Name))
		b.WriteString(mutedStyle.Render(": " + f.Message))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(indent)
	b.WriteString(mutedStyle.Render(f.Message))
	b.WriteString("\n")
	for _, nested := range f.Nested {
		b.WriteString(FailureTree(nested, depth+1))
	}
	return b.String()
}
