package tui

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/vow/internal/render"
)

// View renders the checker: prompt, live verdict, help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("vow · %s", m.suiteName)))
	b.WriteString("\n")
	b.WriteString(contextStyle.Render(fmt.Sprintf("contract %s (%s)", m.contractID, m.field)))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	verdict, evaluated := m.Verdict()
	switch {
	case !evaluated:
		b.WriteString(contextStyle.Render("waiting for input"))
		b.WriteString("\n")
	case verdict.Satisfied():
		b.WriteString(satisfiedStyle.Render(fmt.Sprintf("✔ satisfied, accepted value: %v", verdict.Value())))
		b.WriteString("\n")
	default:
		b.WriteString(violatedStyle.Render("✘ violated"))
		b.WriteString("\n")
		b.WriteString(render.FailureTree(verdict.Failure(), 1))
	}

	b.WriteString(helpStyle.Render("esc or ctrl+c to quit"))
	b.WriteString("\n")

	return b.String()
}
