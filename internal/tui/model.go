// Package tui implements the interactive contract checker: a prompt
// that evaluates a candidate value against one contract of a suite on
// every keystroke.
package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/vow/pkg/contracts"
)

// Model contains the Bubbletea state for the interactive checker.
type Model struct {
	suiteName  string
	contractID string
	field      string
	contract   contracts.Contract[any]
	input      textinput.Model
	verdict    contracts.Verdict[any]
	evaluated  bool
	quitting   bool
}

// NewModel constructs a checker for the given compiled contract.
func NewModel(suiteName, contractID, field string, contract contracts.Contract[any]) Model {
	input := textinput.New()
	input.Placeholder = "type a value"
	input.Focus()

	return Model{
		suiteName:  suiteName,
		contractID: contractID,
		field:      field,
		contract:   contract,
		input:      input,
	}
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Verdict returns the latest verdict and whether one has been computed.
func (m Model) Verdict() (contracts.Verdict[any], bool) {
	return m.verdict, m.evaluated
}

// evaluate re-runs the contract against the current input. Numeric
// input is evaluated the way a YAML document would decode it: whole
// numbers as int, decimals as float64, everything else as string.
func (m *Model) evaluate() {
	raw := m.input.Value()
	if raw == "" {
		m.evaluated = false
		return
	}

	m.verdict = m.contract.Evaluate(coerce(raw))
	m.evaluated = true
}

func coerce(raw string) any {
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}
