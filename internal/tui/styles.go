package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	contextStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	satisfiedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	violatedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)
