package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
)

// styleReport highlights the "label: value" lines of a text report.
// Continuation lines are left alone.
func styleReport(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		label, value, ok := strings.Cut(line, ": ")
		if !ok || strings.HasPrefix(line, " ") {
			continue
		}
		lines[i] = labelStyle.Render(label+":") + " " + valueStyle.Render(value)
	}
	return strings.Join(lines, "\n")
}
