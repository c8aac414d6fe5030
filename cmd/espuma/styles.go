package main

import (
	"fmt"
	"strings"

	"Espuma/internal/calc/foam"
	"Espuma/internal/formulation"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#828c99", Dark: "#6c7680"})
	valueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#86b300", Dark: "#c2d94c"})
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#f07171", Dark: "#f07178"})
)

// renderResult formats a result for the terminal. Errors keep the plain
// message so they can be grepped.
func renderResult(res foam.Result) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(res.Name))
	b.WriteString("\n")
	if !res.OK {
		b.WriteString(errorStyle.Render(res.Message))
		return b.String()
	}
	b.WriteString(formulation.ResultHeader)
	for i, line := range formulation.Lines(*res.Masses) {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(fmt.Sprintf("  %d. %s:", i+1, line.Label)))
		b.WriteString(" ")
		b.WriteString(valueStyle.Render(line.Value))
	}
	return b.String()
}
