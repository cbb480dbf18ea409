package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Colors are dropped automatically when stdout is not a terminal.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF79C6"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#50FA7B"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5555"))

	statStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFB86C"))
)

func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, titleStyle.Render("=== "+title+" ==="))
}

func printStat(w io.Writer, label string, value any) {
	fmt.Fprintf(w, "%s: %s\n", label, statStyle.Render(fmt.Sprint(value)))
}

func printSuccess(w io.Writer, message string) {
	fmt.Fprintln(w, successStyle.Render("✓ "+message))
}

func printError(w io.Writer, message string) {
	fmt.Fprintln(w, errorStyle.Render("✗ "+message))
}
