package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	alertStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Bold(true)
)

// printHeader prints a section banner.
func printHeader(text string) {
	fmt.Println(headerStyle.Render(text))
	fmt.Println()
}

// newTable returns a tabwriter configured the way every tabular view
// renders, plus a function that writes its styled header row.
func newTable(columns ...string) (*tabwriter.Writer, func()) {
	w := tabwriter.NewWriter(lipgloss.DefaultRenderer().Output(), 0, 0, 3, ' ', tabwriter.AlignRight)
	writeHeader := func() {
		cells := make([]string, 0, len(columns))
		for _, col := range columns {
			cells = append(cells, titleStyle.Render(col))
		}
		_, _ = fmt.Fprintln(w, strings.Join(cells, "\t")+"\t")
		_, _ = fmt.Fprintln(w, strings.Repeat("─", 100))
	}
	return w, writeHeader
}

// truncateName keeps long labels readable in tables.
func truncateName(name string, max int) string {
	if name == "" {
		return "—"
	}
	runes := []rune(name)
	if len(runes) > max {
		return string(runes[:max-3]) + "..."
	}
	return name
}
