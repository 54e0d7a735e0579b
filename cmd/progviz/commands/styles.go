package commands

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"progviz/internal/domain"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	termStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575"))
	courseStyle  = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Faint(true)
	noneText     = labelStyle.Render("none")
)

// reqList renders requirements as "A; B or C", or a faint "none".
func reqList(reqs []domain.Requirement) string {
	if len(reqs) == 0 {
		return noneText
	}
	parts := make([]string, len(reqs))
	for i, r := range reqs {
		parts[i] = string(r)
	}
	return strings.Join(parts, "; ")
}
