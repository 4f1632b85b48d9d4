package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pbruna/todotui/internal/config"
	"github.com/pbruna/todotui/internal/tui/notifications"
)

// styles bundles every lipgloss style derived from the configured theme.
type styles struct {
	title   lipgloss.Style
	muted   lipgloss.Style
	success lipgloss.Style
	errText lipgloss.Style
	panel   lipgloss.Style
	help    lipgloss.Style

	tableHeader   lipgloss.Style
	tableSelected lipgloss.Style

	toast notifications.Styles
}

func newStyles(theme config.Theme) styles {
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Accent)),
		muted:   lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Muted)),
		success: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Success)),
		errText: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ErrorBg)),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Muted)).
			Padding(0, 1),
		help: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Muted)),

		tableHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Accent)).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(theme.Muted)).
			BorderBottom(true),
		tableSelected: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.Selection)).
			Bold(false),

		toast: notifications.Styles{
			InfoFg:  theme.InfoFg,
			InfoBg:  theme.InfoBg,
			ErrorFg: theme.ErrorFg,
			ErrorBg: theme.ErrorBg,
		},
	}
}
