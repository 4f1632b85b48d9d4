package notifications

import "github.com/charmbracelet/lipgloss"

// Styles holds the palette for notification banners, supplied by the
// application theme.
type Styles struct {
	InfoFg  string
	InfoBg  string
	ErrorFg string
	ErrorBg string
}

func (s Severity) icon() string {
	switch s {
	case Error:
		return "✕"
	default:
		return "🔔"
	}
}

// Render renders a notification as a compact single-line banner.
func Render(n Notification, st Styles) string {
	fg, bg := st.InfoFg, st.InfoBg
	if n.Severity == Error {
		fg, bg = st.ErrorFg, st.ErrorBg
	}

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg)).
		Padding(0, 1).
		Render(n.Severity.icon() + " " + n.Message)
}
