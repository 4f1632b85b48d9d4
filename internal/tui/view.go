package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/pbruna/todotui/internal/tui/notifications"
)

// View renders the single screen for the current mode.
func (m Model) View() string {
	switch m.mode {
	case modeLoading:
		return m.styles.panel.Render(
			fmt.Sprintf("%s Loading todos...", m.spinner.View()),
		)
	case modeForm:
		return m.viewForm()
	case modeDetail:
		return m.viewDetail()
	default:
		return m.viewBrowse()
	}
}

func (m Model) viewBrowse() string {
	var b strings.Builder

	b.WriteString(m.header())
	b.WriteString("\n")

	if m.toasts.HasAny() {
		b.WriteString(m.viewToasts())
		b.WriteString("\n")
	}

	if len(m.todos) == 0 {
		b.WriteString(m.styles.muted.Render("No todos yet. Press 'a' to add one."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.table.View())
		b.WriteString("\n")
	}

	b.WriteString(m.styles.help.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) viewForm() string {
	title := "Add todo"
	if m.editingID != 0 {
		title = fmt.Sprintf("Edit todo #%d", m.editingID)
	}

	var b strings.Builder
	b.WriteString(m.styles.title.Render(title))
	b.WriteString("\n\n")
	if m.form != nil {
		b.WriteString(m.form.View())
	}
	if m.toasts.HasAny() {
		b.WriteString("\n")
		b.WriteString(m.viewToasts())
	}
	return m.styles.panel.Render(b.String())
}

func (m Model) viewDetail() string {
	td := m.selectedTodo()
	if td == nil {
		return m.viewBrowse()
	}

	var b strings.Builder
	b.WriteString(m.styles.title.Render(fmt.Sprintf("#%d %s", td.ID, td.Title)))
	b.WriteString("\n")
	if td.Completed {
		b.WriteString(m.styles.success.Render(statusLabel(true)))
	} else {
		b.WriteString(m.styles.muted.Render(statusLabel(false)))
	}
	b.WriteString("\n\n")

	if td.Description == "" {
		b.WriteString(m.styles.muted.Render("No description."))
	} else {
		b.WriteString(m.renderMarkdown(td.Description))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.help.Render("esc/space to go back"))

	return m.styles.panel.Render(b.String())
}

// renderMarkdown renders the description through glamour, falling back to
// the raw text when rendering fails.
func (m Model) renderMarkdown(md string) string {
	width := m.width - 6
	if width < 20 {
		width = 72
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

// header shows the app title with live done/pending counts.
func (m Model) header() string {
	done, pending := 0, 0
	for _, td := range m.todos {
		if td.Completed {
			done++
		} else {
			pending++
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Bottom,
		m.styles.title.Render("Todos"),
		m.styles.muted.Render("  "),
		m.styles.success.Render(fmt.Sprintf("✔ %d", done)),
		m.styles.muted.Render(fmt.Sprintf("  • %d pending  %d total", pending, len(m.todos))),
	)
}

func (m Model) viewToasts() string {
	all := m.toasts.All()
	lines := make([]string, 0, len(all))
	for _, n := range all {
		lines = append(lines, notifications.Render(n, m.styles.toast))
	}
	return strings.Join(lines, "\n")
}
