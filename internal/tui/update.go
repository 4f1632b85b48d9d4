package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/pbruna/todotui/internal/models"
	"github.com/pbruna/todotui/internal/tui/notifications"
)

// toastDuration is how long a notification stays on screen.
const toastDuration = 3 * time.Second

// Update handles all messages and updates the model accordingly. All
// remote outcomes arrive here as messages, so every failure path returns
// the UI to a stable, interactive state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		if m.mode != modeLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case todosLoadedMsg:
		m.setTodos(msg.todos)
		if m.mode == modeLoading {
			m.mode = modeBrowse
		}
		return m, nil

	case loadFailedMsg:
		slog.Error("failed to load todos", "error", msg.err)
		m.setTodos(nil)
		if m.mode == modeLoading {
			m.mode = modeBrowse
		}
		return m, m.notify(notifications.Error, "Failed to load todos")

	case todoSavedMsg:
		m.editingID = 0
		m.resetForm()
		verb := "updated"
		if msg.created {
			verb = "created"
		}
		// Full reload instead of a local patch: the server is the
		// single source of truth.
		return m, tea.Batch(
			m.notify(notifications.Info, "Todo "+verb),
			loadTodosCmd(m.svc),
		)

	case saveFailedMsg:
		slog.Error("failed to save todo", "created", msg.created, "error", msg.err)
		verb := "update"
		if msg.created {
			verb = "create"
		}
		// Reopen the form with the entered values retained so the user
		// can correct and resubmit.
		return m, tea.Batch(
			m.notify(notifications.Error, "Failed to "+verb+" todo"),
			m.openForm(),
		)

	case todoDeletedMsg:
		m.removeLocally(msg.id)
		return m, m.notify(notifications.Info, "Todo deleted")

	case deleteFailedMsg:
		slog.Error("failed to delete todo", "id", msg.id, "error", msg.err)
		// List unchanged: removal is deferred until success, so the
		// record stays visible.
		return m, m.notify(notifications.Error, "Failed to delete todo")

	case toastExpiredMsg:
		m.toasts.Expire(msg.id)
		return m, nil
	}

	switch m.mode {
	case modeForm:
		return m.updateForm(msg)
	case modeDetail:
		return m.updateDetail(msg)
	case modeBrowse:
		return m.updateBrowse(msg)
	default: // modeLoading
		return m, nil
	}
}

// updateBrowse handles the main table view.
func (m Model) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(keyMsg, m.keys.Add):
		m.editingID = 0
		m.resetForm()
		return m, m.openForm()

	case key.Matches(keyMsg, m.keys.Edit):
		td := m.selectedTodo()
		if td == nil || !td.Persisted() {
			// Editing requires a server-assigned id.
			return m, nil
		}
		// Presentation sync: the edit cursor points at the record and
		// the form fields take its current values.
		m.editingID = td.ID
		*m.formVals = formValues{
			title:       td.Title,
			description: td.Description,
			completed:   td.Completed,
		}
		return m, m.openForm()

	case key.Matches(keyMsg, m.keys.Delete):
		td := m.selectedTodo()
		if td == nil || !td.Persisted() {
			return m, nil
		}
		return m, deleteTodoCmd(m.svc, td.ID)

	case key.Matches(keyMsg, m.keys.View):
		if m.selectedTodo() == nil {
			return m, nil
		}
		m.mode = modeDetail
		return m, nil

	case key.Matches(keyMsg, m.keys.Reload):
		return m, loadTodosCmd(m.svc)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// updateForm forwards messages to the huh form and reacts to completion.
func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.form == nil {
		m.mode = modeBrowse
		return m, nil
	}

	next, cmd := m.form.Update(msg)
	if f, ok := next.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m.submitForm()
	case huh.StateAborted:
		// Cancel: no network call, remote state untouched.
		m.editingID = 0
		m.resetForm()
		m.mode = modeBrowse
		return m, nil
	}
	return m, cmd
}

// submitForm runs the create-or-update transition. The form's validators
// already gate completion, so by the time we get here the input passes the
// schema; the service revalidates anyway as the hard gate in front of the
// network.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	in := m.formInput()
	m.mode = modeBrowse
	m.form = nil

	if m.editingID != 0 {
		return m, updateTodoCmd(m.svc, m.editingID, in)
	}
	return m, createTodoCmd(m.svc, in)
}

// updateDetail handles the read-only description preview.
func (m Model) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Quit),
			key.Matches(keyMsg, m.keys.View):
			m.mode = modeBrowse
		default:
			if keyMsg.String() == "esc" {
				m.mode = modeBrowse
			}
		}
	}
	return m, nil
}

// removeLocally drops exactly the record with the given id from the
// snapshot, preserving the order of the rest. Absent ids are a no-op.
// This is the optimistic local delete; updates go through a reload instead.
func (m *Model) removeLocally(id int) {
	filtered := make([]models.Todo, 0, len(m.todos))
	for _, td := range m.todos {
		if td.ID != id {
			filtered = append(filtered, td)
		}
	}
	m.setTodos(filtered)
}

// notify adds a toast and schedules its expiry.
func (m *Model) notify(severity notifications.Severity, message string) tea.Cmd {
	id := m.toasts.Add(severity, message)
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}
