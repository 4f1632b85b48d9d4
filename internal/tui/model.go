package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/pbruna/todotui/internal/config"
	"github.com/pbruna/todotui/internal/models"
	todoservice "github.com/pbruna/todotui/internal/services/todo"
	"github.com/pbruna/todotui/internal/tui/notifications"
)

// formValues are the editable fields backing the create/edit form.
type formValues struct {
	title       string
	description string
	completed   bool
}

// mode is the interaction mode the single screen is in.
type mode int

const (
	// modeLoading is the initial state while the first list() is in
	// flight. Later reloads keep the UI interactive instead.
	modeLoading mode = iota
	// modeBrowse is the main table view.
	modeBrowse
	// modeForm is the create/edit form.
	modeForm
	// modeDetail is the read-only description preview.
	modeDetail
)

// Model represents the application state for the TUI. It owns the todo
// list snapshot and the edit cursor; both are mutated only from the Update
// loop.
type Model struct {
	svc    todoservice.Service
	cfg    *config.Config
	keys   keyMap
	styles styles

	mode    mode
	table   table.Model
	spinner spinner.Model
	help    help.Model

	// form state. formVals lives behind a pointer because bubbletea
	// copies the model on every Update while the huh fields keep
	// writing through the pointers they were bound to.
	form     *huh.Form
	formVals *formValues

	// todos mirrors the remote store's last-known snapshot. Replaced
	// wholesale on every successful load, filtered on successful delete,
	// never patched in place on update.
	todos []models.Todo

	// editingID is the edit cursor: the id of the record loaded into the
	// form. Zero means create mode.
	editingID int

	toasts *notifications.State

	width  int
	height int
}

// InitialModel creates the TUI model wired to the given service.
func InitialModel(svc todoservice.Service, cfg *config.Config) Model {
	st := newStyles(cfg.Theme)

	columns := []table.Column{
		{Title: "ID", Width: 4},
		{Title: "Status", Width: 12},
		{Title: "Title", Width: 32},
		{Title: "Description", Width: 40},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	ts := table.DefaultStyles()
	ts.Header = st.tableHeader
	ts.Selected = st.tableSelected
	t.SetStyles(ts)

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(st.title),
	)

	return Model{
		svc:      svc,
		cfg:      cfg,
		keys:     newKeyMap(cfg.KeyMappings),
		styles:   st,
		mode:     modeLoading,
		table:    t,
		spinner:  sp,
		help:     help.New(),
		formVals: &formValues{},
		toasts:   notifications.NewState(),
	}
}

// Init starts the mount transition: enter Loading and fetch the list.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadTodosCmd(m.svc))
}

// setTodos replaces the list snapshot and reconciles the edit cursor: if
// the cursor no longer matches a present id, it is cleared and the form
// fields reset. This is what keeps an edit session alive across unrelated
// list mutations but not across deletion of its own target.
func (m *Model) setTodos(todos []models.Todo) {
	m.todos = todos
	if m.editingID != 0 && m.findTodo(m.editingID) == nil {
		m.editingID = 0
		m.resetForm()
	}
	m.refreshRows()
}

func (m *Model) refreshRows() {
	rows := make([]table.Row, 0, len(m.todos))
	for _, td := range m.todos {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", td.ID),
			statusLabel(td.Completed),
			td.Title,
			firstLine(td.Description),
		})
	}
	m.table.SetRows(rows)
	if cursor := m.table.Cursor(); cursor >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

func (m Model) findTodo(id int) *models.Todo {
	for i := range m.todos {
		if m.todos[i].ID == id {
			return &m.todos[i]
		}
	}
	return nil
}

// selectedTodo returns the todo under the table cursor, or nil.
func (m Model) selectedTodo() *models.Todo {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.todos) {
		return nil
	}
	return &m.todos[i]
}

func (m *Model) resetForm() {
	*m.formVals = formValues{}
	m.form = nil
}

// openForm builds a fresh form over the current form values and switches
// to form mode.
func (m *Model) openForm() tea.Cmd {
	m.form = newTodoForm(&m.formVals.title, &m.formVals.description, &m.formVals.completed)
	m.mode = modeForm
	return m.form.Init()
}

func (m Model) formInput() todoservice.Input {
	return todoservice.Input{
		Title:       m.formVals.title,
		Description: m.formVals.description,
		Completed:   m.formVals.completed,
	}
}

func statusLabel(completed bool) string {
	if completed {
		return "✅ Done"
	}
	return "❌ Not Done"
}

// firstLine truncates a description to a single table cell worth of text.
func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i] + "…"
		}
	}
	return s
}

// resize distributes the available width over the table columns.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	tableHeight := height - 8
	if tableHeight < 3 {
		tableHeight = 3
	}
	m.table.SetHeight(tableHeight)

	const idWidth, statusWidth = 4, 12
	rest := width - idWidth - statusWidth - 8
	if rest < 20 {
		rest = 20
	}
	titleWidth := rest / 2
	m.table.SetColumns([]table.Column{
		{Title: "ID", Width: idWidth},
		{Title: "Status", Width: statusWidth},
		{Title: "Title", Width: titleWidth},
		{Title: "Description", Width: rest - titleWidth},
	})

	m.help.Width = width
}
