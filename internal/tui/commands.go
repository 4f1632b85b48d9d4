package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pbruna/todotui/internal/api"
	"github.com/pbruna/todotui/internal/models"
	todoservice "github.com/pbruna/todotui/internal/services/todo"
)

// Timeout constant for remote operations
const timeoutRemote = 30 * time.Second

// Messages produced by the asynchronous commands below. Every remote call
// resolves as exactly one of these; the Update loop is the only place that
// reacts to them, so list state and edit cursor stay owned by one flow.
type (
	todosLoadedMsg struct {
		todos []models.Todo
	}
	loadFailedMsg struct {
		err error
	}
	todoSavedMsg struct {
		todo    *models.Todo
		created bool
	}
	saveFailedMsg struct {
		err     error
		created bool
	}
	todoDeletedMsg struct {
		id int
	}
	deleteFailedMsg struct {
		id  int
		err error
	}
	toastExpiredMsg struct {
		id int
	}
)

// remoteContext creates a context bounding one remote call. The commands
// are fire-and-forget: nothing cancels them on teardown, their eventual
// resolution is simply discarded by the program when it has exited.
func remoteContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeoutRemote)
}

func loadTodosCmd(svc todoservice.Service) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := remoteContext()
		defer cancel()

		todos, err := svc.List(ctx)
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return todosLoadedMsg{todos: todos}
	}
}

func createTodoCmd(svc todoservice.Service, in todoservice.Input) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := remoteContext()
		defer cancel()

		created, err := svc.Create(ctx, in)
		if err != nil {
			return saveFailedMsg{err: err, created: true}
		}
		return todoSavedMsg{todo: created, created: true}
	}
}

func updateTodoCmd(svc todoservice.Service, id int, in todoservice.Input) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := remoteContext()
		defer cancel()

		updated, err := svc.Update(ctx, id, in)
		if err != nil {
			return saveFailedMsg{err: err, created: false}
		}
		return todoSavedMsg{todo: updated, created: false}
	}
}

func deleteTodoCmd(svc todoservice.Service, id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := remoteContext()
		defer cancel()

		err := svc.Delete(ctx, id)
		// A repeat delete of an already-missing id is benign at this
		// layer: the record is gone either way.
		if err != nil && !api.IsNotFound(err) {
			return deleteFailedMsg{id: id, err: err}
		}
		return todoDeletedMsg{id: id}
	}
}
