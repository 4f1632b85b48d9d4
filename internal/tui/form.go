package tui

import (
	"github.com/charmbracelet/huh"

	todoservice "github.com/pbruna/todotui/internal/services/todo"
)

// newTodoForm creates a huh form for adding/editing a todo. The form uses
// pointers to update values in place; the per-field validators surface
// their message next to the offending input and block completion, so a
// todo with an empty title can never be submitted from the form.
func newTodoForm(title, description *string, completed *bool) *huh.Form {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("title").
				Title("Title").
				Placeholder("Enter todo title...").
				Validate(todoservice.ValidateTitle).
				Value(title),

			huh.NewText().
				Key("description").
				Title("Description").
				Placeholder("Enter todo description...").
				CharLimit(5000).
				Lines(4).
				Validate(todoservice.ValidateDescription).
				Value(description),

			huh.NewConfirm().
				Key("completed").
				Title("Completed?").
				Affirmative("Done").
				Negative("Not done").
				Value(completed),
		),
	)
	return form.WithShowHelp(false)
}
