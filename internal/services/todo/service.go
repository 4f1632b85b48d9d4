package todo

import (
	"context"
	"fmt"
	"strings"

	"github.com/pbruna/todotui/internal/api"
	"github.com/pbruna/todotui/internal/models"
)

const (
	maxTitleLen       = 255
	maxDescriptionLen = 5000
)

// Input encapsulates the user-editable fields of a todo. The id never
// appears here: on update it is supplied separately, on create the server
// assigns it.
type Input struct {
	Title       string
	Description string
	Completed   bool
}

// Service defines all todo-related business operations.
type Service interface {
	// List returns the full current ordered sequence of todos.
	List(ctx context.Context) ([]models.Todo, error)

	// Create validates the input and persists a new todo, returning the
	// server-assigned record.
	Create(ctx context.Context, in Input) (*models.Todo, error)

	// Update validates the input and replaces the todo with the given id.
	Update(ctx context.Context, id int, in Input) (*models.Todo, error)

	// Delete removes the todo with the given id.
	Delete(ctx context.Context, id int) error
}

// service implements Service interface
type service struct {
	store api.Store
}

// NewService creates a new todo service backed by the given store.
func NewService(store api.Store) Service {
	return &service{store: store}
}

// ValidateTitle checks a single title value. Exported so form fields can
// attach it and surface the message next to the input.
func ValidateTitle(title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return ErrEmptyTitle
	}
	if len(trimmed) > maxTitleLen {
		return ErrTitleTooLong
	}
	return nil
}

// ValidateDescription checks a single description value.
func ValidateDescription(description string) error {
	if len(description) > maxDescriptionLen {
		return ErrDescriptionTooLong
	}
	return nil
}

// Validate runs the full declarative rule set over the input and returns a
// mapping from field name to a human-readable message. An empty map means
// the input is valid. Validation is synchronous and runs before any network
// call is made.
func Validate(in Input) map[string]string {
	fields := make(map[string]string)
	if err := ValidateTitle(in.Title); err != nil {
		fields["title"] = err.Error()
	}
	if err := ValidateDescription(in.Description); err != nil {
		fields["description"] = err.Error()
	}
	return fields
}

func (s *service) List(ctx context.Context) ([]models.Todo, error) {
	todos, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	return todos, nil
}

func (s *service) Create(ctx context.Context, in Input) (*models.Todo, error) {
	if fields := Validate(in); len(fields) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, firstMessage(fields))
	}

	created, err := s.store.Create(ctx, in.toModel())
	if err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}
	return created, nil
}

func (s *service) Update(ctx context.Context, id int, in Input) (*models.Todo, error) {
	if id <= 0 {
		return nil, ErrInvalidTodoID
	}
	if fields := Validate(in); len(fields) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, firstMessage(fields))
	}

	updated, err := s.store.Update(ctx, id, in.toModel())
	if err != nil {
		return nil, fmt.Errorf("failed to update todo %d: %w", id, err)
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidTodoID
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete todo %d: %w", id, err)
	}
	return nil
}

func (in Input) toModel() models.Todo {
	return models.Todo{
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Completed:   in.Completed,
	}
}

// firstMessage picks a stable message for the wrapped validation error.
// Title problems take priority since the title is the only required field.
func firstMessage(fields map[string]string) string {
	if msg, ok := fields["title"]; ok {
		return msg
	}
	for _, msg := range fields {
		return msg
	}
	return ""
}
