package api

import (
	"context"

	"github.com/pbruna/todotui/internal/models"
)

// Store defines the remote todo store operations. Depending on this
// interface instead of *Client keeps the service layer loosely coupled and
// lets tests substitute a fake store.
type Store interface {
	// List returns the full current ordered sequence of todos.
	List(ctx context.Context) ([]models.Todo, error)

	// Create persists a new todo and returns the server-assigned record.
	Create(ctx context.Context, todo models.Todo) (*models.Todo, error)

	// Update replaces the todo with the given id.
	Update(ctx context.Context, id int, todo models.Todo) (*models.Todo, error)

	// Delete removes the todo with the given id.
	Delete(ctx context.Context, id int) error
}

// Compile-time verification that *Client implements Store.
var _ Store = (*Client)(nil)
