package app

import (
	"github.com/pbruna/todotui/internal/api"
	"github.com/pbruna/todotui/internal/config"
	todoservice "github.com/pbruna/todotui/internal/services/todo"
)

// App holds all application services and provides dependency injection.
type App struct {
	// Store layer (remote API access)
	store api.Store

	// Service layer (validation + business logic)
	TodoService todoservice.Service
}

// New creates an App wired against the remote server from the config.
func New(cfg *config.Config) *App {
	client := api.NewClient(cfg.Server.BaseURL, cfg.Server.Timeout())
	return NewWithStore(client)
}

// NewWithStore creates an App against an arbitrary store. Tests use this
// to substitute a fake remote.
func NewWithStore(store api.Store) *App {
	return &App{
		store:       store,
		TodoService: todoservice.NewService(store),
	}
}

// Store returns the underlying store for direct access.
func (a *App) Store() api.Store {
	return a.store
}
