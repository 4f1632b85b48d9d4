package app

import (
	"context"
	"testing"

	"github.com/pbruna/todotui/internal/api"
	"github.com/pbruna/todotui/internal/config"
	"github.com/pbruna/todotui/internal/models"
)

type nopStore struct{}

func (nopStore) List(context.Context) ([]models.Todo, error) { return nil, nil }
func (nopStore) Create(context.Context, models.Todo) (*models.Todo, error) {
	return &models.Todo{}, nil
}
func (nopStore) Update(context.Context, int, models.Todo) (*models.Todo, error) {
	return &models.Todo{}, nil
}
func (nopStore) Delete(context.Context, int) error { return nil }

var _ api.Store = nopStore{}

func TestNew(t *testing.T) {
	cfg, err := config.Load("/nonexistent/config.yaml")
	if err != nil {
		t.Fatalf("load default config: %v", err)
	}

	a := New(cfg)
	if a == nil {
		t.Fatal("Expected app to be created, got nil")
	}
	if a.TodoService == nil {
		t.Error("Expected TodoService to be initialized")
	}
	if a.Store() == nil {
		t.Error("Expected store to be initialized")
	}
}

func TestNewWithStore(t *testing.T) {
	a := NewWithStore(nopStore{})
	if a.TodoService == nil {
		t.Error("Expected TodoService to be initialized")
	}
}
