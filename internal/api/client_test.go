package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/pbruna/todotui/internal/api"
	"github.com/pbruna/todotui/internal/models"
)

// newTestServer returns a fake todos API backed by an in-memory slice.
func newTestServer(t *testing.T, seed []models.Todo) *httptest.Server {
	t.Helper()

	todos := make([]models.Todo, len(seed))
	copy(todos, seed)
	nextID := 1
	for _, td := range todos {
		if td.ID >= nextID {
			nextID = td.ID + 1
		}
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/todos", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(todos)
		case http.MethodPost:
			var td models.Todo
			if err := json.NewDecoder(r.Body).Decode(&td); err != nil || td.Title == "" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			td.ID = nextID
			nextID++
			todos = append(todos, td)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(td)
		}
	})

	mux.HandleFunc("/todos/", func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/todos/"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		idx := -1
		for i, td := range todos {
			if td.ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodPut:
			var td models.Todo
			if err := json.NewDecoder(r.Body).Decode(&td); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			td.ID = id
			todos[idx] = td
			json.NewEncoder(w).Encode(td)
		case http.MethodDelete:
			todos = append(todos[:idx], todos[idx+1:]...)
			w.WriteHeader(http.StatusNoContent)
		}
	})

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func TestClientCRUD(t *testing.T) {
	ts := newTestServer(t, []models.Todo{
		{ID: 1, Title: "A", Completed: false},
	})

	client := api.NewClient(ts.URL, 5*time.Second)
	ctx := context.Background()

	t.Run("List", func(t *testing.T) {
		todos, err := client.List(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(todos) != 1 || todos[0].Title != "A" {
			t.Errorf("unexpected list result: %+v", todos)
		}
	})

	t.Run("CreateAssignsID", func(t *testing.T) {
		created, err := client.Create(ctx, models.Todo{Title: "B", Description: "details"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !created.Persisted() {
			t.Errorf("expected server-assigned id, got %+v", created)
		}

		// list() after create(todo) contains a record equal to todo
		// except for the assigned id
		todos, err := client.List(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var found bool
		for _, td := range todos {
			if td.ID == created.ID {
				found = true
				if td.Title != "B" || td.Description != "details" || td.Completed {
					t.Errorf("created record round-tripped as %+v", td)
				}
			}
		}
		if !found {
			t.Errorf("created record missing from list: %+v", todos)
		}
	})

	t.Run("Update", func(t *testing.T) {
		updated, err := client.Update(ctx, 1, models.Todo{Title: "A", Completed: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !updated.Completed {
			t.Errorf("expected completed=true, got %+v", updated)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := client.Delete(ctx, 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		todos, err := client.List(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, td := range todos {
			if td.ID == 1 {
				t.Errorf("deleted record still listed: %+v", todos)
			}
		}
	})
}

func TestClientNotFound(t *testing.T) {
	ts := newTestServer(t, nil)
	client := api.NewClient(ts.URL, 5*time.Second)
	ctx := context.Background()

	if _, err := client.Update(ctx, 99, models.Todo{Title: "X"}); !api.IsNotFound(err) {
		t.Errorf("Update of missing id: got %v, want not-found error", err)
	}
	if err := client.Delete(ctx, 99); !api.IsNotFound(err) {
		t.Errorf("Delete of missing id: got %v, want not-found error", err)
	}
}

func TestClientServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := api.NewClient(ts.URL, 5*time.Second)
	_, err := client.List(context.Background())
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
	apiErr, ok := err.(*api.Error)
	if !ok {
		t.Fatalf("expected *api.Error, got %T", err)
	}
	if apiErr.Kind != api.KindServer || apiErr.Status != http.StatusInternalServerError {
		t.Errorf("unexpected classification: %+v", apiErr)
	}
}

func TestClientTransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // connection refused from here on

	client := api.NewClient(ts.URL, time.Second)
	_, err := client.List(context.Background())
	if !api.IsTransport(err) {
		t.Errorf("expected transport error for unreachable server, got %v", err)
	}
}
