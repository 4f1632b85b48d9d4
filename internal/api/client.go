package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pbruna/todotui/internal/models"
)

// Client is the HTTP wrapper for the remote todos REST API.
// It performs no retries; every failure is returned to the caller
// immediately as an *Error.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the API rooted at baseURL.
// A timeout of zero leaves requests bounded only by their context.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// List fetches the full current sequence of todos via GET /todos.
func (c *Client) List(ctx context.Context) ([]models.Todo, error) {
	resp, err := c.do(ctx, "list", http.MethodGet, c.baseURL+"/todos", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var todos []models.Todo
	if err := json.NewDecoder(resp.Body).Decode(&todos); err != nil {
		return nil, &Error{Op: "list", Kind: KindServer, Err: fmt.Errorf("decode response: %w", err)}
	}
	return todos, nil
}

// Create sends a record without id via POST /todos and returns the
// server-assigned record.
func (c *Client) Create(ctx context.Context, todo models.Todo) (*models.Todo, error) {
	todo.ID = 0 // the server owns identity assignment
	resp, err := c.do(ctx, "create", http.MethodPost, c.baseURL+"/todos", todo)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var created models.Todo
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, &Error{Op: "create", Kind: KindServer, Err: fmt.Errorf("decode response: %w", err)}
	}
	return &created, nil
}

// Update replaces the record with the given id via PUT /todos/{id}.
// A missing id yields a KindNotFound error.
func (c *Client) Update(ctx context.Context, id int, todo models.Todo) (*models.Todo, error) {
	url := fmt.Sprintf("%s/todos/%d", c.baseURL, id)
	resp, err := c.do(ctx, "update", http.MethodPut, url, todo)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var updated models.Todo
	if err := json.NewDecoder(resp.Body).Decode(&updated); err != nil {
		return nil, &Error{Op: "update", Kind: KindServer, Err: fmt.Errorf("decode response: %w", err)}
	}
	return &updated, nil
}

// Delete removes the record with the given id via DELETE /todos/{id}.
// A missing id yields a KindNotFound error; callers at the UI layer treat
// that as a benign repeat delete.
func (c *Client) Delete(ctx context.Context, id int) error {
	url := fmt.Sprintf("%s/todos/%d", c.baseURL, id)
	resp, err := c.do(ctx, "delete", http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// do builds and sends one request, classifying any failure. The returned
// response always has a 2xx status; its body is the caller's to close.
func (c *Client) do(ctx context.Context, op, method, url string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, &Error{Op: op, Kind: KindTransport, Err: fmt.Errorf("marshal request: %w", err)}
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, &Error{Op: op, Kind: KindTransport, Err: fmt.Errorf("build request: %w", err)}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Op: op, Kind: KindTransport, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		kind := KindServer
		if resp.StatusCode == http.StatusNotFound {
			kind = KindNotFound
		}
		return nil, &Error{
			Op:     op,
			Kind:   kind,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("%s", strings.TrimSpace(string(raw))),
		}
	}

	return resp, nil
}
