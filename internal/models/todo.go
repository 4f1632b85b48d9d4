package models

// Todo represents a single todo item as stored by the remote server.
type Todo struct {
	// ID is assigned by the server on create and is immutable once set.
	// Zero means the record has not been persisted yet, which is why it is
	// omitted from the JSON body on create.
	ID          int    `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Completed   bool   `json:"completed"`
}

// Persisted reports whether the todo has a server-assigned identity.
func (t Todo) Persisted() bool {
	return t.ID > 0
}
