package notifications

// Severity represents the severity level of a notification
type Severity int

const (
	// Info represents informational notifications (bell icon)
	Info Severity = iota
	// Error represents error notifications (cross icon)
	Error
)

// Notification is a single transient message with a severity level.
type Notification struct {
	ID       int
	Severity Severity
	Message  string
}

// State manages the set of notifications currently on screen. The owning
// model adds a notification together with an expiry tick and removes it
// when the tick fires.
type State struct {
	notifications []Notification
	nextID        int
}

// NewState creates a State with no notifications.
func NewState() *State {
	return &State{nextID: 1}
}

// Add appends a notification and returns its id for later expiry.
func (s *State) Add(severity Severity, message string) int {
	id := s.nextID
	s.nextID++
	s.notifications = append(s.notifications, Notification{
		ID:       id,
		Severity: severity,
		Message:  message,
	})
	return id
}

// Expire removes the notification with the given id. Expiring an unknown
// id is a no-op.
func (s *State) Expire(id int) {
	filtered := s.notifications[:0]
	for _, n := range s.notifications {
		if n.ID != id {
			filtered = append(filtered, n)
		}
	}
	s.notifications = filtered
}

// Clear removes all notifications.
func (s *State) Clear() {
	s.notifications = nil
}

// All returns all current notifications in insertion order.
func (s *State) All() []Notification {
	return s.notifications
}

// HasAny returns true if there are any notifications.
func (s *State) HasAny() bool {
	return len(s.notifications) > 0
}
