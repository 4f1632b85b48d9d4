package notifications

import "testing"

func TestAddAndExpire(t *testing.T) {
	s := NewState()
	if s.HasAny() {
		t.Error("new state should have no notifications")
	}

	first := s.Add(Info, "Todo deleted")
	second := s.Add(Error, "Failed to create todo")

	if len(s.All()) != 2 {
		t.Fatalf("got %d notifications, want 2", len(s.All()))
	}

	s.Expire(first)
	all := s.All()
	if len(all) != 1 || all[0].ID != second {
		t.Errorf("after expiry got %+v, want only the second notification", all)
	}

	// Expiring an unknown id is a no-op
	s.Expire(999)
	if len(s.All()) != 1 {
		t.Errorf("expiring unknown id changed state: %+v", s.All())
	}
}

func TestClear(t *testing.T) {
	s := NewState()
	s.Add(Info, "one")
	s.Add(Info, "two")
	s.Clear()
	if s.HasAny() {
		t.Errorf("Clear left notifications: %+v", s.All())
	}
}

func TestSeverityPreserved(t *testing.T) {
	s := NewState()
	s.Add(Error, "boom")
	if got := s.All()[0].Severity; got != Error {
		t.Errorf("severity = %v, want Error", got)
	}
}
