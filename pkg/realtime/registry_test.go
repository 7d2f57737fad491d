package realtime

import "testing"

func TestNewRegistry(t *testing.T) {
	r := NewRegistry[string]()
	if r == nil {
		t.Fatal("NewRegistry returned nil")
	}
}

func TestRegistry_Create_Get(t *testing.T) {
	r := NewRegistry[string]()
	r.Create("abcdefgh", "state")

	s, ok := r.Get("abcdefgh")
	if !ok {
		t.Fatal("Get returned false for existing session")
	}
	if s.Code != "abcdefgh" {
		t.Errorf("session Code %q, want abcdefgh", s.Code)
	}
	if s.State != "state" {
		t.Errorf("session State %q, want state", s.State)
	}

	if _, ok := r.Get("missing"); ok {
		t.Error("Get should return false for unknown code")
	}
}

func TestRegistry_Publish(t *testing.T) {
	r := NewRegistry[string]()
	r.Create("abcdefgh", "x")
	hub := r.Broadcaster("abcdefgh")
	if hub == nil {
		t.Fatal("Broadcaster returned nil for existing session")
	}
	ch := hub.Subscribe()
	defer hub.Unsubscribe(ch)

	r.Publish("abcdefgh", "view")
	if got := <-ch; got != "view" {
		t.Errorf("got %q, want view", got)
	}
}

func TestRegistry_PublishUnknownCodeIsNoop(t *testing.T) {
	r := NewRegistry[string]()
	r.Publish("missing", "view")
	if r.Broadcaster("missing") != nil {
		t.Error("Broadcaster should be nil for unknown code")
	}
}
