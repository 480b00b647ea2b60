package core

import (
	"errors"
	"testing"
)

func TestRegistryCreateRejectsDuplicateUsername(t *testing.T) {
	r := NewRegistry()

	if _, err := r.Create("c1", "alice", "#FF5733", false); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := r.Create("c2", "alice", "#33FF57", false); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestRegistryLookupsAndRemove(t *testing.T) {
	r := NewRegistry()

	s, err := r.Create("c1", "alice", "#FF5733", true)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if got := r.Get("c1"); got != s {
		t.Fatalf("Get returned %+v", got)
	}
	if got := r.FindByUsername("alice"); got != s {
		t.Fatalf("FindByUsername returned %+v", got)
	}
	if got := r.Get("nope"); got != nil {
		t.Fatalf("expected nil for unknown conn, got %+v", got)
	}

	if removed := r.Remove("c1"); removed != s {
		t.Fatalf("Remove returned %+v", removed)
	}
	// Idempotent.
	if removed := r.Remove("c1"); removed != nil {
		t.Fatalf("second Remove returned %+v", removed)
	}
	if got := r.FindByUsername("alice"); got != nil {
		t.Fatalf("username still resolvable after remove: %+v", got)
	}

	// The name is free again.
	if _, err := r.Create("c2", "alice", "#3357FF", false); err != nil {
		t.Fatalf("recreate after remove: %v", err)
	}
}

func TestRegistryFlagsAreOneWay(t *testing.T) {
	r := NewRegistry()

	if _, err := r.Create("c1", "bob", "#FF5733", false); err != nil {
		t.Fatalf("create: %v", err)
	}

	if !r.SetMuted("bob") {
		t.Fatal("SetMuted returned false for live session")
	}
	if !r.SetBanned("bob") {
		t.Fatal("SetBanned returned false for live session")
	}
	s := r.FindByUsername("bob")
	if !s.Muted || !s.Banned {
		t.Fatalf("flags not set: %+v", s)
	}

	if r.SetMuted("ghost") || r.SetBanned("ghost") {
		t.Fatal("flag setters must be no-ops for unknown usernames")
	}
}
