// ABOUTME: Tests for ID prefix resolution against a Store.
// ABOUTME: Covers passthrough, unique prefixes, ambiguity, and misses.
package storage

import (
	"strings"
	"testing"
)

func TestResolveActivityIDFullIDPassthrough(t *testing.T) {
	store := openBadgerStore(t)

	// A well-formed UUID is returned as-is without touching the store.
	id := "123e4567-e89b-12d3-a456-426614174000"
	got, err := ResolveActivityID(store, id)
	if err != nil {
		t.Fatalf("ResolveActivityID failed: %v", err)
	}
	if got != id {
		t.Errorf("Expected %s, got %s", id, got)
	}
}

func TestResolveActivityIDUniquePrefix(t *testing.T) {
	store := openBadgerStore(t)
	a := sampleActivity(10)
	if err := store.SaveActivity(a); err != nil {
		t.Fatalf("SaveActivity failed: %v", err)
	}

	got, err := ResolveActivityID(store, a.ID[:8])
	if err != nil {
		t.Fatalf("ResolveActivityID failed: %v", err)
	}
	if got != a.ID {
		t.Errorf("Expected %s, got %s", a.ID, got)
	}
}

func TestResolveActivityIDAmbiguousPrefix(t *testing.T) {
	store := openBadgerStore(t)

	a1 := sampleActivity(10)
	a1.ID = "aaaa1111-0000-0000-0000-000000000001"
	a2 := sampleActivity(11)
	a2.ID = "aaaa2222-0000-0000-0000-000000000002"
	if err := store.SaveActivity(a1); err != nil {
		t.Fatalf("SaveActivity failed: %v", err)
	}
	if err := store.SaveActivity(a2); err != nil {
		t.Fatalf("SaveActivity failed: %v", err)
	}

	_, err := ResolveActivityID(store, "aaaa")
	if err == nil {
		t.Fatal("Expected error for ambiguous prefix")
	}
	if !strings.Contains(err.Error(), "ambiguous prefix aaaa") {
		t.Errorf("Unexpected error message: %v", err)
	}
}

func TestResolveActivityIDNotFound(t *testing.T) {
	store := openBadgerStore(t)

	_, err := ResolveActivityID(store, "zzzz")
	if err == nil {
		t.Fatal("Expected error for unknown prefix")
	}
	if !strings.Contains(err.Error(), "not found: zzzz") {
		t.Errorf("Unexpected error message: %v", err)
	}
}

func TestResolveGoalIDUniquePrefix(t *testing.T) {
	store := openBadgerStore(t)
	g := sampleGoal("5K runs")
	if err := store.SaveGoal(g); err != nil {
		t.Fatalf("SaveGoal failed: %v", err)
	}

	got, err := ResolveGoalID(store, g.ID[:8])
	if err != nil {
		t.Fatalf("ResolveGoalID failed: %v", err)
	}
	if got != g.ID {
		t.Errorf("Expected %s, got %s", g.ID, got)
	}
}

func TestResolveGoalIDNotFound(t *testing.T) {
	store := openBadgerStore(t)

	_, err := ResolveGoalID(store, "zzzz")
	if err == nil {
		t.Fatal("Expected error for unknown prefix")
	}
}
