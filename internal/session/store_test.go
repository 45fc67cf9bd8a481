// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "session.json"))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	return store
}

func TestStoreSaveLoad(t *testing.T) {
	store := testStore(t)

	saved := Identity{
		UserID:         "user_S8234567D",
		Name:           "Tan Wei Ming",
		Email:          "tanweiming@example.com",
		NRIC:           "S8234567D",
		AllowsTracking: true,
		Token:          "tok_abc123",
	}
	if err := store.Save(saved); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.UserID != saved.UserID || loaded.Name != saved.Name || loaded.Token != saved.Token {
		t.Errorf("loaded identity differs: %+v", loaded)
	}
	if !loaded.AllowsTracking {
		t.Error("tracking flag not persisted")
	}
	if loaded.SavedAt.IsZero() {
		t.Error("SavedAt not stamped on save")
	}
}

func TestStoreLoadMissing(t *testing.T) {
	store := testStore(t)
	_, err := store.Load()
	if !errors.Is(err, ErrNoIdentity) {
		t.Errorf("expected ErrNoIdentity, got %v", err)
	}
}

func TestStoreClear(t *testing.T) {
	store := testStore(t)
	if err := store.Save(Identity{UserID: "u1", Name: "x"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, err := store.Load(); !errors.Is(err, ErrNoIdentity) {
		t.Errorf("expected ErrNoIdentity after clear, got %v", err)
	}

	// Clearing again should not error.
	if err := store.Clear(); err != nil {
		t.Errorf("second Clear failed: %v", err)
	}
}

func TestStoreFilePermissions(t *testing.T) {
	store := testStore(t)
	if err := store.Save(Identity{UserID: "u1"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	info, err := os.Stat(store.Path())
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("expected 0600 permissions, got %o", perm)
	}
}

func TestStoreCorruptFile(t *testing.T) {
	store := testStore(t)
	if err := os.MkdirAll(filepath.Dir(store.Path()), 0755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	if err := os.WriteFile(store.Path(), []byte("{not json"), 0600); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	_, err := store.Load()
	if err == nil || errors.Is(err, ErrNoIdentity) {
		t.Errorf("expected parse error for corrupt file, got %v", err)
	}
}

func TestSessionIDsAreUnique(t *testing.T) {
	first := New(Identity{UserID: "u1"})
	second := New(Identity{UserID: "u1"})

	if first.ID() == second.ID() {
		t.Error("expected distinct session IDs")
	}
	if !strings.HasPrefix(first.ID(), "sess_") {
		t.Errorf("unexpected session ID format: %q", first.ID())
	}
	if first.Identity().UserID != "u1" {
		t.Errorf("session lost its identity: %+v", first.Identity())
	}
}
