// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session provides login identity persistence and runtime session
// tracking for the Haven TUI.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/havenlabs/haven-tui/internal/util"
)

// =============================================================================
// IDENTITY STORE
// =============================================================================

// Identity is the persisted login state. It is written after a successful
// login and read once at startup; the widget treats it as authoritative for
// the lifetime of the process.
type Identity struct {
	UserID         string    `json:"user_id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	NRIC           string    `json:"nric"`
	AllowsTracking bool      `json:"allows_tracking"`
	Token          string    `json:"token"`
	SavedAt        time.Time `json:"saved_at"`
}

// IsZero reports whether the identity carries no login.
func (i Identity) IsZero() bool {
	return i.UserID == ""
}

// ErrNoIdentity indicates no saved login exists.
var ErrNoIdentity = errors.New("no saved identity")

// Store persists the login identity as JSON on disk.
type Store struct {
	path string
}

// DefaultPath returns the default identity file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".haven", "session.json"), nil
}

// NewStore creates a store at the given path. An empty path falls back to
// the default location under ~/.haven.
func NewStore(path string) (*Store, error) {
	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}
	return &Store{path: path}, nil
}

// Path returns the identity file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the saved identity. Returns ErrNoIdentity when none exists.
func (s *Store) Load() (Identity, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Identity{}, ErrNoIdentity
		}
		return Identity{}, fmt.Errorf("failed to read identity file: %w", err)
	}

	var identity Identity
	if err := json.Unmarshal(data, &identity); err != nil {
		return Identity{}, fmt.Errorf("failed to parse identity file: %w", err)
	}
	if identity.IsZero() {
		return Identity{}, ErrNoIdentity
	}
	return identity, nil
}

// Save writes the identity to disk.
// SECURITY: 0600 permissions; the file carries an auth token and NRIC.
// RELIABILITY: Atomic write prevents a torn file on crash.
func (s *Store) Save(identity Identity) error {
	identity.SavedAt = time.Now()

	data, err := json.MarshalIndent(identity, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode identity: %w", err)
	}

	if err := util.AtomicWriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write identity file: %w", err)
	}
	return nil
}

// Clear removes the saved identity. Missing file is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove identity file: %w", err)
	}
	return nil
}

// =============================================================================
// RUNTIME SESSION
// =============================================================================

// Session is one live widget run. Its ID rides along on every API
// request so backend logs can be tied back to a single widget open.
type Session struct {
	id       string
	identity Identity
}

// New starts a session for the given identity. A zero identity is a
// guest session.
func New(identity Identity) *Session {
	return &Session{
		id:       "sess_" + uuid.NewString(),
		identity: identity,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Identity returns the identity this session was opened with.
func (s *Session) Identity() Identity {
	return s.identity
}
