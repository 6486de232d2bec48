// Package session owns the client-side auth token. A token lives in exactly
// one of two scopes per login: the durable scope (a file, survives restarts,
// chosen by "remember me") or the ephemeral scope (process memory only).
package session

import (
	"os"
	"path/filepath"
	"strings"
)

type Scope int

const (
	ScopeNone Scope = iota
	ScopeEphemeral
	ScopeDurable
)

type Store struct {
	path  string
	token string
	scope Scope
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load picks up a previously remembered token from the durable scope. A
// missing token file is not an error; it just means unauthenticated.
func (s *Store) Load() error {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	token := strings.TrimSpace(string(raw))
	if token == "" {
		return nil
	}
	s.token = token
	s.scope = ScopeDurable
	return nil
}

// Save stores the token in the scope selected by remember. The scopes are
// mutually exclusive: an ephemeral save removes any durable token left over
// from an earlier login.
func (s *Store) Save(token string, remember bool) error {
	s.token = token
	if !remember {
		s.scope = ScopeEphemeral
		return s.removeFile()
	}

	s.scope = ScopeDurable
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token+"\n"), 0o600)
}

// Clear forgets the token in both scopes.
func (s *Store) Clear() error {
	s.token = ""
	s.scope = ScopeNone
	return s.removeFile()
}

// Token returns the stored token, or "" when unauthenticated.
func (s *Store) Token() string {
	return s.token
}

func (s *Store) Authenticated() bool {
	return s.token != ""
}

func (s *Store) CurrentScope() Scope {
	return s.scope
}

func (s *Store) removeFile() error {
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
