// Package auth manages the optional active-user label. It is an external
// collaborator to the storefront core: it owns one durable storage key and
// never participates in catalog or cart invariants.
package auth

import (
	"encoding/json"
	"errors"
	"strings"

	"neonmart/internal/logging"
	"neonmart/internal/storage"
)

// StorageKey is the durable key-value key holding the active-user label.
const StorageKey = "active_user"

// ErrInvalidEmail is returned by Login for input with no local part.
var ErrInvalidEmail = errors.New("auth: invalid email")

// Session tracks the signed-in user label for this device.
type Session struct {
	storage storage.Store
	user    string
}

// NewSession creates a session over the given durable storage.
func NewSession(st storage.Store) *Session {
	return &Session{storage: st}
}

// Restore loads the persisted user label. Missing or malformed content
// simply means no active session.
func (s *Session) Restore() {
	data, err := s.storage.Get(StorageKey)
	if err != nil {
		return
	}
	var user string
	if err := json.Unmarshal(data, &user); err != nil {
		logging.Auth("active user label malformed, ignoring: %v", err)
		return
	}
	s.user = user
}

// User returns the active user label, empty when signed out.
func (s *Session) User() string {
	return s.user
}

// LoggedIn reports whether a user label is active.
func (s *Session) LoggedIn() bool {
	return s.user != ""
}

// Login derives the username from the email's local part and persists it.
// The simulated round-trip delay belongs to the UI layer; by the time this
// is called the credentials are accepted.
func (s *Session) Login(email string) (string, error) {
	local, _, found := strings.Cut(email, "@")
	if !found || local == "" {
		return "", ErrInvalidEmail
	}

	s.user = local
	data, _ := json.Marshal(local)
	if err := s.storage.Set(StorageKey, data); err != nil {
		// Session stays active in memory; next process start just won't
		// remember it.
		logging.Auth("could not persist user label: %v", err)
	}
	logging.Auth("user %q signed in", local)
	return local, nil
}

// Logout clears the user label in memory and in storage.
func (s *Session) Logout() error {
	logging.Auth("user %q signed out", s.user)
	s.user = ""
	return s.storage.Delete(StorageKey)
}
