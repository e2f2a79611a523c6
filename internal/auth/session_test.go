package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neonmart/internal/storage"
)

func TestLoginDerivesUsernameFromEmail(t *testing.T) {
	s := NewSession(storage.NewMemStore())

	user, err := s.Login("commander@futuregear.io")
	require.NoError(t, err)
	assert.Equal(t, "commander", user)
	assert.True(t, s.LoggedIn())
}

func TestLoginRejectsInvalidEmail(t *testing.T) {
	s := NewSession(storage.NewMemStore())

	_, err := s.Login("no-at-sign")
	require.ErrorIs(t, err, ErrInvalidEmail)

	_, err = s.Login("@domain.only")
	require.ErrorIs(t, err, ErrInvalidEmail)
	assert.False(t, s.LoggedIn())
}

func TestSessionPersistsAcrossRestores(t *testing.T) {
	mem := storage.NewMemStore()

	s := NewSession(mem)
	_, err := s.Login("nova@example.com")
	require.NoError(t, err)

	s2 := NewSession(mem)
	s2.Restore()
	assert.Equal(t, "nova", s2.User())
}

func TestLogoutClearsLabel(t *testing.T) {
	mem := storage.NewMemStore()
	s := NewSession(mem)
	_, err := s.Login("nova@example.com")
	require.NoError(t, err)

	require.NoError(t, s.Logout())
	assert.False(t, s.LoggedIn())

	s2 := NewSession(mem)
	s2.Restore()
	assert.False(t, s2.LoggedIn())
}

func TestRestoreMalformedLabelIgnored(t *testing.T) {
	mem := storage.NewMemStore()
	require.NoError(t, mem.Set(StorageKey, []byte("{broken")))

	s := NewSession(mem)
	s.Restore()
	assert.False(t, s.LoggedIn())
}
