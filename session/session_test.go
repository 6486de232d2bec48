package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "comanda", "token")
}

func TestSaveRememberPersistsAcrossStores(t *testing.T) {
	path := tokenPath(t)

	s := NewStore(path)
	require.NoError(t, s.Save("tok-123", true))
	assert.Equal(t, ScopeDurable, s.CurrentScope())

	fresh := NewStore(path)
	require.NoError(t, fresh.Load())
	assert.Equal(t, "tok-123", fresh.Token())
	assert.True(t, fresh.Authenticated())
}

func TestSaveEphemeralLeavesNoFile(t *testing.T) {
	path := tokenPath(t)

	s := NewStore(path)
	require.NoError(t, s.Save("tok-123", false))
	assert.Equal(t, "tok-123", s.Token())
	assert.Equal(t, ScopeEphemeral, s.CurrentScope())

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	fresh := NewStore(path)
	require.NoError(t, fresh.Load())
	assert.False(t, fresh.Authenticated())
}

// A later login without remember must drop the durable token from the
// earlier one; the scopes are mutually exclusive.
func TestEphemeralSaveRemovesDurableToken(t *testing.T) {
	path := tokenPath(t)

	s := NewStore(path)
	require.NoError(t, s.Save("old-token", true))
	require.NoError(t, s.Save("new-token", false))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	assert.Equal(t, "new-token", s.Token())
}

func TestClear(t *testing.T) {
	path := tokenPath(t)

	s := NewStore(path)
	require.NoError(t, s.Save("tok-123", true))
	require.NoError(t, s.Clear())

	assert.False(t, s.Authenticated())
	assert.Equal(t, ScopeNone, s.CurrentScope())

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	s := NewStore(tokenPath(t))
	require.NoError(t, s.Load())
	assert.False(t, s.Authenticated())
}
