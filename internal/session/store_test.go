package session

import (
	"path/filepath"
	"testing"
	"time"

	"backoffice-service/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func openTestStore(t *testing.T, path string) *Store {
	t.Helper()
	store, err := Open(path, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveLoadClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")

	store := openTestStore(t, path)
	assert.Empty(t, store.Token())
	assert.Nil(t, store.User())
	assert.False(t, store.Active())

	user := model.User{ID: "u1", Name: "Ops", Phone: "0788123456", Role: model.RoleAdmin}
	require.NoError(t, store.Save("opaque-token", user))
	assert.Equal(t, "opaque-token", store.Token())
	assert.True(t, store.Active())

	// A fresh store against the same file sees the persisted session.
	require.NoError(t, store.Close())
	store = openTestStore(t, path)
	assert.Equal(t, "opaque-token", store.Token())
	require.NotNil(t, store.User())
	assert.Equal(t, "Ops", store.User().Name)

	store.Clear()
	assert.Empty(t, store.Token())
	assert.Nil(t, store.User())

	// The clear survives a reopen too.
	require.NoError(t, store.Close())
	store = openTestStore(t, path)
	assert.Empty(t, store.Token())
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestActiveChecksTokenExpiry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")
	store := openTestStore(t, path)
	user := model.User{ID: "u1"}

	require.NoError(t, store.Save(signedToken(t, time.Now().Add(time.Hour)), user))
	assert.True(t, store.Active())

	require.NoError(t, store.Save(signedToken(t, time.Now().Add(-time.Hour)), user))
	assert.False(t, store.Active())

	// Opaque tokens carry no expiry claim and stay usable.
	require.NoError(t, store.Save("not-a-jwt", user))
	assert.True(t, store.Active())
}
