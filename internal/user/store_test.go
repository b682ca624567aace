package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altplay/altplay/internal/database"
)

func setupTestStore(t *testing.T) Store {
	t.Helper()
	db, teardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)
	t.Cleanup(teardown)
	return New(db)
}

func TestStore_CreateAndGet(t *testing.T) {
	store := setupTestStore(t)

	u := &User{ID: "u1", Name: "Asha", Email: "asha@example.com", Role: RolePlayer, PasswordHash: "hash", CreatedAt: 1000}
	require.NoError(t, store.Create(u))

	got, err := store.Get("u1")
	require.NoError(t, err)
	assert.Equal(t, u, got)

	byEmail, err := store.GetByEmail("asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", byEmail.ID)
}

func TestStore_GetNotFound(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.Get("ghost")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.GetByEmail("ghost@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_EmailIsUnique(t *testing.T) {
	store := setupTestStore(t)

	require.NoError(t, store.Create(&User{ID: "u1", Name: "A", Email: "same@example.com", Role: RolePlayer, PasswordHash: "x", CreatedAt: 1}))
	err := store.Create(&User{ID: "u2", Name: "B", Email: "same@example.com", Role: RoleInvestor, PasswordHash: "x", CreatedAt: 2})
	assert.Error(t, err)
}

func TestRole_Valid(t *testing.T) {
	assert.True(t, RolePlayer.Valid())
	assert.True(t, RoleInvestor.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("superuser").Valid())
	assert.False(t, Role("").Valid())
}
