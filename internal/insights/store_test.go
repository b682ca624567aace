package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altplay/altplay/internal/database"
)

func setupTestStore(t *testing.T) SnapshotStore {
	t.Helper()
	db, teardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)
	t.Cleanup(teardown)
	return NewStore(db)
}

func TestStore_SaveAndLatest(t *testing.T) {
	store := setupTestStore(t)

	snap := &Snapshot{
		ID:               "snap-1",
		UserID:           "user-1",
		SeasonYear:       "2025",
		ClubTeam:         "BFC",
		LeagueTournament: "ISL",
		StatLine:         StatLine{GoalsScored: fp(5), SavePercent: fp(71.4)},
		Changes: map[string]FieldChange{
			"goalsScored": {Old: 3, New: 5, Timestamp: 1717200000000},
		},
		CreatedAt: 1717200000000,
		UpdatedAt: 1717200000000,
	}
	require.NoError(t, store.Save(snap))

	got, err := store.Latest("user-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "snap-1", got.ID)
	assert.Equal(t, "ISL", got.LeagueTournament)
	require.NotNil(t, got.GoalsScored)
	assert.Equal(t, 5.0, *got.GoalsScored)
	assert.Equal(t, 71.4, *got.SavePercent)
	assert.Nil(t, got.Assists, "unset stats come back nil, not zero")

	// The changes map round-trips through the JSON column unchanged.
	assert.Equal(t, snap.Changes, got.Changes)
}

func TestStore_LatestNoneIsNilNil(t *testing.T) {
	store := setupTestStore(t)

	got, err := store.Latest("nobody")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_LatestPicksNewestCreatedAt(t *testing.T) {
	store := setupTestStore(t)

	require.NoError(t, store.Save(&Snapshot{ID: "old", UserID: "u", SeasonYear: "2024", ClubTeam: "c", LeagueTournament: "l", CreatedAt: 1000}))
	require.NoError(t, store.Save(&Snapshot{ID: "new", UserID: "u", SeasonYear: "2025", ClubTeam: "c", LeagueTournament: "l", CreatedAt: 2000}))

	got, err := store.Latest("u")
	require.NoError(t, err)
	assert.Equal(t, "new", got.ID)
}

func TestStore_LatestFallsBackToUpdatedAt(t *testing.T) {
	store := setupTestStore(t)

	// No created_at: the update time orders the row.
	require.NoError(t, store.Save(&Snapshot{ID: "a", UserID: "u", SeasonYear: "s", ClubTeam: "c", LeagueTournament: "l", UpdatedAt: 5000}))
	require.NoError(t, store.Save(&Snapshot{ID: "b", UserID: "u", SeasonYear: "s", ClubTeam: "c", LeagueTournament: "l", CreatedAt: 1000}))

	got, err := store.Latest("u")
	require.NoError(t, err)
	assert.Equal(t, "a", got.ID)
}

func TestStore_LatestTieBreaksByInsertionOrder(t *testing.T) {
	store := setupTestStore(t)

	// Identical timestamps, including the degenerate all-zero case.
	require.NoError(t, store.Save(&Snapshot{ID: "first", UserID: "u", SeasonYear: "s", ClubTeam: "c", LeagueTournament: "l"}))
	require.NoError(t, store.Save(&Snapshot{ID: "second", UserID: "u", SeasonYear: "s", ClubTeam: "c", LeagueTournament: "l"}))

	got, err := store.Latest("u")
	require.NoError(t, err)
	assert.Equal(t, "second", got.ID)
}

func TestStore_HistoryAscending(t *testing.T) {
	store := setupTestStore(t)

	require.NoError(t, store.Save(&Snapshot{ID: "b", UserID: "u", SeasonYear: "s", ClubTeam: "c", LeagueTournament: "l", CreatedAt: 2000}))
	require.NoError(t, store.Save(&Snapshot{ID: "a", UserID: "u", SeasonYear: "s", ClubTeam: "c", LeagueTournament: "l", CreatedAt: 1000}))
	require.NoError(t, store.Save(&Snapshot{ID: "other", UserID: "someone-else", SeasonYear: "s", ClubTeam: "c", LeagueTournament: "l", CreatedAt: 1500}))

	history, err := store.History("u")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "a", history[0].ID)
	assert.Equal(t, "b", history[1].ID)
}

func TestStore_Clear(t *testing.T) {
	store := setupTestStore(t)

	require.NoError(t, store.Save(&Snapshot{ID: "x", UserID: "u", SeasonYear: "s", ClubTeam: "c", LeagueTournament: "l", CreatedAt: 1000}))
	store.Clear()

	got, err := store.Latest("u")
	require.NoError(t, err)
	assert.Nil(t, got)
}
