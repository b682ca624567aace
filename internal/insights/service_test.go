package insights

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altplay/altplay/internal/metrics"
	"github.com/altplay/altplay/internal/pubsub"
)

func setupService(store *MockStore) (*Service, *metrics.Mock, *pubsub.MockPubSubClient) {
	metricsMock := metrics.NewMock()
	pubsubMock := pubsub.NewMock("TEST")
	svc := NewService(store, metricsMock, pubsubMock)
	return svc, metricsMock, pubsubMock
}

func validSubmission() *Submission {
	return &Submission{
		SeasonYear:       "2025",
		ClubTeam:         "BFC",
		LeagueTournament: "ISL",
		StatLine:         StatLine{GoalsScored: fp(5)},
	}
}

func TestService_Save_RequiresOwner(t *testing.T) {
	svc, _, _ := setupService(NewMock())
	_, _, err := svc.Save("", validSubmission())
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestService_Save_ValidatesIdentifiers(t *testing.T) {
	svc, _, _ := setupService(NewMock())

	for _, tc := range []struct {
		name string
		sub  Submission
	}{
		{"seasonYear", Submission{ClubTeam: "c", LeagueTournament: "l"}},
		{"clubTeam", Submission{SeasonYear: "s", LeagueTournament: "l"}},
		{"leagueTournament", Submission{SeasonYear: "s", ClubTeam: "c"}},
	} {
		_, _, err := svc.Save("user-1", &tc.sub)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr, "missing %s must fail validation", tc.name)
		assert.Equal(t, tc.name, vErr.Field)
	}
}

func TestService_Save_FirstSnapshotHasNoChanges(t *testing.T) {
	store := NewMock()
	svc, metricsMock, pubsubMock := setupService(store)

	snap, cmp, err := svc.Save("user-1", validSubmission())
	require.NoError(t, err)
	require.NotNil(t, snap)

	assert.Nil(t, snap.Changes, "first save never carries a changes map")
	assert.Nil(t, cmp)
	assert.Equal(t, "user-1", snap.UserID)
	assert.NotEmpty(t, snap.ID)
	assert.NotZero(t, snap.CreatedAt)

	require.Len(t, store.SaveCalls, 1)
	assert.Equal(t, 1, metricsMock.SnapshotsSaved())
	assert.Equal(t, 0, metricsMock.DeltasComputed())
	assert.Empty(t, pubsubMock.SendMessageCalls, "no event when nothing changed")
}

func TestService_Save_ComputesAndStampsChanges(t *testing.T) {
	store := NewMock()
	store.LatestFunc = func(userID string) (*Snapshot, error) {
		return &Snapshot{StatLine: StatLine{GoalsScored: fp(3)}}, nil
	}
	svc, metricsMock, pubsubMock := setupService(store)

	before := time.Now().UnixMilli()
	snap, cmp, err := svc.Save("user-1", validSubmission())
	require.NoError(t, err)

	require.Len(t, snap.Changes, 1)
	change := snap.Changes["goalsScored"]
	assert.Equal(t, 3.0, change.Old)
	assert.Equal(t, 5.0, change.New)
	assert.GreaterOrEqual(t, change.Timestamp, before)

	require.NotNil(t, cmp)
	require.Len(t, cmp.Bars, 1)
	assert.Equal(t, "goalsScored", cmp.Bars[0].Field)

	assert.Equal(t, 1, metricsMock.DeltasComputed())
	require.Len(t, pubsubMock.SendMessageCalls, 1)
	assert.Equal(t, string(pubsub.EventInsightChanged), pubsubMock.SendMessageCalls[0].Topic)
	event, ok := pubsubMock.SendMessageCalls[0].Data.(ChangeEvent)
	require.True(t, ok)
	assert.Equal(t, "user-1", event.UserID)
}

func TestService_Save_UnchangedResubmitHasNoChanges(t *testing.T) {
	store := NewMock()
	store.LatestFunc = func(userID string) (*Snapshot, error) {
		return &Snapshot{StatLine: StatLine{GoalsScored: fp(5)}}, nil
	}
	svc, _, pubsubMock := setupService(store)

	snap, cmp, err := svc.Save("user-1", validSubmission())
	require.NoError(t, err)
	assert.Nil(t, snap.Changes)
	assert.Nil(t, cmp)
	assert.Empty(t, pubsubMock.SendMessageCalls)
}

func TestService_Save_PublishFailureIsNotFatal(t *testing.T) {
	store := NewMock()
	store.LatestFunc = func(userID string) (*Snapshot, error) {
		return &Snapshot{StatLine: StatLine{GoalsScored: fp(3)}}, nil
	}
	svc, _, pubsubMock := setupService(store)
	pubsubMock.SendMessageFunc = func(topic pubsub.EventType, data any) error {
		return errors.New("broker down")
	}

	snap, _, err := svc.Save("user-1", validSubmission())
	require.NoError(t, err, "the snapshot is persisted even when fan-out fails")
	require.NotNil(t, snap)
}

func TestService_Save_StoreErrorPropagates(t *testing.T) {
	store := NewMock()
	store.SaveFunc = func(snap *Snapshot) error { return errors.New("disk full") }
	svc, metricsMock, _ := setupService(store)

	_, _, err := svc.Save("user-1", validSubmission())
	require.Error(t, err)
	assert.Equal(t, 0, metricsMock.SnapshotsSaved())
}

func TestService_Latest_RequiresOwner(t *testing.T) {
	svc, _, _ := setupService(NewMock())
	_, err := svc.Latest("")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestService_Charts_BuildsFromHistory(t *testing.T) {
	store := NewMock()
	store.HistoryFunc = func(userID string) ([]*Snapshot, error) {
		return []*Snapshot{
			{StatLine: StatLine{GoalsScored: fp(5)}, CreatedAt: 1000},
			{StatLine: StatLine{GoalsScored: fp(8)}, CreatedAt: 2000},
		}, nil
	}
	svc, _, _ := setupService(store)

	report, err := svc.Charts("user-1")
	require.NoError(t, err)
	require.Len(t, report.Series, 1)
	assert.Equal(t, "goalsScored", report.Series[0].Field)
}
