package insights

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/altplay/altplay/internal/metrics"
	"github.com/altplay/altplay/internal/pubsub"
)

// ErrUnauthenticated is returned when a save is attempted without an owner.
var ErrUnauthenticated = errors.New("not authenticated")

// ValidationError reports a missing required form field. Validation failures
// happen before any write is attempted.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// ChangeEvent is published when a save produced field deltas.
type ChangeEvent struct {
	UserID  string                 `msgpack:"user_id"`
	Changes map[string]FieldChange `msgpack:"changes"`
}

// Service coordinates snapshot saves: resolving the previous snapshot,
// computing deltas, persisting, and fanning out change events.
type Service struct {
	store   SnapshotStore
	metrics metrics.Metrics
	pubsub  pubsub.PubSubClient
	now     func() time.Time
}

// NewService creates a new insights Service.
func NewService(store SnapshotStore, metricsSvc metrics.Metrics, pubsubClient pubsub.PubSubClient) *Service {
	return &Service{
		store:   store,
		metrics: metricsSvc,
		pubsub:  pubsubClient,
		now:     time.Now,
	}
}

// Save validates and persists a new snapshot for the owner, attaching the
// per-field deltas against the owner's previous snapshot when any exist.
// The returned Comparison is nil when nothing changed (including the
// first-ever save, which never carries a changes map).
func (s *Service) Save(ownerID string, sub *Submission) (*Snapshot, *Comparison, error) {
	start := s.now()
	if ownerID == "" {
		return nil, nil, ErrUnauthenticated
	}
	if sub.SeasonYear == "" {
		return nil, nil, &ValidationError{Field: "seasonYear"}
	}
	if sub.ClubTeam == "" {
		return nil, nil, &ValidationError{Field: "clubTeam"}
	}
	if sub.LeagueTournament == "" {
		return nil, nil, &ValidationError{Field: "leagueTournament"}
	}

	previous, err := s.store.Latest(ownerID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load previous snapshot: %w", err)
	}

	now := s.now().UnixMilli()
	changes := ComputeChanges(previous, &sub.StatLine)
	for field, change := range changes {
		change.Timestamp = now
		changes[field] = change
	}

	snap := &Snapshot{
		ID:               uuid.NewString(),
		UserID:           ownerID,
		SeasonYear:       sub.SeasonYear,
		ClubTeam:         sub.ClubTeam,
		LeagueTournament: sub.LeagueTournament,
		StatLine:         sub.StatLine,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if len(changes) > 0 {
		snap.Changes = changes
	}

	if err := s.store.Save(snap); err != nil {
		return nil, nil, err
	}
	s.metrics.IncSnapshotsSaved()
	s.metrics.ObserveSaveDuration(s.now().Sub(start).Seconds())
	log.Info("Saved performance snapshot", "userID", ownerID, "snapshotID", snap.ID, "changed_fields", len(changes))

	if len(changes) > 0 {
		s.metrics.IncDeltasComputed()
		event := ChangeEvent{UserID: ownerID, Changes: changes}
		if err := s.pubsub.SendMessage(pubsub.EventInsightChanged, event); err != nil {
			// Fan-out is best effort; the snapshot is already persisted.
			log.Error("Failed to publish insight change event", "error", err, "userID", ownerID)
		}
	}

	return snap, BuildComparison(changes), nil
}

// Latest returns the owner's most recent snapshot, or nil when none exists.
func (s *Service) Latest(ownerID string) (*Snapshot, error) {
	if ownerID == "" {
		return nil, ErrUnauthenticated
	}
	return s.store.Latest(ownerID)
}

// History returns the subject's snapshots in ascending time order.
func (s *Service) History(subjectID string) ([]*Snapshot, error) {
	return s.store.History(subjectID)
}

// Clear wipes all snapshots. Used by the dev reset endpoint and tests.
func (s *Service) Clear() {
	s.store.Clear()
}

// Charts extracts the renderable series for the subject's history.
func (s *Service) Charts(subjectID string) (ChartReport, error) {
	history, err := s.store.History(subjectID)
	if err != nil {
		return ChartReport{}, err
	}
	return BuildCharts(history), nil
}
