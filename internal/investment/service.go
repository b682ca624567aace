package investment

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/altplay/altplay/internal/metrics"
	"github.com/altplay/altplay/internal/pubsub"
	"github.com/altplay/altplay/internal/user"
)

// ErrUnauthenticated is returned when an invest action has no investor identity.
var ErrUnauthenticated = errors.New("not authenticated")

// UnknownBacker is the placeholder used when an investor's account can no
// longer be resolved. Hydration failures degrade per record, never aborting
// the whole listing.
const UnknownBacker = "Unknown"

// Service coordinates investment writes and the hydrated read side.
type Service struct {
	store   Store
	users   user.Store
	metrics metrics.Metrics
	pubsub  pubsub.PubSubClient
}

// NewService creates a new investment Service.
func NewService(store Store, users user.Store, metricsSvc metrics.Metrics, pubsubClient pubsub.PubSubClient) *Service {
	return &Service{
		store:   store,
		users:   users,
		metrics: metricsSvc,
		pubsub:  pubsubClient,
	}
}

// Invest appends a new record linking the investor to the player. The player
// name is captured at investment time and never updated afterwards.
func (s *Service) Invest(investorID, playerID, playerName string, amount *float64) (*Record, error) {
	if investorID == "" {
		return nil, ErrUnauthenticated
	}

	rec := &Record{
		ID:         uuid.NewString(),
		InvestorID: investorID,
		PlayerID:   playerID,
		PlayerName: playerName,
		Amount:     amount,
		InvestedAt: time.Now().UnixMilli(),
	}
	if err := s.store.Create(rec); err != nil {
		return nil, err
	}
	s.metrics.IncInvestmentsRecorded()
	log.Info("Recorded investment", "investorID", investorID, "playerID", playerID)

	if err := s.pubsub.SendMessage(pubsub.EventInvestmentRecorded, rec); err != nil {
		// Fan-out is best effort; the record is already persisted.
		log.Error("Failed to publish investment event", "error", err, "recordID", rec.ID)
	}
	return rec, nil
}

// ListForInvestor returns the investor's own records, newest first.
func (s *Service) ListForInvestor(investorID string) ([]Record, error) {
	if investorID == "" {
		return nil, ErrUnauthenticated
	}
	return s.store.ListByInvestor(investorID)
}

// HasInvested reports whether the investor already backed the player.
func (s *Service) HasInvested(investorID, playerID string) (bool, error) {
	if investorID == "" {
		return false, ErrUnauthenticated
	}
	return s.store.HasInvested(investorID, playerID)
}

// BackersForPlayer lists the investors of a player, hydrated with account
// details. A record whose investor cannot be resolved is kept with the
// Unknown placeholder rather than dropped or treated as a batch failure.
func (s *Service) BackersForPlayer(playerID string) ([]Backer, error) {
	records, err := s.store.ListByPlayer(playerID)
	if err != nil {
		return nil, err
	}

	backers := make([]Backer, 0, len(records))
	for _, rec := range records {
		backer := Backer{
			InvestorID: rec.InvestorID,
			Name:       UnknownBacker,
			Email:      UnknownBacker,
			Amount:     rec.Amount,
			InvestedAt: rec.InvestedAt,
		}
		u, err := s.users.Get(rec.InvestorID)
		if err != nil {
			log.Error("Failed to resolve investor, using placeholder", "error", err, "investorID", rec.InvestorID)
		} else {
			backer.Name = u.Name
			backer.Email = u.Email
		}
		backers = append(backers, backer)
	}
	return backers, nil
}

// Clear wipes all records. Used by the dev reset endpoint and tests.
func (s *Service) Clear() {
	s.store.Clear()
}

// Aggregate computes the platform-wide counts over all records.
func (s *Service) Aggregate() (AggregateStats, error) {
	records, err := s.store.ListAll()
	if err != nil {
		return AggregateStats{}, err
	}
	return Aggregate(records), nil
}

// Aggregate computes total, distinct-investor, and distinct-player counts by
// set cardinality over the record projections. Empty input yields all zeros.
func Aggregate(records []Record) AggregateStats {
	investors := make(map[string]struct{})
	players := make(map[string]struct{})
	for _, rec := range records {
		investors[rec.InvestorID] = struct{}{}
		players[rec.PlayerID] = struct{}{}
	}
	return AggregateStats{
		Total:           len(records),
		UniqueInvestors: len(investors),
		UniquePlayers:   len(players),
	}
}
