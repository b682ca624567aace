package notifier

import (
	"sync"

	"github.com/altplay/altplay/internal/insights"
	"github.com/altplay/altplay/internal/investment"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies
	SendInvestmentNotificationFunc        func(record *investment.Record, dryRun bool) error
	SendPerformanceUpdateNotificationFunc func(snapshot *insights.Snapshot, playerName string, dryRun bool) error

	// Call records
	SendInvestmentNotificationCalls []struct{ Record *investment.Record }
	SendPerformanceUpdateCalls      []struct {
		Snapshot   *insights.Snapshot
		PlayerName string
	}
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendInvestmentNotificationCalls = nil
	m.SendPerformanceUpdateCalls = nil
}

func (m *Mock) SendInvestmentNotification(record *investment.Record, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendInvestmentNotificationCalls = append(m.SendInvestmentNotificationCalls, struct{ Record *investment.Record }{record})
	if m.SendInvestmentNotificationFunc != nil {
		return m.SendInvestmentNotificationFunc(record, dryRun)
	}
	return nil
}

func (m *Mock) SendPerformanceUpdateNotification(snapshot *insights.Snapshot, playerName string, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendPerformanceUpdateCalls = append(m.SendPerformanceUpdateCalls, struct {
		Snapshot   *insights.Snapshot
		PlayerName string
	}{snapshot, playerName})
	if m.SendPerformanceUpdateNotificationFunc != nil {
		return m.SendPerformanceUpdateNotificationFunc(snapshot, playerName, dryRun)
	}
	return nil
}
