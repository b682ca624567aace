package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                  sync.Mutex
	snapshotsSaved      int
	deltasComputed      int
	investmentsRecorded int
	saveDurations       []float64
	slackNotifSent      int
	slackNotifFailed    int
	startupTime         float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		saveDurations: make([]float64, 0),
	}
}

func (m *Mock) IncSnapshotsSaved() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshotsSaved++
}

func (m *Mock) IncDeltasComputed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deltasComputed++
}

func (m *Mock) IncInvestmentsRecorded() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.investmentsRecorded++
}

func (m *Mock) ObserveSaveDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveDurations = append(m.saveDurations, duration)
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// SnapshotsSaved returns the number of times IncSnapshotsSaved was called.
func (m *Mock) SnapshotsSaved() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotsSaved
}

// DeltasComputed returns the number of times IncDeltasComputed was called.
func (m *Mock) DeltasComputed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.deltasComputed
}

// InvestmentsRecorded returns the number of times IncInvestmentsRecorded was called.
func (m *Mock) InvestmentsRecorded() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.investmentsRecorded
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}
