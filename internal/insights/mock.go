package insights

import "sync"

// MockStore is a mock implementation of the SnapshotStore interface for
// testing. It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	SaveFunc    func(snap *Snapshot) error
	LatestFunc  func(userID string) (*Snapshot, error)
	HistoryFunc func(userID string) ([]*Snapshot, error)

	// Call records
	SaveCalls    []*Snapshot
	LatestCalls  []string
	HistoryCalls []string
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) Save(snap *Snapshot) error {
	m.mu.Lock()
	m.SaveCalls = append(m.SaveCalls, snap)
	m.mu.Unlock()
	if m.SaveFunc != nil {
		return m.SaveFunc(snap)
	}
	return nil
}

func (m *MockStore) Latest(userID string) (*Snapshot, error) {
	m.mu.Lock()
	m.LatestCalls = append(m.LatestCalls, userID)
	m.mu.Unlock()
	if m.LatestFunc != nil {
		return m.LatestFunc(userID)
	}
	return nil, nil
}

func (m *MockStore) History(userID string) ([]*Snapshot, error) {
	m.mu.Lock()
	m.HistoryCalls = append(m.HistoryCalls, userID)
	m.mu.Unlock()
	if m.HistoryFunc != nil {
		return m.HistoryFunc(userID)
	}
	return nil, nil
}

func (m *MockStore) Clear() {}
