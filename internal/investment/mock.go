package investment

import "sync"

// MockStore is a mock implementation of the Store interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	CreateFunc         func(rec *Record) error
	ListByInvestorFunc func(investorID string) ([]Record, error)
	ListByPlayerFunc   func(playerID string) ([]Record, error)
	ListAllFunc        func() ([]Record, error)
	HasInvestedFunc    func(investorID, playerID string) (bool, error)

	// Call records
	CreateCalls         []*Record
	ListByInvestorCalls []string
	ListByPlayerCalls   []string
	HasInvestedCalls    []struct {
		InvestorID string
		PlayerID   string
	}
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) Create(rec *Record) error {
	m.mu.Lock()
	m.CreateCalls = append(m.CreateCalls, rec)
	m.mu.Unlock()
	if m.CreateFunc != nil {
		return m.CreateFunc(rec)
	}
	return nil
}

func (m *MockStore) ListByInvestor(investorID string) ([]Record, error) {
	m.mu.Lock()
	m.ListByInvestorCalls = append(m.ListByInvestorCalls, investorID)
	m.mu.Unlock()
	if m.ListByInvestorFunc != nil {
		return m.ListByInvestorFunc(investorID)
	}
	return nil, nil
}

func (m *MockStore) ListByPlayer(playerID string) ([]Record, error) {
	m.mu.Lock()
	m.ListByPlayerCalls = append(m.ListByPlayerCalls, playerID)
	m.mu.Unlock()
	if m.ListByPlayerFunc != nil {
		return m.ListByPlayerFunc(playerID)
	}
	return nil, nil
}

func (m *MockStore) ListAll() ([]Record, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc()
	}
	return nil, nil
}

func (m *MockStore) HasInvested(investorID, playerID string) (bool, error) {
	m.mu.Lock()
	m.HasInvestedCalls = append(m.HasInvestedCalls, struct {
		InvestorID string
		PlayerID   string
	}{investorID, playerID})
	m.mu.Unlock()
	if m.HasInvestedFunc != nil {
		return m.HasInvestedFunc(investorID, playerID)
	}
	return false, nil
}

func (m *MockStore) Clear() {}
