package player

import "sync"

// MockStore is a mock implementation of the Store interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	UpsertFunc     func(p *Profile) error
	GetFunc        func(id string) (*Profile, error)
	GetByOwnerFunc func(userID string) (*Profile, error)
	ListFunc       func() ([]Profile, error)
	SetPhotoFunc   func(userID, photoURL string) error

	// Call records
	UpsertCalls     []*Profile
	GetCalls        []string
	GetByOwnerCalls []string
	SetPhotoCalls   []struct {
		UserID   string
		PhotoURL string
	}
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) Upsert(p *Profile) error {
	m.mu.Lock()
	m.UpsertCalls = append(m.UpsertCalls, p)
	m.mu.Unlock()
	if m.UpsertFunc != nil {
		return m.UpsertFunc(p)
	}
	return nil
}

func (m *MockStore) Get(id string) (*Profile, error) {
	m.mu.Lock()
	m.GetCalls = append(m.GetCalls, id)
	m.mu.Unlock()
	if m.GetFunc != nil {
		return m.GetFunc(id)
	}
	return nil, ErrNotFound
}

func (m *MockStore) GetByOwner(userID string) (*Profile, error) {
	m.mu.Lock()
	m.GetByOwnerCalls = append(m.GetByOwnerCalls, userID)
	m.mu.Unlock()
	if m.GetByOwnerFunc != nil {
		return m.GetByOwnerFunc(userID)
	}
	return nil, ErrNotFound
}

func (m *MockStore) List() ([]Profile, error) {
	if m.ListFunc != nil {
		return m.ListFunc()
	}
	return nil, nil
}

func (m *MockStore) SetPhoto(userID, photoURL string) error {
	m.mu.Lock()
	m.SetPhotoCalls = append(m.SetPhotoCalls, struct {
		UserID   string
		PhotoURL string
	}{userID, photoURL})
	m.mu.Unlock()
	if m.SetPhotoFunc != nil {
		return m.SetPhotoFunc(userID, photoURL)
	}
	return nil
}

func (m *MockStore) Clear() {}
