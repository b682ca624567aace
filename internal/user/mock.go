package user

import "sync"

// MockStore is a mock implementation of the Store interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	CreateFunc     func(u *User) error
	GetFunc        func(id string) (*User, error)
	GetByEmailFunc func(email string) (*User, error)

	// Call records
	CreateCalls     []*User
	GetCalls        []string
	GetByEmailCalls []string
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) Create(u *User) error {
	m.mu.Lock()
	m.CreateCalls = append(m.CreateCalls, u)
	m.mu.Unlock()
	if m.CreateFunc != nil {
		return m.CreateFunc(u)
	}
	return nil
}

func (m *MockStore) Get(id string) (*User, error) {
	m.mu.Lock()
	m.GetCalls = append(m.GetCalls, id)
	m.mu.Unlock()
	if m.GetFunc != nil {
		return m.GetFunc(id)
	}
	return nil, ErrNotFound
}

func (m *MockStore) GetByEmail(email string) (*User, error) {
	m.mu.Lock()
	m.GetByEmailCalls = append(m.GetByEmailCalls, email)
	m.mu.Unlock()
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(email)
	}
	return nil, ErrNotFound
}

func (m *MockStore) Clear() {}
