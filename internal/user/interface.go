package user

// Store defines the interface for interacting with user accounts.
type Store interface {
	Create(u *User) error
	Get(id string) (*User, error)
	GetByEmail(email string) (*User, error)
	Clear()
}
