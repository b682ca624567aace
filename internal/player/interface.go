package player

// Store defines the interface for interacting with player profiles.
type Store interface {
	Upsert(p *Profile) error
	// Get resolves a profile by its own ID.
	Get(id string) (*Profile, error)
	// GetByOwner resolves a profile by the owning user's ID.
	GetByOwner(userID string) (*Profile, error)
	List() ([]Profile, error)
	SetPhoto(userID, photoURL string) error
	Clear()
}

// PhotoKey is the blob storage path for a player's profile photo.
func PhotoKey(ownerID string) string {
	return "players/" + ownerID + "_photo.jpg"
}
