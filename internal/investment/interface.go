package investment

// Store defines the interface for the append-only investment ledger.
type Store interface {
	Create(rec *Record) error
	ListByInvestor(investorID string) ([]Record, error)
	ListByPlayer(playerID string) ([]Record, error)
	ListAll() ([]Record, error)
	HasInvested(investorID, playerID string) (bool, error)
	Clear()
}
