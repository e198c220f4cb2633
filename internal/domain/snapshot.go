package domain

import "time"

// Snapshot is one fetched-and-decoded view of remote pool state. It is built
// once per run from the JSON embedded in the pool page and never persisted
// directly.
type Snapshot struct {
	PoolID       string
	Title        string
	OwnerID      string
	OwnerName    string
	OwnerPledge  float64
	Transactions []Transaction
	// Contributors maps contributor id to display name as reported by the
	// remote source.
	Contributors map[string]string
}

// Transaction is one discrete contribution reported by the remote source.
type Transaction struct {
	Date          time.Time
	Amount        float64
	ContributorID string
}
