package domain

import (
	"strconv"
	"time"
)

// Payment is a persisted contribution row. ID deterministically encodes the
// source transaction's instant and contributor so re-importing the same
// transaction is a no-op.
type Payment struct {
	ID            string
	Date          time.Time
	Amount        float64
	ContributorID string
}

// PaymentID derives the stable payment identifier from the transaction
// instant and contributor id. Same inputs always produce the same id.
func PaymentID(at time.Time, contributorID string) string {
	return strconv.FormatInt(at.Unix(), 10) + contributorID
}
