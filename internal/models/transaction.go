package models

// Transaction is a snapshot of one posted contribution.
type Transaction struct {
	// ID is the unique identifier for the record (UUID format).
	ID string `json:"id"`

	// User is the name of the member the amount was posted for.
	// It references the member by name only.
	User string `json:"user"`

	// Amount is the posted value, added to the member's balance.
	Amount float64 `json:"amount"`

	// PostedAt is the Unix timestamp when the record was posted.
	PostedAt int64 `json:"posted_at"`
}
