package models

// Settlement is a suggested payment between two members that moves both
// closer to the group's fair share.
type Settlement struct {
	// From is the member who has contributed less than the fair share.
	From string `json:"from"`

	// To is the member who has contributed more than the fair share.
	To string `json:"to"`

	// Amount is the payment amount.
	Amount float64 `json:"amount"`
}
