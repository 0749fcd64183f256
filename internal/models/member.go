package models

// Member is a snapshot of one user in a group.
type Member struct {
	// Name is the user's name, unique within its group (case-sensitive).
	Name string `json:"name"`

	// Balance is the sum of every amount posted for this user.
	Balance float64 `json:"balance"`
}
