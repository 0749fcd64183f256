package models

// Group is a snapshot of a group and its members.
type Group struct {
	// Name is the unique name of the group.
	Name string `json:"name"`

	// Members in ascending balance order.
	Members []Member `json:"members"`

	// Transactions is the number of records currently in the group's log.
	Transactions int `json:"transactions"`
}
