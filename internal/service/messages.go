package service

import "github.com/mmynk/splitledger/internal/models"

// Balance is a member's balance as sent over the wire: the raw value plus
// the two-decimal rendering used by every text surface.
type Balance struct {
	Name      string  `json:"name"`
	Balance   float64 `json:"balance"`
	Formatted string  `json:"formatted"`
}

type AddGroupRequest struct {
	Name string `json:"name"`
}

type AddGroupResponse struct {
	Group models.Group `json:"group"`
}

type GetGroupRequest struct {
	Name string `json:"name"`
}

type GetGroupResponse struct {
	Group models.Group `json:"group"`
}

type ListGroupsRequest struct{}

type ListGroupsResponse struct {
	Groups []string `json:"groups"`
}

type AddUserRequest struct {
	Group string `json:"group"`
	User  string `json:"user"`
}

type AddUserResponse struct {
	Member Balance `json:"member"`
}

type RemoveUserRequest struct {
	Group string `json:"group"`
	User  string `json:"user"`
}

type RemoveUserResponse struct{}

type ListUsersRequest struct {
	Group string `json:"group"`
}

type ListUsersResponse struct {
	Members []Balance `json:"members"`
}

type UserBalanceRequest struct {
	Group string `json:"group"`
	User  string `json:"user"`
}

type UserBalanceResponse struct {
	Member Balance `json:"member"`
}

type LeastPaidRequest struct {
	Group string `json:"group"`
}

type LeastPaidResponse struct {
	Users []string `json:"users"`
}

type PostTransactionRequest struct {
	Group  string  `json:"group"`
	User   string  `json:"user"`
	Amount float64 `json:"amount"`
}

type PostTransactionResponse struct {
	Transaction models.Transaction `json:"transaction"`
	Member      Balance            `json:"member"`
}

type RecentTransactionsRequest struct {
	Group string `json:"group"`
	// Limit caps the number of records; zero or less means the server default.
	Limit int `json:"limit"`
}

type RecentTransactionsResponse struct {
	Transactions []models.Transaction `json:"transactions"`
}

type SuggestSettlementsRequest struct {
	Group string `json:"group"`
}

type SuggestSettlementsResponse struct {
	Settlements []models.Settlement `json:"settlements"`
}

type LoginRequest struct {
	Operator string `json:"operator"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
