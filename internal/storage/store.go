// Package storage provides abstractions over the ledger's backing state.
package storage

import (
	"context"

	"github.com/mmynk/splitledger/internal/models"
)

// Store defines the ledger operations the service layer depends on.
// Implementations must be safe for concurrent use; errors are the ledger
// package's sentinels (test with errors.Is).
type Store interface {
	// AddGroup creates an empty group with a unique name.
	AddGroup(ctx context.Context, name string) error

	// ListGroups returns group names in creation order.
	ListGroups(ctx context.Context) ([]string, error)

	// GetGroup returns a snapshot of one group.
	GetGroup(ctx context.Context, name string) (*models.Group, error)

	// AddUser adds a zero-balance user to a group.
	AddUser(ctx context.Context, group, user string) error

	// RemoveUser removes a user and every transaction posted for it.
	RemoveUser(ctx context.Context, group, user string) error

	// ListUsers returns a group's members, lowest balance first.
	ListUsers(ctx context.Context, group string) ([]models.Member, error)

	// UserBalance returns one member's balance.
	UserBalance(ctx context.Context, group, user string) (float64, error)

	// LeastPaid returns every member tied at the lowest balance.
	LeastPaid(ctx context.Context, group string) ([]string, error)

	// PostTransaction records an amount for a member and re-sorts the group.
	// The returned balance is read under the same lock as the post.
	PostTransaction(ctx context.Context, group, user string, amount float64) (*models.Transaction, float64, error)

	// RecentTransactions returns up to n records, newest first.
	RecentTransactions(ctx context.Context, group string, n int) ([]models.Transaction, error)

	// Settlements suggests payments that even out a group's contributions.
	Settlements(ctx context.Context, group string) ([]models.Settlement, error)
}
