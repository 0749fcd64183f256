// Package memory provides a storage.Store backed by an in-memory ledger.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/mmynk/splitledger/internal/ledger"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Store guards a single ledger.Directory with one coarse lock: the linked
// structures underneath are not safe to mutate concurrently.
type Store struct {
	mu  sync.RWMutex
	dir *ledger.Directory
}

// New creates a Store over an empty directory.
func New() *Store {
	return &Store{dir: ledger.NewDirectory()}
}

// Stats reports the number of groups, users and transactions held.
func (s *Store) Stats() ledger.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dir.Stats()
}

// read runs fn under the read lock unless ctx is already done.
func (s *Store) read(ctx context.Context, fn func(d *ledger.Directory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.dir)
}

// write runs fn under the write lock unless ctx is already done.
func (s *Store) write(ctx context.Context, fn func(d *ledger.Directory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.dir)
}

// AddGroup creates an empty group.
func (s *Store) AddGroup(ctx context.Context, name string) error {
	return s.write(ctx, func(d *ledger.Directory) error {
		_, err := d.AddGroup(name)
		return err
	})
}

// ListGroups returns group names in creation order.
func (s *Store) ListGroups(ctx context.Context) ([]string, error) {
	var names []string
	err := s.read(ctx, func(d *ledger.Directory) error {
		names = d.ListGroups()
		return nil
	})
	return names, err
}

// GetGroup returns a snapshot of the named group.
func (s *Store) GetGroup(ctx context.Context, name string) (*models.Group, error) {
	var group *models.Group
	err := s.read(ctx, func(d *ledger.Directory) error {
		g := d.FindGroup(name)
		if g == nil {
			return fmt.Errorf("%w: %s", ledger.ErrNoSuchGroup, name)
		}
		snap := g.Snapshot()
		group = &snap
		return nil
	})
	return group, err
}

// AddUser adds a zero-balance user to a group.
func (s *Store) AddUser(ctx context.Context, group, user string) error {
	return s.write(ctx, func(d *ledger.Directory) error {
		return d.AddUser(group, user)
	})
}

// RemoveUser removes a user and its transactions.
func (s *Store) RemoveUser(ctx context.Context, group, user string) error {
	return s.write(ctx, func(d *ledger.Directory) error {
		return d.RemoveUser(group, user)
	})
}

// ListUsers returns a group's members, lowest balance first.
func (s *Store) ListUsers(ctx context.Context, group string) ([]models.Member, error) {
	var members []models.Member
	err := s.read(ctx, func(d *ledger.Directory) error {
		var err error
		members, err = d.ListUsers(group)
		return err
	})
	return members, err
}

// UserBalance returns one member's balance.
func (s *Store) UserBalance(ctx context.Context, group, user string) (float64, error) {
	var balance float64
	err := s.read(ctx, func(d *ledger.Directory) error {
		var err error
		balance, err = d.UserBalance(group, user)
		return err
	})
	return balance, err
}

// LeastPaid returns the members tied at the lowest balance.
func (s *Store) LeastPaid(ctx context.Context, group string) ([]string, error) {
	var names []string
	err := s.read(ctx, func(d *ledger.Directory) error {
		var err error
		names, err = d.LeastPaid(group)
		return err
	})
	return names, err
}

// PostTransaction records an amount for a member and returns the member's
// new balance.
func (s *Store) PostTransaction(ctx context.Context, group, user string, amount float64) (*models.Transaction, float64, error) {
	var (
		xct     *models.Transaction
		balance float64
	)
	err := s.write(ctx, func(d *ledger.Directory) error {
		x, b, err := d.PostTransaction(group, user, amount)
		if err != nil {
			return err
		}
		xct, balance = &x, b
		return nil
	})
	return xct, balance, err
}

// RecentTransactions returns up to n records, newest first.
func (s *Store) RecentTransactions(ctx context.Context, group string, n int) ([]models.Transaction, error) {
	var xcts []models.Transaction
	err := s.read(ctx, func(d *ledger.Directory) error {
		var err error
		xcts, err = d.RecentTransactions(group, n)
		return err
	})
	return xcts, err
}

// Settlements suggests payments that even out a group's contributions.
func (s *Store) Settlements(ctx context.Context, group string) ([]models.Settlement, error) {
	var out []models.Settlement
	err := s.read(ctx, func(d *ledger.Directory) error {
		var err error
		out, err = d.Settlements(group)
		return err
	})
	return out, err
}
