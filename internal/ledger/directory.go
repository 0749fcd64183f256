// Package ledger implements the in-memory shared-expense ledger.
//
// A Directory owns an insertion-ordered list of groups. Each Group owns two
// forward-only linked lists: its users, kept in non-decreasing balance order,
// and its transactions, newest first. Every mutation locates its target
// through the node before it, since nodes carry no back-references.
//
// Nothing in this package is safe for concurrent use; see storage/memory for
// the locked wrapper used by the RPC server.
package ledger

import (
	"fmt"

	"github.com/mmynk/splitledger/internal/models"
)

// Directory is the set of named groups in insertion order.
type Directory struct {
	head *Group
	tail *Group
	size int
}

// NewDirectory returns an empty directory.
func NewDirectory() *Directory {
	return &Directory{}
}

// AddGroup appends a new, empty group. It returns ErrDuplicateGroup if a
// group with the same name already exists.
func (d *Directory) AddGroup(name string) (*Group, error) {
	if d.FindGroup(name) != nil {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateGroup, name)
	}

	g := &Group{name: name}
	if d.tail == nil {
		d.head = g
	} else {
		d.tail.next = g
	}
	d.tail = g
	d.size++
	return g, nil
}

// FindGroup returns the group with exactly this name, or nil.
func (d *Directory) FindGroup(name string) *Group {
	for g := d.head; g != nil; g = g.next {
		if g.name == name {
			return g
		}
	}
	return nil
}

// ListGroups returns the group names in the order they were added.
func (d *Directory) ListGroups() []string {
	var names []string
	for g := d.head; g != nil; g = g.next {
		names = append(names, g.name)
	}
	return names
}

// Len returns the number of groups.
func (d *Directory) Len() int {
	return d.size
}

// group resolves a name to a group or ErrNoSuchGroup.
func (d *Directory) group(name string) (*Group, error) {
	g := d.FindGroup(name)
	if g == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchGroup, name)
	}
	return g, nil
}

// AddUser adds a user to the named group.
func (d *Directory) AddUser(group, user string) error {
	g, err := d.group(group)
	if err != nil {
		return err
	}
	return g.AddUser(user)
}

// RemoveUser removes a user and its transactions from the named group.
func (d *Directory) RemoveUser(group, user string) error {
	g, err := d.group(group)
	if err != nil {
		return err
	}
	return g.RemoveUser(user)
}

// ListUsers returns the named group's members, lowest balance first.
func (d *Directory) ListUsers(group string) ([]models.Member, error) {
	g, err := d.group(group)
	if err != nil {
		return nil, err
	}
	return g.ListUsers(), nil
}

// UserBalance returns a user's balance in the named group.
func (d *Directory) UserBalance(group, user string) (float64, error) {
	g, err := d.group(group)
	if err != nil {
		return 0, err
	}
	return g.UserBalance(user)
}

// LeastPaid returns the names tied at the lowest balance in the named group.
func (d *Directory) LeastPaid(group string) ([]string, error) {
	g, err := d.group(group)
	if err != nil {
		return nil, err
	}
	return g.LeastPaid()
}

// PostTransaction posts an amount for a user in the named group.
func (d *Directory) PostTransaction(group, user string, amount float64) (models.Transaction, float64, error) {
	g, err := d.group(group)
	if err != nil {
		return models.Transaction{}, 0, err
	}
	return g.PostTransaction(user, amount)
}

// RecentTransactions returns up to n of the named group's newest records.
func (d *Directory) RecentTransactions(group string, n int) ([]models.Transaction, error) {
	g, err := d.group(group)
	if err != nil {
		return nil, err
	}
	return g.RecentTransactions(n), nil
}

// Settlements suggests payments that even out the named group's balances.
func (d *Directory) Settlements(group string) ([]models.Settlement, error) {
	g, err := d.group(group)
	if err != nil {
		return nil, err
	}
	return g.Settlements(), nil
}

// Stats sums user and transaction counts across every group.
func (d *Directory) Stats() Stats {
	var s Stats
	for g := d.head; g != nil; g = g.next {
		gs := g.Stats()
		s.Users += gs.Users
		s.Transactions += gs.Transactions
	}
	s.Groups = d.size
	return s
}
