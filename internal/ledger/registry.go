package ledger

import (
	"fmt"

	"github.com/mmynk/splitledger/internal/models"
)

type user struct {
	name    string
	balance float64
	next    *user
}

// AddUser inserts a user with a zero balance at its sorted position, after
// any users whose balance is already at or below zero.
func (g *Group) AddUser(name string) error {
	if g == nil {
		return ErrNoSuchGroup
	}
	if g.locatePredecessor(name) != nil {
		return fmt.Errorf("%w: %s", ErrDuplicateUser, name)
	}
	g.insertSorted(&user{name: name})
	return nil
}

// ListUsers returns the members in ascending balance order.
func (g *Group) ListUsers() []models.Member {
	if g == nil {
		return nil
	}
	var members []models.Member
	for u := g.users; u != nil; u = u.next {
		members = append(members, models.Member{Name: u.name, Balance: u.balance})
	}
	return members
}

// UserBalance returns the named user's balance.
func (g *Group) UserBalance(name string) (float64, error) {
	if g == nil {
		return 0, ErrNoSuchGroup
	}
	u := g.lookup(name)
	if u == nil {
		return 0, fmt.Errorf("%w: %s", ErrNoSuchUser, name)
	}
	return u.balance, nil
}

// LeastPaid returns every user tied at the minimum balance, in list order.
func (g *Group) LeastPaid() ([]string, error) {
	if g == nil {
		return nil, ErrNoSuchGroup
	}
	if g.users == nil {
		return nil, ErrEmptyRegistry
	}
	least := g.users.balance
	var names []string
	for u := g.users; u != nil && u.balance == least; u = u.next {
		names = append(names, u.name)
	}
	return names, nil
}

// locatePredecessor returns the node before the named user, the user itself
// when it is first in the list, or nil when no such user exists.
func (g *Group) locatePredecessor(name string) *user {
	if g.users == nil {
		return nil
	}
	if g.users.name == name {
		return g.users
	}
	for cur := g.users; cur.next != nil; cur = cur.next {
		if cur.next.name == name {
			return cur
		}
	}
	return nil
}

// lookup returns the named user's node, or nil.
func (g *Group) lookup(name string) *user {
	prev := g.locatePredecessor(name)
	if prev == nil || prev.name == name {
		return prev
	}
	return prev.next
}

// reposition moves u, whose balance has just changed, back into sorted
// order. u must currently be linked into g.users.
func (g *Group) reposition(u *user) {
	prev := g.locatePredecessor(u.name)
	if prev == u {
		g.users = u.next
	} else {
		prev.next = u.next
	}
	u.next = nil
	g.insertSorted(u)
}

// insertSorted links u after every node whose balance is <= u.balance, so
// a user moving into a tie lands behind the users already holding it.
func (g *Group) insertSorted(u *user) {
	if g.users == nil || g.users.balance > u.balance {
		u.next = g.users
		g.users = u
		return
	}
	cur := g.users
	for cur.next != nil && cur.next.balance <= u.balance {
		cur = cur.next
	}
	u.next = cur.next
	cur.next = u
}
