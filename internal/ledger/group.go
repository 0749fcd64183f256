package ledger

import (
	"fmt"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/models"
)

// Group owns a user registry sorted by balance and a newest-first
// transaction log.
type Group struct {
	name  string
	users *user
	xcts  *xct
	next  *Group
}

// Stats counts the nodes held by a group or directory.
type Stats struct {
	Groups       int
	Users        int
	Transactions int
}

// Name returns the group's name.
func (g *Group) Name() string {
	return g.name
}

// Snapshot returns the group's name, members and log size.
func (g *Group) Snapshot() models.Group {
	return models.Group{
		Name:         g.name,
		Members:      g.ListUsers(),
		Transactions: g.Stats().Transactions,
	}
}

// Stats counts the group's users and transactions.
func (g *Group) Stats() Stats {
	s := Stats{Groups: 1}
	for u := g.users; u != nil; u = u.next {
		s.Users++
	}
	for x := g.xcts; x != nil; x = x.next {
		s.Transactions++
	}
	return s
}

// Total returns the sum of all member balances.
func (g *Group) Total() float64 {
	var total float64
	for u := g.users; u != nil; u = u.next {
		total += u.balance
	}
	return total
}

// Settlements suggests payments that bring every member to an equal share
// of the group's total.
func (g *Group) Settlements() []models.Settlement {
	return calculator.Settle(g.ListUsers())
}

// RemoveUser unlinks the named user and purges every transaction posted
// for it. It returns ErrNoSuchUser, leaving the group untouched, if the
// user is absent.
func (g *Group) RemoveUser(name string) error {
	if g == nil {
		return ErrNoSuchGroup
	}
	prev := g.locatePredecessor(name)
	if prev == nil {
		return fmt.Errorf("%w: %s", ErrNoSuchUser, name)
	}

	if prev.name == name {
		g.users = prev.next
	} else {
		prev.next = prev.next.next
	}
	g.purgeTransactions(name)
	return nil
}
