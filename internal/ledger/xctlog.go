package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/splitledger/internal/models"
)

type xct struct {
	id       string
	user     string
	amount   float64
	postedAt int64
	next     *xct
}

func (x *xct) model() models.Transaction {
	return models.Transaction{ID: x.id, User: x.user, Amount: x.amount, PostedAt: x.postedAt}
}

// PostTransaction records amount for the named user, adds it to the user's
// balance and re-sorts the registry. It returns the new record and the
// user's resulting balance. Nothing changes if the user is absent.
func (g *Group) PostTransaction(name string, amount float64) (models.Transaction, float64, error) {
	if g == nil {
		return models.Transaction{}, 0, ErrNoSuchGroup
	}
	u := g.lookup(name)
	if u == nil {
		return models.Transaction{}, 0, fmt.Errorf("%w: %s", ErrNoSuchUser, name)
	}

	x := &xct{
		id:       uuid.New().String(),
		user:     name,
		amount:   amount,
		postedAt: time.Now().Unix(),
		next:     g.xcts,
	}
	g.xcts = x

	u.balance += amount
	g.reposition(u)
	return x.model(), u.balance, nil
}

// RecentTransactions returns at most n records, newest first.
func (g *Group) RecentTransactions(n int) []models.Transaction {
	if g == nil {
		return nil
	}
	var out []models.Transaction
	for x := g.xcts; x != nil && len(out) < n; x = x.next {
		out = append(out, x.model())
	}
	return out
}

// purgeTransactions unlinks every record posted for name and reports how
// many were removed. Surviving records keep their relative order.
func (g *Group) purgeTransactions(name string) int {
	removed := 0
	for g.xcts != nil && g.xcts.user == name {
		g.xcts = g.xcts.next
		removed++
	}
	if g.xcts == nil {
		return removed
	}

	prev := g.xcts
	for cur := prev.next; cur != nil; cur = prev.next {
		if cur.user == name {
			// prev stays put so the record after cur is examined next.
			prev.next = cur.next
			removed++
		} else {
			prev = cur
		}
	}
	return removed
}
