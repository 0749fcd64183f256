// Package calculator derives settle-up suggestions from member balances.
package calculator

import "github.com/mmynk/splitledger/internal/models"

// epsilon is the smallest amount worth settling; anything below it is
// floating point noise.
const epsilon = 0.01

// Settle computes payments that bring every member to an equal share of the
// group's total contributions.
//
// Algorithm:
//   - fair share = sum of balances / number of members
//   - members below the share owe (share - balance)
//   - members above the share are owed (balance - share)
//   - greedy matching: largest debtor pays largest creditor until one side is
//     settled, then moves to the next
//
// members is expected in ascending balance order, as the ledger lists them.
// Fewer than two members yields no settlements.
func Settle(members []models.Member) []models.Settlement {
	if len(members) < 2 {
		return nil
	}

	var total float64
	for _, m := range members {
		total += m.Balance
	}
	share := total / float64(len(members))

	type party struct {
		name   string
		amount float64
	}

	// Debtors in list order (largest shortfall first), creditors in reverse
	// (largest surplus first).
	var debtors, creditors []party
	for _, m := range members {
		if share-m.Balance >= epsilon {
			debtors = append(debtors, party{m.Name, share - m.Balance})
		}
	}
	for i := len(members) - 1; i >= 0; i-- {
		m := members[i]
		if m.Balance-share >= epsilon {
			creditors = append(creditors, party{m.Name, m.Balance - share})
		}
	}

	var settlements []models.Settlement
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		d, c := &debtors[i], &creditors[j]

		amount := d.amount
		if c.amount < amount {
			amount = c.amount
		}
		if amount >= epsilon {
			settlements = append(settlements, models.Settlement{
				From:   d.name,
				To:     c.name,
				Amount: amount,
			})
		}

		d.amount -= amount
		c.amount -= amount
		if d.amount < epsilon {
			i++
		}
		if c.amount < epsilon {
			j++
		}
	}

	return settlements
}
