package ledger

import "strconv"

// FormatAmount renders a balance or amount with two decimal places, the
// form used wherever the ledger is printed.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
