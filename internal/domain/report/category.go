package report

import "github.com/shopspring/decimal"

// CategoryTotal is the aggregate for one ledger entry category.
type CategoryTotal struct {
	Category    EntryType       `json:"category"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Count       int             `json:"count"`
}

// AggregateByType groups ledger entries by entry type and computes the sum
// of amounts and the record count per category. The category set is open:
// only categories observed in the input appear in the output, in first-seen
// order, with no zero-filling. This deliberately differs from the monthly
// bucketer, whose twelve-bucket set is fixed by the calendar.
func AggregateByType(entries []LedgerEntry) []CategoryTotal {
	totals := make([]CategoryTotal, 0, 4)
	index := make(map[EntryType]int, 4)

	for _, entry := range entries {
		i, seen := index[entry.EntryType]
		if !seen {
			index[entry.EntryType] = len(totals)
			totals = append(totals, CategoryTotal{
				Category:    entry.EntryType,
				TotalAmount: decimal.Zero,
			})
			i = len(totals) - 1
		}
		totals[i].TotalAmount = totals[i].TotalAmount.Add(entry.Amount)
		totals[i].Count++
	}

	return totals
}
