package core

import "sort"

// TopCategoryLimit caps how many category totals a summary reports.
const TopCategoryLimit = 5

// CategoryTotal is an expense total aggregated by catalog category id.
type CategoryTotal struct {
	Category string `json:"category"`
	Total    Money  `json:"total"`
	Count    int    `json:"count"`
}

// Summary aggregates a transaction list for the dashboard and reports views.
type Summary struct {
	TotalIncome       Money           `json:"totalIncome"`
	TotalExpenses     Money           `json:"totalExpenses"`
	NetAmount         Money           `json:"netAmount"`
	TotalTransactions int             `json:"totalTransactions"`
	TopCategories     []CategoryTotal `json:"topCategories"`
}

// Summarize computes totals and the top expense categories for a list of
// transactions. Amounts are treated as magnitudes: expense totals sum
// absolute values so a stray negative amount is never double-negated.
// An empty input yields all-zero totals and no categories. The function
// performs no I/O and is deterministic for identical input.
func Summarize(txs []Transaction) Summary {
	var income, expenses int64
	byCategory := make(map[string]*CategoryTotal)

	for _, t := range txs {
		switch t.Type {
		case Income:
			income += t.Amount.Abs().Cents
		case Expense:
			abs := t.Amount.Abs().Cents
			expenses += abs
			ct, ok := byCategory[t.Category]
			if !ok {
				ct = &CategoryTotal{Category: t.Category}
				byCategory[t.Category] = ct
			}
			ct.Total.Cents += abs
			ct.Count++
		}
	}

	top := make([]CategoryTotal, 0, len(byCategory))
	for _, ct := range byCategory {
		top = append(top, *ct)
	}
	// Descending by total; ties break on category id so the order is
	// deterministic for identical input.
	sort.Slice(top, func(i, j int) bool {
		if top[i].Total.Cents != top[j].Total.Cents {
			return top[i].Total.Cents > top[j].Total.Cents
		}
		return top[i].Category < top[j].Category
	})
	if len(top) > TopCategoryLimit {
		top = top[:TopCategoryLimit]
	}

	return Summary{
		TotalIncome:       Money{Cents: income},
		TotalExpenses:     Money{Cents: expenses},
		NetAmount:         Money{Cents: income - expenses},
		TotalTransactions: len(txs),
		TopCategories:     top,
	}
}

// SortByDateDesc orders transactions newest first, in place. Equal dates
// keep a stable order by id so repeated reads render identically.
func SortByDateDesc(txs []Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		if !txs[i].Date.Equal(txs[j].Date) {
			return txs[i].Date.After(txs[j].Date)
		}
		return txs[i].ID > txs[j].ID
	})
}
