package core

// BudgetOverview aggregates a user's budget categories.
type BudgetOverview struct {
	TotalBudgeted Money `json:"totalBudgeted"`
	TotalSpent    Money `json:"totalSpent"`
	Remaining     Money `json:"remaining"`
}

// OverviewBudgets sums budgeted and spent across categories. Remaining may
// be negative when spending exceeds the total budget.
func OverviewBudgets(categories []BudgetCategory) BudgetOverview {
	var budgeted, spent int64
	for _, c := range categories {
		budgeted += c.Budgeted.Cents
		spent += c.Spent.Abs().Cents
	}
	return BudgetOverview{
		TotalBudgeted: Money{Cents: budgeted},
		TotalSpent:    Money{Cents: spent},
		Remaining:     Money{Cents: budgeted - spent},
	}
}

// ProgressPercent reports how much of the envelope is used, capped at 100.
// A zero budget reports 0 rather than dividing by zero.
func (c BudgetCategory) ProgressPercent() int {
	if c.Budgeted.Cents <= 0 {
		return 0
	}
	pct := c.Spent.Abs().Cents * 100 / c.Budgeted.Cents
	if pct > 100 {
		return 100
	}
	return int(pct)
}

// OverBudget reports whether spending exceeded the envelope.
func (c BudgetCategory) OverBudget() bool {
	return c.Spent.Abs().Cents > c.Budgeted.Cents
}
