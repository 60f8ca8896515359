package core

import (
	"fmt"
	"testing"
	"time"
)

func tx(amountCents int64, typ TransactionType, category string) Transaction {
	return Transaction{
		ID:          fmt.Sprintf("tx_%s_%d", category, amountCents),
		Amount:      Money{Cents: amountCents},
		Description: "test",
		Category:    category,
		Date:        time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		Type:        typ,
		UserID:      "u1",
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.TotalIncome.Cents != 0 || s.TotalExpenses.Cents != 0 || s.NetAmount.Cents != 0 {
		t.Fatalf("expected zero totals, got %+v", s)
	}
	if s.TotalTransactions != 0 || len(s.TopCategories) != 0 {
		t.Fatalf("expected empty summary, got %+v", s)
	}
}

func TestSummarizeBasic(t *testing.T) {
	txs := []Transaction{
		tx(5000, Expense, "food"),
		tx(2000, Expense, "food"),
		tx(100000, Income, "salary"),
	}
	s := Summarize(txs)

	if s.TotalIncome.Cents != 100000 {
		t.Fatalf("total income = %d, want 100000", s.TotalIncome.Cents)
	}
	if s.TotalExpenses.Cents != 7000 {
		t.Fatalf("total expenses = %d, want 7000", s.TotalExpenses.Cents)
	}
	if s.NetAmount.Cents != 93000 {
		t.Fatalf("net = %d, want 93000", s.NetAmount.Cents)
	}
	if s.TotalTransactions != 3 {
		t.Fatalf("count = %d, want 3", s.TotalTransactions)
	}
	if len(s.TopCategories) != 1 {
		t.Fatalf("top categories = %v, want exactly food", s.TopCategories)
	}
	if s.TopCategories[0].Category != "food" || s.TopCategories[0].Total.Cents != 7000 {
		t.Fatalf("unexpected top category %+v", s.TopCategories[0])
	}
	if s.TopCategories[0].Count != 2 {
		t.Fatalf("top category count = %d, want 2", s.TopCategories[0].Count)
	}
}

func TestSummarizeNetIdentity(t *testing.T) {
	txs := []Transaction{
		tx(1, Expense, "a"),
		tx(999, Expense, "b"),
		tx(12345, Income, "salary"),
		tx(67, Income, "gift"),
	}
	s := Summarize(txs)
	if s.TotalIncome.Cents-s.TotalExpenses.Cents != s.NetAmount.Cents {
		t.Fatalf("income %d - expenses %d != net %d",
			s.TotalIncome.Cents, s.TotalExpenses.Cents, s.NetAmount.Cents)
	}
}

func TestSummarizeNegativeAmountsNotDoubleNegated(t *testing.T) {
	// A stray negative magnitude must aggregate as its absolute value.
	txs := []Transaction{
		{ID: "t1", Amount: Money{Cents: -5000}, Category: "food", Type: Expense, UserID: "u1"},
		{ID: "t2", Amount: Money{Cents: 2000}, Category: "food", Type: Expense, UserID: "u1"},
	}
	s := Summarize(txs)
	if s.TotalExpenses.Cents != 7000 {
		t.Fatalf("expenses = %d, want 7000", s.TotalExpenses.Cents)
	}
	if s.TopCategories[0].Total.Cents != 7000 {
		t.Fatalf("food total = %d, want 7000", s.TopCategories[0].Total.Cents)
	}
}

func TestSummarizeTopCategoriesLimitAndOrder(t *testing.T) {
	var txs []Transaction
	// 7 categories with distinct totals 100..700
	for i := 1; i <= 7; i++ {
		txs = append(txs, tx(int64(i*100), Expense, fmt.Sprintf("cat%d", i)))
	}
	s := Summarize(txs)
	if len(s.TopCategories) != TopCategoryLimit {
		t.Fatalf("len = %d, want %d", len(s.TopCategories), TopCategoryLimit)
	}
	for i := 1; i < len(s.TopCategories); i++ {
		if s.TopCategories[i-1].Total.Cents < s.TopCategories[i].Total.Cents {
			t.Fatalf("not sorted descending: %+v", s.TopCategories)
		}
	}
	if s.TopCategories[0].Category != "cat7" {
		t.Fatalf("top = %s, want cat7", s.TopCategories[0].Category)
	}
}

func TestSummarizeTieOrderDeterministic(t *testing.T) {
	txs := []Transaction{
		tx(500, Expense, "zeta"),
		tx(500, Expense, "alpha"),
	}
	for i := 0; i < 10; i++ {
		s := Summarize(txs)
		if s.TopCategories[0].Category != "alpha" || s.TopCategories[1].Category != "zeta" {
			t.Fatalf("run %d: tie order not deterministic: %+v", i, s.TopCategories)
		}
	}
}

func TestSortByDateDesc(t *testing.T) {
	d := func(day int) time.Time { return time.Date(2025, 1, day, 0, 0, 0, 0, time.UTC) }
	txs := []Transaction{
		{ID: "a", Date: d(1)},
		{ID: "b", Date: d(20)},
		{ID: "c", Date: d(10)},
	}
	SortByDateDesc(txs)
	if txs[0].ID != "b" || txs[1].ID != "c" || txs[2].ID != "a" {
		t.Fatalf("unexpected order: %v %v %v", txs[0].ID, txs[1].ID, txs[2].ID)
	}
}

func TestBudgetOverview(t *testing.T) {
	cats := []BudgetCategory{
		{Name: "Comida", Budgeted: Money{Cents: 50000}, Spent: Money{Cents: 20000}, UserID: "u1"},
		{Name: "Casa", Budgeted: Money{Cents: 100000}, Spent: Money{Cents: 110000}, UserID: "u1"},
	}
	ov := OverviewBudgets(cats)
	if ov.TotalBudgeted.Cents != 150000 {
		t.Fatalf("budgeted = %d", ov.TotalBudgeted.Cents)
	}
	if ov.TotalSpent.Cents != 130000 {
		t.Fatalf("spent = %d", ov.TotalSpent.Cents)
	}
	if ov.Remaining.Cents != 20000 {
		t.Fatalf("remaining = %d", ov.Remaining.Cents)
	}

	if got := cats[0].ProgressPercent(); got != 40 {
		t.Fatalf("progress = %d, want 40", got)
	}
	if cats[0].OverBudget() {
		t.Fatalf("Comida should not be over budget")
	}
	if got := cats[1].ProgressPercent(); got != 100 {
		t.Fatalf("progress should cap at 100, got %d", got)
	}
	if !cats[1].OverBudget() {
		t.Fatalf("Casa should be over budget")
	}

	if got := (BudgetCategory{}).ProgressPercent(); got != 0 {
		t.Fatalf("zero budget progress = %d, want 0", got)
	}
	if ov := OverviewBudgets(nil); ov.TotalBudgeted.Cents != 0 || ov.Remaining.Cents != 0 {
		t.Fatalf("empty overview not zero: %+v", ov)
	}
}
