package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"gastos/internal/core"
	"gastos/internal/kv"
	"gastos/internal/storage"
)

func newTestTxService() (*TransactionService, *storage.Repository) {
	repo := storage.NewRepository(kv.NewMemoryStore())
	return NewTransactionService(repo, nil), repo
}

func validInput(userID string) TransactionInput {
	return TransactionInput{
		Amount:      core.Money{Cents: 5000},
		Description: "almuerzo",
		Category:    "food",
		Date:        time.Date(2025, 4, 10, 14, 0, 0, 0, time.UTC),
		Type:        core.Expense,
		UserID:      userID,
	}
}

func TestCreateAssignsIDAndPersists(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestTxService()

	tx, err := svc.Create(ctx, validInput("u1"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if tx.ID == "" || !strings.HasPrefix(tx.ID, "tx_") {
		t.Fatalf("bad id %q", tx.ID)
	}

	stored, err := repo.ListTransactions(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(stored) != 1 || stored[0].ID != tx.ID {
		t.Fatalf("not persisted: %+v", stored)
	}
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestTxService()

	cases := []TransactionInput{
		func(in TransactionInput) TransactionInput { in.Amount = core.Money{}; return in }(validInput("u1")),
		func(in TransactionInput) TransactionInput { in.Amount = core.Money{Cents: -100}; return in }(validInput("u1")),
		func(in TransactionInput) TransactionInput { in.Description = " "; return in }(validInput("u1")),
		func(in TransactionInput) TransactionInput { in.Type = "transfer"; return in }(validInput("u1")),
		func(in TransactionInput) TransactionInput { in.Category = "not-in-catalog"; return in }(validInput("u1")),
		func(in TransactionInput) TransactionInput { in.UserID = ""; return in }(validInput("u1")),
	}
	for i, in := range cases {
		if _, err := svc.Create(ctx, in); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}

	stored, _ := repo.ListTransactions(ctx, "u1")
	if len(stored) != 0 {
		t.Fatalf("rejected input reached storage: %+v", stored)
	}
}

func TestCreateDefaultsDateToNow(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestTxService()

	in := validInput("u1")
	in.Date = time.Time{}
	before := time.Now()
	tx, err := svc.Create(ctx, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if tx.Date.Before(before.Add(-time.Second)) || tx.Date.After(time.Now().Add(time.Second)) {
		t.Fatalf("date not defaulted to now: %v", tx.Date)
	}
}

func TestIDsUnique(t *testing.T) {
	const n = 10000
	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		id := newRecordID("tx")
		if id == "" {
			t.Fatalf("empty id at %d", i)
		}
		if seen[id] {
			t.Fatalf("collision after %d ids: %s", i, id)
		}
		seen[id] = true
	}
}

func TestListForUserSortedDesc(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestTxService()

	days := []int{5, 25, 15}
	for _, d := range days {
		in := validInput("u1")
		in.Date = time.Date(2025, 4, d, 0, 0, 0, 0, time.UTC)
		if _, err := svc.Create(ctx, in); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	// Another user's record must never leak into the listing.
	if _, err := svc.Create(ctx, validInput("someone-else")); err != nil {
		t.Fatalf("create: %v", err)
	}

	txs, err := svc.ListForUser(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(txs) != 3 {
		t.Fatalf("got %d transactions, want 3", len(txs))
	}
	for i := 1; i < len(txs); i++ {
		if txs[i-1].Date.Before(txs[i].Date) {
			t.Fatalf("not sorted descending: %v before %v", txs[i-1].Date, txs[i].Date)
		}
	}
	for _, tx := range txs {
		if tx.UserID != "u1" {
			t.Fatalf("foreign record: %+v", tx)
		}
	}
}

func TestSummaryForUserScenario(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestTxService()

	mk := func(cents int64, typ core.TransactionType, cat string) {
		in := validInput("u1")
		in.Amount = core.Money{Cents: cents}
		in.Type = typ
		in.Category = cat
		if _, err := svc.Create(ctx, in); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	mk(5000, core.Expense, "food")
	mk(2000, core.Expense, "food")
	mk(100000, core.Income, "salary")

	s, err := svc.SummaryForUser(ctx, "u1")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if s.TotalIncome.Cents != 100000 || s.TotalExpenses.Cents != 7000 || s.NetAmount.Cents != 93000 {
		t.Fatalf("unexpected summary: %+v", s)
	}
	if len(s.TopCategories) != 1 || s.TopCategories[0].Category != "food" || s.TopCategories[0].Total.Cents != 7000 {
		t.Fatalf("top categories: %+v", s.TopCategories)
	}
}
