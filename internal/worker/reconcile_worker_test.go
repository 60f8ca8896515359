package worker

import (
	"context"
	"testing"
	"time"

	"gastos/internal/core"
	"gastos/internal/events"
	"gastos/internal/kv"
	"gastos/internal/storage"
)

func TestHandleTransactionCreatedUpdatesSpent(t *testing.T) {
	repo := storage.NewRepository(kv.NewMemoryStore())
	ctx := context.Background()

	tx := core.Transaction{
		ID:          "tx_1",
		Amount:      core.Money{Cents: 2500},
		Description: "almuerzo",
		Category:    "food",
		Date:        time.Now(),
		Type:        core.Expense,
		UserID:      "u1",
	}
	if err := repo.AppendTransaction(ctx, tx); err != nil {
		t.Fatalf("append transaction: %v", err)
	}
	if err := repo.AppendBudgetCategory(ctx, core.BudgetCategory{
		ID:       "budget_1",
		Name:     "Comida",
		Budgeted: core.Money{Cents: 50000},
		UserID:   "u1",
	}); err != nil {
		t.Fatalf("append category: %v", err)
	}

	w := NewReconcileWorker(repo, time.Minute)
	err := w.HandleTransactionCreated(ctx, &events.TransactionCreatedMessage{
		TransactionID: "tx_1",
		UserID:        "u1",
		Timestamp:     time.Now(),
	})
	if err != nil {
		t.Fatalf("handle event: %v", err)
	}

	cats, err := repo.ListBudgetCategories(ctx, "u1")
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	if len(cats) != 1 || cats[0].Spent.Cents != 2500 {
		t.Fatalf("expected spent 2500, got %+v", cats)
	}
}

func TestSweepWithoutUserIsNoop(t *testing.T) {
	repo := storage.NewRepository(kv.NewMemoryStore())
	w := NewReconcileWorker(repo, time.Minute)
	if err := w.Sweep(context.Background()); err != nil {
		t.Fatalf("sweep on empty store: %v", err)
	}
}

func TestSweepReconcilesStoredUser(t *testing.T) {
	repo := storage.NewRepository(kv.NewMemoryStore())
	ctx := context.Background()

	if err := repo.SaveUser(ctx, core.User{ID: "u1", Name: "Usuario", IsAnonymous: true, CreatedAt: time.Now()}); err != nil {
		t.Fatalf("save user: %v", err)
	}
	if err := repo.AppendTransaction(ctx, core.Transaction{
		ID:          "tx_1",
		Amount:      core.Money{Cents: 1200},
		Description: "bus",
		Category:    "transport",
		Date:        time.Now(),
		Type:        core.Expense,
		UserID:      "u1",
	}); err != nil {
		t.Fatalf("append transaction: %v", err)
	}
	if err := repo.AppendBudgetCategory(ctx, core.BudgetCategory{
		ID:       "budget_1",
		Name:     "Transporte",
		Budgeted: core.Money{Cents: 10000},
		UserID:   "u1",
	}); err != nil {
		t.Fatalf("append category: %v", err)
	}

	w := NewReconcileWorker(repo, time.Minute)
	if err := w.Sweep(ctx); err != nil {
		t.Fatalf("sweep: %v", err)
	}

	cats, err := repo.ListBudgetCategories(ctx, "u1")
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	if cats[0].Spent.Cents != 1200 {
		t.Fatalf("expected spent 1200, got %d", cats[0].Spent.Cents)
	}
}
