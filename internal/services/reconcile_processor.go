package services

import (
	"context"
	"fmt"
	"log/slog"

	"gastos/internal/categories"
	"gastos/internal/core"
	"gastos/internal/storage"
)

// ReconcileProcessor recomputes each budget category's spent figure from
// the user's expense transactions. The data layer itself treats spent as
// externally supplied; running this worker makes it derived instead.
//
// Matching is by name: a budget category named "Comida" accumulates every
// expense whose catalog category displays as "Comida". Categories whose
// name matches nothing in the catalog keep their manual spent figure.
type ReconcileProcessor struct {
	repo *storage.Repository
}

func NewReconcileProcessor(repo *storage.Repository) *ReconcileProcessor {
	return &ReconcileProcessor{repo: repo}
}

// ReconcileUser recalculates spent for all of one user's budget
// categories and persists any changes. Returns how many categories moved.
func (p *ReconcileProcessor) ReconcileUser(ctx context.Context, userID string) (int, error) {
	cats, err := p.repo.ListBudgetCategories(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("list budget categories: %w", err)
	}
	if len(cats) == 0 {
		return 0, nil
	}

	txs, err := p.repo.ListTransactions(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("list transactions: %w", err)
	}

	// Sum expenses per catalog display name.
	spentByName := make(map[string]int64)
	for _, tx := range txs {
		if tx.Type != core.Expense {
			continue
		}
		cat, ok := categories.ByID(tx.Category)
		if !ok {
			continue
		}
		spentByName[cat.Name] += tx.Amount.Abs().Cents
	}

	changed := 0
	for i, c := range cats {
		spent, ok := spentByName[c.Name]
		if !ok {
			if _, inCatalog := categories.ByName(c.Name); !inCatalog {
				// Manually tracked envelope, leave it alone.
				continue
			}
			spent = 0
		}
		if c.Spent.Cents != spent {
			cats[i].Spent = core.Money{Cents: spent}
			changed++
		}
	}

	if changed == 0 {
		return 0, nil
	}
	if err := p.repo.UpdateBudgetCategories(ctx, userID, cats); err != nil {
		return 0, fmt.Errorf("update budget categories: %w", err)
	}

	slog.InfoContext(ctx, "Budget spent reconciled",
		"user_id", userID,
		"categories_changed", changed)
	return changed, nil
}
