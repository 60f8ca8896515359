package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gastos/internal/events"
	"gastos/internal/services"
	"gastos/internal/storage"
)

// ReconcileWorker keeps budget category spent amounts in line with the
// stored transactions. It reacts to transaction events and also sweeps
// periodically to catch anything missed while the worker was down.
type ReconcileWorker struct {
	repo      *storage.Repository
	processor *services.ReconcileProcessor
	interval  time.Duration
}

func NewReconcileWorker(repo *storage.Repository, interval time.Duration) *ReconcileWorker {
	return &ReconcileWorker{
		repo:      repo,
		processor: services.NewReconcileProcessor(repo),
		interval:  interval,
	}
}

// HandleTransactionCreated processes a single transaction event.
func (w *ReconcileWorker) HandleTransactionCreated(ctx context.Context, msg *events.TransactionCreatedMessage) error {
	slog.InfoContext(ctx, "Processing transaction event",
		"transaction_id", msg.TransactionID,
		"user_id", msg.UserID)

	updated, err := w.processor.ReconcileUser(ctx, msg.UserID)
	if err != nil {
		return fmt.Errorf("reconcile user %s: %w", msg.UserID, err)
	}

	slog.InfoContext(ctx, "Reconciliation complete",
		"user_id", msg.UserID,
		"categories_updated", updated)
	return nil
}

// Sweep reconciles the stored user regardless of events. A missing user
// is not an error: nothing has been created yet.
func (w *ReconcileWorker) Sweep(ctx context.Context) error {
	u, err := w.repo.GetUser(ctx)
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}
	if u == nil {
		slog.DebugContext(ctx, "No user yet, skipping sweep")
		return nil
	}

	updated, err := w.processor.ReconcileUser(ctx, u.ID)
	if err != nil {
		return fmt.Errorf("reconcile user %s: %w", u.ID, err)
	}
	if updated > 0 {
		slog.InfoContext(ctx, "Periodic sweep updated categories",
			"user_id", u.ID,
			"categories_updated", updated)
	}
	return nil
}

// RunPeriodic sweeps on the configured interval until the context ends.
func (w *ReconcileWorker) RunPeriodic(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := w.Sweep(ctx); err != nil {
				slog.ErrorContext(ctx, "Periodic sweep failed", "error", err)
			}
		}
	}
}
