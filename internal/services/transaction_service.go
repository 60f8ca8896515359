// Package services holds the domain services the HTTP layer and worker
// call into. Services validate before storage, generate record ids, and
// publish events; they never render anything.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gastos/internal/categories"
	"gastos/internal/core"
	"gastos/internal/events"
	"gastos/internal/log"
	"gastos/internal/storage"
)

// TransactionInput is what the client submits when logging an entry.
type TransactionInput struct {
	Amount       core.Money
	Description  string
	Category     string
	Date         time.Time
	Type         core.TransactionType
	UserID       string
	ReceiptImage string
}

// TransactionService creates transactions and computes summaries.
type TransactionService struct {
	repo *storage.Repository
	bus  *events.Client
}

// NewTransactionService wires the service. bus may be nil; creation then
// skips event publishing and stays local-only.
func NewTransactionService(repo *storage.Repository, bus *events.Client) *TransactionService {
	return &TransactionService{repo: repo, bus: bus}
}

// Create validates the input, assigns an id, and appends the transaction.
// The stored record is returned. A configured event bus is notified
// non-blocking: publish failures are logged, never surfaced, because the
// record is already durable locally.
func (s *TransactionService) Create(ctx context.Context, in TransactionInput) (core.Transaction, error) {
	tx := core.Transaction{
		ID:           newRecordID("tx"),
		Amount:       in.Amount,
		Description:  in.Description,
		Category:     in.Category,
		Date:         in.Date,
		Type:         in.Type,
		UserID:       in.UserID,
		ReceiptImage: in.ReceiptImage,
	}
	if tx.Date.IsZero() {
		tx.Date = time.Now()
	}
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, err
	}
	if _, ok := categories.ByID(tx.Category); !ok {
		return core.Transaction{}, core.ErrEmptyCategory
	}

	if err := s.repo.AppendTransaction(ctx, tx); err != nil {
		return core.Transaction{}, fmt.Errorf("save transaction: %w", err)
	}

	slog.InfoContext(ctx, "Transaction created",
		log.FieldTransactionID, tx.ID,
		log.FieldUserID, tx.UserID,
		log.FieldTxType, string(tx.Type),
		log.FieldCategory, tx.Category,
		log.FieldAmountCents, tx.Amount.Cents)

	if s.bus != nil {
		if err := s.bus.PublishTransactionCreated(ctx, tx.ID, tx.UserID); err != nil {
			slog.ErrorContext(ctx, "Failed to publish created event",
				log.FieldTransactionID, tx.ID, log.FieldError, err)
		}
	}

	return tx, nil
}

// ListForUser returns the user's transactions sorted by date descending,
// newest first, for predictable rendering.
func (s *TransactionService) ListForUser(ctx context.Context, userID string) ([]core.Transaction, error) {
	txs, err := s.repo.ListTransactions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	core.SortByDateDesc(txs)
	return txs, nil
}

// SummaryForUser reads the user's transactions and aggregates them.
func (s *TransactionService) SummaryForUser(ctx context.Context, userID string) (core.Summary, error) {
	txs, err := s.repo.ListTransactions(ctx, userID)
	if err != nil {
		return core.Summary{}, fmt.Errorf("list transactions: %w", err)
	}
	return core.Summarize(txs), nil
}
