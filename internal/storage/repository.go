// Package storage implements the typed record repository over a kv.Store.
//
// Each record kind is persisted as one JSON blob under one fixed key, and
// per-user filtering happens in memory after a full read. Every
// read-modify-write goes through the store's atomic Update, which
// serializes writers on a key across goroutines AND across processes; the
// server and the reconciliation worker share one database file, so an
// in-process mutex alone would not prevent lost updates.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"gastos/internal/core"
	"gastos/internal/kv"
)

// Fixed storage keys, one per record kind plus the onboarding flag.
const (
	KeyUser               = "user"
	KeyTransactions       = "transactions"
	KeyBudgetCategories   = "budgetCategories"
	KeyOnboardingComplete = "onboardingComplete"
)

// AllKeys lists every key the repository owns, used by Reset.
var AllKeys = []string{KeyUser, KeyTransactions, KeyBudgetCategories, KeyOnboardingComplete}

type Repository struct {
	store kv.Store
}

func NewRepository(store kv.Store) *Repository {
	return &Repository{store: store}
}

// decodeBlob turns raw stored bytes into a typed value. Absent keys (nil
// input) decode to the zero value, so an empty store reads as empty
// collections rather than an error.
func decodeBlob[T any](raw []byte, key string) (T, error) {
	var out T
	if len(raw) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode %q: %w", key, err)
	}
	return out, nil
}

func encodeBlob(key string, value any) ([]byte, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encode %q: %w", key, err)
	}
	return raw, nil
}

func getJSON[T any](ctx context.Context, store kv.Store, key string) (T, error) {
	raw, err := store.Get(ctx, key)
	if errors.Is(err, kv.ErrKeyNotFound) {
		raw = nil
	} else if err != nil {
		var zero T
		return zero, err
	}
	return decodeBlob[T](raw, key)
}

// GetUser returns the singleton user, or nil when none has been created.
func (r *Repository) GetUser(ctx context.Context) (*core.User, error) {
	raw, err := r.store.Get(ctx, KeyUser)
	if errors.Is(err, kv.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var u core.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, fmt.Errorf("decode %q: %w", KeyUser, err)
	}
	return &u, nil
}

// SaveUser overwrites the singleton user record.
func (r *Repository) SaveUser(ctx context.Context, u core.User) error {
	raw, err := encodeBlob(KeyUser, u)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, KeyUser, raw)
}

// ListTransactions returns the given user's transactions in stored order.
func (r *Repository) ListTransactions(ctx context.Context, userID string) ([]core.Transaction, error) {
	all, err := getJSON[[]core.Transaction](ctx, r.store, KeyTransactions)
	if err != nil {
		return nil, err
	}
	out := make([]core.Transaction, 0, len(all))
	for _, t := range all {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

// AppendTransaction durably adds one transaction to the collection. The
// append runs inside the store's atomic Update, so concurrent creates
// from any process never lose records.
func (r *Repository) AppendTransaction(ctx context.Context, tx core.Transaction) error {
	var stored int
	err := r.store.Update(ctx, KeyTransactions, func(current []byte) ([]byte, error) {
		all, err := decodeBlob[[]core.Transaction](current, KeyTransactions)
		if err != nil {
			return nil, err
		}
		all = append(all, tx)
		stored = len(all)
		return encodeBlob(KeyTransactions, all)
	})
	if err != nil {
		return fmt.Errorf("append transaction: %w", err)
	}

	slog.DebugContext(ctx, "Transaction appended",
		"transaction_id", tx.ID,
		"user_id", tx.UserID,
		"total_stored", stored)
	return nil
}

// ListBudgetCategories returns the given user's budget categories.
func (r *Repository) ListBudgetCategories(ctx context.Context, userID string) ([]core.BudgetCategory, error) {
	all, err := getJSON[[]core.BudgetCategory](ctx, r.store, KeyBudgetCategories)
	if err != nil {
		return nil, err
	}
	out := make([]core.BudgetCategory, 0, len(all))
	for _, c := range all {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

// AppendBudgetCategory durably adds one budget category.
func (r *Repository) AppendBudgetCategory(ctx context.Context, c core.BudgetCategory) error {
	err := r.store.Update(ctx, KeyBudgetCategories, func(current []byte) ([]byte, error) {
		all, err := decodeBlob[[]core.BudgetCategory](current, KeyBudgetCategories)
		if err != nil {
			return nil, err
		}
		return encodeBlob(KeyBudgetCategories, append(all, c))
	})
	if err != nil {
		return fmt.Errorf("append budget category: %w", err)
	}
	return nil
}

// UpdateBudgetCategories merges the given entries into the user's stored
// categories by id. Stored entries the caller did not touch, including
// ones appended by another process after the caller's read, keep their
// place; entries whose id no longer exists in storage are dropped rather
// than resurrected. Used by spent reconciliation, which works from a
// snapshot that may be stale by the time it writes.
func (r *Repository) UpdateBudgetCategories(ctx context.Context, userID string, updated []core.BudgetCategory) error {
	byID := make(map[string]core.BudgetCategory, len(updated))
	for _, c := range updated {
		if c.UserID == userID {
			byID[c.ID] = c
		}
	}

	err := r.store.Update(ctx, KeyBudgetCategories, func(current []byte) ([]byte, error) {
		all, err := decodeBlob[[]core.BudgetCategory](current, KeyBudgetCategories)
		if err != nil {
			return nil, err
		}
		for i, c := range all {
			if c.UserID != userID {
				continue
			}
			if repl, ok := byID[c.ID]; ok {
				all[i] = repl
			}
		}
		return encodeBlob(KeyBudgetCategories, all)
	})
	if err != nil {
		return fmt.Errorf("update budget categories: %w", err)
	}
	return nil
}

// OnboardingComplete reports whether onboarding finished on this device.
// The flag is stored as the string "true", absent otherwise.
func (r *Repository) OnboardingComplete(ctx context.Context) (bool, error) {
	raw, err := r.store.Get(ctx, KeyOnboardingComplete)
	if errors.Is(err, kv.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return string(raw) == "true", nil
}

// SetOnboardingComplete marks onboarding as finished. There is no way to
// unset it short of Reset.
func (r *Repository) SetOnboardingComplete(ctx context.Context) error {
	return r.store.Set(ctx, KeyOnboardingComplete, []byte("true"))
}

// Reset wipes every key the repository owns. Best-effort, used by the
// dev-only reset endpoint.
func (r *Repository) Reset(ctx context.Context) error {
	if err := r.store.RemoveAll(ctx, AllKeys); err != nil {
		return fmt.Errorf("reset storage: %w", err)
	}
	slog.InfoContext(ctx, "Storage reset", "keys", len(AllKeys))
	return nil
}
