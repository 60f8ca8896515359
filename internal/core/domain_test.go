package core

import (
	"testing"
	"time"
)

func TestMoneyValidate(t *testing.T) {
	if err := (Money{Cents: 1}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Money{Cents: 0}).Validate(); err == nil {
		t.Fatalf("expected error for zero")
	}
	if err := (Money{Cents: -50}).Validate(); err == nil {
		t.Fatalf("expected error for negative")
	}
}

func TestTransactionValidate(t *testing.T) {
	good := Transaction{
		ID:          "tx_1",
		Amount:      Money{Cents: 1250},
		Description: "taxi",
		Category:    "transport",
		Date:        time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Type:        Expense,
		UserID:      "u1",
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Transaction{
		func(x Transaction) Transaction { x.Amount = Money{}; return x }(good),
		func(x Transaction) Transaction { x.Description = "  "; return x }(good),
		func(x Transaction) Transaction { x.Category = ""; return x }(good),
		func(x Transaction) Transaction { x.Date = time.Time{}; return x }(good),
		func(x Transaction) Transaction { x.Type = "transfer"; return x }(good),
		func(x Transaction) Transaction { x.UserID = ""; return x }(good),
	}
	for i, tx := range bads {
		if err := tx.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestBudgetCategoryValidate(t *testing.T) {
	good := BudgetCategory{
		ID:       "budget_1",
		Name:     "Comida",
		Budgeted: Money{Cents: 50000},
		UserID:   "u1",
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []BudgetCategory{
		func(x BudgetCategory) BudgetCategory { x.Name = ""; return x }(good),
		func(x BudgetCategory) BudgetCategory { x.Budgeted = Money{}; return x }(good),
		func(x BudgetCategory) BudgetCategory { x.Spent = Money{Cents: -1}; return x }(good),
		func(x BudgetCategory) BudgetCategory { x.UserID = ""; return x }(good),
	}
	for i, c := range bads {
		if err := c.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestTransactionTypeValid(t *testing.T) {
	cases := []struct {
		tt TransactionType
		ok bool
	}{
		{Expense, true},
		{Income, true},
		{"", false},
		{"transfer", false},
	}
	for i, tc := range cases {
		if got := tc.tt.Valid(); got != tc.ok {
			t.Fatalf("case %d: %q Valid() = %v, want %v", i, tc.tt, got, tc.ok)
		}
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings("USD", "es")
	if !s.Notifications || s.Biometric || s.DarkMode {
		t.Fatalf("unexpected defaults: %+v", s)
	}
	if s.Currency != "USD" || s.Language != "es" {
		t.Fatalf("unexpected currency/language: %+v", s)
	}
}
