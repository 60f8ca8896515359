package services

import (
	"context"
	"fmt"
	"log/slog"

	"gastos/internal/core"
	"gastos/internal/storage"
)

// BudgetService manages budget categories and their aggregates.
type BudgetService struct {
	repo *storage.Repository
}

func NewBudgetService(repo *storage.Repository) *BudgetService {
	return &BudgetService{repo: repo}
}

// Categories returns the user's budget categories.
func (s *BudgetService) Categories(ctx context.Context, userID string) ([]core.BudgetCategory, error) {
	cats, err := s.repo.ListBudgetCategories(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list budget categories: %w", err)
	}
	return cats, nil
}

// AddCategory creates a new envelope with spent starting at zero.
func (s *BudgetService) AddCategory(ctx context.Context, userID, name string, budgeted core.Money, icon string) (core.BudgetCategory, error) {
	if icon == "" {
		icon = "receipt"
	}
	c := core.BudgetCategory{
		ID:       newRecordID("budget"),
		Name:     name,
		Budgeted: budgeted,
		Spent:    core.Money{},
		Icon:     icon,
		UserID:   userID,
	}
	if err := c.Validate(); err != nil {
		return core.BudgetCategory{}, err
	}
	if err := s.repo.AppendBudgetCategory(ctx, c); err != nil {
		return core.BudgetCategory{}, fmt.Errorf("save budget category: %w", err)
	}

	slog.InfoContext(ctx, "Budget category created",
		"budget_id", c.ID,
		"user_id", c.UserID,
		"category", c.Name,
		"amount_cents", c.Budgeted.Cents)
	return c, nil
}

// Overview aggregates the user's categories into totals.
func (s *BudgetService) Overview(ctx context.Context, userID string) (core.BudgetOverview, error) {
	cats, err := s.repo.ListBudgetCategories(ctx, userID)
	if err != nil {
		return core.BudgetOverview{}, fmt.Errorf("list budget categories: %w", err)
	}
	return core.OverviewBudgets(cats), nil
}
