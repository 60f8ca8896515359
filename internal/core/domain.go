package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Expense TransactionType = "expense"
	Income  TransactionType = "income"
)

type (
	TransactionType string

	Money struct {
		Cents int64 `json:"cents"`
	}

	// UserSettings are per-user preferences rendered by the client.
	UserSettings struct {
		Notifications bool   `json:"notifications"`
		Biometric     bool   `json:"biometric"`
		DarkMode      bool   `json:"darkMode"`
		Currency      string `json:"currency"`
		Language      string `json:"language"`
	}

	// User is the single locally created identity. There is no multi-user
	// table: the repository stores exactly one of these.
	User struct {
		ID          string       `json:"id"`
		Name        string       `json:"name"`
		Email       string       `json:"email,omitempty"`
		IsAnonymous bool         `json:"isAnonymous"`
		CreatedAt   time.Time    `json:"createdAt"`
		Settings    UserSettings `json:"settings"`
	}

	// Transaction is a single expense or income entry. Amount is always a
	// magnitude; direction comes from Type only.
	Transaction struct {
		ID           string          `json:"id"`
		Amount       Money           `json:"amount"`
		Description  string          `json:"description"`
		Category     string          `json:"category"` // catalog category id
		Date         time.Time       `json:"date"`
		Type         TransactionType `json:"type"`
		UserID       string          `json:"userId"`
		ReceiptImage string          `json:"receiptImage,omitempty"`
	}

	// BudgetCategory tracks a spending envelope. Spent is externally
	// supplied unless the reconciliation worker is running.
	BudgetCategory struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Budgeted Money  `json:"budgeted"`
		Spent    Money  `json:"spent"`
		Icon     string `json:"icon"`
		UserID   string `json:"userId"`
	}
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrEmptyDescription = errors.New("empty description")
	ErrEmptyCategory    = errors.New("empty category")
	ErrEmptyName        = errors.New("empty name")
	ErrEmptyUserID      = errors.New("empty user id")
	ErrUnknownType      = errors.New("unknown transaction type")
	ErrZeroDate         = errors.New("date cannot be zero")
)

func (t TransactionType) Valid() bool {
	switch t {
	case Expense, Income:
		return true
	default:
		return false
	}
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// Abs returns the magnitude. Stored amounts are already non-negative;
// this keeps aggregation safe if a negative value ever slips in.
func (m Money) Abs() Money {
	if m.Cents < 0 {
		return Money{Cents: -m.Cents}
	}
	return m
}

func (t Transaction) Validate() error {
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	if len(strings.TrimSpace(t.Description)) == 0 {
		return ErrEmptyDescription
	}
	if len(t.Description) > 200 {
		return errors.New("description too long (max 200 characters)")
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	if t.Date.IsZero() {
		return ErrZeroDate
	}
	if !t.Type.Valid() {
		return ErrUnknownType
	}
	if strings.TrimSpace(t.UserID) == "" {
		return ErrEmptyUserID
	}
	return nil
}

func (c BudgetCategory) Validate() error {
	if len(strings.TrimSpace(c.Name)) == 0 {
		return ErrEmptyName
	}
	if err := c.Budgeted.Validate(); err != nil {
		return err
	}
	if c.Spent.Cents < 0 {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(c.UserID) == "" {
		return ErrEmptyUserID
	}
	return nil
}

// DefaultSettings are attached to a freshly bootstrapped anonymous user.
func DefaultSettings(currency, language string) UserSettings {
	return UserSettings{
		Notifications: true,
		Biometric:     false,
		DarkMode:      false,
		Currency:      currency,
		Language:      language,
	}
}

func (u User) Validate() error {
	if strings.TrimSpace(u.ID) == "" {
		return ErrEmptyUserID
	}
	if len(strings.TrimSpace(u.Name)) == 0 {
		return ErrEmptyName
	}
	if u.CreatedAt.IsZero() {
		return ErrZeroDate
	}
	return nil
}
