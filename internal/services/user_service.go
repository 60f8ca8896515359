package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"gastos/internal/core"
	"gastos/internal/storage"
)

// ErrUserMismatch is returned when a mutation names an id other than the
// stored user's. The source app silently ignored this; here the caller
// gets to know.
var ErrUserMismatch = errors.New("user id does not match stored user")

// SettingsUpdate carries partial settings; nil fields stay untouched.
type SettingsUpdate struct {
	Notifications *bool
	Biometric     *bool
	DarkMode      *bool
	Currency      *string
	Language      *string
}

// ProfileUpdate carries partial profile fields; nil fields stay untouched.
type ProfileUpdate struct {
	Name  *string
	Email *string
}

// UserService manages the single local user record.
type UserService struct {
	repo            *storage.Repository
	defaultCurrency string
	defaultLanguage string

	// Serializes lazy bootstrap so two concurrent first reads never
	// create two different users.
	bootstrapMu sync.Mutex
}

func NewUserService(repo *storage.Repository, defaultCurrency, defaultLanguage string) *UserService {
	if defaultCurrency == "" {
		defaultCurrency = "USD"
	}
	if defaultLanguage == "" {
		defaultLanguage = "es"
	}
	return &UserService{
		repo:            repo,
		defaultCurrency: defaultCurrency,
		defaultLanguage: defaultLanguage,
	}
}

// CreateAnonymous creates the local identity with default settings,
// overwriting any existing user record.
func (s *UserService) CreateAnonymous(ctx context.Context) (core.User, error) {
	u := core.User{
		ID:          uuid.NewString(),
		Name:        "Usuario",
		IsAnonymous: true,
		CreatedAt:   time.Now().UTC(),
		Settings:    core.DefaultSettings(s.defaultCurrency, s.defaultLanguage),
	}
	if err := s.repo.SaveUser(ctx, u); err != nil {
		return core.User{}, fmt.Errorf("save user: %w", err)
	}
	slog.InfoContext(ctx, "Anonymous user created", "user_id", u.ID)
	return u, nil
}

// Current returns the stored user, bootstrapping an anonymous one on the
// first read after install. Two consecutive calls without a write in
// between always return the same id.
func (s *UserService) Current(ctx context.Context) (core.User, error) {
	u, err := s.repo.GetUser(ctx)
	if err != nil {
		return core.User{}, fmt.Errorf("get user: %w", err)
	}
	if u != nil {
		return *u, nil
	}

	s.bootstrapMu.Lock()
	defer s.bootstrapMu.Unlock()

	// Re-check: another caller may have bootstrapped while we waited.
	u, err = s.repo.GetUser(ctx)
	if err != nil {
		return core.User{}, fmt.Errorf("get user: %w", err)
	}
	if u != nil {
		return *u, nil
	}
	return s.CreateAnonymous(ctx)
}

// UpdateSettings merges the partial settings into the stored user. The id
// must match the stored user or ErrUserMismatch is returned.
func (s *UserService) UpdateSettings(ctx context.Context, userID string, update SettingsUpdate) error {
	u, err := s.repo.GetUser(ctx)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	if u == nil || u.ID != userID {
		return ErrUserMismatch
	}

	if update.Notifications != nil {
		u.Settings.Notifications = *update.Notifications
	}
	if update.Biometric != nil {
		u.Settings.Biometric = *update.Biometric
	}
	if update.DarkMode != nil {
		u.Settings.DarkMode = *update.DarkMode
	}
	if update.Currency != nil {
		u.Settings.Currency = *update.Currency
	}
	if update.Language != nil {
		u.Settings.Language = *update.Language
	}

	if err := s.repo.SaveUser(ctx, *u); err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	slog.InfoContext(ctx, "User settings updated", "user_id", userID)
	return nil
}

// UpdateProfile merges name/email changes into the stored user under the
// same id guard as UpdateSettings.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) error {
	u, err := s.repo.GetUser(ctx)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	if u == nil || u.ID != userID {
		return ErrUserMismatch
	}

	if update.Name != nil {
		if strings.TrimSpace(*update.Name) == "" {
			return core.ErrEmptyName
		}
		u.Name = *update.Name
	}
	if update.Email != nil {
		u.Email = *update.Email
	}

	if err := s.repo.SaveUser(ctx, *u); err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	slog.InfoContext(ctx, "User profile updated", "user_id", userID)
	return nil
}
