package http

import (
	"net/http"

	"gastos/internal/categories"
	"gastos/internal/services"
)

type updateSettingsRequest struct {
	UserID        string  `json:"userId"`
	Notifications *bool   `json:"notifications,omitempty"`
	Biometric     *bool   `json:"biometric,omitempty"`
	DarkMode      *bool   `json:"darkMode,omitempty"`
	Currency      *string `json:"currency,omitempty"`
	Language      *string `json:"language,omitempty"`
}

type updateProfileRequest struct {
	UserID string  `json:"userId"`
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
}

func (s *Server) handleUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	// First read after install bootstraps the anonymous user.
	u, err := s.users.Current(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (s *Server) handleUserSettings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPatch {
		methodNotAllowed(w, http.MethodPatch)
		return
	}
	var req updateSettingsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == "" {
		writeError(w, http.StatusUnprocessableEntity, "userId is required")
		return
	}

	err := s.users.UpdateSettings(r.Context(), req.UserID, services.SettingsUpdate{
		Notifications: req.Notifications,
		Biometric:     req.Biometric,
		DarkMode:      req.DarkMode,
		Currency:      req.Currency,
		Language:      req.Language,
	})
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleUserProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPatch {
		methodNotAllowed(w, http.MethodPatch)
		return
	}
	var req updateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == "" {
		writeError(w, http.StatusUnprocessableEntity, "userId is required")
		return
	}

	err := s.users.UpdateProfile(r.Context(), req.UserID, services.ProfileUpdate{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	switch r.URL.Query().Get("type") {
	case "expense":
		writeJSON(w, http.StatusOK, categories.Expenses())
	case "income":
		writeJSON(w, http.StatusOK, categories.Incomes())
	case "":
		writeJSON(w, http.StatusOK, categories.All())
	default:
		writeError(w, http.StatusUnprocessableEntity, "type must be expense or income")
	}
}

func (s *Server) handleOnboarding(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		done, err := s.repo.OnboardingComplete(r.Context())
		if err != nil {
			writeDomainError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"complete": done})
	case http.MethodPost:
		if err := s.repo.SetOnboardingComplete(r.Context()); err != nil {
			writeDomainError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		methodNotAllowed(w, http.MethodGet, http.MethodPost)
	}
}

// handleReset wipes local storage. Registered only when dev endpoints
// are enabled.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}
	if err := s.repo.Reset(r.Context()); err != nil {
		writeDomainError(w, r, err)
		return
	}
	s.summaryCache.Clear()
	w.WriteHeader(http.StatusNoContent)
}
