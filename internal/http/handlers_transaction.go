package http

import (
	"log/slog"
	"net/http"
	"time"

	"gastos/internal/core"
	"gastos/internal/services"
)

type createTransactionRequest struct {
	// Amount is a decimal string ("12.50" or "12,50"); the magnitude is
	// always positive, direction comes from Type.
	Amount       string `json:"amount"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Date         string `json:"date,omitempty"` // RFC 3339; defaults to now
	Type         string `json:"type"`
	UserID       string `json:"userId,omitempty"`
	ReceiptImage string `json:"receiptImage,omitempty"`
}

// resolveUserID picks the explicit userId (query or body) or falls back
// to the current local user, bootstrapping it if needed.
func (s *Server) resolveUserID(r *http.Request, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if q := r.URL.Query().Get("userId"); q != "" {
		return q, nil
	}
	u, err := s.users.Current(r.Context())
	if err != nil {
		return "", err
	}
	return u.ID, nil
}

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listTransactions(w, r)
	case http.MethodPost:
		s.createTransaction(w, r)
	default:
		methodNotAllowed(w, http.MethodGet, http.MethodPost)
	}
}

func (s *Server) listTransactions(w http.ResponseWriter, r *http.Request) {
	userID, err := s.resolveUserID(r, "")
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	txs, err := s.transactions.ListForUser(r.Context(), userID)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, txs)
}

func (s *Server) createTransaction(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userID, err := s.resolveUserID(r, req.UserID)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	amount, err := core.ParseMoney(req.Amount)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid amount")
		return
	}

	var date time.Time
	if req.Date != "" {
		date, err = time.Parse(time.RFC3339, req.Date)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, "invalid date, want RFC 3339")
			return
		}
	}

	tx, err := s.transactions.Create(r.Context(), services.TransactionInput{
		Amount:       amount,
		Description:  sanitizeInput(req.Description),
		Category:     sanitizeInput(req.Category),
		Date:         date,
		Type:         core.TransactionType(req.Type),
		UserID:       userID,
		ReceiptImage: req.ReceiptImage,
	})
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	// The stored list changed; drop this user's cached summary.
	s.summaryCache.Delete(userID)

	writeJSON(w, http.StatusCreated, tx)
}

func (s *Server) handleTransactionSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	userID, err := s.resolveUserID(r, "")
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	if summary, found := s.summaryCache.Get(userID); found {
		slog.DebugContext(r.Context(), "Summary cache hit", "user_id", userID)
		writeJSON(w, http.StatusOK, summary)
		return
	}

	summary, err := s.transactions.SummaryForUser(r.Context(), userID)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	s.summaryCache.Set(userID, summary)
	writeJSON(w, http.StatusOK, summary)
}
