package http

import (
	"net/http"

	"gastos/internal/core"
)

type createBudgetCategoryRequest struct {
	Name     string `json:"name"`
	Budgeted string `json:"budgeted"` // decimal string, same format as amounts
	Icon     string `json:"icon,omitempty"`
	UserID   string `json:"userId,omitempty"`
}

type budgetCategoryResponse struct {
	core.BudgetCategory
	ProgressPercent int  `json:"progressPercent"`
	OverBudget      bool `json:"overBudget"`
}

func (s *Server) handleBudgetCategories(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listBudgetCategories(w, r)
	case http.MethodPost:
		s.createBudgetCategory(w, r)
	default:
		methodNotAllowed(w, http.MethodGet, http.MethodPost)
	}
}

func (s *Server) listBudgetCategories(w http.ResponseWriter, r *http.Request) {
	userID, err := s.resolveUserID(r, "")
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	cats, err := s.budgets.Categories(r.Context(), userID)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	out := make([]budgetCategoryResponse, len(cats))
	for i, c := range cats {
		out[i] = budgetCategoryResponse{
			BudgetCategory:  c,
			ProgressPercent: c.ProgressPercent(),
			OverBudget:      c.OverBudget(),
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) createBudgetCategory(w http.ResponseWriter, r *http.Request) {
	var req createBudgetCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userID, err := s.resolveUserID(r, req.UserID)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	budgeted, err := core.ParseMoney(req.Budgeted)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid budgeted amount")
		return
	}

	c, err := s.budgets.AddCategory(r.Context(), userID, sanitizeInput(req.Name), budgeted, sanitizeInput(req.Icon))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (s *Server) handleBudgetOverview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	userID, err := s.resolveUserID(r, "")
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	ov, err := s.budgets.Overview(r.Context(), userID)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ov)
}
