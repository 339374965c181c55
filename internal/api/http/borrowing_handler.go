package http

import (
	"encoding/json"
	"net/http"

	"bibliothek-backend/internal/domain"
	"bibliothek-backend/internal/service"
)

type BorrowingHandler struct {
	borrowings service.BorrowingService
}

func NewBorrowingHandler(borrowings service.BorrowingService) *BorrowingHandler {
	return &BorrowingHandler{borrowings: borrowings}
}

func (h *BorrowingHandler) List(w http.ResponseWriter, r *http.Request) {
	borrowings, err := h.borrowings.ListBorrowings(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if borrowings == nil {
		borrowings = []domain.Borrowing{}
	}
	respondJSON(w, http.StatusOK, borrowings)
}

// Create checks out a medium for a customer. Requests for a medium with an
// active borrowing are rejected with 409.
func (h *BorrowingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var borrowing domain.Borrowing
	if err := json.NewDecoder(r.Body).Decode(&borrowing); err != nil {
		respondError(w, &domain.ValidationError{Messages: []string{"invalid request body"}})
		return
	}
	created, err := h.borrowings.Checkout(r.Context(), borrowing.CustomerID, borrowing.MediumID, borrowing.LendDate)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h *BorrowingHandler) GetByMedium(w http.ResponseWriter, r *http.Request) {
	borrowing, err := h.borrowings.GetByMedium(r.Context(), pathID(r, "mediumId"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, borrowing)
}

// Extend increases the loan duration by 14 days; at the 28-day cap it
// answers 409.
func (h *BorrowingHandler) Extend(w http.ResponseWriter, r *http.Request) {
	borrowing, err := h.borrowings.Extend(r.Context(), pathID(r, "mediumId"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, borrowing)
}

// Return deletes the active borrowing. A second return of the same medium
// answers 404, so the operation is idempotent from the caller's view.
func (h *BorrowingHandler) Return(w http.ResponseWriter, r *http.Request) {
	if err := h.borrowings.Return(r.Context(), pathID(r, "mediumId")); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
