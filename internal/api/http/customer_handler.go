package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"bibliothek-backend/internal/domain"
	"bibliothek-backend/internal/service"

	"github.com/gorilla/mux"
)

type CustomerHandler struct {
	customers  service.CustomerService
	borrowings service.BorrowingService
}

func NewCustomerHandler(customers service.CustomerService, borrowings service.BorrowingService) *CustomerHandler {
	return &CustomerHandler{customers: customers, borrowings: borrowings}
}

// List serves the full collection, or a filtered one when a family_name or
// street query parameter is present.
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		customers []domain.Customer
		err       error
	)
	switch {
	case r.URL.Query().Get("family_name") != "":
		customers, err = h.customers.SearchByFamilyName(r.Context(), r.URL.Query().Get("family_name"))
	case r.URL.Query().Get("street") != "":
		customers, err = h.customers.SearchByStreet(r.Context(), r.URL.Query().Get("street"))
	default:
		customers, err = h.customers.ListCustomers(r.Context())
	}
	if err != nil {
		respondError(w, err)
		return
	}
	if customers == nil {
		customers = []domain.Customer{}
	}
	respondJSON(w, http.StatusOK, customers)
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")
	customer, err := h.customers.GetCustomer(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var customer domain.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		respondError(w, &domain.ValidationError{Messages: []string{"invalid request body"}})
		return
	}
	created, err := h.customers.CreateCustomer(r.Context(), &customer)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var customer domain.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		respondError(w, &domain.ValidationError{Messages: []string{"invalid request body"}})
		return
	}
	customer.ID = pathID(r, "id")
	updated, err := h.customers.UpdateCustomer(r.Context(), &customer)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.customers.DeleteCustomer(r.Context(), pathID(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CustomerHandler) ListBorrowings(w http.ResponseWriter, r *http.Request) {
	borrowings, err := h.borrowings.ListByCustomer(r.Context(), pathID(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	if borrowings == nil {
		borrowings = []domain.Borrowing{}
	}
	respondJSON(w, http.StatusOK, borrowings)
}

// pathID reads a numeric path variable. Routes constrain the variable to
// digits, so parse failures cannot happen on registered paths.
func pathID(r *http.Request, name string) int32 {
	id, _ := strconv.ParseInt(mux.Vars(r)[name], 10, 32)
	return int32(id)
}
