package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"bibliothek-backend/internal/domain"
	"bibliothek-backend/internal/service"
)

type AddressHandler struct {
	addresses service.AddressService
}

func NewAddressHandler(addresses service.AddressService) *AddressHandler {
	return &AddressHandler{addresses: addresses}
}

func (h *AddressHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		addresses []domain.Address
		err       error
	)
	switch {
	case r.URL.Query().Get("street") != "":
		addresses, err = h.addresses.SearchByStreet(r.Context(), r.URL.Query().Get("street"))
	case r.URL.Query().Get("postal_code") != "":
		var code int64
		code, err = strconv.ParseInt(r.URL.Query().Get("postal_code"), 10, 32)
		if err != nil {
			respondError(w, &domain.ValidationError{Messages: []string{"postal_code must be numeric"}})
			return
		}
		addresses, err = h.addresses.SearchByPostalCode(r.Context(), int32(code))
	default:
		addresses, err = h.addresses.ListAddresses(r.Context())
	}
	if err != nil {
		respondError(w, err)
		return
	}
	if addresses == nil {
		addresses = []domain.Address{}
	}
	respondJSON(w, http.StatusOK, addresses)
}

func (h *AddressHandler) Get(w http.ResponseWriter, r *http.Request) {
	address, err := h.addresses.GetAddress(r.Context(), pathID(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, address)
}

func (h *AddressHandler) Create(w http.ResponseWriter, r *http.Request) {
	var address domain.Address
	if err := json.NewDecoder(r.Body).Decode(&address); err != nil {
		respondError(w, &domain.ValidationError{Messages: []string{"invalid request body"}})
		return
	}
	created, err := h.addresses.CreateAddress(r.Context(), &address)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h *AddressHandler) Update(w http.ResponseWriter, r *http.Request) {
	var address domain.Address
	if err := json.NewDecoder(r.Body).Decode(&address); err != nil {
		respondError(w, &domain.ValidationError{Messages: []string{"invalid request body"}})
		return
	}
	address.ID = pathID(r, "id")
	updated, err := h.addresses.UpdateAddress(r.Context(), &address)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (h *AddressHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.addresses.DeleteAddress(r.Context(), pathID(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
