package http

import (
	"encoding/json"
	"net/http"

	"bibliothek-backend/internal/domain"
	"bibliothek-backend/internal/service"
)

type MediumHandler struct {
	media service.MediumService
}

func NewMediumHandler(media service.MediumService) *MediumHandler {
	return &MediumHandler{media: media}
}

// List serves all media with freshly computed availability. Supports
// ?title= and ?available=true filters.
func (h *MediumHandler) List(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	availableOnly := r.URL.Query().Get("available") == "true"

	var (
		media []domain.Medium
		err   error
	)
	if title != "" || availableOnly {
		media, err = h.media.SearchMedia(r.Context(), title, availableOnly)
	} else {
		media, err = h.media.ListMedia(r.Context())
	}
	if err != nil {
		respondError(w, err)
		return
	}
	if media == nil {
		media = []domain.Medium{}
	}
	respondJSON(w, http.StatusOK, media)
}

func (h *MediumHandler) Get(w http.ResponseWriter, r *http.Request) {
	medium, err := h.media.GetMedium(r.Context(), pathID(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, medium)
}

func (h *MediumHandler) Create(w http.ResponseWriter, r *http.Request) {
	var medium domain.Medium
	if err := json.NewDecoder(r.Body).Decode(&medium); err != nil {
		respondError(w, &domain.ValidationError{Messages: []string{"invalid request body"}})
		return
	}
	created, err := h.media.AddMedium(r.Context(), &medium)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// Update applies a partial update; absent fields keep their values.
func (h *MediumHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch domain.MediumPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondError(w, &domain.ValidationError{Messages: []string{"invalid request body"}})
		return
	}
	updated, err := h.media.UpdateMedium(r.Context(), pathID(r, "id"), &patch)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (h *MediumHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.media.DeleteMedium(r.Context(), pathID(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
