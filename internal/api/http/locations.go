package http

import (
	"net/http"

	"roomrent-backend/internal/domain"
	"roomrent-backend/internal/utils"
)

func (h *Handler) ListLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.svc.Locations.ListLocations(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(locations, MapLocationToResponse))
}

func (h *Handler) GetLocation(w http.ResponseWriter, r *http.Request) {
	id, err := queryID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	l, err := h.svc.Locations.GetLocation(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MapLocationToResponse(l))
}

func (h *Handler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var req LocationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	created, err := h.svc.Locations.CreateLocation(r.Context(), &domain.Location{
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MapLocationToResponse(created))
}

func (h *Handler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	var req LocationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	id, err := utils.ParseID(req.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	updated, err := h.svc.Locations.UpdateLocation(r.Context(), &domain.Location{
		ID:          id,
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MapLocationToResponse(updated))
}

func (h *Handler) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	id, err := queryID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.svc.Locations.DeleteLocation(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
