package http

import (
	"net/http"

	"roomrent-backend/internal/domain"
	"roomrent-backend/internal/utils"
)

func (h *Handler) ListManagers(w http.ResponseWriter, r *http.Request) {
	managers, err := h.svc.Managers.ListManagers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(managers, MapManagerToResponse))
}

func (h *Handler) GetManager(w http.ResponseWriter, r *http.Request) {
	id, err := queryID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	m, err := h.svc.Managers.GetManager(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MapManagerToResponse(m))
}

func (h *Handler) CreateManager(w http.ResponseWriter, r *http.Request) {
	m, err := decodeManager(r, false)
	if err != nil {
		writeError(w, r, err)
		return
	}
	created, err := h.svc.Managers.CreateManager(r.Context(), m)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MapManagerToResponse(created))
}

func (h *Handler) UpdateManager(w http.ResponseWriter, r *http.Request) {
	m, err := decodeManager(r, true)
	if err != nil {
		writeError(w, r, err)
		return
	}
	updated, err := h.svc.Managers.UpdateManager(r.Context(), m)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MapManagerToResponse(updated))
}

func (h *Handler) DeleteManager(w http.ResponseWriter, r *http.Request) {
	id, err := queryID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.svc.Managers.DeleteManager(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func decodeManager(r *http.Request, withID bool) (*domain.Manager, error) {
	var req PersonRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}
	m := &domain.Manager{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Description: req.Description,
	}
	var err error
	if m.LocationID, err = optionalID(req.LocationID); err != nil {
		return nil, err
	}
	if withID {
		if m.ID, err = utils.ParseID(req.ID); err != nil {
			return nil, err
		}
	}
	return m, nil
}
