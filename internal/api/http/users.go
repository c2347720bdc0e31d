package http

import (
	"net/http"

	"roomrent-backend/internal/domain"
	"roomrent-backend/internal/utils"
)

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.Users.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(users, MapUserToResponse))
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := queryID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	u, err := h.svc.Users.GetUser(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MapUserToResponse(u))
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	u, err := decodeUser(r, false)
	if err != nil {
		writeError(w, r, err)
		return
	}
	created, err := h.svc.Users.CreateUser(r.Context(), u)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MapUserToResponse(created))
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	u, err := decodeUser(r, true)
	if err != nil {
		writeError(w, r, err)
		return
	}
	updated, err := h.svc.Users.UpdateUser(r.Context(), u)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MapUserToResponse(updated))
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := queryID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.svc.Users.DeleteUser(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func decodeUser(r *http.Request, withID bool) (*domain.User, error) {
	var req PersonRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}
	u := &domain.User{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Description: req.Description,
	}
	var err error
	if u.LocationID, err = optionalID(req.LocationID); err != nil {
		return nil, err
	}
	if withID {
		if u.ID, err = utils.ParseID(req.ID); err != nil {
			return nil, err
		}
	}
	return u, nil
}
