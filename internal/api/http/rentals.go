package http

import (
	"net/http"

	"roomrent-backend/internal/domain"
	"roomrent-backend/internal/utils"
)

func (h *Handler) ListRentals(w http.ResponseWriter, r *http.Request) {
	userID, err := optionalQueryID(r, "userId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	rentals, err := h.svc.Rentals.ListRentals(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(rentals, MapRentalToResponse))
}

func (h *Handler) GetRental(w http.ResponseWriter, r *http.Request) {
	id, err := queryID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	rental, err := h.svc.Rentals.GetRental(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MapRentalToResponse(rental))
}

func (h *Handler) CreateRental(w http.ResponseWriter, r *http.Request) {
	var req AddRentalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	roomID, err := utils.ParseID(req.RoomID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	userID, err := utils.ParseID(req.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	start, err := utils.ParseDate(req.DateStart)
	if err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.svc.Rentals.CreateRental(r.Context(), &domain.RoomRental{
		RoomID:    roomID,
		UserID:    userID,
		StartDate: start,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MapRentalToResponse(created))
}
