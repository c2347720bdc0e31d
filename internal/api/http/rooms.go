package http

import (
	"net/http"

	"roomrent-backend/internal/domain"
	"roomrent-backend/internal/utils"
)

func (h *Handler) ListRooms(w http.ResponseWriter, r *http.Request) {
	locationID, err := optionalQueryID(r, "locationId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	rooms, err := h.svc.Rooms.ListRooms(r.Context(), locationID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(rooms, MapRoomToResponse))
}

func (h *Handler) GetRoom(w http.ResponseWriter, r *http.Request) {
	id, err := queryID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	room, err := h.svc.Rooms.GetRoom(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MapRoomToResponse(room))
}

func (h *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	room, err := decodeRoom(r, false)
	if err != nil {
		writeError(w, r, err)
		return
	}
	created, err := h.svc.Rooms.CreateRoom(r.Context(), room)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MapRoomToResponse(created))
}

func (h *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	room, err := decodeRoom(r, true)
	if err != nil {
		writeError(w, r, err)
		return
	}
	updated, err := h.svc.Rooms.UpdateRoom(r.Context(), room)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MapRoomToResponse(updated))
}

func (h *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	id, err := queryID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.svc.Rooms.DeleteRoom(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func decodeRoom(r *http.Request, withID bool) (*domain.Room, error) {
	var req RoomRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}
	locationID, err := utils.ParseID(req.LocationID)
	if err != nil {
		return nil, err
	}
	room := &domain.Room{
		LocationID:  locationID,
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		PlacesCount: req.PlacesCount,
		WindowCount: req.WindowCount,
		HasBoard:    req.HasBoard,
		HasBalcony:  req.HasBalcony,
		PlacePrice:  req.PlacePrice,
		Area:        req.Area,
	}
	if withID {
		if room.ID, err = utils.ParseID(req.ID); err != nil {
			return nil, err
		}
	}
	return room, nil
}
