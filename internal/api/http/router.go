package http

import (
	"context"
	"net/http"

	"roomrent-backend/internal/service"

	"github.com/gorilla/mux"
)

// Services is everything the HTTP API calls into.
type Services struct {
	Ledger    service.LedgerService
	Managers  service.ManagerService
	Locations service.LocationService
	Rooms     service.RoomService
	Users     service.UserService
	Rentals   service.RentalService
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	svc Services
	db  Pinger
}

func NewHandler(svc Services, db Pinger) *Handler {
	return &Handler{svc: svc, db: db}
}

// NewRouter builds the API router. One record lives at /api/<entity>?id=,
// lists at /api/<entities>. PUT creates, POST edits.
func NewRouter(svc Services, db Pinger) *mux.Router {
	h := NewHandler(svc, db)
	router := mux.NewRouter()
	router.Use(requestIDMiddleware, accessLogMiddleware)
	h.RegisterRoutes(router)
	return router
}

func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/transactions", h.ListTransactions).Methods(http.MethodGet)
	api.HandleFunc("/transaction", h.GetTransaction).Methods(http.MethodGet)
	api.HandleFunc("/transaction", h.RecordPayment).Methods(http.MethodPut)
	api.HandleFunc("/transaction", h.DeleteTransaction).Methods(http.MethodDelete)

	api.HandleFunc("/managers", h.ListManagers).Methods(http.MethodGet)
	api.HandleFunc("/manager", h.GetManager).Methods(http.MethodGet)
	api.HandleFunc("/manager", h.CreateManager).Methods(http.MethodPut)
	api.HandleFunc("/manager", h.UpdateManager).Methods(http.MethodPost)
	api.HandleFunc("/manager", h.DeleteManager).Methods(http.MethodDelete)

	api.HandleFunc("/locations", h.ListLocations).Methods(http.MethodGet)
	api.HandleFunc("/location", h.GetLocation).Methods(http.MethodGet)
	api.HandleFunc("/location", h.CreateLocation).Methods(http.MethodPut)
	api.HandleFunc("/location", h.UpdateLocation).Methods(http.MethodPost)
	api.HandleFunc("/location", h.DeleteLocation).Methods(http.MethodDelete)

	api.HandleFunc("/rooms", h.ListRooms).Methods(http.MethodGet)
	api.HandleFunc("/room", h.GetRoom).Methods(http.MethodGet)
	api.HandleFunc("/room", h.CreateRoom).Methods(http.MethodPut)
	api.HandleFunc("/room", h.UpdateRoom).Methods(http.MethodPost)
	api.HandleFunc("/room", h.DeleteRoom).Methods(http.MethodDelete)

	api.HandleFunc("/users", h.ListUsers).Methods(http.MethodGet)
	api.HandleFunc("/user", h.GetUser).Methods(http.MethodGet)
	api.HandleFunc("/user", h.CreateUser).Methods(http.MethodPut)
	api.HandleFunc("/user", h.UpdateUser).Methods(http.MethodPost)
	api.HandleFunc("/user", h.DeleteUser).Methods(http.MethodDelete)

	// Rentals are opened here but never edited or removed; only the
	// ledger moves their paid-until date.
	api.HandleFunc("/rentals", h.ListRentals).Methods(http.MethodGet)
	api.HandleFunc("/rental", h.GetRental).Methods(http.MethodGet)
	api.HandleFunc("/rental", h.CreateRental).Methods(http.MethodPut)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		if err := h.db.Ping(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
