package http

import (
	"net/http"

	"roomrent-backend/internal/utils"
)

func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	rentalID, err := optionalQueryID(r, "rentalId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	views, err := h.svc.Ledger.ListTransactions(r.Context(), rentalID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(views, MapTransactionViewToResponse))
}

func (h *Handler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := queryID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	view, err := h.svc.Ledger.GetTransaction(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MapTransactionViewToResponse(view))
}

// RecordPayment takes {rentalId, managerId, monthsCount} and answers with
// the recorded transaction.
func (h *Handler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var req AddTransactionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	rentalID, err := utils.ParseID(req.RentalID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	managerID, err := utils.ParseID(req.ManagerID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	view, err := h.svc.Ledger.RecordPayment(r.Context(), rentalID, managerID, req.MonthsCount)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MapTransactionViewToResponse(view))
}

func (h *Handler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := queryID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.svc.Ledger.DeleteTransaction(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
