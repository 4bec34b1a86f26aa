package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// Покупка награды или инструмента за баллы
func (h *Handler) PurchaseHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		http.Error(w, "item id is not correct", http.StatusBadRequest)
		return
	}
	var req struct {
		Quantity int64 `json:"quantity"`
	}
	if r.ContentLength > 0 {
		if !readBody(w, r, &req) {
			return
		}
	}

	purchase, err := h.purchases.Purchase(r.Context(), requestUser(r), id, req.Quantity)
	if err != nil {
		if statusFor(err) == http.StatusInternalServerError {
			h.Log("purchase", "PurchaseHandler", err)
		}
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	writeJSON(w, http.StatusOK, purchase)
}

// Разблокировка визитки
func (h *Handler) UnlockBusinessCardHandler(w http.ResponseWriter, r *http.Request) {
	purchase, err := h.purchases.UnlockBusinessCard(r.Context(), requestUser(r))
	if err != nil {
		if statusFor(err) == http.StatusInternalServerError {
			h.Log("unlock", "UnlockBusinessCardHandler", err)
		}
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	writeJSON(w, http.StatusOK, purchase)
}
