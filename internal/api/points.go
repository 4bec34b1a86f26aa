package api

import (
	"net/http"
	"time"

	model "github.com/aksisonline/mockify/points/internal/models"
	service "github.com/aksisonline/mockify/points/internal/services"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// Создание транзакции. Пользователь берется из сессии; начисления и поле user
// в теле - только для админской сессии, иначе любой мог бы чеканить баллы.
func (h *Handler) CreateTransactionHandler(w http.ResponseWriter, r *http.Request) {
	req := service.TransactionRequest{}
	if !readBody(w, r, &req) {
		return
	}
	if requestRole(r) != model.RoleAdmin {
		if req.User != "" && req.User != requestUser(r) {
			http.Error(w, "user override is not allowed", http.StatusForbidden)
			return
		}
		if req.Direction == model.EARN {
			http.Error(w, "earn direction is not allowed", http.StatusForbidden)
			return
		}
	}
	if req.User == "" {
		req.User = requestUser(r)
	}

	result := h.tnx.CreateTransaction(r.Context(), req)
	if !result.Success {
		status := http.StatusBadRequest
		switch result.ErrorCode {
		case model.CodeUnauthenticated:
			status = http.StatusUnauthorized
		case model.CodePointsUpdateFailed, model.CodeUnknown:
			status = http.StatusInternalServerError
		}
		writeJSON(w, status, result)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Обновление статуса денежной транзакции внешним платежным потоком
func (h *Handler) UpdateMoneyStatusHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		http.Error(w, "transaction id is not correct", http.StatusBadRequest)
		return
	}
	var req struct {
		Status string `json:"status"`
		Note   string `json:"note,omitempty"`
	}
	if !readBody(w, r, &req) {
		return
	}

	result := h.tnx.UpdateMoneyStatus(r.Context(), id, req.Status, req.Note)
	if !result.Success {
		status := http.StatusInternalServerError
		switch result.ErrorCode {
		case model.CodeTransactionNotFound:
			status = http.StatusNotFound
		case model.CodeStatusUpdateFailed:
			status = http.StatusConflict
		}
		writeJSON(w, status, result)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Баланс текущего пользователя
func (h *Handler) GetBalanceHandler(w http.ResponseWriter, r *http.Request) {
	balance, err := h.tnx.GetBalance(r.Context(), requestUser(r))
	if err != nil {
		if statusFor(err) != http.StatusNotFound {
			h.Log("balance get", "GetBalanceHandler", err)
		}
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	writeJSON(w, http.StatusOK, balance)
}

// Транзакции за период, даты в формате YYYY-MM-DD
func (h *Handler) GetTnxHandler(w http.ResponseWriter, r *http.Request) {
	from, err := time.Parse("2006-01-02 15:04:05", r.URL.Query().Get("from")+" 00:00:00")
	if err != nil {
		http.Error(w, "from date is not correct", http.StatusBadRequest)
		return
	}
	to, err := time.Parse("2006-01-02 15:04:05", r.URL.Query().Get("to")+" 23:59:59")
	if err != nil {
		http.Error(w, "to date is not correct", http.StatusBadRequest)
		return
	}
	tnxs, err := h.tnx.GetTnx(r.Context(), requestUser(r), from, to)
	if err != nil {
		h.Log("tnx get", "GetTnxHandler", err)
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	writeJSON(w, http.StatusOK, tnxs)
}

// Все активные категории с баллами пользователя, включая нулевые
func (h *Handler) GetAllCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.categories.GetAllCategoriesWithUserPoints(r.Context(), requestUser(r)))
}

// Только категории с ненулевой активностью
func (h *Handler) GetSummaryHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.categories.GetUserPointsByCategory(r.Context(), requestUser(r)))
}

// Создание категории
func (h *Handler) CategoryCreateHandler(w http.ResponseWriter, r *http.Request) {
	var c model.Category
	if !readBody(w, r, &c) {
		return
	}
	id, err := h.categories.Create(r.Context(), c)
	if err != nil {
		h.Log("category create", "CategoryCreateHandler", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	c.UUID = id
	writeJSON(w, http.StatusOK, c)
}

// Обновление/деактивация категории
func (h *Handler) CategoryUpdateHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		http.Error(w, "category id is not correct", http.StatusBadRequest)
		return
	}
	var c model.Category
	if !readBody(w, r, &c) {
		return
	}
	c.UUID = id
	if err = h.categories.Update(r.Context(), c); err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	writeJSON(w, http.StatusOK, c)
}
