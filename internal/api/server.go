package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	interf "github.com/aksisonline/mockify/points/internal/interfaces"
	model "github.com/aksisonline/mockify/points/internal/models"
	service "github.com/aksisonline/mockify/points/internal/services"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type contextKey string

const (
	userKey contextKey = "user"
	roleKey contextKey = "role"
)

type Handler struct {
	router     *mux.Router
	tnx        *service.TransactionService
	purchases  *service.PurchaseService
	categories *service.CategoryService
	profiles   *service.ProfileService
	sessions   interf.SessionStorage
	logger     *zap.Logger
}

func NewHandler(logger *zap.Logger, tnx *service.TransactionService, purchases *service.PurchaseService,
	categories *service.CategoryService, profiles *service.ProfileService, sessions interf.SessionStorage) *Handler {
	router := mux.NewRouter()
	h := &Handler{router, tnx, purchases, categories, profiles, sessions, logger}

	router.Use(MiddlewareLog())

	auth := router.PathPrefix("/api").Subrouter()
	auth.Use(h.MiddlewareAuth)

	auth.HandleFunc("/points/transactions", h.CreateTransactionHandler).Methods(http.MethodPost)
	auth.HandleFunc("/points/transactions", h.GetTnxHandler).Methods(http.MethodGet)
	auth.HandleFunc("/points/transactions/{id}/status", h.UpdateMoneyStatusHandler).Methods(http.MethodPut)
	auth.HandleFunc("/points/balance", h.GetBalanceHandler).Methods(http.MethodGet)
	auth.HandleFunc("/points/categories", h.GetAllCategoriesHandler).Methods(http.MethodGet)
	auth.HandleFunc("/points/summary", h.GetSummaryHandler).Methods(http.MethodGet)

	auth.HandleFunc("/categories", h.CategoryCreateHandler).Methods(http.MethodPost)
	auth.HandleFunc("/categories/{id}", h.CategoryUpdateHandler).Methods(http.MethodPut)

	auth.HandleFunc("/rewards/{id}/purchase", h.PurchaseHandler).Methods(http.MethodPost)
	auth.HandleFunc("/tools/{id}/purchase", h.PurchaseHandler).Methods(http.MethodPost)
	auth.HandleFunc("/business-card/unlock", h.UnlockBusinessCardHandler).Methods(http.MethodPost)

	auth.HandleFunc("/profile", h.GetProfileHandler).Methods(http.MethodGet)
	auth.HandleFunc("/profile", h.UpdateProfileHandler).Methods(http.MethodPut)
	auth.HandleFunc("/profile/notification-settings", h.GetNotificationSettingsHandler).Methods(http.MethodGet)
	auth.HandleFunc("/profile/notification-settings", h.SaveNotificationSettingsHandler).Methods(http.MethodPut)
	auth.HandleFunc("/profile/avatar", h.UploadAvatarHandler).Methods(http.MethodPut)

	router.HandleFunc("/api/jobs/locations", h.LocationsHandler).Methods(http.MethodGet)

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) Log(msg string, service string, err error) {
	h.logger.Error(msg,
		zap.String("service", service),
		zap.Error(err),
	)
}

// Авторизация: Bearer-токен -> пользователь в контексте
func (h *Handler) MiddlewareAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if token == "" || token == r.Header.Get("Authorization") {
			http.Error(w, model.ErrUnauthenticated.Error(), http.StatusUnauthorized)
			return
		}
		user, role, err := h.sessions.ResolveSession(r.Context(), token)
		if err != nil {
			if !errors.Is(err, model.ErrUnauthenticated) {
				h.Log("session resolve", "MiddlewareAuth", err)
			}
			http.Error(w, model.ErrUnauthenticated.Error(), http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), userKey, user)
		ctx = context.WithValue(ctx, roleKey, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func requestUser(r *http.Request) string {
	user, _ := r.Context().Value(userKey).(string)
	return user
}

func requestRole(r *http.Request) string {
	role, _ := r.Context().Value(roleKey).(string)
	return role
}

// доменная ошибка -> HTTP статус
func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInsufficientPoints), errors.Is(err, model.ErrInsufficientQuantity):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrAlreadyPurchased), errors.Is(err, model.ErrDuplicateWindow), errors.Is(err, model.ErrInvalidStatus):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func readBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Body is empty", http.StatusBadRequest)
		return false
	}
	defer r.Body.Close()
	if err = json.Unmarshal(body, dst); err != nil {
		http.Error(w, "Body is not correct", http.StatusBadRequest)
		return false
	}
	return true
}
