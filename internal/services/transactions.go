package points

import (
	"context"
	"errors"
	"fmt"
	"time"

	interf "github.com/aksisonline/mockify/points/internal/interfaces"
	model "github.com/aksisonline/mockify/points/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Виды транзакций
const (
	KindPoints = "points"
	KindMoney  = "money"
)

type TransactionRequest struct {
	Kind          string            `json:"kind"`
	User          string            `json:"user,omitempty"`
	Amount        int64             `json:"amount"`
	Direction     string            `json:"direction"`
	Reason        string            `json:"reason"`
	Category      string            `json:"category,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
	Currency      string            `json:"currency,omitempty"`
	PaymentMethod string            `json:"payment_method,omitempty"`
	InitialStatus string            `json:"initial_status,omitempty"`
}

type TransactionResult struct {
	Success     bool                    `json:"success"`
	Transaction *model.PointTransaction `json:"transaction,omitempty"`
	Money       *model.MoneyTransaction `json:"money_transaction,omitempty"`
	Error       string                  `json:"error,omitempty"`
	ErrorCode   string                  `json:"errorCode,omitempty"`
}

type TransactionService struct {
	logger     *zap.Logger
	ledger     interf.LedgerStorage
	categories interf.CategoryStorage
	cache      interf.CacheStorage
}

func NewTransactionService(logger *zap.Logger, ledger interf.LedgerStorage, categories interf.CategoryStorage, cache interf.CacheStorage) *TransactionService {
	return &TransactionService{logger, ledger, categories, cache}
}

func failed(code string, err error) TransactionResult {
	return TransactionResult{Success: false, Error: err.Error(), ErrorCode: code}
}

// Создание транзакции. Баллы проводятся сразу (проверка и запись баланса -
// одна БД-транзакция), деньги остаются в initiated до внешнего обновления статуса.
func (s *TransactionService) CreateTransaction(ctx context.Context, req TransactionRequest) TransactionResult {
	if req.User == "" {
		return failed(model.CodeUnauthenticated, model.ErrUnauthenticated)
	}
	if req.Amount <= 0 {
		return failed(model.CodeUnknown, fmt.Errorf("amount must be positive"))
	}
	if req.Direction != model.EARN && req.Direction != model.SPEND {
		return failed(model.CodeUnknown, fmt.Errorf("unknown direction: %s", req.Direction))
	}

	switch req.Kind {
	case KindMoney:
		return s.createMoney(ctx, req)
	case KindPoints, "":
		// категория есть только у баллов; промах резолва логируется, но не валит
		category := uuid.Nil
		if req.Category != "" {
			cat, err := s.categories.ResolveCategory(ctx, req.Category)
			if err != nil {
				s.logger.Warn("category resolve miss",
					zap.String("category", req.Category),
					zap.Error(err))
			} else {
				category = cat
			}
		}
		return s.createPoints(ctx, req, category)
	default:
		return failed(model.CodeUnknown, fmt.Errorf("unknown kind: %s", req.Kind))
	}
}

func (s *TransactionService) createPoints(ctx context.Context, req TransactionRequest, category uuid.UUID) TransactionResult {
	var tnx model.PointTransaction
	var err error
	switch req.Direction {
	case model.EARN:
		tnx, err = s.ledger.Earn(ctx, req.User, req.Amount, category, req.Reason, req.Metadata)
	case model.SPEND:
		tnx, err = s.ledger.Spend(ctx, req.User, req.Amount, category, req.Reason, req.Metadata)
	}
	if err != nil {
		if errors.Is(err, model.ErrInsufficientPoints) {
			return failed(model.CodeInsufficientPoints, err)
		}
		s.logger.Error("points transaction failed",
			zap.String("user", req.User),
			zap.String("direction", req.Direction),
			zap.Error(err))
		return failed(model.CodePointsUpdateFailed, err)
	}

	if err = s.InvalidateBalance(ctx, req.User); err != nil {
		s.logger.Error("cache invalidate failed", zap.Error(err))
	}
	return TransactionResult{Success: true, Transaction: &tnx}
}

func (s *TransactionService) createMoney(ctx context.Context, req TransactionRequest) TransactionResult {
	status := req.InitialStatus
	if status == "" {
		status = model.MoneyInitiated
	}
	tnx := model.MoneyTransaction{
		User:          req.User,
		Amount:        req.Amount,
		Currency:      req.Currency,
		PaymentMethod: req.PaymentMethod,
		Direction:     req.Direction,
		Reason:        req.Reason,
		Status:        status,
		StatusHistory: []model.StatusChange{{Status: status, Timestamp: time.Now()}},
	}
	created, err := s.ledger.MoneyCreate(ctx, tnx)
	if err != nil {
		s.logger.Error("money transaction failed",
			zap.String("user", req.User),
			zap.Error(err))
		return failed(model.CodeUnknown, err)
	}
	return TransactionResult{Success: true, Money: &created}
}

// Обновление статуса денежной транзакции внешним платежным потоком.
// Переходы только вперед, история дополняется.
func (s *TransactionService) UpdateMoneyStatus(ctx context.Context, id uuid.UUID, status string, note string) TransactionResult {
	tnx, err := s.ledger.MoneyUpdateStatus(ctx, id, status, note)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNotFound):
			return failed(model.CodeTransactionNotFound, err)
		case errors.Is(err, model.ErrInvalidStatus):
			return failed(model.CodeStatusUpdateFailed, err)
		}
		// ошибка записи - не конфликт переходов, наружу уходит как 500
		s.logger.Error("money status update failed",
			zap.String("id", id.String()),
			zap.Error(err))
		return failed(model.CodeUnknown, err)
	}
	return TransactionResult{Success: true, Money: &tnx}
}

// Баланс: сначала кэш, промах уходит в БД
func (s *TransactionService) GetBalance(ctx context.Context, user string) (balance model.Balance, err error) {
	if s.cache != nil {
		balance, err = s.cache.GetBalance(ctx, user)
		if err == nil {
			return balance, nil
		}
	}
	balance, err = s.ledger.GetBalance(ctx, user)
	if err != nil {
		return model.Balance{}, err
	}
	if s.cache != nil {
		_ = s.cache.SetBalance(ctx, user, balance)
	}
	return balance, nil
}

// инвалидировать кэш баланса
func (s *TransactionService) InvalidateBalance(ctx context.Context, user string) error {
	if s.cache != nil {
		return s.cache.InvalidateBalance(ctx, user)
	}
	return nil
}

// транзакции за период
func (s *TransactionService) GetTnx(ctx context.Context, user string, from time.Time, to time.Time) ([]model.PointTransaction, error) {
	return s.ledger.GetTnx(ctx, user, from, to)
}

func (s *TransactionService) Log(err error) {
	s.logger.Error(err.Error())
}
