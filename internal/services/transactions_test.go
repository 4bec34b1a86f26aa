package points

import (
	"context"
	"fmt"
	"testing"
	"time"

	model "github.com/aksisonline/mockify/points/internal/models"
	uuid "github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// Сквозной сценарий: списание, недостаточно баллов, начисление.
// Баланс ведется в тесте, хранилище эмулируется через DoAndReturn.
func TestPointsFlow(t *testing.T) {
	cont := gomock.NewController(t)
	defer cont.Finish()

	bal := model.Balance{User: "u1", TotalPoints: 100, TotalEarned: 100, TotalSpent: 0}

	ledger := NewMockLedgerStorage(cont)
	categories := NewMockCategoryStorage(cont)

	ledger.EXPECT().
		Spend(gomock.Any(), "u1", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, user string, amount int64, category uuid.UUID, reason string, meta map[string]string) (model.PointTransaction, error) {
			if amount > bal.TotalPoints {
				return model.PointTransaction{}, model.ErrInsufficientPoints
			}
			bal.TotalSpent += amount
			bal.TotalPoints = bal.TotalEarned - bal.TotalSpent
			return model.PointTransaction{
				UUID:      uuid.New(),
				User:      user,
				Amount:    amount,
				Direction: model.SPEND,
				Category:  category,
				Reason:    reason,
				Status:    model.StatusCompleted,
			}, nil
		}).
		AnyTimes()

	ledger.EXPECT().
		Earn(gomock.Any(), "u1", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, user string, amount int64, category uuid.UUID, reason string, meta map[string]string) (model.PointTransaction, error) {
			bal.TotalEarned += amount
			bal.TotalPoints = bal.TotalEarned - bal.TotalSpent
			return model.PointTransaction{
				UUID:      uuid.New(),
				User:      user,
				Amount:    amount,
				Direction: model.EARN,
				Category:  category,
				Reason:    reason,
				Status:    model.StatusCompleted,
			}, nil
		}).
		AnyTimes()

	ledger.EXPECT().
		GetBalance(gomock.Any(), "u1").
		DoAndReturn(func(ctx context.Context, user string) (model.Balance, error) {
			return bal, nil
		}).
		AnyTimes()

	serv := NewTransactionService(zap.NewNop(), ledger, categories, nil)
	ctx := context.Background()

	// списание 30 из 100
	res := serv.CreateTransaction(ctx, TransactionRequest{
		User:      "u1",
		Amount:    30,
		Direction: model.SPEND,
		Reason:    "Tool purchase",
	})
	require.True(t, res.Success, "error=%s code=%s", res.Error, res.ErrorCode)
	require.Equal(t, res.Transaction.Status, model.StatusCompleted)

	b, err := serv.GetBalance(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, b.TotalPoints, int64(70))
	require.Equal(t, b.TotalEarned, int64(100))
	require.Equal(t, b.TotalSpent, int64(30))

	// списание больше остатка: отказ, баланс не меняется
	res = serv.CreateTransaction(ctx, TransactionRequest{
		User:      "u1",
		Amount:    9000,
		Direction: model.SPEND,
		Reason:    "Too expensive",
	})
	require.False(t, res.Success)
	require.Equal(t, res.ErrorCode, model.CodeInsufficientPoints)

	b, err = serv.GetBalance(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, b.TotalPoints, int64(70))
	require.Equal(t, b.TotalSpent, int64(30))

	// начисление 50
	res = serv.CreateTransaction(ctx, TransactionRequest{
		User:      "u1",
		Amount:    50,
		Direction: model.EARN,
		Reason:    "Referral bonus",
	})
	require.True(t, res.Success, "error=%s code=%s", res.Error, res.ErrorCode)

	b, err = serv.GetBalance(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, b.TotalPoints, int64(120))
	require.Equal(t, b.TotalEarned, int64(150))
	require.Equal(t, b.TotalSpent, int64(30))
}

func TestCreateTransactionValidation(t *testing.T) {
	cont := gomock.NewController(t)
	defer cont.Finish()

	ledger := NewMockLedgerStorage(cont)
	categories := NewMockCategoryStorage(cont)
	serv := NewTransactionService(zap.NewNop(), ledger, categories, nil)

	tests := []struct {
		name string
		req  TransactionRequest
		code string
	}{
		{"без пользователя", TransactionRequest{Amount: 10, Direction: model.EARN}, model.CodeUnauthenticated},
		{"нулевая сумма", TransactionRequest{User: "u1", Amount: 0, Direction: model.EARN}, model.CodeUnknown},
		{"отрицательная сумма", TransactionRequest{User: "u1", Amount: -5, Direction: model.EARN}, model.CodeUnknown},
		{"неизвестное направление", TransactionRequest{User: "u1", Amount: 10, Direction: "transfer"}, model.CodeUnknown},
		{"неизвестный вид", TransactionRequest{User: "u1", Amount: 10, Direction: model.EARN, Kind: "crypto"}, model.CodeUnknown},
	}

	for _, ts := range tests {
		ts := ts
		t.Run(ts.name, func(t *testing.T) {
			res := serv.CreateTransaction(context.Background(), ts.req)
			require.False(t, res.Success)
			require.Equal(t, res.ErrorCode, ts.code)
		})
	}
}

// Промах резолва категории не валит транзакцию: проводка идет с uuid.Nil
func TestCategoryResolveMiss(t *testing.T) {
	cont := gomock.NewController(t)
	defer cont.Finish()

	ledger := NewMockLedgerStorage(cont)
	categories := NewMockCategoryStorage(cont)

	categories.EXPECT().
		ResolveCategory(gomock.Any(), "ghost").
		Return(uuid.Nil, model.ErrNotFound)

	ledger.EXPECT().
		Earn(gomock.Any(), "u1", int64(10), uuid.Nil, gomock.Any(), gomock.Any()).
		Return(model.PointTransaction{UUID: uuid.New(), Status: model.StatusCompleted}, nil)

	serv := NewTransactionService(zap.NewNop(), ledger, categories, nil)
	res := serv.CreateTransaction(context.Background(), TransactionRequest{
		User:      "u1",
		Amount:    10,
		Direction: model.EARN,
		Category:  "ghost",
	})
	require.True(t, res.Success, "error=%s code=%s", res.Error, res.ErrorCode)
}

func TestMoneyCreate(t *testing.T) {
	cont := gomock.NewController(t)
	defer cont.Finish()

	ledger := NewMockLedgerStorage(cont)
	categories := NewMockCategoryStorage(cont)

	ledger.EXPECT().
		MoneyCreate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, tnx model.MoneyTransaction) (model.MoneyTransaction, error) {
			tnx.UUID = uuid.New()
			tnx.CreatedAt = time.Now()
			return tnx, nil
		})

	// категория у денег игнорируется: резолва нет, у мока нет ожидания
	serv := NewTransactionService(zap.NewNop(), ledger, categories, nil)
	res := serv.CreateTransaction(context.Background(), TransactionRequest{
		Kind:          KindMoney,
		User:          "u1",
		Amount:        2500,
		Direction:     model.SPEND,
		Currency:      "INR",
		PaymentMethod: "upi",
		Category:      "ekart",
		Reason:        "Conference ticket",
	})
	require.True(t, res.Success, "error=%s code=%s", res.Error, res.ErrorCode)
	require.Equal(t, res.Money.Status, model.MoneyInitiated)
	require.Len(t, res.Money.StatusHistory, 1)
	require.Equal(t, res.Money.StatusHistory[0].Status, model.MoneyInitiated)
}

func TestMoneyStatusUpdate(t *testing.T) {
	cont := gomock.NewController(t)
	defer cont.Finish()

	ledger := NewMockLedgerStorage(cont)
	categories := NewMockCategoryStorage(cont)
	serv := NewTransactionService(zap.NewNop(), ledger, categories, nil)

	id := uuid.New()

	ledger.EXPECT().
		MoneyUpdateStatus(gomock.Any(), id, model.MoneyProcessing, "bank accepted").
		Return(model.MoneyTransaction{
			UUID:   id,
			Status: model.MoneyProcessing,
			StatusHistory: []model.StatusChange{
				{Status: model.MoneyInitiated},
				{Status: model.MoneyProcessing, Note: "bank accepted"},
			},
		}, nil)

	res := serv.UpdateMoneyStatus(context.Background(), id, model.MoneyProcessing, "bank accepted")
	require.True(t, res.Success, "error=%s code=%s", res.Error, res.ErrorCode)
	require.Equal(t, res.Money.Status, model.MoneyProcessing)
	require.Len(t, res.Money.StatusHistory, 2)

	// недопустимый переход
	ledger.EXPECT().
		MoneyUpdateStatus(gomock.Any(), id, model.MoneyInitiated, gomock.Any()).
		Return(model.MoneyTransaction{}, model.ErrInvalidStatus)

	res = serv.UpdateMoneyStatus(context.Background(), id, model.MoneyInitiated, "")
	require.False(t, res.Success)
	require.Equal(t, res.ErrorCode, model.CodeStatusUpdateFailed)

	// транзакция не найдена
	unknown := uuid.New()
	ledger.EXPECT().
		MoneyUpdateStatus(gomock.Any(), unknown, model.MoneyCompleted, gomock.Any()).
		Return(model.MoneyTransaction{}, model.ErrNotFound)

	res = serv.UpdateMoneyStatus(context.Background(), unknown, model.MoneyCompleted, "")
	require.False(t, res.Success)
	require.Equal(t, res.ErrorCode, model.CodeTransactionNotFound)

	// ошибка записи - не конфликт переходов
	ledger.EXPECT().
		MoneyUpdateStatus(gomock.Any(), id, model.MoneyCompleted, gomock.Any()).
		Return(model.MoneyTransaction{}, fmt.Errorf("connection reset"))

	res = serv.UpdateMoneyStatus(context.Background(), id, model.MoneyCompleted, "")
	require.False(t, res.Success)
	require.Equal(t, res.ErrorCode, model.CodeUnknown)
}

func TestMoneyTransitions(t *testing.T) {
	tests := []struct {
		from     string
		to       string
		expected bool
	}{
		{model.MoneyInitiated, model.MoneyProcessing, true},
		{model.MoneyInitiated, model.MoneyCompleted, true},
		{model.MoneyInitiated, model.MoneyRefunded, false},
		{model.MoneyProcessing, model.MoneyCompleted, true},
		{model.MoneyProcessing, model.MoneyRefunded, true},
		{model.MoneyCompleted, model.MoneyRefunded, true},
		{model.MoneyCompleted, model.MoneyProcessing, false},
		{model.MoneyFailed, model.MoneyCompleted, false},
		{model.MoneyRefunded, model.MoneyInitiated, false},
	}

	for _, ts := range tests {
		result := model.MoneyTransitionAllowed(ts.from, ts.to)
		require.Equal(t, result, ts.expected, "from=%s to=%s", ts.from, ts.to)
	}
}

// Кэш: попадание не трогает БД, промах пишет значение обратно
func TestGetBalanceCache(t *testing.T) {
	cont := gomock.NewController(t)
	defer cont.Finish()

	ledger := NewMockLedgerStorage(cont)
	categories := NewMockCategoryStorage(cont)
	cache := NewMockCacheStorage(cont)

	cached := model.Balance{User: "u1", TotalPoints: 70, TotalEarned: 100, TotalSpent: 30}
	cache.EXPECT().GetBalance(gomock.Any(), "u1").Return(cached, nil)

	serv := NewTransactionService(zap.NewNop(), ledger, categories, cache)
	b, err := serv.GetBalance(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, b, cached)

	// промах: чтение из БД и запись в кэш
	fresh := model.Balance{User: "u2", TotalPoints: 10, TotalEarned: 10}
	cache.EXPECT().GetBalance(gomock.Any(), "u2").Return(model.Balance{}, model.ErrNotFound)
	ledger.EXPECT().GetBalance(gomock.Any(), "u2").Return(fresh, nil)
	cache.EXPECT().SetBalance(gomock.Any(), "u2", fresh).Return(nil)

	b, err = serv.GetBalance(context.Background(), "u2")
	require.NoError(t, err)
	require.Equal(t, b, fresh)
}
