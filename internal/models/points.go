package points

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Категория баллов
type Category struct {
	UUID   uuid.UUID
	Name   string // машинное имя (jobs, training, ekart, rewards, tools)
	Title  string // отображаемое имя
	Active bool
	Icon   string
	Color  string
}

// Баланс пользователя
type Balance struct {
	User        string
	TotalPoints int64
	TotalEarned int64
	TotalSpent  int64
	LastUpdated time.Time
}

// Направление операции
const (
	EARN  = "earn"
	SPEND = "spend"
)

// Статусы транзакции баллов
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Транзакция баллов
type PointTransaction struct {
	UUID      uuid.UUID
	User      string
	Amount    int64     // всегда положительное
	Direction string    // earn / spend
	Category  uuid.UUID // опционально, uuid.Nil если не задана
	Reason    string
	Status    string
	Metadata  map[string]string
	CreatedAt time.Time
}

// Статусы денежной транзакции
const (
	MoneyInitiated  = "initiated"
	MoneyProcessing = "processing"
	MoneyCompleted  = "completed"
	MoneyFailed     = "failed"
	MoneyRefunded   = "refunded"
	MoneyCancelled  = "cancelled"
)

// Смена статуса денежной транзакции
type StatusChange struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note,omitempty"`
}

// Денежная транзакция: статус не перезаписывается, ведется история
type MoneyTransaction struct {
	UUID          uuid.UUID
	User          string
	Amount        int64
	Currency      string
	PaymentMethod string
	Direction     string
	Reason        string
	Status        string
	StatusHistory []StatusChange
	CreatedAt     time.Time
}

// допустимые переходы: initiated -> processing -> completed/failed/refunded/cancelled
var moneyTransitions = map[string][]string{
	MoneyInitiated:  {MoneyProcessing, MoneyCompleted, MoneyFailed, MoneyCancelled},
	MoneyProcessing: {MoneyCompleted, MoneyFailed, MoneyRefunded, MoneyCancelled},
	MoneyCompleted:  {MoneyRefunded},
}

// Проверка перехода статуса
func MoneyTransitionAllowed(from string, to string) bool {
	for _, s := range moneyTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Срез баланса по категории
type CategoryBalance struct {
	Category Category
	Earned   int64
	Spent    int64
	Net      int64
	Count    int64
	LastDate time.Time
}

// Роли сессии: начисления и операции за другого пользователя - только админ
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Коды ошибок для ответов API
const (
	CodeUnauthenticated      = "UNAUTHENTICATED"
	CodeInsufficientPoints   = "INSUFFICIENT_POINTS"
	CodeInsufficientQuantity = "INSUFFICIENT_QUANTITY"
	CodeAlreadyPurchased     = "ALREADY_PURCHASED"
	CodeTransactionNotFound  = "TRANSACTION_NOT_FOUND"
	CodePointsUpdateFailed   = "POINTS_UPDATE_FAILED"
	CodeStatusUpdateFailed   = "STATUS_UPDATE_FAILED"
	CodeUnknown              = "UNKNOWN_ERROR"
)

var (
	ErrNotFound             = errors.New("not found")
	ErrInsufficientPoints   = errors.New("not enough points")
	ErrInsufficientQuantity = errors.New("not enough stock")
	ErrAlreadyPurchased     = errors.New("already purchased")
	ErrDuplicateWindow      = errors.New("duplicate purchase within window")
	ErrUnauthenticated      = errors.New("not authenticated")
	ErrInvalidStatus        = errors.New("status transition is not allowed")
)
