package points

import (
	"time"

	"github.com/google/uuid"
)

// Виды позиций каталога
const (
	KindReward       = "reward"
	KindTool         = "tool"
	KindBusinessCard = "business_card"
)

// Позиция каталога: награда, инструмент или визитка
type Item struct {
	UUID      uuid.UUID
	Kind      string
	Name      string
	Title     string
	Cost      int64 // цена в баллах
	Stock     int64 // остаток, -1 = не ограничен
	Active    bool
	SingleUse bool // можно купить только один раз
	Seller    map[string]string
}

// Окно защиты от повторной отправки формы покупки
const DuplicateWindow = 5 * time.Minute

// Статусы покупки
const (
	PurchasePlaced    = "placed"
	PurchaseFulfilled = "fulfilled"
	PurchaseCancelled = "cancelled"
)

// Покупка: чек, связывающий списание баллов с позицией каталога
type Purchase struct {
	UUID        uuid.UUID
	User        string
	Item        uuid.UUID
	Quantity    int64
	PointsSpent int64
	Transaction uuid.UUID // UUID транзакции списания
	Status      string
	PurchasedAt time.Time
	Metadata    map[string]string
}

// Сообщение для очереди уведомлений
type Notification struct {
	User      string            `json:"user"`
	Template  string            `json:"template"`
	Variables map[string]string `json:"variables"`
}
