package points

import (
	"context"
	"time"

	model "github.com/aksisonline/mockify/points/internal/models"
	"github.com/google/uuid"
)

type LedgerStorage interface {
	// начисление: баланс создается лениво, транзакция и баланс пишутся в одной БД-транзакции
	Earn(ctx context.Context, user string, amount int64, category uuid.UUID, reason string, meta map[string]string) (model.PointTransaction, error)
	// списание: блокировка строки баланса, проверка достаточности и запись - атомарно
	Spend(ctx context.Context, user string, amount int64, category uuid.UUID, reason string, meta map[string]string) (model.PointTransaction, error)
	GetBalance(ctx context.Context, user string) (model.Balance, error)
	GetTnx(ctx context.Context, user string, from time.Time, to time.Time) ([]model.PointTransaction, error)
	MoneyCreate(ctx context.Context, tnx model.MoneyTransaction) (model.MoneyTransaction, error)
	MoneyGet(ctx context.Context, id uuid.UUID) (model.MoneyTransaction, error)
	MoneyUpdateStatus(ctx context.Context, id uuid.UUID, status string, note string) (model.MoneyTransaction, error)
}

type CategoryStorage interface {
	CategoryCreate(ctx context.Context, c model.Category) (uuid.UUID, error)
	CategoryUpdate(ctx context.Context, c model.Category) error
	GetActiveCategories(ctx context.Context) ([]model.Category, error)
	ResolveCategory(ctx context.Context, name string) (uuid.UUID, error)
	GetUserPointsByCategory(ctx context.Context, user string) ([]model.CategoryBalance, error)
}

type CatalogStorage interface {
	GetItem(ctx context.Context, id uuid.UUID) (model.Item, error)
	GetItemByKind(ctx context.Context, kind string) (model.Item, error)
	HasPurchase(ctx context.Context, user string, item uuid.UUID) (bool, error)
	LastPurchase(ctx context.Context, user string, item uuid.UUID) (time.Time, error)
	// списание баллов, запись покупки и уменьшение остатка - одна БД-транзакция;
	// одноразовость и окно дабл-сабмита перепроверяются под блокировкой позиции
	PurchaseItem(ctx context.Context, user string, item model.Item, qty int64, category uuid.UUID, reason string) (model.Purchase, error)
}

type ProfileStorage interface {
	GetProfile(ctx context.Context, user string) (model.Profile, error)
	UpdateSection(ctx context.Context, user string, section model.ProfileSection) error
	SetAvatar(ctx context.Context, user string, url string) error
	GetNotificationSettings(ctx context.Context, user string) (model.NotificationSettings, error)
	SaveNotificationSettings(ctx context.Context, settings model.NotificationSettings) error
	SearchLocations(ctx context.Context, query string) ([]string, error)
}

type SessionStorage interface {
	ResolveSession(ctx context.Context, token string) (user string, role string, err error)
}

type CacheStorage interface {
	GetBalance(ctx context.Context, user string) (model.Balance, error)
	SetBalance(ctx context.Context, user string, balance model.Balance) error
	InvalidateBalance(ctx context.Context, user string) error
	GetProfile(ctx context.Context, user string) (model.Profile, error)
	SetProfile(ctx context.Context, user string, profile model.Profile) error
	InvalidateProfile(ctx context.Context, user string) error
}

type NotifySink interface {
	Publish(ctx context.Context, n model.Notification) error
}

type FileStorage interface {
	UploadFile(ctx context.Context, name string, contentType string, data []byte) (url string, err error)
	GetPublicURL(key string) string
}
