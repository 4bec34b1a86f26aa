package points

import (
	"context"
	"fmt"
	"time"

	interf "github.com/aksisonline/mockify/points/internal/interfaces"
	model "github.com/aksisonline/mockify/points/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// категория списания по виду позиции
var kindCategory = map[string]string{
	model.KindReward:       "rewards",
	model.KindTool:         "tools",
	model.KindBusinessCard: "tools",
}

type PurchaseService struct {
	logger     *zap.Logger
	catalog    interf.CatalogStorage
	categories interf.CategoryStorage
	cache      interf.CacheStorage
	notify     interf.NotifySink
}

func NewPurchaseService(logger *zap.Logger, catalog interf.CatalogStorage, categories interf.CategoryStorage, cache interf.CacheStorage, notify interf.NotifySink) *PurchaseService {
	return &PurchaseService{logger, catalog, categories, cache, notify}
}

// Покупка позиции каталога за баллы.
// Все проверки до мутаций; списание, чек и остаток - одна БД-транзакция.
func (s *PurchaseService) Purchase(ctx context.Context, user string, itemID uuid.UUID, qty int64) (model.Purchase, error) {
	if user == "" {
		return model.Purchase{}, model.ErrUnauthenticated
	}
	if qty <= 0 {
		qty = 1
	}

	item, err := s.catalog.GetItem(ctx, itemID)
	if err != nil {
		return model.Purchase{}, err
	}
	return s.purchase(ctx, user, item, qty)
}

// Разблокировка визитки: фиксированная цена, один раз на пользователя
func (s *PurchaseService) UnlockBusinessCard(ctx context.Context, user string) (model.Purchase, error) {
	if user == "" {
		return model.Purchase{}, model.ErrUnauthenticated
	}
	item, err := s.catalog.GetItemByKind(ctx, model.KindBusinessCard)
	if err != nil {
		return model.Purchase{}, err
	}
	return s.purchase(ctx, user, item, 1)
}

func (s *PurchaseService) purchase(ctx context.Context, user string, item model.Item, qty int64) (model.Purchase, error) {
	if !item.Active {
		return model.Purchase{}, fmt.Errorf("item %s: %w", item.Name, model.ErrNotFound)
	}
	if item.Stock >= 0 && qty > item.Stock {
		return model.Purchase{}, fmt.Errorf("item %s: %w", item.Name, model.ErrInsufficientQuantity)
	}

	// предварительные проверки - быстрый отказ до транзакции;
	// хранилище перепроверяет их же под блокировкой позиции
	if item.SingleUse {
		bought, err := s.catalog.HasPurchase(ctx, user, item.UUID)
		if err != nil {
			return model.Purchase{}, err
		}
		if bought {
			return model.Purchase{}, fmt.Errorf("item %s: %w", item.Name, model.ErrAlreadyPurchased)
		}
	}

	// защита от дабл-сабмита, независимо от одноразовости
	last, err := s.catalog.LastPurchase(ctx, user, item.UUID)
	if err != nil {
		return model.Purchase{}, err
	}
	if !last.IsZero() && time.Since(last) < model.DuplicateWindow {
		return model.Purchase{}, fmt.Errorf("item %s: %w", item.Name, model.ErrDuplicateWindow)
	}

	category := uuid.Nil
	if name, ok := kindCategory[item.Kind]; ok {
		category, err = s.categories.ResolveCategory(ctx, name)
		if err != nil {
			s.logger.Warn("category resolve miss",
				zap.String("category", name),
				zap.Error(err))
			category = uuid.Nil
		}
	}

	reason := fmt.Sprintf("Reward purchase: %s", item.Title)
	purchase, err := s.catalog.PurchaseItem(ctx, user, item, qty, category, reason)
	if err != nil {
		return model.Purchase{}, err
	}

	if s.cache != nil {
		if err = s.cache.InvalidateBalance(ctx, user); err != nil {
			s.logger.Error("cache invalidate failed", zap.Error(err))
		}
		if err = s.cache.InvalidateProfile(ctx, user); err != nil {
			s.logger.Error("cache invalidate failed", zap.Error(err))
		}
	}

	// письмо - best effort, ошибка не валит покупку
	if s.notify != nil {
		err = s.notify.Publish(ctx, model.Notification{
			User:     user,
			Template: "purchase_confirmation",
			Variables: map[string]string{
				"item":     item.Title,
				"quantity": fmt.Sprintf("%d", qty),
				"points":   fmt.Sprintf("%d", purchase.PointsSpent),
			},
		})
		if err != nil {
			s.logger.Error("purchase notification failed",
				zap.String("user", user),
				zap.Error(err))
		}
	}
	return purchase, nil
}
