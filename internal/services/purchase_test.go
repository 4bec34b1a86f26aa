package points

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	model "github.com/aksisonline/mockify/points/internal/models"
	uuid "github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func testItem() model.Item {
	return model.Item{
		UUID:   uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		Kind:   model.KindReward,
		Name:   "mug",
		Title:  "Coffee Mug",
		Cost:   100,
		Stock:  10,
		Active: true,
	}
}

func TestPurchase(t *testing.T) {
	cont := gomock.NewController(t)
	defer cont.Finish()

	catalog := NewMockCatalogStorage(cont)
	categories := NewMockCategoryStorage(cont)
	cache := NewMockCacheStorage(cont)
	notify := NewMockNotifySink(cont)

	item := testItem()
	rewards := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	catalog.EXPECT().GetItem(gomock.Any(), item.UUID).Return(item, nil)
	catalog.EXPECT().LastPurchase(gomock.Any(), "u1", item.UUID).Return(time.Time{}, nil)
	categories.EXPECT().ResolveCategory(gomock.Any(), "rewards").Return(rewards, nil)
	catalog.EXPECT().
		PurchaseItem(gomock.Any(), "u1", item, int64(2), rewards, gomock.Any()).
		Return(model.Purchase{
			UUID:        uuid.New(),
			User:        "u1",
			Item:        item.UUID,
			Quantity:    2,
			PointsSpent: 200,
			Status:      model.PurchasePlaced,
		}, nil)
	cache.EXPECT().InvalidateBalance(gomock.Any(), "u1").Return(nil)
	cache.EXPECT().InvalidateProfile(gomock.Any(), "u1").Return(nil)
	notify.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, n model.Notification) error {
			require.Equal(t, n.User, "u1")
			require.Equal(t, n.Template, "purchase_confirmation")
			require.Equal(t, n.Variables["item"], "Coffee Mug")
			require.Equal(t, n.Variables["quantity"], "2")
			require.Equal(t, n.Variables["points"], "200")
			return nil
		})

	serv := NewPurchaseService(zap.NewNop(), catalog, categories, cache, notify)
	p, err := serv.Purchase(context.Background(), "u1", item.UUID, 2)
	require.NoError(t, err)
	require.Equal(t, p.PointsSpent, int64(200))
	require.Equal(t, p.Status, model.PurchasePlaced)
}

// Ошибка очереди уведомлений не валит покупку
func TestPurchaseNotifyFailure(t *testing.T) {
	cont := gomock.NewController(t)
	defer cont.Finish()

	catalog := NewMockCatalogStorage(cont)
	categories := NewMockCategoryStorage(cont)
	notify := NewMockNotifySink(cont)

	item := testItem()
	catalog.EXPECT().GetItem(gomock.Any(), item.UUID).Return(item, nil)
	catalog.EXPECT().LastPurchase(gomock.Any(), "u1", item.UUID).Return(time.Time{}, nil)
	categories.EXPECT().ResolveCategory(gomock.Any(), "rewards").Return(uuid.New(), nil)
	catalog.EXPECT().
		PurchaseItem(gomock.Any(), "u1", item, int64(1), gomock.Any(), gomock.Any()).
		Return(model.Purchase{UUID: uuid.New(), PointsSpent: 100, Status: model.PurchasePlaced}, nil)
	notify.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(fmt.Errorf("broker down"))

	serv := NewPurchaseService(zap.NewNop(), catalog, categories, nil, notify)
	p, err := serv.Purchase(context.Background(), "u1", item.UUID, 1)
	require.NoError(t, err)
	require.Equal(t, p.PointsSpent, int64(100))
}

func TestPurchaseRejections(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(item *model.Item, catalog *MockCatalogStorage)
		expected error
	}{
		{
			name: "неактивная позиция",
			setup: func(item *model.Item, catalog *MockCatalogStorage) {
				item.Active = false
			},
			expected: model.ErrNotFound,
		},
		{
			name: "недостаточный остаток",
			setup: func(item *model.Item, catalog *MockCatalogStorage) {
				item.Stock = 1
			},
			expected: model.ErrInsufficientQuantity,
		},
		{
			name: "повторная покупка одноразовой",
			setup: func(item *model.Item, catalog *MockCatalogStorage) {
				item.SingleUse = true
				catalog.EXPECT().HasPurchase(gomock.Any(), "u1", item.UUID).Return(true, nil)
			},
			expected: model.ErrAlreadyPurchased,
		},
		{
			name: "дабл-сабмит в пятиминутном окне",
			setup: func(item *model.Item, catalog *MockCatalogStorage) {
				catalog.EXPECT().
					LastPurchase(gomock.Any(), "u1", item.UUID).
					Return(time.Now().Add(-time.Minute), nil)
			},
			expected: model.ErrDuplicateWindow,
		},
	}

	for _, ts := range tests {
		ts := ts
		t.Run(ts.name, func(t *testing.T) {
			cont := gomock.NewController(t)
			defer cont.Finish()

			catalog := NewMockCatalogStorage(cont)
			categories := NewMockCategoryStorage(cont)

			item := testItem()
			item.Stock = 2
			ts.setup(&item, catalog)
			catalog.EXPECT().GetItem(gomock.Any(), item.UUID).Return(item, nil)

			serv := NewPurchaseService(zap.NewNop(), catalog, categories, nil, nil)
			_, err := serv.Purchase(context.Background(), "u1", item.UUID, 2)
			require.Error(t, err)
			require.True(t, errors.Is(err, ts.expected), "err=%v expected=%v", err, ts.expected)
		})
	}
}

func TestPurchaseUnauthenticated(t *testing.T) {
	cont := gomock.NewController(t)
	defer cont.Finish()

	catalog := NewMockCatalogStorage(cont)
	categories := NewMockCategoryStorage(cont)
	serv := NewPurchaseService(zap.NewNop(), catalog, categories, nil, nil)

	_, err := serv.Purchase(context.Background(), "", uuid.New(), 1)
	require.ErrorIs(t, err, model.ErrUnauthenticated)

	_, err = serv.UnlockBusinessCard(context.Background(), "")
	require.ErrorIs(t, err, model.ErrUnauthenticated)
}

// Недостаток баллов всплывает из атомарного списания в хранилище
func TestPurchaseInsufficientPoints(t *testing.T) {
	cont := gomock.NewController(t)
	defer cont.Finish()

	catalog := NewMockCatalogStorage(cont)
	categories := NewMockCategoryStorage(cont)

	item := testItem()
	catalog.EXPECT().GetItem(gomock.Any(), item.UUID).Return(item, nil)
	catalog.EXPECT().LastPurchase(gomock.Any(), "u1", item.UUID).Return(time.Time{}, nil)
	categories.EXPECT().ResolveCategory(gomock.Any(), "rewards").Return(uuid.New(), nil)
	catalog.EXPECT().
		PurchaseItem(gomock.Any(), "u1", item, int64(1), gomock.Any(), gomock.Any()).
		Return(model.Purchase{}, fmt.Errorf("user u1: %w", model.ErrInsufficientPoints))

	serv := NewPurchaseService(zap.NewNop(), catalog, categories, nil, nil)
	_, err := serv.Purchase(context.Background(), "u1", item.UUID, 1)
	require.ErrorIs(t, err, model.ErrInsufficientPoints)
}

// Каталог с состоянием: HasPurchase/LastPurchase видят только закоммиченные
// покупки, PurchaseItem сериализуется на блокировке позиции и перепроверяет
// одноразовость под ней - контракт хранилища.
type lockedCatalog struct {
	mu        sync.Mutex
	ready     sync.WaitGroup // барьер: предварительные проверки пройдены всеми
	item      model.Item
	committed []model.Purchase
}

func (c *lockedCatalog) GetItem(ctx context.Context, id uuid.UUID) (model.Item, error) {
	return c.item, nil
}

func (c *lockedCatalog) GetItemByKind(ctx context.Context, kind string) (model.Item, error) {
	return c.item, nil
}

func (c *lockedCatalog) HasPurchase(ctx context.Context, user string, item uuid.UUID) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range c.committed {
		if p.User == user && p.Item == item {
			return true, nil
		}
	}
	return false, nil
}

func (c *lockedCatalog) LastPurchase(ctx context.Context, user string, item uuid.UUID) (time.Time, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var last time.Time
	for _, p := range c.committed {
		if p.User == user && p.Item == item && p.PurchasedAt.After(last) {
			last = p.PurchasedAt
		}
	}
	return last, nil
}

func (c *lockedCatalog) PurchaseItem(ctx context.Context, user string, item model.Item, qty int64, category uuid.UUID, reason string) (model.Purchase, error) {
	c.ready.Done()
	c.ready.Wait()
	c.mu.Lock()
	defer c.mu.Unlock()
	if item.SingleUse {
		for _, p := range c.committed {
			if p.User == user && p.Item == item.UUID {
				return model.Purchase{}, fmt.Errorf("item %s: %w", item.Name, model.ErrAlreadyPurchased)
			}
		}
	}
	p := model.Purchase{
		UUID:        uuid.New(),
		User:        user,
		Item:        item.UUID,
		Quantity:    qty,
		PointsSpent: item.Cost * qty,
		Status:      model.PurchasePlaced,
		PurchasedAt: time.Now(),
	}
	c.committed = append(c.committed, p)
	return p, nil
}

// Две конкурирующие покупки одноразовой позиции: обе проходят предварительные
// проверки до первого коммита, проходит ровно одна.
func TestPurchaseConcurrentSingleUse(t *testing.T) {
	cont := gomock.NewController(t)
	defer cont.Finish()

	item := testItem()
	item.SingleUse = true
	item.Stock = -1

	catalog := &lockedCatalog{item: item}
	catalog.ready.Add(2)

	categories := NewMockCategoryStorage(cont)
	categories.EXPECT().ResolveCategory(gomock.Any(), "rewards").Return(uuid.New(), nil).AnyTimes()

	serv := NewPurchaseService(zap.NewNop(), catalog, categories, nil, nil)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = serv.Purchase(context.Background(), "u1", item.UUID, 1)
		}(i)
	}
	wg.Wait()

	var ok, rejected int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, model.ErrAlreadyPurchased):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	require.Equal(t, ok, 1, "errs=%v", errs)
	require.Equal(t, rejected, 1, "errs=%v", errs)
	require.Len(t, catalog.committed, 1)
}

func TestUnlockBusinessCard(t *testing.T) {
	cont := gomock.NewController(t)
	defer cont.Finish()

	catalog := NewMockCatalogStorage(cont)
	categories := NewMockCategoryStorage(cont)

	card := model.Item{
		UUID:      uuid.MustParse("33333333-3333-3333-3333-333333333333"),
		Kind:      model.KindBusinessCard,
		Name:      "business_card",
		Title:     "Business Card",
		Cost:      500,
		Stock:     -1,
		Active:    true,
		SingleUse: true,
	}
	tools := uuid.MustParse("44444444-4444-4444-4444-444444444444")

	catalog.EXPECT().GetItemByKind(gomock.Any(), model.KindBusinessCard).Return(card, nil)
	catalog.EXPECT().HasPurchase(gomock.Any(), "u1", card.UUID).Return(false, nil)
	catalog.EXPECT().LastPurchase(gomock.Any(), "u1", card.UUID).Return(time.Time{}, nil)
	categories.EXPECT().ResolveCategory(gomock.Any(), "tools").Return(tools, nil)
	catalog.EXPECT().
		PurchaseItem(gomock.Any(), "u1", card, int64(1), tools, gomock.Any()).
		Return(model.Purchase{UUID: uuid.New(), PointsSpent: 500, Status: model.PurchasePlaced}, nil)

	serv := NewPurchaseService(zap.NewNop(), catalog, categories, nil, nil)
	p, err := serv.UnlockBusinessCard(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, p.PointsSpent, int64(500))

	// повторная разблокировка
	catalog.EXPECT().GetItemByKind(gomock.Any(), model.KindBusinessCard).Return(card, nil)
	catalog.EXPECT().HasPurchase(gomock.Any(), "u1", card.UUID).Return(true, nil)

	_, err = serv.UnlockBusinessCard(context.Background(), "u1")
	require.ErrorIs(t, err, model.ErrAlreadyPurchased)
}
