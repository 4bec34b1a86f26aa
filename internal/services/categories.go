package points

import (
	"context"
	"fmt"

	interf "github.com/aksisonline/mockify/points/internal/interfaces"
	model "github.com/aksisonline/mockify/points/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CategoryService struct {
	logger *zap.Logger
	db     interf.CategoryStorage
}

func NewCategoryService(logger *zap.Logger, db interf.CategoryStorage) *CategoryService {
	return &CategoryService{logger, db}
}

// Создание категории администратором
func (s *CategoryService) Create(ctx context.Context, c model.Category) (uuid.UUID, error) {
	if c.Name == "" {
		return uuid.Nil, fmt.Errorf("category name is required")
	}
	c.Active = true
	return s.db.CategoryCreate(ctx, c)
}

// Обновление: категории не удаляются, только деактивируются
func (s *CategoryService) Update(ctx context.Context, c model.Category) error {
	if c.UUID == uuid.Nil {
		return fmt.Errorf("category id is required")
	}
	return s.db.CategoryUpdate(ctx, c)
}

func (s *CategoryService) GetActive(ctx context.Context) ([]model.Category, error) {
	return s.db.GetActiveCategories(ctx)
}

// Баллы пользователя по категориям, только с ненулевой активностью.
// Ошибка запроса деградирует в пустой список - UI всегда есть что отрисовать.
func (s *CategoryService) GetUserPointsByCategory(ctx context.Context, user string) []model.CategoryBalance {
	rows, err := s.db.GetUserPointsByCategory(ctx, user)
	if err != nil {
		s.logger.Error("category aggregation failed",
			zap.String("user", user),
			zap.Error(err))
		return []model.CategoryBalance{}
	}
	return rows
}

// То же, но с нулевыми строками по всем активным категориям - для дашборда
func (s *CategoryService) GetAllCategoriesWithUserPoints(ctx context.Context, user string) []model.CategoryBalance {
	active, err := s.db.GetActiveCategories(ctx)
	if err != nil {
		s.logger.Error("categories read failed", zap.Error(err))
		return []model.CategoryBalance{}
	}
	rows := s.GetUserPointsByCategory(ctx, user)

	byID := make(map[uuid.UUID]model.CategoryBalance, len(rows))
	for _, r := range rows {
		byID[r.Category.UUID] = r
	}
	all := make([]model.CategoryBalance, 0, len(active))
	for _, c := range active {
		if r, ok := byID[c.UUID]; ok {
			all = append(all, r)
		} else {
			all = append(all, model.CategoryBalance{Category: c})
		}
	}
	return all
}
