package points

import (
	"context"
	"fmt"
	"testing"

	model "github.com/aksisonline/mockify/points/internal/models"
	uuid "github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestCategoryCreate(t *testing.T) {
	cont := gomock.NewController(t)
	defer cont.Finish()

	db := NewMockCategoryStorage(cont)
	serv := NewCategoryService(zap.NewNop(), db)

	// имя обязательно
	_, err := serv.Create(context.Background(), model.Category{Title: "Без имени"})
	require.Error(t, err)

	// новая категория всегда активна
	id := uuid.New()
	db.EXPECT().
		CategoryCreate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, c model.Category) (uuid.UUID, error) {
			require.True(t, c.Active)
			return id, nil
		})

	got, err := serv.Create(context.Background(), model.Category{Name: "training", Active: false})
	require.NoError(t, err)
	require.Equal(t, got, id)
}

func TestCategoryUpdate(t *testing.T) {
	cont := gomock.NewController(t)
	defer cont.Finish()

	db := NewMockCategoryStorage(cont)
	serv := NewCategoryService(zap.NewNop(), db)

	err := serv.Update(context.Background(), model.Category{Name: "training"})
	require.Error(t, err)

	c := model.Category{UUID: uuid.New(), Name: "training", Active: false}
	db.EXPECT().CategoryUpdate(gomock.Any(), c).Return(nil)
	require.NoError(t, serv.Update(context.Background(), c))
}

// Ошибка агрегации деградирует в пустой список
func TestUserPointsByCategoryDegrade(t *testing.T) {
	cont := gomock.NewController(t)
	defer cont.Finish()

	db := NewMockCategoryStorage(cont)
	db.EXPECT().
		GetUserPointsByCategory(gomock.Any(), "u1").
		Return(nil, fmt.Errorf("connection refused"))

	serv := NewCategoryService(zap.NewNop(), db)
	rows := serv.GetUserPointsByCategory(context.Background(), "u1")
	require.NotNil(t, rows)
	require.Len(t, rows, 0)
}

// Сводка по всем активным категориям: нулевые строки там, где активности не было
func TestAllCategoriesWithUserPoints(t *testing.T) {
	cont := gomock.NewController(t)
	defer cont.Finish()

	jobs := model.Category{UUID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Name: "jobs", Active: true}
	rewards := model.Category{UUID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Name: "rewards", Active: true}
	tools := model.Category{UUID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Name: "tools", Active: true}

	db := NewMockCategoryStorage(cont)
	db.EXPECT().
		GetActiveCategories(gomock.Any()).
		Return([]model.Category{jobs, rewards, tools}, nil)
	db.EXPECT().
		GetUserPointsByCategory(gomock.Any(), "u1").
		Return([]model.CategoryBalance{
			{Category: rewards, Earned: 100, Spent: 40, Net: 60, Count: 3},
		}, nil)

	serv := NewCategoryService(zap.NewNop(), db)
	all := serv.GetAllCategoriesWithUserPoints(context.Background(), "u1")
	require.Len(t, all, 3)

	byName := make(map[string]model.CategoryBalance, len(all))
	for _, r := range all {
		byName[r.Category.Name] = r
	}
	require.Equal(t, byName["rewards"].Net, int64(60))
	require.Equal(t, byName["rewards"].Count, int64(3))
	require.Equal(t, byName["jobs"].Net, int64(0))
	require.Equal(t, byName["tools"].Count, int64(0))
}
