package points

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	model "github.com/aksisonline/mockify/points/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// Создание категории. Имя уникально среди активных.
func (p *PointsDB) CategoryCreate(ctx context.Context, c model.Category) (uuid.UUID, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	defer conn.Release()

	var exists bool
	row := conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM categories WHERE name = $1 AND active)", c.Name)
	if err = row.Scan(&exists); err != nil {
		return uuid.Nil, err
	}
	if exists {
		return uuid.Nil, fmt.Errorf("category %s already exists", c.Name)
	}

	c.UUID = uuid.New()
	sql, args, err := sq.Insert("categories").
		Columns("id", "name", "title", "active", "icon", "color").
		Values(c.UUID, c.Name, c.Title, c.Active, c.Icon, c.Color).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		p.logger.Error("SQL error",
			zap.Error(err),
			zap.String("query", sql),
			zap.Any("args", args),
		)
		return uuid.Nil, err
	}
	_, err = conn.Exec(ctx, sql, args...)
	if err != nil {
		p.logger.Error("SQL error",
			zap.Error(err),
			zap.String("query", sql),
			zap.Any("args", args),
		)
		return uuid.Nil, err
	}
	return c.UUID, nil
}

// Обновление метаданных/деактивация; удаления нет
func (p *PointsDB) CategoryUpdate(ctx context.Context, c model.Category) error {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	sql, args, err := sq.Update("categories").
		Set("title", c.Title).
		Set("active", c.Active).
		Set("icon", c.Icon).
		Set("color", c.Color).
		Where(sq.Eq{"id": c.UUID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}
	tag, err := conn.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("category %w", model.ErrNotFound)
	}
	return nil
}

// Активные категории
func (p *PointsDB) GetActiveCategories(ctx context.Context) (categories []model.Category, err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	sql, args, err := sq.Select("id", "name", "title", "active", "icon", "color").
		From("categories").
		Where(sq.Eq{"active": true}).
		OrderBy("name").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var c model.Category
		var pguuid pgtype.UUID
		err = rows.Scan(&pguuid, &c.Name, &c.Title, &c.Active, &c.Icon, &c.Color)
		if err != nil {
			return nil, err
		}
		c.UUID, _ = uuid.FromBytes(pguuid.Bytes[:])
		categories = append(categories, c)
	}
	return categories, nil
}

// Имя категории -> id
func (p *PointsDB) ResolveCategory(ctx context.Context, name string) (uuid.UUID, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	defer conn.Release()

	var pguuid pgtype.UUID
	row := conn.QueryRow(ctx, "SELECT id FROM categories WHERE name = $1 AND active", name)
	err = row.Scan(&pguuid)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, fmt.Errorf("category %s %w", name, model.ErrNotFound)
		}
		return uuid.Nil, err
	}
	account, _ := uuid.FromBytes(pguuid.Bytes[:])
	return account, nil
}

// Агрегация журнала по категориям: earned/spent/net/кол-во/последняя дата
func (p *PointsDB) GetUserPointsByCategory(ctx context.Context, user string) (result []model.CategoryBalance, err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, `
		SELECT c.id, c.name, c.title, c.icon, c.color,
		       COALESCE(SUM(CASE WHEN t.direction = 'earn' THEN t.amount ELSE 0 END), 0)  AS earned,
		       COALESCE(SUM(CASE WHEN t.direction = 'spend' THEN t.amount ELSE 0 END), 0) AS spent,
		       COUNT(t.id) AS cnt,
		       MAX(t.created) AS lastdate
		FROM tnx t
		JOIN categories c ON c.id = t.category
		WHERE t.userid = $1 AND t.status = 'completed'
		GROUP BY c.id, c.name, c.title, c.icon, c.color
		ORDER BY c.name`, user)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var cb model.CategoryBalance
		var pguuid pgtype.UUID
		err = rows.Scan(&pguuid, &cb.Category.Name, &cb.Category.Title, &cb.Category.Icon, &cb.Category.Color,
			&cb.Earned, &cb.Spent, &cb.Count, &cb.LastDate)
		if err != nil {
			return nil, err
		}
		cb.Category.UUID, _ = uuid.FromBytes(pguuid.Bytes[:])
		cb.Category.Active = true
		cb.Net = cb.Earned - cb.Spent
		result = append(result, cb)
	}
	return result, nil
}
