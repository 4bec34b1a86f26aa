package points

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	model "github.com/aksisonline/mockify/points/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

func scanItem(row pgx.Row) (item model.Item, err error) {
	var pguuid pgtype.UUID
	var seller []byte
	err = row.Scan(&pguuid, &item.Kind, &item.Name, &item.Title, &item.Cost, &item.Stock, &item.Active, &item.SingleUse, &seller)
	if err != nil {
		return model.Item{}, err
	}
	item.UUID, _ = uuid.FromBytes(pguuid.Bytes[:])
	if len(seller) > 0 {
		_ = json.Unmarshal(seller, &item.Seller)
	}
	return item, nil
}

const itemColumns = "id, kind, name, title, cost, stock, active, single_use, seller"

// Позиция каталога по id
func (p *PointsDB) GetItem(ctx context.Context, id uuid.UUID) (model.Item, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return model.Item{}, err
	}
	defer conn.Release()

	item, err := scanItem(conn.QueryRow(ctx, "SELECT "+itemColumns+" FROM items WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Item{}, fmt.Errorf("item %w", model.ErrNotFound)
		}
		return model.Item{}, err
	}
	return item, nil
}

// Активная позиция по виду (визитка и т.п.)
func (p *PointsDB) GetItemByKind(ctx context.Context, kind string) (model.Item, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return model.Item{}, err
	}
	defer conn.Release()

	item, err := scanItem(conn.QueryRow(ctx, "SELECT "+itemColumns+" FROM items WHERE kind = $1 AND active LIMIT 1", kind))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Item{}, fmt.Errorf("item %w", model.ErrNotFound)
		}
		return model.Item{}, err
	}
	return item, nil
}

// Была ли завершенная покупка позиции пользователем
func (p *PointsDB) HasPurchase(ctx context.Context, user string, item uuid.UUID) (bool, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return false, err
	}
	defer conn.Release()

	var exists bool
	row := conn.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM purchases WHERE userid = $1 AND item = $2 AND status <> $3)",
		user, item, model.PurchaseCancelled)
	err = row.Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Время последней покупки позиции пользователем
func (p *PointsDB) LastPurchase(ctx context.Context, user string, item uuid.UUID) (time.Time, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return time.Time{}, err
	}
	defer conn.Release()

	var last time.Time
	row := conn.QueryRow(ctx,
		"SELECT purchased_at FROM purchases WHERE userid = $1 AND item = $2 ORDER BY purchased_at DESC LIMIT 1",
		user, item)
	err = row.Scan(&last)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, nil
		}
		return time.Time{}, err
	}
	return last, nil
}

// Покупка: блокировка позиции и баланса, списание, чек и остаток - одна БД-транзакция.
// Либо все записи видны, либо ни одной: пользователь не может быть списан без чека.
func (p *PointsDB) PurchaseItem(ctx context.Context, user string, item model.Item, qty int64, category uuid.UUID, reason string) (purchase model.Purchase, err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return model.Purchase{}, err
	}
	defer conn.Release()

	tx, err := conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return model.Purchase{}, err
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		}
	}()

	// блокируем позицию и перепроверяем остаток под блокировкой
	var stock int64
	var active, singleUse bool
	row := tx.QueryRow(ctx, "SELECT stock, active, single_use FROM items WHERE id = $1 FOR UPDATE", item.UUID)
	if err = row.Scan(&stock, &active, &singleUse); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = fmt.Errorf("item %w", model.ErrNotFound)
		}
		return model.Purchase{}, err
	}
	if !active {
		err = fmt.Errorf("item %s: %w", item.Name, model.ErrNotFound)
		return model.Purchase{}, err
	}
	if stock >= 0 && qty > stock {
		err = fmt.Errorf("item %s: %w", item.Name, model.ErrInsufficientQuantity)
		return model.Purchase{}, err
	}

	// одноразовость и окно перепроверяются под блокировкой позиции:
	// конкурирующая покупка либо ждет эту блокировку, либо уже видна
	if singleUse {
		var bought bool
		row = tx.QueryRow(ctx,
			"SELECT EXISTS(SELECT 1 FROM purchases WHERE userid = $1 AND item = $2 AND status <> $3)",
			user, item.UUID, model.PurchaseCancelled)
		if err = row.Scan(&bought); err != nil {
			return model.Purchase{}, err
		}
		if bought {
			err = fmt.Errorf("item %s: %w", item.Name, model.ErrAlreadyPurchased)
			return model.Purchase{}, err
		}
	}
	var last time.Time
	row = tx.QueryRow(ctx,
		"SELECT COALESCE(MAX(purchased_at), 'epoch'::timestamptz) FROM purchases WHERE userid = $1 AND item = $2",
		user, item.UUID)
	if err = row.Scan(&last); err != nil {
		return model.Purchase{}, err
	}
	if time.Since(last) < model.DuplicateWindow {
		err = fmt.Errorf("item %s: %w", item.Name, model.ErrDuplicateWindow)
		return model.Purchase{}, err
	}

	cost := item.Cost * qty

	// блокируем баланс и проверяем достаточность
	earned, spent, err := lockBalance(ctx, tx, user)
	if err != nil {
		return model.Purchase{}, err
	}
	if earned-spent < cost {
		err = fmt.Errorf("user %s: %w", user, model.ErrInsufficientPoints)
		return model.Purchase{}, err
	}
	spent += cost

	// транзакция списания
	tnx := model.PointTransaction{
		UUID:      uuid.New(),
		User:      user,
		Amount:    cost,
		Direction: model.SPEND,
		Category:  category,
		Reason:    reason,
		Status:    model.StatusCompleted,
		Metadata:  map[string]string{"item": item.UUID.String()},
		CreatedAt: time.Now(),
	}
	if err = insertTnx(ctx, tx, tnx); err != nil {
		p.logger.Error("SQL error", zap.Error(err), zap.String("service", "PurchaseItem"))
		return model.Purchase{}, err
	}
	if err = updateBalance(ctx, tx, user, earned, spent); err != nil {
		p.logger.Error("SQL error", zap.Error(err), zap.String("service", "PurchaseItem"))
		return model.Purchase{}, err
	}

	// чек
	purchase = model.Purchase{
		UUID:        uuid.New(),
		User:        user,
		Item:        item.UUID,
		Quantity:    qty,
		PointsSpent: cost,
		Transaction: tnx.UUID,
		Status:      model.PurchasePlaced,
		PurchasedAt: time.Now(),
		Metadata:    item.Seller,
	}
	meta, err := json.Marshal(purchase.Metadata)
	if err != nil {
		return model.Purchase{}, err
	}
	sql, args, err := sq.Insert("purchases").
		Columns("id", "userid", "item", "quantity", "points_spent", "tnx", "status", "purchased_at", "metadata", "single_use").
		Values(purchase.UUID, purchase.User, purchase.Item, purchase.Quantity, purchase.PointsSpent, purchase.Transaction, purchase.Status, purchase.PurchasedAt, meta, singleUse).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return model.Purchase{}, err
	}
	if _, err = tx.Exec(ctx, sql, args...); err != nil {
		p.logger.Error("SQL error",
			zap.Error(err),
			zap.String("query", sql),
			zap.Any("args", args),
		)
		return model.Purchase{}, err
	}

	// уменьшаем остаток
	if stock >= 0 {
		_, err = tx.Exec(ctx, "UPDATE items SET stock = stock - $1 WHERE id = $2", qty, item.UUID)
		if err != nil {
			return model.Purchase{}, err
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return model.Purchase{}, err
	}
	return purchase, nil
}
