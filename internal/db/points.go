package points

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	sq "github.com/Masterminds/squirrel"
	model "github.com/aksisonline/mockify/points/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type PointsDB struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewPointsDB(logger *zap.Logger) (db *PointsDB, err error) {
	// config
	purl := os.Getenv("POINTS_DB")
	if purl == "" {
		return nil, fmt.Errorf("env POINTS_DB is not set")
	}
	port := os.Getenv("POINTS_DB_PORT")
	if port == "" {
		return nil, fmt.Errorf("env POINTS_DB_PORT is not set")
	}
	user := os.Getenv("POINTS_DB_USER")
	if user == "" {
		return nil, fmt.Errorf("env POINTS_DB_USER is not set")
	}
	password := os.Getenv("POINTS_DB_PASSWORD")
	if password == "" {
		return nil, fmt.Errorf("env POINTS_DB_PASSWORD is not set")
	}
	database := os.Getenv("POINTS_DB_BASE")
	if database == "" {
		return nil, fmt.Errorf("env POINTS_DB_BASE is not set")
	}
	dsn := "postgres://" + user + ":" + password + "@" + purl + ":" + port + "/" + database

	pool, err := pgxpool.New(context.Background(), dsn)
	return &PointsDB{pool, logger}, err
}

// Блокировка строки баланса; если строки нет - ленивое создание с нулями.
// ON CONFLICT: две первые транзакции пользователя могут создавать строку
// одновременно, проигравший перечитывает и блокирует чужую.
func lockBalance(ctx context.Context, tx pgx.Tx, user string) (earned int64, spent int64, err error) {
	row := tx.QueryRow(ctx, "SELECT total_earned, total_spent FROM balances WHERE userid = $1 FOR UPDATE", user)
	err = row.Scan(&earned, &spent)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return 0, 0, err
		}
		_, err = tx.Exec(ctx,
			"INSERT INTO balances (userid, total_points, total_earned, total_spent, last_updated) VALUES ($1, 0, 0, 0, $2) ON CONFLICT (userid) DO NOTHING",
			user, time.Now())
		if err != nil {
			return 0, 0, err
		}
		row = tx.QueryRow(ctx, "SELECT total_earned, total_spent FROM balances WHERE userid = $1 FOR UPDATE", user)
		if err = row.Scan(&earned, &spent); err != nil {
			return 0, 0, err
		}
	}
	return earned, spent, nil
}

// Запись транзакции внутри БД-транзакции
func insertTnx(ctx context.Context, tx pgx.Tx, tnx model.PointTransaction) error {
	meta, err := json.Marshal(tnx.Metadata)
	if err != nil {
		return err
	}
	var category any
	if tnx.Category != uuid.Nil {
		category = tnx.Category
	}
	sql, args, err := sq.Insert("tnx").
		Columns("id", "userid", "amount", "direction", "category", "reason", "status", "metadata", "created").
		Values(tnx.UUID, tnx.User, tnx.Amount, tnx.Direction, category, tnx.Reason, tnx.Status, meta, tnx.CreatedAt).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, sql, args...)
	return err
}

// Обновление баланса; инвариант total_points = total_earned - total_spent
func updateBalance(ctx context.Context, tx pgx.Tx, user string, earned int64, spent int64) error {
	sql, args, err := sq.Update("balances").
		Set("total_points", earned-spent).
		Set("total_earned", earned).
		Set("total_spent", spent).
		Set("last_updated", time.Now()).
		Where(sq.Eq{"userid": user}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, sql, args...)
	return err
}

// Начисление: запись pending, зачисление на баланс и перевод в completed - атомарно
func (p *PointsDB) Earn(ctx context.Context, user string, amount int64, category uuid.UUID, reason string, meta map[string]string) (tnx model.PointTransaction, err error) {
	return p.apply(ctx, user, amount, model.EARN, category, reason, meta)
}

// Списание: блокировка баланса, проверка достаточности и запись - атомарно.
// Недостаток баллов не оставляет следов ни в балансе, ни в журнале.
func (p *PointsDB) Spend(ctx context.Context, user string, amount int64, category uuid.UUID, reason string, meta map[string]string) (tnx model.PointTransaction, err error) {
	return p.apply(ctx, user, amount, model.SPEND, category, reason, meta)
}

func (p *PointsDB) apply(ctx context.Context, user string, amount int64, direction string, category uuid.UUID, reason string, meta map[string]string) (tnx model.PointTransaction, err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return model.PointTransaction{}, err
	}
	defer conn.Release()

	tx, err := conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return model.PointTransaction{}, err
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		}
	}()

	earned, spent, err := lockBalance(ctx, tx, user)
	if err != nil {
		return model.PointTransaction{}, err
	}

	switch direction {
	case model.EARN:
		earned += amount
	case model.SPEND:
		if earned-spent < amount {
			err = fmt.Errorf("user %s: %w", user, model.ErrInsufficientPoints)
			return model.PointTransaction{}, err
		}
		spent += amount
	}

	tnx = model.PointTransaction{
		UUID:      uuid.New(),
		User:      user,
		Amount:    amount,
		Direction: direction,
		Category:  category,
		Reason:    reason,
		Status:    model.StatusPending,
		Metadata:  meta,
		CreatedAt: time.Now(),
	}
	if err = insertTnx(ctx, tx, tnx); err != nil {
		p.logger.Error("SQL error", zap.Error(err), zap.String("service", "apply"))
		return model.PointTransaction{}, err
	}

	if err = updateBalance(ctx, tx, user, earned, spent); err != nil {
		p.logger.Error("SQL error", zap.Error(err), zap.String("service", "apply"))
		// баланс не записался - разметить транзакцию как failed вне отката
		tx.Rollback(ctx)
		tnx.Status = model.StatusFailed
		if ferr := p.insertFailed(ctx, tnx); ferr != nil {
			p.logger.Error("failed tnx write error", zap.Error(ferr))
		}
		return model.PointTransaction{}, err
	}

	_, err = tx.Exec(ctx, "UPDATE tnx SET status = $1 WHERE id = $2", model.StatusCompleted, tnx.UUID)
	if err != nil {
		return model.PointTransaction{}, err
	}
	if err = tx.Commit(ctx); err != nil {
		return model.PointTransaction{}, err
	}
	tnx.Status = model.StatusCompleted
	return tnx, nil
}

// failed-запись отдельным соединением, откат ее не затрагивает
func (p *PointsDB) insertFailed(ctx context.Context, tnx model.PointTransaction) error {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	meta, _ := json.Marshal(tnx.Metadata)
	var category any
	if tnx.Category != uuid.Nil {
		category = tnx.Category
	}
	_, err = conn.Exec(ctx,
		"INSERT INTO tnx (id, userid, amount, direction, category, reason, status, metadata, created) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)",
		tnx.UUID, tnx.User, tnx.Amount, tnx.Direction, category, tnx.Reason, model.StatusFailed, meta, tnx.CreatedAt)
	return err
}

// Получить баланс
func (p *PointsDB) GetBalance(ctx context.Context, user string) (balance model.Balance, err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return model.Balance{}, err
	}
	defer conn.Release()

	balance.User = user
	row := conn.QueryRow(ctx,
		"SELECT total_points, total_earned, total_spent, last_updated FROM balances WHERE userid = $1", user)
	err = row.Scan(&balance.TotalPoints, &balance.TotalEarned, &balance.TotalSpent, &balance.LastUpdated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Balance{}, fmt.Errorf("user %w", model.ErrNotFound)
		}
		return model.Balance{}, err
	}
	return balance, nil
}

// Получить транзакции за период
func (p *PointsDB) GetTnx(ctx context.Context, user string, from time.Time, to time.Time) (tnxs []model.PointTransaction, err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	sql, args, err := sq.Select("id", "userid", "amount", "direction", "category", "reason", "status", "metadata", "created").
		From("tnx").
		Where(sq.Eq{"userid": user}).
		Where(sq.GtOrEq{"created": from}).
		Where(sq.LtOrEq{"created": to}).
		OrderBy("created DESC").
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
		var tnx model.PointTransaction
		var category pgtype.UUID
		var meta []byte
		err = rows.Scan(&tnx.UUID, &tnx.User, &tnx.Amount, &tnx.Direction, &category, &tnx.Reason, &tnx.Status, &meta, &tnx.CreatedAt)
		if err != nil {
			return nil, err
		}
		if category.Status == pgtype.Present {
			tnx.Category, _ = uuid.FromBytes(category.Bytes[:])
		}
		if len(meta) > 0 {
			_ = json.Unmarshal(meta, &tnx.Metadata)
		}
		tnxs = append(tnxs, tnx)
	}
	return tnxs, nil
}

// Создание денежной транзакции
func (p *PointsDB) MoneyCreate(ctx context.Context, tnx model.MoneyTransaction) (model.MoneyTransaction, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return model.MoneyTransaction{}, err
	}
	defer conn.Release()

	tnx.UUID = uuid.New()
	if tnx.CreatedAt.IsZero() {
		tnx.CreatedAt = time.Now()
	}
	history, err := json.Marshal(tnx.StatusHistory)
	if err != nil {
		return model.MoneyTransaction{}, err
	}

	sql, args, err := sq.Insert("money_tnx").
		Columns("id", "userid", "amount", "currency", "method", "direction", "reason", "status", "history", "created").
		Values(tnx.UUID, tnx.User, tnx.Amount, tnx.Currency, tnx.PaymentMethod, tnx.Direction, tnx.Reason, tnx.Status, history, tnx.CreatedAt).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		p.logger.Error("SQL error",
			zap.Error(err),
			zap.String("query", sql),
			zap.Any("args", args),
		)
		return model.MoneyTransaction{}, err
	}
	_, err = conn.Exec(ctx, sql, args...)
	if err != nil {
		p.logger.Error("SQL error",
			zap.Error(err),
			zap.String("query", sql),
			zap.Any("args", args),
		)
		return model.MoneyTransaction{}, err
	}
	return tnx, nil
}

// Денежная транзакция по id
func (p *PointsDB) MoneyGet(ctx context.Context, id uuid.UUID) (tnx model.MoneyTransaction, err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return model.MoneyTransaction{}, err
	}
	defer conn.Release()

	var history []byte
	row := conn.QueryRow(ctx,
		"SELECT id, userid, amount, currency, method, direction, reason, status, history, created FROM money_tnx WHERE id = $1", id)
	err = row.Scan(&tnx.UUID, &tnx.User, &tnx.Amount, &tnx.Currency, &tnx.PaymentMethod, &tnx.Direction, &tnx.Reason, &tnx.Status, &history, &tnx.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.MoneyTransaction{}, fmt.Errorf("transaction %w", model.ErrNotFound)
		}
		return model.MoneyTransaction{}, err
	}
	_ = json.Unmarshal(history, &tnx.StatusHistory)
	return tnx, nil
}

// Смена статуса денежной транзакции: переходы только вперед, история дополняется
func (p *PointsDB) MoneyUpdateStatus(ctx context.Context, id uuid.UUID, status string, note string) (tnx model.MoneyTransaction, err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return model.MoneyTransaction{}, err
	}
	defer conn.Release()

	tx, err := conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return model.MoneyTransaction{}, err
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		}
	}()

	var history []byte
	row := tx.QueryRow(ctx,
		"SELECT id, userid, amount, currency, method, direction, reason, status, history, created FROM money_tnx WHERE id = $1 FOR UPDATE", id)
	err = row.Scan(&tnx.UUID, &tnx.User, &tnx.Amount, &tnx.Currency, &tnx.PaymentMethod, &tnx.Direction, &tnx.Reason, &tnx.Status, &history, &tnx.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.MoneyTransaction{}, fmt.Errorf("transaction %w", model.ErrNotFound)
		}
		return model.MoneyTransaction{}, err
	}
	_ = json.Unmarshal(history, &tnx.StatusHistory)

	if !model.MoneyTransitionAllowed(tnx.Status, status) {
		err = fmt.Errorf("%s -> %s: %w", tnx.Status, status, model.ErrInvalidStatus)
		return model.MoneyTransaction{}, err
	}

	tnx.Status = status
	tnx.StatusHistory = append(tnx.StatusHistory, model.StatusChange{Status: status, Timestamp: time.Now(), Note: note})
	history, err = json.Marshal(tnx.StatusHistory)
	if err != nil {
		return model.MoneyTransaction{}, err
	}

	sql, args, err := sq.Update("money_tnx").
		Set("status", status).
		Set("history", history).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return model.MoneyTransaction{}, err
	}
	_, err = tx.Exec(ctx, sql, args...)
	if err != nil {
		p.logger.Error("SQL error",
			zap.Error(err),
			zap.String("query", sql),
			zap.Any("args", args),
		)
		return model.MoneyTransaction{}, err
	}
	if err = tx.Commit(ctx); err != nil {
		return model.MoneyTransaction{}, err
	}
	return tnx, nil
}
