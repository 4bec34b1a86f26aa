package points

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	model "github.com/aksisonline/mockify/points/internal/models"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// Профиль; если строки нет - пустой профиль, строка появится при первом обновлении
func (p *PointsDB) GetProfile(ctx context.Context, user string) (profile model.Profile, err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return model.Profile{}, err
	}
	defer conn.Release()

	profile.User = user
	var basic, employment, education, address, certifications []byte
	row := conn.QueryRow(ctx,
		"SELECT basic, employment, education, address, certifications, avatar, updated FROM profiles WHERE userid = $1", user)
	err = row.Scan(&basic, &employment, &education, &address, &certifications, &profile.AvatarURL, &profile.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile, nil
		}
		return model.Profile{}, err
	}
	decode := func(raw []byte, dst any) {
		if len(raw) == 0 {
			return
		}
		if derr := json.Unmarshal(raw, dst); derr != nil {
			p.logger.Error("profile decode error", zap.String("user", user), zap.Error(derr))
		}
	}
	decode(basic, &profile.Basic)
	decode(employment, &profile.Employment)
	decode(education, &profile.Education)
	decode(address, &profile.Address)
	decode(certifications, &profile.Certifications)
	return profile, nil
}

// колонка профиля по секции
var sectionColumns = map[string]string{
	model.SectionBasicDetails:  "basic",
	model.SectionEmployment:    "employment",
	model.SectionEducation:     "education",
	model.SectionAddress:       "address",
	model.SectionCertification: "certifications",
}

// Обновление секции профиля: upsert одной jsonb-колонки
func (p *PointsDB) UpdateSection(ctx context.Context, user string, section model.ProfileSection) error {
	column, ok := sectionColumns[section.Section()]
	if !ok {
		return fmt.Errorf("unknown profile section: %s", section.Section())
	}
	data, err := json.Marshal(section)
	if err != nil {
		return err
	}

	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	_, err = conn.Exec(ctx,
		"INSERT INTO profiles (userid, "+column+", updated) VALUES ($1, $2, $3) "+
			"ON CONFLICT (userid) DO UPDATE SET "+column+" = $2, updated = $3",
		user, data, time.Now())
	if err != nil {
		p.logger.Error("SQL error", zap.Error(err), zap.String("service", "UpdateSection"))
		return err
	}
	return nil
}

// Сохранить ссылку на аватар
func (p *PointsDB) SetAvatar(ctx context.Context, user string, url string) error {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	_, err = conn.Exec(ctx,
		"INSERT INTO profiles (userid, avatar, updated) VALUES ($1, $2, $3) "+
			"ON CONFLICT (userid) DO UPDATE SET avatar = $2, updated = $3",
		user, url, time.Now())
	return err
}

// Настройки уведомлений; отсутствие строки - все включено
func (p *PointsDB) GetNotificationSettings(ctx context.Context, user string) (settings model.NotificationSettings, err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return model.NotificationSettings{}, err
	}
	defer conn.Release()

	settings.User = user
	row := conn.QueryRow(ctx,
		"SELECT email_enabled, purchase_emails, job_alerts, training_updates FROM notification_settings WHERE userid = $1", user)
	err = row.Scan(&settings.EmailEnabled, &settings.PurchaseEmails, &settings.JobAlerts, &settings.TrainingUpdates)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.NotificationSettings{User: user, EmailEnabled: true, PurchaseEmails: true, JobAlerts: true, TrainingUpdates: true}, nil
		}
		return model.NotificationSettings{}, err
	}
	return settings, nil
}

func (p *PointsDB) SaveNotificationSettings(ctx context.Context, settings model.NotificationSettings) error {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	_, err = conn.Exec(ctx,
		"INSERT INTO notification_settings (userid, email_enabled, purchase_emails, job_alerts, training_updates) VALUES ($1, $2, $3, $4, $5) "+
			"ON CONFLICT (userid) DO UPDATE SET email_enabled = $2, purchase_emails = $3, job_alerts = $4, training_updates = $5",
		settings.User, settings.EmailEnabled, settings.PurchaseEmails, settings.JobAlerts, settings.TrainingUpdates)
	return err
}

// Подсказка локаций по активным вакансиям
func (p *PointsDB) SearchLocations(ctx context.Context, query string) (locations []string, err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx,
		"SELECT DISTINCT location FROM jobs WHERE active AND location ILIKE '%' || $1 || '%' ORDER BY location LIMIT 10", query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var loc string
		if err = rows.Scan(&loc); err != nil {
			return nil, err
		}
		locations = append(locations, loc)
	}
	return locations, nil
}

// Пользователь и роль по сессионному токену
func (p *PointsDB) ResolveSession(ctx context.Context, token string) (user string, role string, err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return "", "", err
	}
	defer conn.Release()

	row := conn.QueryRow(ctx, "SELECT userid, role FROM sessions WHERE token = $1 AND expires > now()", token)
	err = row.Scan(&user, &role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", "", model.ErrUnauthenticated
		}
		return "", "", err
	}
	return user, role, nil
}
