package points

import (
	"context"
	"fmt"
	"strings"

	interf "github.com/aksisonline/mockify/points/internal/interfaces"
	model "github.com/aksisonline/mockify/points/internal/models"
	"go.uber.org/zap"
)

// ограничения загрузки файлов
const maxUploadSize = 5 << 20 // 5MB

var allowedUploadTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/gif":       ".gif",
	"image/webp":      ".webp",
	"application/pdf": ".pdf",
}

type ProfileService struct {
	logger *zap.Logger
	db     interf.ProfileStorage
	cache  interf.CacheStorage
	files  interf.FileStorage
}

func NewProfileService(logger *zap.Logger, db interf.ProfileStorage, cache interf.CacheStorage, files interf.FileStorage) *ProfileService {
	return &ProfileService{logger, db, cache, files}
}

// Профиль: сначала кэш, промах уходит в БД
func (s *ProfileService) GetProfile(ctx context.Context, user string) (profile model.Profile, err error) {
	if s.cache != nil {
		profile, err = s.cache.GetProfile(ctx, user)
		if err == nil {
			return profile, nil
		}
	}
	profile, err = s.db.GetProfile(ctx, user)
	if err != nil {
		return model.Profile{}, err
	}
	if s.cache != nil {
		_ = s.cache.SetProfile(ctx, user, profile)
	}
	return profile, nil
}

// Обновление секции профиля
func (s *ProfileService) UpdateSection(ctx context.Context, user string, section model.ProfileSection) error {
	err := s.db.UpdateSection(ctx, user, section)
	if err != nil {
		return err
	}
	if s.cache != nil {
		if err = s.cache.InvalidateProfile(ctx, user); err != nil {
			s.logger.Error("cache invalidate failed", zap.Error(err))
		}
	}
	return nil
}

// Загрузка аватара: проверка размера и типа, сохранение ссылки в профиле
func (s *ProfileService) UploadAvatar(ctx context.Context, user string, contentType string, data []byte) (url string, err error) {
	if len(data) == 0 {
		return "", fmt.Errorf("file is empty")
	}
	if len(data) > maxUploadSize {
		return "", fmt.Errorf("file is too large: %d bytes", len(data))
	}
	ext, ok := allowedUploadTypes[strings.ToLower(contentType)]
	if !ok {
		return "", fmt.Errorf("file type %s is not allowed", contentType)
	}

	url, err = s.files.UploadFile(ctx, "avatars/"+user+ext, contentType, data)
	if err != nil {
		return "", err
	}
	if err = s.db.SetAvatar(ctx, user, url); err != nil {
		return "", err
	}
	if s.cache != nil {
		if err = s.cache.InvalidateProfile(ctx, user); err != nil {
			s.logger.Error("cache invalidate failed", zap.Error(err))
		}
	}
	return url, nil
}

func (s *ProfileService) GetNotificationSettings(ctx context.Context, user string) (model.NotificationSettings, error) {
	return s.db.GetNotificationSettings(ctx, user)
}

func (s *ProfileService) SaveNotificationSettings(ctx context.Context, settings model.NotificationSettings) error {
	return s.db.SaveNotificationSettings(ctx, settings)
}

// Подсказка локаций для поиска вакансий
func (s *ProfileService) SearchLocations(ctx context.Context, query string) ([]string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []string{}, nil
	}
	return s.db.SearchLocations(ctx, query)
}
