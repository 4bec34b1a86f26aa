package points

import (
	"context"
	"testing"

	model "github.com/aksisonline/mockify/points/internal/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestUploadAvatar(t *testing.T) {
	cont := gomock.NewController(t)
	defer cont.Finish()

	db := NewMockProfileStorage(cont)
	files := NewMockFileStorage(cont)

	data := []byte{0xFF, 0xD8, 0xFF}
	files.EXPECT().
		UploadFile(gomock.Any(), "avatars/u1.jpg", "image/jpeg", data).
		Return("https://files.local/avatars/u1.jpg", nil)
	db.EXPECT().SetAvatar(gomock.Any(), "u1", "https://files.local/avatars/u1.jpg").Return(nil)

	serv := NewProfileService(zap.NewNop(), db, nil, files)
	url, err := serv.UploadAvatar(context.Background(), "u1", "image/jpeg", data)
	require.NoError(t, err)
	require.Equal(t, url, "https://files.local/avatars/u1.jpg")
}

func TestUploadAvatarRejections(t *testing.T) {
	cont := gomock.NewController(t)
	defer cont.Finish()

	db := NewMockProfileStorage(cont)
	files := NewMockFileStorage(cont)
	serv := NewProfileService(zap.NewNop(), db, nil, files)

	tests := []struct {
		name        string
		contentType string
		data        []byte
	}{
		{"пустой файл", "image/png", nil},
		{"недопустимый тип", "application/x-msdownload", []byte{1}},
		{"слишком большой", "image/png", make([]byte, maxUploadSize+1)},
	}

	for _, ts := range tests {
		ts := ts
		t.Run(ts.name, func(t *testing.T) {
			_, err := serv.UploadAvatar(context.Background(), "u1", ts.contentType, ts.data)
			require.Error(t, err)
		})
	}
}

// Промах кэша профиля: чтение из БД и запись обратно
func TestGetProfileCache(t *testing.T) {
	cont := gomock.NewController(t)
	defer cont.Finish()

	db := NewMockProfileStorage(cont)
	cache := NewMockCacheStorage(cont)

	profile := model.Profile{User: "u1", Basic: model.BasicDetails{FullName: "Test User"}}
	cache.EXPECT().GetProfile(gomock.Any(), "u1").Return(model.Profile{}, model.ErrNotFound)
	db.EXPECT().GetProfile(gomock.Any(), "u1").Return(profile, nil)
	cache.EXPECT().SetProfile(gomock.Any(), "u1", profile).Return(nil)

	serv := NewProfileService(zap.NewNop(), db, cache, nil)
	got, err := serv.GetProfile(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, got, profile)
}

func TestUpdateSectionInvalidatesCache(t *testing.T) {
	cont := gomock.NewController(t)
	defer cont.Finish()

	db := NewMockProfileStorage(cont)
	cache := NewMockCacheStorage(cont)

	section := model.BasicDetails{FullName: "Updated Name"}
	db.EXPECT().UpdateSection(gomock.Any(), "u1", section).Return(nil)
	cache.EXPECT().InvalidateProfile(gomock.Any(), "u1").Return(nil)

	serv := NewProfileService(zap.NewNop(), db, cache, nil)
	require.NoError(t, serv.UpdateSection(context.Background(), "u1", section))
}

func TestSearchLocationsEmptyQuery(t *testing.T) {
	cont := gomock.NewController(t)
	defer cont.Finish()

	db := NewMockProfileStorage(cont)
	serv := NewProfileService(zap.NewNop(), db, nil, nil)

	got, err := serv.SearchLocations(context.Background(), "   ")
	require.NoError(t, err)
	require.Len(t, got, 0)

	db.EXPECT().SearchLocations(gomock.Any(), "Bangalore").Return([]string{"Bangalore, Karnataka"}, nil)
	got, err = serv.SearchLocations(context.Background(), "  Bangalore ")
	require.NoError(t, err)
	require.Equal(t, got, []string{"Bangalore, Karnataka"})
}
