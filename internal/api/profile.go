package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	model "github.com/aksisonline/mockify/points/internal/models"
)

// Конверт PUT /api/profile: закрытый набор типизированных секций
type sectionEnvelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

func decodeSection(env sectionEnvelope) (model.ProfileSection, error) {
	var section model.ProfileSection
	var err error
	switch env.Type {
	case model.SectionBasicDetails:
		var s model.BasicDetails
		err = json.Unmarshal(env.Data, &s)
		section = s
	case model.SectionEmployment:
		var s model.EmploymentHistory
		err = json.Unmarshal(env.Data, &s)
		section = s
	case model.SectionEducation:
		var s model.EducationHistory
		err = json.Unmarshal(env.Data, &s)
		section = s
	case model.SectionAddress:
		var s model.Address
		err = json.Unmarshal(env.Data, &s)
		section = s
	case model.SectionCertification:
		var s model.Certifications
		err = json.Unmarshal(env.Data, &s)
		section = s
	default:
		return nil, fmt.Errorf("unknown profile section: %s", env.Type)
	}
	if err != nil {
		return nil, err
	}
	return section, nil
}

// Профиль текущего пользователя
func (h *Handler) GetProfileHandler(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profiles.GetProfile(r.Context(), requestUser(r))
	if err != nil {
		h.Log("profile get", "GetProfileHandler", err)
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// Обновление секции профиля
func (h *Handler) UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	var env sectionEnvelope
	if !readBody(w, r, &env) {
		return
	}
	section, err := decodeSection(env)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err = h.profiles.UpdateSection(r.Context(), requestUser(r), section); err != nil {
		h.Log("profile update", "UpdateProfileHandler", err)
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) GetNotificationSettingsHandler(w http.ResponseWriter, r *http.Request) {
	settings, err := h.profiles.GetNotificationSettings(r.Context(), requestUser(r))
	if err != nil {
		h.Log("settings get", "GetNotificationSettingsHandler", err)
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (h *Handler) SaveNotificationSettingsHandler(w http.ResponseWriter, r *http.Request) {
	var settings model.NotificationSettings
	if !readBody(w, r, &settings) {
		return
	}
	settings.User = requestUser(r)
	if err := h.profiles.SaveNotificationSettings(r.Context(), settings); err != nil {
		h.Log("settings save", "SaveNotificationSettingsHandler", err)
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// Загрузка аватара: multipart, поле file
func (h *Handler) UploadAvatarHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		http.Error(w, "multipart form is not correct", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	url, err := h.profiles.UploadAvatar(r.Context(), requestUser(r), header.Header.Get("Content-Type"), data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}

// Подсказка локаций для поиска вакансий
func (h *Handler) LocationsHandler(w http.ResponseWriter, r *http.Request) {
	locations, err := h.profiles.SearchLocations(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		h.Log("locations", "LocationsHandler", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if locations == nil {
		locations = []string{}
	}
	writeJSON(w, http.StatusOK, locations)
}
