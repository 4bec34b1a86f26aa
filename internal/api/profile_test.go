package api

import (
	"encoding/json"
	"testing"

	model "github.com/aksisonline/mockify/points/internal/models"
	"github.com/stretchr/testify/require"
)

func TestDecodeSection(t *testing.T) {
	tests := []struct {
		name string
		body string
		form string
	}{
		{
			name: "базовые данные",
			body: `{"type":"basic_details","data":{"full_name":"Test User","email":"test@example.com"}}`,
			form: model.SectionBasicDetails,
		},
		{
			name: "занятость списком",
			body: `{"type":"employment","data":[{"company":"Acme","role":"Engineer","current":true}]}`,
			form: model.SectionEmployment,
		},
		{
			name: "образование списком",
			body: `{"type":"education","data":[{"institution":"IIT","degree":"BTech","start_year":2015}]}`,
			form: model.SectionEducation,
		},
		{
			name: "адрес",
			body: `{"type":"address","data":{"city":"Bangalore","country":"IN"}}`,
			form: model.SectionAddress,
		},
		{
			name: "сертификаты",
			body: `{"type":"certification","data":[{"name":"AWS SAA","issuer":"Amazon"}]}`,
			form: model.SectionCertification,
		},
	}

	for _, ts := range tests {
		ts := ts
		t.Run(ts.name, func(t *testing.T) {
			var env sectionEnvelope
			require.NoError(t, json.Unmarshal([]byte(ts.body), &env))

			section, err := decodeSection(env)
			require.NoError(t, err)
			require.Equal(t, section.Section(), ts.form)
		})
	}
}

func TestDecodeSectionErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"неизвестная секция", `{"type":"passwords","data":{}}`},
		{"пустой тип", `{"data":{"city":"Bangalore"}}`},
		{"скаляр вместо списка", `{"type":"employment","data":{"company":"Acme"}}`},
	}

	for _, ts := range tests {
		ts := ts
		t.Run(ts.name, func(t *testing.T) {
			var env sectionEnvelope
			require.NoError(t, json.Unmarshal([]byte(ts.body), &env))

			_, err := decodeSection(env)
			require.Error(t, err)
		})
	}
}

func TestDecodeSectionTyped(t *testing.T) {
	var env sectionEnvelope
	body := `{"type":"basic_details","data":{"full_name":"Test User","headline":"Go developer"}}`
	require.NoError(t, json.Unmarshal([]byte(body), &env))

	section, err := decodeSection(env)
	require.NoError(t, err)

	basic, ok := section.(model.BasicDetails)
	require.True(t, ok)
	require.Equal(t, basic.FullName, "Test User")
	require.Equal(t, basic.Headline, "Go developer")
}
