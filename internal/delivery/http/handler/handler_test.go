package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"clinica-ginecologica/internal/delivery/dto"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeNext(t *testing.T) {
	tests := map[string]string{
		"":                     "/dashboard",
		"/citas":               "/citas",
		"/citas/nueva?x=1":     "/citas/nueva?x=1",
		"https://evil.example": "/dashboard",
		"//evil.example/phish": "/dashboard",
		`/\evil.example`:       "/dashboard",
		"javascript:alert(1)":  "/dashboard",
		"/historial/3#detalle": "/historial/3#detalle",
	}
	for input, want := range tests {
		assert.Equal(t, want, safeNext(input), "next=%q", input)
	}
}

func postForm(t *testing.T, form url.Values) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestDecodeFormFillsTaggedFields(t *testing.T) {
	req := postForm(t, url.Values{
		"telefono":  {"  555-0199 "},
		"partos":    {"2"},
		"cesareas":  {""},
		"sin_campo": {"ignorado"},
	})

	var profile dto.UpdateProfileRequest
	require.NoError(t, decodeForm(req, &profile))
	assert.Equal(t, "555-0199", profile.Phone)
	assert.Equal(t, 2, profile.Births)
	assert.Zero(t, profile.Cesareans)
}

func TestDecodeFormRejectsNonNumericCounts(t *testing.T) {
	req := postForm(t, url.Values{"abortos": {"dos"}})

	var profile dto.UpdateProfileRequest
	err := decodeForm(req, &profile)
	require.Error(t, err)
	assert.Equal(t, "abortos debe ser un número entero", formErrorMessage(err))
}

func TestDecodeFormKeepsAppointmentFields(t *testing.T) {
	req := postForm(t, url.Values{
		"medico_id":     {"3"},
		"fecha":         {"2030-02-03"},
		"hora":          {"10:00"},
		"tipo_consulta": {"Control Prenatal"},
		"motivo":        {" Semana 20 "},
	})

	var appointment dto.CreateAppointmentRequest
	require.NoError(t, decodeForm(req, &appointment))
	assert.Equal(t, dto.CreateAppointmentRequest{
		DoctorID:         3,
		Date:             "2030-02-03",
		Time:             "10:00",
		ConsultationType: "Control Prenatal",
		Reason:           "Semana 20",
	}, appointment)
}

func TestPathID(t *testing.T) {
	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/citas/7", nil), map[string]string{"id": "7"})
	id, ok := pathID(req)
	assert.True(t, ok)
	assert.Equal(t, int64(7), id)

	req = mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/citas/0", nil), map[string]string{"id": "0"})
	_, ok = pathID(req)
	assert.False(t, ok)
}
