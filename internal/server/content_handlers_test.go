package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"podosite/internal/auth"
	"podosite/internal/content"
)

func TestListServicesPublic(t *testing.T) {
	env := newTestEnv(t)
	env.services.services = []content.Service{
		{ID: 1, Name: "Podología Clínica Integral", Price: 25000, Category: "Clínico"},
	}

	rec := env.do(t, http.MethodGet, "/api/services", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var services []content.Service
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &services))
	require.Len(t, services, 1)
	assert.Equal(t, "Podología Clínica Integral", services[0].Name)
}

func TestServicesVersionEmptyCatalog(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/services/version", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "none", decodeBody(t, rec)["version"])
}

func TestServicesVersion(t *testing.T) {
	env := newTestEnv(t)
	env.services.version = "2026-08-28T12:00:00.000Z"

	rec := env.do(t, http.MethodGet, "/api/services/version", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2026-08-28T12:00:00.000Z", decodeBody(t, rec)["version"])
}

func TestCreateServiceRequiresFullToken(t *testing.T) {
	env := newTestEnv(t, fullAdmin(t, "hunter2"))

	rec := env.do(t, http.MethodPost, "/api/services", "", map[string]interface{}{
		"name": "Nuevo Servicio",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServiceCRUD(t *testing.T) {
	env := newTestEnv(t, fullAdmin(t, "hunter2"))
	token := env.token(t, "admin", auth.ScopeFull)

	rec := env.do(t, http.MethodPost, "/api/services", token, map[string]interface{}{
		"name":        "Ortosis de Silicona",
		"description": "Dispositivo a medida.",
		"price":       18000,
		"category":    "Ortopedia",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var created content.Service
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, int64(1), created.ID)

	rec = env.do(t, http.MethodPut, "/api/services/1", token, map[string]interface{}{
		"name":  "Ortosis de Silicona",
		"price": 20000,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var updated content.Service
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, float64(20000), updated.Price)

	rec = env.do(t, http.MethodPut, "/api/services/99", token, map[string]interface{}{
		"name": "Fantasma",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Service not found", decodeBody(t, rec)["error"])

	rec = env.do(t, http.MethodDelete, "/api/services/1", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Service deleted", decodeBody(t, rec)["message"])

	rec = env.do(t, http.MethodDelete, "/api/services/1", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetSiteConfigEmpty(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/config", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "{}", rec.Body.String())
}

func TestUpdateAndGetSiteConfig(t *testing.T) {
	env := newTestEnv(t, fullAdmin(t, "hunter2"))
	token := env.token(t, "admin", auth.ScopeFull)

	rec := env.do(t, http.MethodPut, "/api/config", token, map[string]interface{}{
		"email":     "contacto@podologiaconi.cl",
		"phone":     "+56 9 1234 5678",
		"heroTitle": "Podología Clínica Integral",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/config", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var cfg content.SiteConfig
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cfg))
	assert.Equal(t, int64(1), cfg.ID)
	assert.Equal(t, "contacto@podologiaconi.cl", cfg.Email)
	assert.Equal(t, "Podología Clínica Integral", cfg.HeroTitle)
}

func TestSuccessCaseCRUD(t *testing.T) {
	env := newTestEnv(t, fullAdmin(t, "hunter2"))
	token := env.token(t, "admin", auth.ScopeFull)

	rec := env.do(t, http.MethodPost, "/api/success-cases", token, map[string]interface{}{
		"title":       "Onicocriptosis Severa",
		"description": "Recuperación total en 2 semanas.",
		"imageBefore": "https://example.com/before.jpg",
		"imageAfter":  "https://example.com/after.jpg",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/success-cases", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var cases []content.SuccessCase
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cases))
	require.Len(t, cases, 1)

	rec = env.do(t, http.MethodDelete, "/api/success-cases/1", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Success case deleted", decodeBody(t, rec)["message"])
}

func TestAboutCardCRUD(t *testing.T) {
	env := newTestEnv(t, fullAdmin(t, "hunter2"))
	token := env.token(t, "admin", auth.ScopeFull)

	rec := env.do(t, http.MethodPost, "/api/about-cards", token, map[string]interface{}{
		"title":       "Atención Personalizada",
		"description": "Cada paciente recibe un plan a medida.",
		"icon":        "heart",
		"position":    1,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodPut, "/api/about-cards/1", token, map[string]interface{}{
		"title":    "Atención Personalizada",
		"icon":     "stethoscope",
		"position": 2,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var card content.AboutCard
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &card))
	assert.Equal(t, "stethoscope", card.Icon)
	assert.Equal(t, 2, card.Position)

	rec = env.do(t, http.MethodGet, "/api/about-cards", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/about-cards/99", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "About card not found", decodeBody(t, rec)["error"])
}

func TestInvalidResourceID(t *testing.T) {
	env := newTestEnv(t, fullAdmin(t, "hunter2"))
	token := env.token(t, "admin", auth.ScopeFull)

	rec := env.do(t, http.MethodDelete, "/api/services/abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Solicitud inválida", decodeBody(t, rec)["error"])
}
