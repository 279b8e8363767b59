package i18n

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLocale(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"", "es"},
		{"es", "es"},
		{"en", "en"},
		{"en-US,en;q=0.9", "en"},
		{"es-CL,es;q=0.9,en;q=0.8", "es"},
		{"fr-FR,fr;q=0.9", "es"},
		{"de, en;q=0.5", "en"},
		{"  ", "es"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeLocale(tt.header), "header %q", tt.header)
	}
}

func TestLocaleFromRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Accept-Language", "en-GB")
	assert.Equal(t, "en", LocaleFromRequest(r))

	assert.Equal(t, DefaultLocale, LocaleFromRequest(nil))
}

func TestEmailContentSubstitution(t *testing.T) {
	content := TwoFactorEmail("es", "3FA9C02B", 5)
	assert.Equal(t, "Código de Verificación - Podología Coni", content.Subject)
	assert.Contains(t, content.Text, "3FA9C02B")
	assert.Contains(t, content.Text, "5 minutos")
	assert.Contains(t, content.HTML, "<strong>3FA9C02B</strong>")
	assert.NotContains(t, content.Text, "{code}")
	assert.NotContains(t, content.HTML, "{minutes}")
}

func TestEmailContentFallsBackToSpanish(t *testing.T) {
	content := SetupCodeEmail("fr", "AABBCCDD", 5)
	assert.Equal(t, "Código de Verificación - Configuración Inicial", content.Subject)
}

func TestEmailChangeEmailEnglish(t *testing.T) {
	content := EmailChangeEmail("en", "AABBCCDD", 5)
	assert.Equal(t, "Verification Code - Email Change", content.Subject)
	assert.Contains(t, content.Text, "AABBCCDD")
}
