package server

import (
	"net/http"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"podosite/internal/auth"
	"podosite/internal/cache"
	"podosite/internal/content"
)

func withCache(t *testing.T, env *testEnv) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	env.server.Cache = cache.New(client)
	env.handler = env.server.Router()
}

func TestListServicesServedFromCache(t *testing.T) {
	env := newTestEnv(t)
	withCache(t, env)
	env.services.services = []content.Service{{ID: 1, Name: "Podología Clínica Integral"}}

	first := env.do(t, http.MethodGet, "/api/services", "", nil)
	require.Equal(t, http.StatusOK, first.Code)

	// A direct store change without invalidation is invisible until the TTL
	// runs out.
	env.services.services[0].Name = "Renamed"
	second := env.do(t, http.MethodGet, "/api/services", "", nil)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Contains(t, second.Body.String(), "Podología Clínica Integral")
}

func TestAdminWriteInvalidatesCache(t *testing.T) {
	env := newTestEnv(t, fullAdmin(t, "hunter2"))
	withCache(t, env)
	token := env.token(t, "admin", auth.ScopeFull)

	first := env.do(t, http.MethodGet, "/api/services", "", nil)
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "[]", first.Body.String())

	rec := env.do(t, http.MethodPost, "/api/services", token, map[string]interface{}{
		"name": "Esmaltado Permanente", "price": 12000,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	second := env.do(t, http.MethodGet, "/api/services", "", nil)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Contains(t, second.Body.String(), "Esmaltado Permanente")
}
