package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/mgfilms/site-service/internal/cache"
	"github.com/mgfilms/site-service/internal/config"
	"github.com/mgfilms/site-service/internal/media"
	"github.com/mgfilms/site-service/internal/storage/storagetest"
	"github.com/mgfilms/site-service/internal/types/admins"
	"github.com/mgfilms/site-service/internal/uploads"
	"github.com/mgfilms/site-service/internal/utils/jwt"
	"github.com/mgfilms/site-service/internal/utils/password"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "router-secret"

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = testSecret
	cfg.JWT.TTL = time.Hour
	cfg.Frontend.AllowedOrigin = "*"
	cfg.Frontend.DistDir = t.TempDir()
	cfg.RateLimit.LoginPerMinute = 2
	cfg.RateLimit.InquiriesPerMinute = 1
	cfg.Upload.MaxFileSize = 1 << 20
	cfg.Upload.MaxFiles = 2
	return cfg
}

func newHandler(t *testing.T, withRedis bool) (http.Handler, *config.Config, string) {
	t.Helper()
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Frontend.DistDir, "index.html"), []byte("spa"), 0o644))

	uploadDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(uploadDir, "general"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(uploadDir, "general", "a.txt"), []byte("file"), 0o644))
	backend, err := uploads.NewLocalBackend(uploadDir, "/uploads")
	require.NoError(t, err)

	resolver, err := media.NewResolver("", media.DefaultYouTubeID)
	require.NoError(t, err)

	store := storagetest.NewMemory()
	hash, err := password.HashPassword("admin123")
	require.NoError(t, err)
	_, err = store.CreateAdmin(context.Background(), "admin@mgfilms.com", hash, "Admin")
	require.NoError(t, err)

	deps := Deps{
		Config:   cfg,
		Store:    store,
		Uploads:  uploads.NewService(backend, cfg.Upload),
		Resolver: resolver,
	}
	if withRedis {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { client.Close() })
		deps.Redis = client
		deps.Store = cache.NewService(deps.Store, client)
	}

	token, err := jwt.CreateToken(admins.Admin{ID: 1, Email: "admin@mgfilms.com"}, testSecret, time.Hour)
	require.NoError(t, err)
	return New(deps), cfg, token
}

func serve(h http.Handler, method, target, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRoutes(t *testing.T) {
	h, _, token := newHandler(t, false)

	tests := []struct {
		name   string
		method string
		target string
		token  string
		body   string
		want   int
	}{
		{"health", http.MethodGet, "/api/health", "", "", http.StatusOK},
		{"ready", http.MethodGet, "/api/health/ready", "", "", http.StatusOK},
		{"public content", http.MethodGet, "/api/content?section=hero", "", "", http.StatusOK},
		{"admin content without token", http.MethodGet, "/api/content/all", "", "", http.StatusUnauthorized},
		{"admin content bad token", http.MethodGet, "/api/content/all", "bad", "", http.StatusForbidden},
		{"admin content", http.MethodGet, "/api/content/all", token, "", http.StatusOK},
		{"create content", http.MethodPost, "/api/content", token, `{"section":"hero"}`, http.StatusCreated},
		{"create content anonymous", http.MethodPost, "/api/content", "", `{"section":"hero"}`, http.StatusUnauthorized},
		{"seo missing", http.MethodGet, "/api/seo/home", "", "", http.StatusNotFound},
		{"seo list admin only", http.MethodGet, "/api/seo", "", "", http.StatusUnauthorized},
		{"media resolve", http.MethodGet, "/api/media/resolve?url=abc12345678", "", "", http.StatusOK},
		{"inquiry", http.MethodPost, "/api/inquiries", "", `{"name":"A","email":"a@example.com","message":"hi"}`, http.StatusCreated},
		{"inquiries admin only", http.MethodGet, "/api/inquiries", "", "", http.StatusUnauthorized},
		{"upload admin only", http.MethodPost, "/api/upload", "", "", http.StatusUnauthorized},
		{"presign local", http.MethodPost, "/api/upload/presign", token, `{"content_type":"image/png"}`, http.StatusNotImplemented},
		{"cache disabled", http.MethodGet, "/api/admin/cache/stats", token, "", http.StatusServiceUnavailable},
		{"unknown api", http.MethodGet, "/api/nope", "", "", http.StatusNotFound},
		{"uploaded file", http.MethodGet, "/uploads/general/a.txt", "", "", http.StatusOK},
		{"uploads listing", http.MethodGet, "/uploads/general/", "", "", http.StatusNotFound},
		{"spa fallback", http.MethodGet, "/work/films", "", "", http.StatusOK},
		{"swagger doc", http.MethodGet, "/swagger/doc.json", "", "", http.StatusOK},
		{"preflight", http.MethodOptions, "/api/content", "", "", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(h, tt.method, tt.target, tt.token, tt.body)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

func TestSPAFallbackServesIndex(t *testing.T) {
	h, _, _ := newHandler(t, false)
	rec := serve(h, http.MethodGet, "/actress", "", "")
	assert.Equal(t, "spa", rec.Body.String())
}

func TestRateLimitedLogin(t *testing.T) {
	h, _, _ := newHandler(t, true)

	body := `{"email":"admin@mgfilms.com","password":"wrong"}`
	for i := 0; i < 2; i++ {
		assert.Equal(t, http.StatusUnauthorized, serve(h, http.MethodPost, "/api/auth/login", "", body).Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, serve(h, http.MethodPost, "/api/auth/login", "", body).Code)
}

func TestSuccessfulLoginRefillsLoginLimit(t *testing.T) {
	h, _, _ := newHandler(t, true)

	wrong := `{"email":"admin@mgfilms.com","password":"wrong"}`
	right := `{"email":"admin@mgfilms.com","password":"admin123"}`

	assert.Equal(t, http.StatusUnauthorized, serve(h, http.MethodPost, "/api/auth/login", "", wrong).Code)
	assert.Equal(t, http.StatusOK, serve(h, http.MethodPost, "/api/auth/login", "", right).Code)

	// The bucket was empty after the second call; the login refilled it.
	for i := 0; i < 2; i++ {
		assert.Equal(t, http.StatusUnauthorized, serve(h, http.MethodPost, "/api/auth/login", "", wrong).Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, serve(h, http.MethodPost, "/api/auth/login", "", wrong).Code)
}

func TestCacheRoutesWithRedis(t *testing.T) {
	h, _, token := newHandler(t, true)

	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/api/admin/cache/stats", token, "").Code)
	assert.Equal(t, http.StatusOK, serve(h, http.MethodDelete, "/api/admin/cache?type=all", token, "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(h, http.MethodDelete, "/api/admin/cache?type=bogus", token, "").Code)
	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/api/health/ready", "", "").Code)
}

func TestSeededContentVisibleThroughCache(t *testing.T) {
	h, _, token := newHandler(t, true)

	require.Equal(t, http.StatusCreated, serve(h, http.MethodPost, "/api/content", token,
		`{"section":"featured_film","media_url":"https://drive.google.com/file/d/XYZ/view","link_url":"Director: Ravi"}`).Code)

	rec := serve(h, http.MethodGet, "/api/content?section=featured_film", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"kind":"gdrive"`)
	assert.Contains(t, rec.Body.String(), `"provider_id":"XYZ"`)
}
