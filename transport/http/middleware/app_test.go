package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"todoapp/config"
	"todoapp/infras/otel/mocks"
	"todoapp/transport/http/middleware"
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "todoapp"
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"tauri://localhost"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}
	cfg.App.CORS.AllowedHeaders = []string{"Content-Type"}
	cfg.App.CORS.MaxAgeSeconds = 300

	return cfg
}

func TestTracing_PassesThrough(t *testing.T) {
	mw := middleware.NewAppMiddleware(mocks.NewOtel(), newConfig())

	router := chi.NewRouter()
	router.Use(mw.Tracing)
	router.Get("/teapot", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teapot", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestCORS_Preflight(t *testing.T) {
	mw := middleware.NewAppMiddleware(mocks.NewOtel(), newConfig())

	router := chi.NewRouter()
	router.Use(mw.CORS())
	router.Post("/v1/todos", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodOptions, "/v1/todos", nil)
	req.Header.Set("Origin", "tauri://localhost")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "tauri://localhost", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/v1/todos", nil)
	req.Header.Set("Origin", "https://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Disabled(t *testing.T) {
	cfg := newConfig()
	cfg.App.CORS.Enable = false

	mw := middleware.NewAppMiddleware(mocks.NewOtel(), cfg)

	router := chi.NewRouter()
	router.Use(mw.CORS())
	router.Get("/v1/todos", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/todos", nil)
	req.Header.Set("Origin", "tauri://localhost")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
