package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"todoapp/config"
	otelMocks "todoapp/infras/otel/mocks"
	todoMocks "todoapp/internal/domains/todo/mocks"
	"todoapp/internal/domains/todo/model"
	"todoapp/internal/domains/todo/service"
	todoHandler "todoapp/internal/handlers/todo"
	transport "todoapp/transport/http"
	"todoapp/transport/http/middleware"
	"todoapp/transport/http/router"
)

func newServer(t *testing.T) (*transport.HTTP, *todoMocks.MockTodo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := todoMocks.NewMockTodo(ctrl)
	otl := otelMocks.NewOtel()

	cfg := &config.Config{}
	cfg.App.Name = "todoapp"
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = "0"

	handlers := router.DomainHandlers{Todo: todoHandler.New(service.New(mockRepo, otl), otl)}

	return transport.New(cfg, router.New(handlers), middleware.NewAppMiddleware(otl, cfg)), mockRepo
}

func TestHTTP_Health(t *testing.T) {
	server, _ := newServer(t)

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"OK"}`, rec.Body.String())
	assert.Equal(t, transport.ServerStateReady, server.State())
}

func TestHTTP_RoutesAreMounted(t *testing.T) {
	server, mockRepo := newServer(t)

	mockRepo.EXPECT().List(gomock.Any()).Return([]model.Todo{}, nil)

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/todos", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[]}`, rec.Body.String())

	rec = httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/unknown", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHTTP_ListenAndServeStopsOnCancel(t *testing.T) {
	server, _ := newServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- server.ListenAndServe(ctx)
	}()

	require.Eventually(t, func() bool {
		return server.State() == transport.ServerStateReady
	}, 2*time.Second, 10*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	assert.Equal(t, transport.ServerStateInCleanupPeriod, server.State())
}

func TestHTTP_ListenAndServeBadAddress(t *testing.T) {
	server, _ := newServer(t)
	server.Config.Server.Port = "not-a-port"

	assert.Error(t, server.ListenAndServe(context.Background()))
}
