package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grygorii1976-hash/SHHS-chat-backend/internal/chat"
	"github.com/grygorii1976-hash/SHHS-chat-backend/internal/llm"
)

type cannedLLM struct{ reply string }

func (c cannedLLM) Complete(context.Context, []llm.Message) (string, error) {
	return c.reply, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	handler := chat.NewHandler(cannedLLM{reply: "Happy to help!"}, nil, nil, nil)
	reg := prometheus.NewRegistry()
	return New(&Config{
		ChatHandler:        handler,
		MetricsHandler:     promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		CORSAllowedOrigins: []string{"*"},
	})
}

func TestRouterHealth(t *testing.T) {
	r := newTestRouter(t)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRouterChat(t *testing.T) {
	r := newTestRouter(t)
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"hi"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Happy to help!")
}

func TestRouterUnknownRoute(t *testing.T) {
	r := newTestRouter(t)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouterMetricsExposed(t *testing.T) {
	r := newTestRouter(t)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouterCORSHeadersOnChat(t *testing.T) {
	r := newTestRouter(t)
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"hi"}`))
	req.Header.Set("Origin", "https://widget.example")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, "https://widget.example", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouterRateLimitOnChat(t *testing.T) {
	handler := chat.NewHandler(cannedLLM{reply: "ok"}, nil, nil, nil)
	r := New(&Config{
		ChatHandler:    handler,
		RateLimitRPS:   1,
		RateLimitBurst: 1,
	})

	send := func() int {
		req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"hi"}`))
		req.RemoteAddr = "198.51.100.7:1234"
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec.Code
	}

	require.Equal(t, http.StatusOK, send())
	assert.Equal(t, http.StatusTooManyRequests, send())

	// Health stays outside the limited group.
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "198.51.100.7:1234"
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
