package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error {
	return p.err
}

func newHealthRouter(db Pinger) *gin.Engine {
	h := NewHealthHandler(db)
	router := gin.New()
	router.GET("/", h.Root)
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
	router.GET("/live", h.Live)
	return router
}

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name       string
		db         Pinger
		path       string
		wantStatus int
		wantBody   string
	}{
		{"banner", stubPinger{}, "/", http.StatusOK, `{"message":"WQTC API v1.0","status":"running"}`},
		{"healthy", stubPinger{}, "/health", http.StatusOK, `{"status":"healthy","version":"1.0.0","services":{"database":"healthy"}}`},
		{"unhealthy", stubPinger{err: errors.New("refused")}, "/health", http.StatusServiceUnavailable, `{"status":"unhealthy","services":{"database":"unhealthy"}}`},
		{"ready", stubPinger{}, "/ready", http.StatusOK, `{"status":"ready"}`},
		{"not ready", stubPinger{err: errors.New("refused")}, "/ready", http.StatusServiceUnavailable, `{"status":"not ready"}`},
		{"live without database", stubPinger{err: errors.New("refused")}, "/live", http.StatusOK, `{"status":"alive"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			newHealthRouter(tt.db).ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
