package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"wqtc-api/internal/domain"
	"wqtc-api/internal/mocks"
)

func newSurahRouter(t *testing.T) (*gin.Engine, *mocks.MockSurahServiceInterface) {
	t.Helper()
	svc := mocks.NewMockSurahServiceInterface(t)
	h := NewSurahHandler(svc)

	router := gin.New()
	router.Use(withSession(adminSession))
	router.GET("/api/v1/surah", h.List)
	router.POST("/api/v1/surah", h.Create)
	router.DELETE("/api/v1/surah/:id", h.Delete)
	return router, svc
}

func TestSurahHandler(t *testing.T) {
	router, svc := newSurahRouter(t)
	svc.EXPECT().List(mock.Anything).Return([]domain.Surah{{ID: 1, Name: "Al-Fatiha"}, {ID: 2, Name: "Al-Baqarah"}}, nil)
	svc.EXPECT().Create(mock.Anything, adminSession, domain.Surah{ID: 114, Name: "An-Nas"}).
		Return(&domain.Surah{ID: 114, Name: "An-Nas"}, nil)
	svc.EXPECT().Delete(mock.Anything, adminSession, 2).
		Return(fmt.Errorf("surah 2 has videos: %w", domain.ErrConflict))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/surah", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeEnvelope(t, w.Body.Bytes()).Result, 2)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/surah", strings.NewReader(`{"id":114,"name":"An-Nas"}`)))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Surah added successfully", decodeEnvelope(t, w.Body.Bytes()).Msg)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/surah/2", nil))
	assert.Equal(t, http.StatusConflict, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/surah/0", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
