package handler

import (
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

func newRegistrationRouter(t *testing.T, s *domain.Session) (*gin.Engine, *mocks.MockRegistrationServiceInterface) {
	t.Helper()
	svc := mocks.NewMockRegistrationServiceInterface(t)
	h := NewRegistrationHandler(svc)

	router := gin.New()
	if s != nil {
		router.Use(withSession(*s))
	}
	router.POST("/api/v1/class-registration", h.Register)
	router.GET("/api/v1/class-registration", h.List)
	router.PUT("/api/v1/class-registration/:id", h.UpdateStatus)
	return router, svc
}

func TestRegistrationHandler_Register(t *testing.T) {
	router, svc := newRegistrationRouter(t, nil)
	svc.EXPECT().
		Register(mock.Anything, mock.MatchedBy(func(in domain.RegistrationInput) bool {
			return in.Name == "Aisha" && in.ClassType == "Tajweed"
		})).
		Return(&domain.RegistrationView{ID: 9, Name: "Aisha", Status: domain.RegistrationStatusPending}, nil)
	svc.EXPECT().
		Register(mock.Anything, mock.MatchedBy(func(in domain.RegistrationInput) bool { return in.Name == "" })).
		Return(nil, domain.ErrInvalidInput)

	body := `{"name":"Aisha","email":"aisha@example.com","phone":"+91 99999","language":"English","classType":"Tajweed","timing":"Evening","days":"Weekends"}`
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/class-registration", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	assert.Equal(t, "Registration successful! We will contact you on WhatsApp soon.", env.Msg)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/class-registration", strings.NewReader(`{"name":""}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegistrationHandler_List(t *testing.T) {
	t.Run("passes the query through", func(t *testing.T) {
		router, svc := newRegistrationRouter(t, &adminSession)
		svc.EXPECT().
			List(mock.Anything, adminSession, domain.RegistrationFilter{Status: "pending", Language: "all", Page: 2, PerPage: 10}).
			Return([]domain.RegistrationView{{ID: 11}, {ID: 12}}, 12, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/class-registration?status=pending&language=all&page=2&perPage=10", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "12", w.Header().Get(TotalCountHeader))
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Len(t, env.Result, 2)
	})

	t.Run("bad page", func(t *testing.T) {
		router, _ := newRegistrationRouter(t, &adminSession)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/class-registration?page=two", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("non-admin", func(t *testing.T) {
		router, svc := newRegistrationRouter(t, &userSession)
		svc.EXPECT().List(mock.Anything, userSession, mock.Anything).Return(nil, 0, domain.ErrForbidden)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/class-registration", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.JSONEq(t, `{"code":403,"msg":"admin access required"}`, w.Body.String())
	})
}

func TestRegistrationHandler_UpdateStatus(t *testing.T) {
	router, svc := newRegistrationRouter(t, &adminSession)
	svc.EXPECT().
		UpdateStatus(mock.Anything, adminSession, int64(5), domain.RegistrationStatusUpdate{Status: "confirmed"}).
		Return(&domain.RegistrationView{ID: 5, Status: "confirmed"}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/v1/class-registration/5", strings.NewReader(`{"status":"confirmed"}`)))

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	assert.Equal(t, "Status updated", env.Msg)
}
