package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Nazarious-ucu/newsletter-manager/internal/handlers"
	"github.com/Nazarious-ucu/newsletter-manager/internal/identity"
	"github.com/Nazarious-ucu/newsletter-manager/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubVerifier struct {
	sess identity.Session
	err  error
}

func (s stubVerifier) Verify(context.Context, string) (identity.Session, error) {
	return s.sess, s.err
}

func protectedRouter(v stubVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers.LoadSession(v, "session", zap.NewNop()))
	r.GET("/dashboard", handlers.RequireSession(), func(c *gin.Context) {
		c.String(http.StatusOK, handlers.CurrentUser(c).Name)
	})
	return r
}

func TestRequireSession(t *testing.T) {
	valid := stubVerifier{sess: identity.Session{UserID: uuid.New(), Name: "Ada"}}

	cases := []struct {
		name     string
		verifier stubVerifier
		cookie   string
		wantCode int
	}{
		{"no cookie", valid, "", http.StatusSeeOther},
		{"valid token", valid, "tok", http.StatusOK},
		{"revoked token", stubVerifier{err: &identity.Error{Type: identity.SessionTokenError}}, "tok", http.StatusSeeOther},
		{"store failure", stubVerifier{err: errors.New("redis down")}, "tok", http.StatusSeeOther},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "session", Value: tc.cookie})
			}
			w := httptest.NewRecorder()
			protectedRouter(tc.verifier).ServeHTTP(w, req)

			assert.Equal(t, tc.wantCode, w.Code)
			if tc.wantCode == http.StatusSeeOther {
				assert.Equal(t, models.RouteLogin, w.Header().Get("Location"))
			} else {
				assert.Equal(t, "Ada", w.Body.String())
			}
		})
	}
}

func TestRequireSession_JSONClient(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()

	protectedRouter(stubVerifier{}).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestFailureStatus(t *testing.T) {
	assert.Equal(t, http.StatusUnprocessableEntity,
		handlers.FailureStatus(models.ValidationFailed[int](models.FieldErrors{"x": {"y"}}, "m")))
	assert.Equal(t, http.StatusConflict,
		handlers.FailureStatus(models.StorageFailed[int]("m", models.ErrDuplicate)))
	assert.Equal(t, http.StatusUnprocessableEntity,
		handlers.FailureStatus(models.StorageFailed[int]("m", models.ErrInvalidReference)))
	assert.Equal(t, http.StatusNotFound,
		handlers.FailureStatus(models.StorageFailed[int]("m", models.ErrNotFound)))
	assert.Equal(t, http.StatusInternalServerError,
		handlers.FailureStatus(models.StorageFailed[int]("m", errors.New("boom"))))
}
