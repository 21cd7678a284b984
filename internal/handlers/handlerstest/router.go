// Package handlerstest builds gin engines for handler tests.
package handlerstest

import (
	"testing"

	"github.com/Nazarious-ucu/newsletter-manager/internal/handlers"
	"github.com/Nazarious-ucu/newsletter-manager/internal/identity"
	"github.com/Nazarious-ucu/newsletter-manager/internal/templates"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// NewRouter returns a test engine that renders the real page templates.
func NewRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	renderer, err := templates.NewRenderer()
	require.NoError(t, err)

	r := gin.New()
	r.HTMLRender = renderer
	return r
}

// SignedIn injects a session as if the session middleware had verified one.
func SignedIn(name string) gin.HandlerFunc {
	sess := identity.Session{UserID: uuid.New(), Name: name}
	return func(c *gin.Context) {
		handlers.SetSession(c, sess)
		c.Next()
	}
}

