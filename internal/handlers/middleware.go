package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/Nazarious-ucu/newsletter-manager/internal/identity"
	"github.com/Nazarious-ucu/newsletter-manager/internal/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const sessionKey = "session"

type sessionVerifier interface {
	Verify(ctx context.Context, token string) (identity.Session, error)
}

// LoadSession attaches the session for a valid cookie and lets every request through.
func LoadSession(verifier sessionVerifier, cookieName string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sess, ok := verify(c, verifier, cookieName, logger); ok {
			SetSession(c, sess)
		}
		c.Next()
	}
}

// RequireSession redirects to the login page unless LoadSession found a valid session.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := Session(c); !ok {
			if WantsJSON(c) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not signed in."})
				return
			}
			c.Redirect(http.StatusSeeOther, models.RouteLogin)
			c.Abort()
			return
		}
		c.Next()
	}
}

func verify(c *gin.Context, verifier sessionVerifier, cookieName string, logger *zap.Logger) (identity.Session, bool) {
	token, err := c.Cookie(cookieName)
	if err != nil || token == "" {
		return identity.Session{}, false
	}

	sess, err := verifier.Verify(c.Request.Context(), token)
	if err != nil {
		if _, isProvider := identity.AsProviderError(err); !isProvider {
			logger.Error("session verification failed", zap.Error(err))
		}
		return identity.Session{}, false
	}
	return sess, true
}

func SetSession(c *gin.Context, sess identity.Session) {
	c.Set(sessionKey, sess)
}

func Session(c *gin.Context) (identity.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return identity.Session{}, false
	}
	sess, ok := v.(identity.Session)
	return sess, ok
}

func CurrentUser(c *gin.Context) *ViewUser {
	sess, ok := Session(c)
	if !ok {
		return nil
	}
	return &ViewUser{ID: sess.UserID, Name: sess.Name}
}

// RequestLogger logs one line per request.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	logger = logger.With(zap.String("component", "http"))
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
			logger.Error("request failed", fields...)
			return
		}
		logger.Info("request completed", fields...)
	}
}
