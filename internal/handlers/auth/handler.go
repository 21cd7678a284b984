package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/Nazarious-ucu/newsletter-manager/internal/handlers"
	"github.com/Nazarious-ucu/newsletter-manager/internal/identity"
	"github.com/Nazarious-ucu/newsletter-manager/internal/models"
	"github.com/gin-gonic/gin"
)

const (
	pageLogin  = "login"
	pageSignup = "signup"

	toastSignedOut = "signed-out"
	msgSignedOut   = "Signed out successfully."
)

type authenticator interface {
	Authenticate(ctx context.Context, creds models.Credentials) (identity.Session, string, error)
	CloseSession(ctx context.Context, token string) (string, error)
}

type userCreator interface {
	CreateUser(ctx context.Context, form models.SignupForm) models.Result[models.User]
}

// CookieSettings describes the session cookie.
type CookieSettings struct {
	Name   string
	Secure bool
}

type Handler struct {
	Auth   authenticator
	Users  userCreator
	Cookie CookieSettings
}

func NewHandler(auth authenticator, users userCreator, cookie CookieSettings) *Handler {
	return &Handler{Auth: auth, Users: users, Cookie: cookie}
}

func (h *Handler) SignupPage(c *gin.Context) {
	c.HTML(http.StatusOK, pageSignup, handlers.NewView(c, "Sign up"))
}

// Signup
// @Summary Create an account
// @Tags auth
// @Accept application/x-www-form-urlencoded
// @Produce json
// @Param name formData string true "Display name"
// @Param email formData string true "Email address"
// @Param password formData string true "Password, 6 to 72 characters"
// @Success 303
// @Failure 409 {object} models.Result[models.User]
// @Failure 422 {object} models.Result[models.User]
// @Failure 500 {object} models.Result[models.User]
// @Router /signup [post]
func (h *Handler) Signup(c *gin.Context) {
	var form models.SignupForm
	if err := c.ShouldBind(&form); err != nil {
		handlers.RespondError(c, http.StatusBadRequest, "Malformed form.")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), handlers.TimeoutDuration)
	defer cancel()

	res := h.Users.CreateUser(ctx, form)

	view := handlers.NewView(c, "Sign up")
	view.Form["name"] = form.Name
	view.Form["email"] = form.Email
	handlers.RespondResult(c, res, pageSignup, view)
}

func (h *Handler) LoginPage(c *gin.Context) {
	view := handlers.NewView(c, "Log in")
	if c.Query("toast") == toastSignedOut {
		view.Toast = msgSignedOut
	}
	c.HTML(http.StatusOK, pageLogin, view)
}

// Login
// @Summary Sign in
// @Description Verifies the credentials and sets the session cookie.
// @Tags auth
// @Accept application/x-www-form-urlencoded
// @Produce json
// @Param email formData string true "Email address"
// @Param password formData string true "Password"
// @Success 303
// @Failure 401
// @Failure 500
// @Router /login [post]
func (h *Handler) Login(c *gin.Context) {
	var creds models.Credentials
	if err := c.ShouldBind(&creds); err != nil {
		handlers.RespondError(c, http.StatusBadRequest, "Malformed form.")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), handlers.TimeoutDuration)
	defer cancel()

	sess, msg, err := h.Auth.Authenticate(ctx, creds)
	if err != nil {
		_ = c.Error(err)
		handlers.RespondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if msg != "" {
		if handlers.WantsJSON(c) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}
		view := handlers.NewView(c, "Log in")
		view.Form["email"] = creds.Email
		view.Message = msg
		c.HTML(http.StatusUnauthorized, pageLogin, view)
		return
	}

	maxAge := int(time.Until(sess.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.Cookie.Name, sess.Token, maxAge, "/", "", h.Cookie.Secure, true)
	c.Redirect(http.StatusSeeOther, models.RouteDashboard)
}

// Logout
// @Summary Sign out
// @Description Revokes the session token and clears the cookie.
// @Tags auth
// @Success 303
// @Failure 400
// @Failure 500
// @Router /logout [post]
func (h *Handler) Logout(c *gin.Context) {
	token, err := c.Cookie(h.Cookie.Name)
	if err != nil || token == "" {
		c.Redirect(http.StatusSeeOther, models.RouteLogin)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), handlers.TimeoutDuration)
	defer cancel()

	msg, err := h.Auth.CloseSession(ctx, token)
	if err != nil {
		_ = c.Error(err)
		handlers.RespondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.Cookie.Name, "", -1, "/", "", h.Cookie.Secure, true)

	if msg != "" {
		handlers.RespondError(c, http.StatusBadRequest, msg)
		return
	}
	c.Redirect(http.StatusSeeOther, models.RouteSignedOut)
}
