package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Nazarious-ucu/newsletter-manager/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const TimeoutDuration = 10 * time.Second

// ViewUser is the signed-in user shown in the navigation menu.
type ViewUser struct {
	ID   uuid.UUID
	Name string
}

// View is the data every page template renders.
type View struct {
	Title   string
	User    *ViewUser
	Toast   string
	Form    map[string]string
	Errors  models.FieldErrors
	Message string
	Data    any
}

func NewView(c *gin.Context, title string) View {
	return View{
		Title: title,
		User:  CurrentUser(c),
		Form:  map[string]string{},
	}
}

// WantsJSON reports whether the client prefers JSON over HTML.
func WantsJSON(c *gin.Context) bool {
	return c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON
}

// FailureStatus maps a failed result to its HTTP status.
func FailureStatus[T any](res models.Result[T]) int {
	if res.Outcome == models.OutcomeValidationFailed {
		return http.StatusUnprocessableEntity
	}

	switch {
	case errors.Is(res.Cause, models.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(res.Cause, models.ErrInvalidReference):
		return http.StatusUnprocessableEntity
	case errors.Is(res.Cause, models.ErrNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// RespondResult redirects on success. On failure it answers JSON or re-renders
// page with the field errors and message filled into view.
func RespondResult[T any](c *gin.Context, res models.Result[T], page string, view View) {
	if res.Succeeded() {
		if res.Redirect != "" {
			c.Redirect(http.StatusSeeOther, res.Redirect)
			return
		}
		if WantsJSON(c) {
			c.JSON(http.StatusOK, res)
			return
		}
		view.Toast = res.Message
		c.HTML(http.StatusOK, page, view)
		return
	}

	status := FailureStatus(res)
	if WantsJSON(c) {
		c.JSON(status, res)
		return
	}

	view.Errors = res.Errors
	view.Message = res.Message
	c.HTML(status, page, view)
}

// RespondError renders an error page or JSON body with status.
func RespondError(c *gin.Context, status int, message string) {
	if WantsJSON(c) {
		c.JSON(status, gin.H{"error": message})
		return
	}
	view := NewView(c, http.StatusText(status))
	view.Message = message
	c.HTML(status, "error", view)
}
