package leads

import (
	"context"
	"net/http"

	"github.com/Nazarious-ucu/newsletter-manager/internal/handlers"
	"github.com/Nazarious-ucu/newsletter-manager/internal/models"
	"github.com/gin-gonic/gin"
)

const page = "home"

type leadCreator interface {
	CreateLead(ctx context.Context, form models.LeadForm) models.Result[models.Lead]
}

type Handler struct {
	Service leadCreator
}

func NewHandler(svc leadCreator) *Handler {
	return &Handler{Service: svc}
}

// Create
// @Summary Capture a lead
// @Description Stores the email as a newsletter lead and sends a welcome email in the background.
// @Tags leads
// @Accept application/x-www-form-urlencoded
// @Produce json
// @Param email formData string true "Email address"
// @Param source formData string false "Where the lead came from" default(web)
// @Success 303
// @Failure 400
// @Failure 409 {object} models.Result[models.Lead]
// @Failure 422 {object} models.Result[models.Lead]
// @Failure 500 {object} models.Result[models.Lead]
// @Router /leads [post]
func (h *Handler) Create(c *gin.Context) {
	var form models.LeadForm
	if err := c.ShouldBind(&form); err != nil {
		handlers.RespondError(c, http.StatusBadRequest, "Malformed form.")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), handlers.TimeoutDuration)
	defer cancel()

	res := h.Service.CreateLead(ctx, form)

	view := handlers.NewView(c, "Home")
	view.Form["email"] = form.Email
	handlers.RespondResult(c, res, page, view)
}
