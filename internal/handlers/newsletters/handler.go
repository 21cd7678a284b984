package newsletters

import (
	"context"
	"errors"
	"net/http"

	"github.com/Nazarious-ucu/newsletter-manager/internal/handlers"
	"github.com/Nazarious-ucu/newsletter-manager/internal/models"
	"github.com/gin-gonic/gin"
)

const (
	pageList = "newsletters"
	pageEdit = "newsletter"
)

type newsletterService interface {
	CreateNewsletter(ctx context.Context, form models.NewsletterForm) models.Result[models.Newsletter]
	UpdateNewsletter(ctx context.Context, id string, form models.NewsletterForm) models.Result[models.Newsletter]
	GetNewsletters(ctx context.Context) ([]models.Newsletter, error)
	GetNewsletterByID(ctx context.Context, id string) (models.Newsletter, error)
}

type Handler struct {
	Service newsletterService
}

func NewHandler(svc newsletterService) *Handler {
	return &Handler{Service: svc}
}

// List
// @Summary List newsletters
// @Description Returns every newsletter, newest first. Renders HTML unless JSON is requested.
// @Tags newsletters
// @Produce json,html
// @Success 200 {array} models.Newsletter
// @Failure 500
// @Router /dashboard/newsletters [get]
func (h *Handler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), handlers.TimeoutDuration)
	defer cancel()

	list, err := h.Service.GetNewsletters(ctx)
	if err != nil {
		handlers.RespondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	if handlers.WantsJSON(c) {
		c.JSON(http.StatusOK, list)
		return
	}
	view := handlers.NewView(c, "Newsletters")
	view.Data = list
	c.HTML(http.StatusOK, pageList, view)
}

// Get
// @Summary Get a newsletter
// @Tags newsletters
// @Produce json,html
// @Param id path string true "Newsletter id"
// @Success 200 {object} models.Newsletter
// @Failure 404
// @Failure 500
// @Router /dashboard/newsletters/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), handlers.TimeoutDuration)
	defer cancel()

	n, err := h.Service.GetNewsletterByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			handlers.RespondError(c, http.StatusNotFound, "Newsletter not found.")
			return
		}
		handlers.RespondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	if handlers.WantsJSON(c) {
		c.JSON(http.StatusOK, n)
		return
	}
	view := handlers.NewView(c, n.Name)
	view.Data = n
	c.HTML(http.StatusOK, pageEdit, view)
}

// Create
// @Summary Create a newsletter
// @Tags newsletters
// @Accept application/x-www-form-urlencoded
// @Produce json
// @Param name formData string true "Name, at least 3 characters"
// @Param frequency formData string false "Frequency" Enums(DAILY, WEEKLY, MONTHLY) default(WEEKLY)
// @Param ownerId formData string true "Owning user id"
// @Success 303
// @Failure 422 {object} models.Result[models.Newsletter]
// @Failure 500 {object} models.Result[models.Newsletter]
// @Router /dashboard/newsletters [post]
func (h *Handler) Create(c *gin.Context) {
	var form models.NewsletterForm
	if err := c.ShouldBind(&form); err != nil {
		handlers.RespondError(c, http.StatusBadRequest, "Malformed form.")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), handlers.TimeoutDuration)
	defer cancel()

	res := h.Service.CreateNewsletter(ctx, form)

	view := handlers.NewView(c, "Newsletters")
	view.Form["name"] = form.Name
	if !res.Succeeded() && !handlers.WantsJSON(c) {
		// the list is only decoration around the form, so a failed read leaves it empty
		if list, err := h.Service.GetNewsletters(ctx); err == nil {
			view.Data = list
		}
	}
	handlers.RespondResult(c, res, pageList, view)
}

// Update
// @Summary Update a newsletter
// @Tags newsletters
// @Accept application/x-www-form-urlencoded
// @Produce json
// @Param id path string true "Newsletter id"
// @Param name formData string true "Name, at least 3 characters"
// @Param frequency formData string false "Frequency" Enums(DAILY, WEEKLY, MONTHLY) default(WEEKLY)
// @Param ownerId formData string true "Owning user id"
// @Success 303
// @Failure 404 {object} models.Result[models.Newsletter]
// @Failure 422 {object} models.Result[models.Newsletter]
// @Failure 500 {object} models.Result[models.Newsletter]
// @Router /dashboard/newsletters/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	var form models.NewsletterForm
	if err := c.ShouldBind(&form); err != nil {
		handlers.RespondError(c, http.StatusBadRequest, "Malformed form.")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), handlers.TimeoutDuration)
	defer cancel()

	id := c.Param("id")
	res := h.Service.UpdateNewsletter(ctx, id, form)

	view := handlers.NewView(c, "Edit newsletter")
	if !res.Succeeded() && !handlers.WantsJSON(c) {
		if n, err := h.Service.GetNewsletterByID(ctx, id); err == nil {
			view.Data = n
		}
	}
	handlers.RespondResult(c, res, pageEdit, view)
}
