package invoices

import (
	"context"
	"errors"
	"net/http"

	"github.com/Nazarious-ucu/newsletter-manager/internal/handlers"
	"github.com/Nazarious-ucu/newsletter-manager/internal/models"
	"github.com/gin-gonic/gin"
)

const (
	page     = "invoices"
	pageEdit = "invoice"
)

type invoiceService interface {
	CreateInvoice(ctx context.Context, form models.InvoiceForm) models.Result[models.Invoice]
	UpdateInvoice(ctx context.Context, id string, form models.InvoiceForm) models.Result[models.Invoice]
	DeleteInvoice(ctx context.Context, id string) models.Result[models.Invoice]
	ListInvoices(ctx context.Context) ([]models.Invoice, error)
	GetInvoiceByID(ctx context.Context, id string) (models.Invoice, error)
}

type Handler struct {
	Service invoiceService
}

func NewHandler(svc invoiceService) *Handler {
	return &Handler{Service: svc}
}

// List
// @Summary List invoices
// @Description Returns every invoice, most recent date first. Amounts are in cents.
// @Tags invoices
// @Produce json,html
// @Success 200 {array} models.Invoice
// @Failure 500
// @Router /dashboard/invoices [get]
func (h *Handler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), handlers.TimeoutDuration)
	defer cancel()

	list, err := h.Service.ListInvoices(ctx)
	if err != nil {
		handlers.RespondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	if handlers.WantsJSON(c) {
		c.JSON(http.StatusOK, list)
		return
	}
	view := handlers.NewView(c, "Invoices")
	view.Data = list
	c.HTML(http.StatusOK, page, view)
}

// Get
// @Summary Get an invoice
// @Tags invoices
// @Produce json,html
// @Param id path string true "Invoice id"
// @Success 200 {object} models.Invoice
// @Failure 404
// @Failure 500
// @Router /dashboard/invoices/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), handlers.TimeoutDuration)
	defer cancel()

	inv, err := h.Service.GetInvoiceByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			handlers.RespondError(c, http.StatusNotFound, "Invoice not found.")
			return
		}
		handlers.RespondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	if handlers.WantsJSON(c) {
		c.JSON(http.StatusOK, inv)
		return
	}
	view := handlers.NewView(c, "Edit invoice")
	view.Data = inv
	c.HTML(http.StatusOK, pageEdit, view)
}

// Create
// @Summary Create an invoice
// @Tags invoices
// @Accept application/x-www-form-urlencoded
// @Produce json
// @Param customerId formData string true "Customer id"
// @Param amount formData string true "Amount in dollars, e.g. 12.50"
// @Param status formData string true "Status" Enums(pending, paid)
// @Success 303
// @Failure 422 {object} models.Result[models.Invoice]
// @Failure 500 {object} models.Result[models.Invoice]
// @Router /dashboard/invoices [post]
func (h *Handler) Create(c *gin.Context) {
	var form models.InvoiceForm
	if err := c.ShouldBind(&form); err != nil {
		handlers.RespondError(c, http.StatusBadRequest, "Malformed form.")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), handlers.TimeoutDuration)
	defer cancel()

	res := h.Service.CreateInvoice(ctx, form)
	handlers.RespondResult(c, res, page, h.listView(ctx, c, form, res.Succeeded()))
}

// Update
// @Summary Update an invoice
// @Tags invoices
// @Accept application/x-www-form-urlencoded
// @Produce json
// @Param id path string true "Invoice id"
// @Param customerId formData string true "Customer id"
// @Param amount formData string true "Amount in dollars, e.g. 12.50"
// @Param status formData string true "Status" Enums(pending, paid)
// @Success 303
// @Failure 422 {object} models.Result[models.Invoice]
// @Failure 500 {object} models.Result[models.Invoice]
// @Router /dashboard/invoices/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	var form models.InvoiceForm
	if err := c.ShouldBind(&form); err != nil {
		handlers.RespondError(c, http.StatusBadRequest, "Malformed form.")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), handlers.TimeoutDuration)
	defer cancel()

	res := h.Service.UpdateInvoice(ctx, c.Param("id"), form)
	handlers.RespondResult(c, res, page, h.listView(ctx, c, form, res.Succeeded()))
}

// Delete
// @Summary Delete an invoice
// @Description Deleting an id that does not exist still succeeds.
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice id"
// @Success 200 {object} models.Result[models.Invoice]
// @Failure 422 {object} models.Result[models.Invoice]
// @Failure 500 {object} models.Result[models.Invoice]
// @Router /dashboard/invoices/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), handlers.TimeoutDuration)
	defer cancel()

	res := h.Service.DeleteInvoice(ctx, c.Param("id"))
	handlers.RespondResult(c, res, page, h.listView(ctx, c, models.InvoiceForm{}, false))
}

func (h *Handler) listView(ctx context.Context, c *gin.Context, form models.InvoiceForm, succeeded bool) handlers.View {
	view := handlers.NewView(c, "Invoices")
	view.Form["customerId"] = form.CustomerID
	view.Form["amount"] = form.Amount
	if succeeded || handlers.WantsJSON(c) {
		return view
	}
	if list, err := h.Service.ListInvoices(ctx); err == nil {
		view.Data = list
	}
	return view
}
