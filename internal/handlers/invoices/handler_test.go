package invoices_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/Nazarious-ucu/newsletter-manager/internal/handlers/handlerstest"
	"github.com/Nazarious-ucu/newsletter-manager/internal/handlers/invoices"
	"github.com/Nazarious-ucu/newsletter-manager/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockService struct{ mock.Mock }

func (m *mockService) CreateInvoice(ctx context.Context, form models.InvoiceForm) models.Result[models.Invoice] {
	return m.Called(ctx, form).Get(0).(models.Result[models.Invoice])
}

func (m *mockService) UpdateInvoice(ctx context.Context, id string, form models.InvoiceForm) models.Result[models.Invoice] {
	return m.Called(ctx, id, form).Get(0).(models.Result[models.Invoice])
}

func (m *mockService) DeleteInvoice(ctx context.Context, id string) models.Result[models.Invoice] {
	return m.Called(ctx, id).Get(0).(models.Result[models.Invoice])
}

func (m *mockService) ListInvoices(ctx context.Context) ([]models.Invoice, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]models.Invoice)
	return list, args.Error(1)
}

func (m *mockService) GetInvoiceByID(ctx context.Context, id string) (models.Invoice, error) {
	args := m.Called(ctx, id)
	inv, _ := args.Get(0).(models.Invoice)
	return inv, args.Error(1)
}

func setupRouter(t *testing.T, svc *mockService) *gin.Engine {
	r := handlerstest.NewRouter(t)
	r.Use(handlerstest.SignedIn("Ada"))
	h := invoices.NewHandler(svc)
	r.GET("/dashboard/invoices", h.List)
	r.POST("/dashboard/invoices", h.Create)
	r.GET("/dashboard/invoices/:id", h.Get)
	r.POST("/dashboard/invoices/:id", h.Update)
	r.PUT("/dashboard/invoices/:id", h.Update)
	r.DELETE("/dashboard/invoices/:id", h.Delete)
	r.POST("/dashboard/invoices/:id/delete", h.Delete)
	return r
}

func request(r *gin.Engine, method, target string, form url.Values, accept string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func deleted(id uuid.UUID) models.Result[models.Invoice] {
	res := models.OK(models.Invoice{ID: id}, "")
	res.Message = "Deleted Invoice."
	return res
}

func TestCreate(t *testing.T) {
	customer := uuid.NewString()
	form := url.Values{"customerId": {customer}, "amount": {"12.50"}, "status": {"pending"}}

	t.Run("success", func(t *testing.T) {
		svc := new(mockService)
		svc.On("CreateInvoice", mock.Anything, models.InvoiceForm{CustomerID: customer, Amount: "12.50", Status: "pending"}).
			Return(models.OK(models.Invoice{Amount: 1250}, models.RouteInvoices)).Once()

		w := request(setupRouter(t, svc), http.MethodPost, "/dashboard/invoices", form, "")

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, models.RouteInvoices, w.Header().Get("Location"))
	})

	t.Run("amount rejected", func(t *testing.T) {
		svc := new(mockService)
		svc.On("CreateInvoice", mock.Anything, mock.Anything).Return(models.ValidationFailed[models.Invoice](
			models.FieldErrors{"amount": {"Please enter an amount greater than $0."}},
			"Missing Fields. Failed to Create Invoice.",
		)).Once()
		svc.On("ListInvoices", mock.Anything).Return([]models.Invoice{}, nil).Once()

		w := request(setupRouter(t, svc), http.MethodPost, "/dashboard/invoices", form, "")

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "Please enter an amount greater than $0.")
	})

	t.Run("storage failure json", func(t *testing.T) {
		svc := new(mockService)
		svc.On("CreateInvoice", mock.Anything, mock.Anything).
			Return(models.StorageFailed[models.Invoice]("Database Error: Failed to Create Invoice.", assert.AnError)).Once()

		w := request(setupRouter(t, svc), http.MethodPost, "/dashboard/invoices", form, "application/json")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Database Error: Failed to Create Invoice.")
	})
}

func TestUpdate(t *testing.T) {
	id := uuid.NewString()
	svc := new(mockService)
	svc.On("UpdateInvoice", mock.Anything, id, mock.Anything).
		Return(models.OK(models.Invoice{}, models.RouteInvoices)).Twice()
	r := setupRouter(t, svc)
	form := url.Values{"customerId": {uuid.NewString()}, "amount": {"1"}, "status": {"paid"}}

	for _, method := range []string{http.MethodPost, http.MethodPut} {
		w := request(r, method, "/dashboard/invoices/"+id, form, "")
		assert.Equal(t, http.StatusSeeOther, w.Code)
	}
	svc.AssertExpectations(t)
}

func TestDelete_JSON(t *testing.T) {
	id := uuid.New()
	svc := new(mockService)
	svc.On("DeleteInvoice", mock.Anything, id.String()).Return(deleted(id)).Once()

	w := request(setupRouter(t, svc), http.MethodDelete, "/dashboard/invoices/"+id.String(), url.Values{}, "application/json")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"message":"Deleted Invoice."`)
	assert.Empty(t, w.Header().Get("Location"))
}

func TestDelete_HTMLShowsToast(t *testing.T) {
	id := uuid.New()
	svc := new(mockService)
	svc.On("DeleteInvoice", mock.Anything, id.String()).Return(deleted(id)).Once()
	svc.On("ListInvoices", mock.Anything).Return([]models.Invoice{}, nil).Once()

	w := request(setupRouter(t, svc), http.MethodPost, "/dashboard/invoices/"+id.String()+"/delete", url.Values{}, "text/html")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Deleted Invoice.")
	assert.Contains(t, w.Body.String(), "No invoices yet.")
}

func TestList_FormatsCents(t *testing.T) {
	svc := new(mockService)
	svc.On("ListInvoices", mock.Anything).Return([]models.Invoice{{ID: uuid.New(), Amount: 1250, Status: "paid", Date: "2025-06-01"}}, nil).Once()

	w := request(setupRouter(t, svc), http.MethodGet, "/dashboard/invoices", url.Values{}, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "$12.50")
}

func TestGet(t *testing.T) {
	id := uuid.New()
	inv := models.Invoice{ID: id, CustomerID: uuid.New(), Amount: 1250, Status: models.InvoicePaid, Date: "2026-10-19"}

	t.Run("edit page", func(t *testing.T) {
		svc := new(mockService)
		svc.On("GetInvoiceByID", mock.Anything, id.String()).Return(inv, nil).Once()

		w := request(setupRouter(t, svc), http.MethodGet, "/dashboard/invoices/"+id.String(), nil, "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `value="12.50"`)
		assert.Contains(t, w.Body.String(), `action="/dashboard/invoices/`+id.String()+`"`)
	})

	t.Run("json", func(t *testing.T) {
		svc := new(mockService)
		svc.On("GetInvoiceByID", mock.Anything, id.String()).Return(inv, nil).Once()

		w := request(setupRouter(t, svc), http.MethodGet, "/dashboard/invoices/"+id.String(), nil, "application/json")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"amount":1250`)
	})

	t.Run("missing", func(t *testing.T) {
		svc := new(mockService)
		svc.On("GetInvoiceByID", mock.Anything, "missing").Return(nil, models.ErrNotFound).Once()

		w := request(setupRouter(t, svc), http.MethodGet, "/dashboard/invoices/missing", nil, "application/json")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Invoice not found."}`, w.Body.String())
	})
}
