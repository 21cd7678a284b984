package invoices

import (
	"context"
	"errors"
	"time"

	"github.com/Nazarious-ucu/newsletter-manager/internal/cache"
	"github.com/Nazarious-ucu/newsletter-manager/internal/models"
	"github.com/Nazarious-ucu/newsletter-manager/internal/validation"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	actionCreate = "createInvoice"
	actionUpdate = "updateInvoice"
	actionDelete = "deleteInvoice"

	msgCreateMissing  = "Missing Fields. Failed to Create Invoice."
	msgUpdateMissing  = "Missing Fields. Failed to Update Invoice."
	msgDeleteMissing  = "Missing Fields. Failed to Delete Invoice."
	msgCreateStorage  = "Database Error: Failed to Create Invoice."
	msgUpdateStorage  = "Database Error: Failed to Update Invoice."
	msgDeleteStorage  = "Database Error: Failed to Delete Invoice."
	msgInvalidID      = "Invalid invoice id."
	msgAmount         = "Please enter an amount greater than $0."
	msgAmountTooLarge = "Amount is too large."

	MsgDeleted = "Deleted Invoice."

	msgFetchList = "Failed to fetch invoices."
	msgFetchOne  = "Failed to fetch invoice."
)

type InvoiceRepository interface {
	Create(ctx context.Context, inv *models.Invoice) error
	Update(ctx context.Context, inv *models.Invoice) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (models.Invoice, error)
	List(ctx context.Context) ([]models.Invoice, error)
}

type PageCache interface {
	cache.Store[[]models.Invoice]
	Revalidate(ctx context.Context, route string) error
}

type actionRecorder interface {
	RecordAction(action, outcome string)
}

type Service struct {
	repo      InvoiceRepository
	pages     PageCache
	validator *validation.Validator
	recorder  actionRecorder
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(
	repo InvoiceRepository,
	pages PageCache,
	validator *validation.Validator,
	recorder actionRecorder,
	logger *zap.Logger,
) *Service {
	return &Service{
		repo:      repo,
		pages:     pages,
		validator: validator,
		recorder:  recorder,
		logger:    logger.With(zap.String("component", "invoices_service")),
		now:       time.Now,
	}
}

func (s *Service) CreateInvoice(ctx context.Context, form models.InvoiceForm) models.Result[models.Invoice] {
	res := s.createInvoice(ctx, form)
	s.recorder.RecordAction(actionCreate, res.Outcome.String())
	return res
}

func (s *Service) createInvoice(ctx context.Context, form models.InvoiceForm) models.Result[models.Invoice] {
	inv, errs := s.parse(form)
	if errs != nil {
		return models.ValidationFailed[models.Invoice](errs, msgCreateMissing)
	}
	inv.ID = uuid.New()
	inv.Date = s.now().UTC().Format(models.InvoiceDateLayout)

	if err := s.repo.Create(ctx, &inv); err != nil {
		s.logger.Error(msgCreateStorage, zap.Error(err))
		return models.StorageFailed[models.Invoice](msgCreateStorage, err)
	}

	s.revalidate(ctx)
	return models.OK(inv, models.RouteInvoices)
}

func (s *Service) UpdateInvoice(ctx context.Context, id string, form models.InvoiceForm) models.Result[models.Invoice] {
	res := s.updateInvoice(ctx, id, form)
	s.recorder.RecordAction(actionUpdate, res.Outcome.String())
	return res
}

func (s *Service) updateInvoice(ctx context.Context, id string, form models.InvoiceForm) models.Result[models.Invoice] {
	invoiceID, err := uuid.Parse(id)
	if err != nil {
		return models.ValidationFailed[models.Invoice](models.FieldErrors{"id": {msgInvalidID}}, msgUpdateMissing)
	}
	inv, errs := s.parse(form)
	if errs != nil {
		return models.ValidationFailed[models.Invoice](errs, msgUpdateMissing)
	}
	inv.ID = invoiceID

	if err := s.repo.Update(ctx, &inv); err != nil {
		s.logger.Error(msgUpdateStorage, zap.String("id", id), zap.Error(err))
		return models.StorageFailed[models.Invoice](msgUpdateStorage, err)
	}

	s.revalidate(ctx)
	return models.OK(inv, models.RouteInvoices)
}

// DeleteInvoice does not check that the invoice exists.
func (s *Service) DeleteInvoice(ctx context.Context, id string) models.Result[models.Invoice] {
	res := s.deleteInvoice(ctx, id)
	s.recorder.RecordAction(actionDelete, res.Outcome.String())
	return res
}

func (s *Service) deleteInvoice(ctx context.Context, id string) models.Result[models.Invoice] {
	invoiceID, err := uuid.Parse(id)
	if err != nil {
		return models.ValidationFailed[models.Invoice](models.FieldErrors{"id": {msgInvalidID}}, msgDeleteMissing)
	}

	if err := s.repo.Delete(ctx, invoiceID); err != nil {
		s.logger.Error(msgDeleteStorage, zap.String("id", id), zap.Error(err))
		return models.StorageFailed[models.Invoice](msgDeleteStorage, err)
	}

	s.revalidate(ctx)
	res := models.OK(models.Invoice{ID: invoiceID}, "")
	res.Message = MsgDeleted
	return res
}

// ListInvoices returns every invoice, most recent date first.
func (s *Service) ListInvoices(ctx context.Context) ([]models.Invoice, error) {
	var store cache.Store[[]models.Invoice]
	if s.pages != nil {
		store = s.pages
	}

	list, err := cache.ReadThrough(ctx, store, models.RouteInvoices, s.logger, s.repo.List)
	if err != nil {
		s.logger.Error(msgFetchList, zap.Error(err))
		return nil, models.FetchFailed(msgFetchList)
	}
	return list, nil
}

func (s *Service) GetInvoiceByID(ctx context.Context, id string) (models.Invoice, error) {
	invoiceID, err := uuid.Parse(id)
	if err != nil {
		return models.Invoice{}, models.ErrNotFound
	}

	inv, err := s.repo.GetByID(ctx, invoiceID)
	if errors.Is(err, models.ErrNotFound) {
		return models.Invoice{}, err
	}
	if err != nil {
		s.logger.Error(msgFetchOne, zap.String("id", id), zap.Error(err))
		return models.Invoice{}, models.FetchFailed(msgFetchOne)
	}
	return inv, nil
}

func (s *Service) parse(form models.InvoiceForm) (models.Invoice, models.FieldErrors) {
	if errs := s.validator.Validate(&form); errs != nil {
		return models.Invoice{}, errs
	}

	cents, err := models.ToCents(form.Amount)
	if errors.Is(err, models.ErrAmountTooLarge) {
		return models.Invoice{}, models.FieldErrors{"amount": {msgAmountTooLarge}}
	}
	if err != nil || cents <= 0 {
		// sub-cent amounts pass validation but round to zero
		return models.Invoice{}, models.FieldErrors{"amount": {msgAmount}}
	}

	return models.Invoice{
		CustomerID: uuid.MustParse(form.CustomerID),
		Amount:     cents,
		Status:     models.InvoiceStatus(form.Status),
	}, nil
}

func (s *Service) revalidate(ctx context.Context) {
	if s.pages == nil {
		return
	}
	if err := s.pages.Revalidate(ctx, models.RouteInvoices); err != nil {
		s.logger.Warn("failed to revalidate page", zap.String("route", models.RouteInvoices), zap.Error(err))
	}
}

