package leads

import (
	"context"
	"errors"
	"time"

	"github.com/Nazarious-ucu/newsletter-manager/internal/models"
	"github.com/Nazarious-ucu/newsletter-manager/internal/validation"
	"github.com/Nazarious-ucu/newsletter-manager/pkg/messaging"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	actionCreate = "createLead"

	msgInvalid   = "Invalid email address."
	msgDuplicate = "Email already registered."
	msgStorage   = "Database Error: Failed to Create Lead."
)

type LeadRepository interface {
	Create(ctx context.Context, lead *models.Lead) error
}

type LeadNotifier interface {
	NotifyNewLead(ctx context.Context, event messaging.NewLeadEvent)
}

type actionRecorder interface {
	RecordAction(action, outcome string)
}

type Service struct {
	repo      LeadRepository
	notifier  LeadNotifier
	validator *validation.Validator
	recorder  actionRecorder
	logger    *zap.Logger
}

func NewService(
	repo LeadRepository,
	notifier LeadNotifier,
	validator *validation.Validator,
	recorder actionRecorder,
	logger *zap.Logger,
) *Service {
	return &Service{
		repo:      repo,
		notifier:  notifier,
		validator: validator,
		recorder:  recorder,
		logger:    logger.With(zap.String("component", "leads_service")),
	}
}

// CreateLead stores the address and queues the welcome email without waiting for it.
func (s *Service) CreateLead(ctx context.Context, form models.LeadForm) models.Result[models.Lead] {
	res := s.createLead(ctx, form)
	s.recorder.RecordAction(actionCreate, res.Outcome.String())
	return res
}

func (s *Service) createLead(ctx context.Context, form models.LeadForm) models.Result[models.Lead] {
	if errs := s.validator.Validate(&form); errs != nil {
		return models.ValidationFailed[models.Lead](errs, msgInvalid)
	}

	lead := models.Lead{
		ID:        uuid.New(),
		Email:     form.Email,
		Source:    form.Source,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, &lead); err != nil {
		if errors.Is(err, models.ErrDuplicate) {
			s.logger.Info("lead already captured", zap.String("email", lead.Email))
			return models.StorageFailed[models.Lead](msgDuplicate, err)
		}
		s.logger.Error("failed to create lead", zap.Error(err))
		return models.StorageFailed[models.Lead](msgStorage, err)
	}

	s.notifier.NotifyNewLead(ctx, messaging.NewLeadEvent{
		Email:      lead.Email,
		Source:     lead.Source,
		CapturedAt: lead.CreatedAt,
	})

	return models.OK(lead, models.RouteHome)
}
