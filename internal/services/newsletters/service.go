package newsletters

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
	actionCreate = "createNewsletter"
	actionUpdate = "updateNewsletter"

	msgCreateMissing = "Missing Fields. Failed to Create Newsletter."
	msgUpdateMissing = "Missing Fields. Failed to Update Newsletter."
	msgCreateStorage = "Database Error: Failed to Create Newsletter."
	msgUpdateStorage = "Database Error: Failed to Update Newsletter."
	msgUnknownOwner  = "Owner does not exist."
	msgInvalidID     = "Invalid newsletter id."

	msgFetchList = "Failed to fetch newsletters."
	msgFetchOne  = "Failed to fetch newsletter."
)

type NewsletterRepository interface {
	Create(ctx context.Context, n *models.Newsletter) error
	Update(ctx context.Context, n *models.Newsletter) error
	GetByID(ctx context.Context, id uuid.UUID) (models.Newsletter, error)
	List(ctx context.Context) ([]models.Newsletter, error)
}

type PageCache interface {
	cache.Store[[]models.Newsletter]
	Revalidate(ctx context.Context, route string) error
}

type actionRecorder interface {
	RecordAction(action, outcome string)
}

type Service struct {
	repo      NewsletterRepository
	pages     PageCache
	validator *validation.Validator
	recorder  actionRecorder
	logger    *zap.Logger
}

func NewService(
	repo NewsletterRepository,
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
		logger:    logger.With(zap.String("component", "newsletters_service")),
	}
}

func (s *Service) CreateNewsletter(ctx context.Context, form models.NewsletterForm) models.Result[models.Newsletter] {
	res := s.createNewsletter(ctx, form)
	s.recorder.RecordAction(actionCreate, res.Outcome.String())
	return res
}

func (s *Service) createNewsletter(ctx context.Context, form models.NewsletterForm) models.Result[models.Newsletter] {
	if errs := s.validator.Validate(&form); errs != nil {
		return models.ValidationFailed[models.Newsletter](errs, msgCreateMissing)
	}

	now := time.Now().UTC()
	n := models.Newsletter{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
		Name:      form.Name,
		Frequency: models.Frequency(form.Frequency),
		OwnerID:   uuid.MustParse(form.OwnerID),
	}

	if err := s.repo.Create(ctx, &n); err != nil {
		return s.storageFailure(err, msgCreateStorage)
	}

	s.revalidate(ctx)
	return models.OK(n, models.RouteNewsletters)
}

func (s *Service) UpdateNewsletter(
	ctx context.Context,
	id string,
	form models.NewsletterForm,
) models.Result[models.Newsletter] {
	res := s.updateNewsletter(ctx, id, form)
	s.recorder.RecordAction(actionUpdate, res.Outcome.String())
	return res
}

func (s *Service) updateNewsletter(
	ctx context.Context,
	id string,
	form models.NewsletterForm,
) models.Result[models.Newsletter] {
	newsletterID, err := uuid.Parse(id)
	if err != nil {
		return models.ValidationFailed[models.Newsletter](models.FieldErrors{"id": {msgInvalidID}}, msgUpdateMissing)
	}
	if errs := s.validator.Validate(&form); errs != nil {
		return models.ValidationFailed[models.Newsletter](errs, msgUpdateMissing)
	}

	n := models.Newsletter{
		ID:        newsletterID,
		Name:      form.Name,
		Frequency: models.Frequency(form.Frequency),
		OwnerID:   uuid.MustParse(form.OwnerID),
	}

	if err := s.repo.Update(ctx, &n); err != nil {
		return s.storageFailure(err, msgUpdateStorage)
	}

	s.revalidate(ctx)
	return models.OK(n, models.RouteNewsletters)
}

func (s *Service) storageFailure(err error, msg string) models.Result[models.Newsletter] {
	if errors.Is(err, models.ErrInvalidReference) {
		return models.StorageFailed[models.Newsletter](msgUnknownOwner, err)
	}
	s.logger.Error(msg, zap.Error(err))
	return models.StorageFailed[models.Newsletter](msg, err)
}

func (s *Service) revalidate(ctx context.Context) {
	if s.pages == nil {
		return
	}
	if err := s.pages.Revalidate(ctx, models.RouteNewsletters); err != nil {
		s.logger.Warn("failed to revalidate page", zap.String("route", models.RouteNewsletters), zap.Error(err))
	}
}

// GetNewsletters lists every newsletter, newest first.
func (s *Service) GetNewsletters(ctx context.Context) ([]models.Newsletter, error) {
	var store cache.Store[[]models.Newsletter]
	if s.pages != nil {
		store = s.pages
	}

	list, err := cache.ReadThrough(ctx, store, models.RouteNewsletters, s.logger, s.repo.List)
	if err != nil {
		s.logger.Error(msgFetchList, zap.Error(err))
		return nil, models.FetchFailed(msgFetchList)
	}
	return list, nil
}

func (s *Service) GetNewsletterByID(ctx context.Context, id string) (models.Newsletter, error) {
	newsletterID, err := uuid.Parse(id)
	if err != nil {
		return models.Newsletter{}, models.ErrNotFound
	}

	n, err := s.repo.GetByID(ctx, newsletterID)
	if errors.Is(err, models.ErrNotFound) {
		return models.Newsletter{}, err
	}
	if err != nil {
		s.logger.Error(msgFetchOne, zap.String("id", id), zap.Error(err))
		return models.Newsletter{}, models.FetchFailed(msgFetchOne)
	}
	return n, nil
}
