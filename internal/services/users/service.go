package users

import (
	"context"
	"errors"
	"time"

	"github.com/Nazarious-ucu/newsletter-manager/internal/models"
	"github.com/Nazarious-ucu/newsletter-manager/internal/validation"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	actionCreate = "createUser"

	msgMissing   = "Missing Fields. Failed to Create User."
	msgDuplicate = "Email already registered."
	msgStorage   = "Database Error: Failed to Create User."
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
}

type actionRecorder interface {
	RecordAction(action, outcome string)
}

type Service struct {
	repo      UserRepository
	validator *validation.Validator
	recorder  actionRecorder
	logger    *zap.Logger
	hashCost  int
}

func NewService(
	repo UserRepository,
	validator *validation.Validator,
	recorder actionRecorder,
	logger *zap.Logger,
) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		recorder:  recorder,
		logger:    logger.With(zap.String("component", "users_service")),
		hashCost:  bcrypt.DefaultCost,
	}
}

// WithHashCost lowers the bcrypt cost, for tests.
func (s *Service) WithHashCost(cost int) *Service {
	s.hashCost = cost
	return s
}

func (s *Service) CreateUser(ctx context.Context, form models.SignupForm) models.Result[models.User] {
	res := s.createUser(ctx, form)
	s.recorder.RecordAction(actionCreate, res.Outcome.String())
	return res
}

func (s *Service) createUser(ctx context.Context, form models.SignupForm) models.Result[models.User] {
	if errs := s.validator.Validate(&form); errs != nil {
		return models.ValidationFailed[models.User](errs, msgMissing)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), s.hashCost)
	if err != nil {
		s.logger.Error("failed to hash password", zap.Error(err))
		return models.StorageFailed[models.User](msgStorage, err)
	}

	user := models.User{
		ID:           uuid.New(),
		Name:         form.Name,
		Email:        form.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, &user); err != nil {
		if errors.Is(err, models.ErrDuplicate) {
			return models.StorageFailed[models.User](msgDuplicate, err)
		}
		s.logger.Error("failed to create user", zap.Error(err))
		return models.StorageFailed[models.User](msgStorage, err)
	}

	s.logger.Info("user created", zap.String("user_id", user.ID.String()))
	return models.OK(user, models.RouteLogin)
}
