package auth

import (
	"context"

	"github.com/Nazarious-ucu/newsletter-manager/internal/identity"
	"github.com/Nazarious-ucu/newsletter-manager/internal/models"
	"go.uber.org/zap"
)

const (
	MsgInvalidCredentials = "Invalid credentials."
	MsgSomethingWentWrong = "Something went wrong."
)

type Service struct {
	provider identity.Provider
	logger   *zap.Logger
}

func NewService(provider identity.Provider, logger *zap.Logger) *Service {
	return &Service{
		provider: provider,
		logger:   logger.With(zap.String("component", "auth_service")),
	}
}

// Authenticate signs the user in. A provider failure comes back as a
// user-facing message with a nil error; any other failure is returned as is.
func (s *Service) Authenticate(ctx context.Context, creds models.Credentials) (identity.Session, string, error) {
	sess, err := s.provider.SignIn(ctx, creds)
	if err == nil {
		return sess, "", nil
	}

	msg, handled := s.classify("sign in", err)
	if !handled {
		return identity.Session{}, "", err
	}
	return identity.Session{}, msg, nil
}

// CloseSession signs the token out with the same error mapping as Authenticate.
func (s *Service) CloseSession(ctx context.Context, token string) (string, error) {
	err := s.provider.SignOut(ctx, token)
	if err == nil {
		return "", nil
	}

	msg, handled := s.classify("sign out", err)
	if !handled {
		return "", err
	}
	return msg, nil
}

func (s *Service) classify(op string, err error) (string, bool) {
	pe, ok := identity.AsProviderError(err)
	if !ok {
		return "", false
	}

	if pe.Type == identity.CredentialsSignin {
		return MsgInvalidCredentials, true
	}

	s.logger.Warn("identity provider error", zap.String("op", op), zap.String("type", string(pe.Type)), zap.Error(err))
	return MsgSomethingWentWrong, true
}
