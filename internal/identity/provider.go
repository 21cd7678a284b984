package identity

import (
	"context"
	"errors"
	"time"

	"github.com/Nazarious-ucu/newsletter-manager/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const issuer = "newsletter-manager"

// Session is an authenticated user together with the signed token that proves it.
type Session struct {
	UserID    uuid.UUID
	Name      string
	Email     string
	Token     string
	ExpiresAt time.Time
}

type Provider interface {
	SignIn(ctx context.Context, creds models.Credentials) (Session, error)
	SignOut(ctx context.Context, token string) error
	Verify(ctx context.Context, token string) (Session, error)
}

type userFinder interface {
	GetByEmail(ctx context.Context, email string) (models.User, error)
}

type denylist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type claims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// CredentialsProvider signs users in with email and password and issues HS256 session tokens.
type CredentialsProvider struct {
	users    userFinder
	denylist denylist
	secret   []byte
	ttl      time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

func NewCredentialsProvider(
	users userFinder,
	denylist denylist,
	secret string,
	ttl time.Duration,
	logger *zap.Logger,
) *CredentialsProvider {
	return &CredentialsProvider{
		users:    users,
		denylist: denylist,
		secret:   []byte(secret),
		ttl:      ttl,
		logger:   logger.With(zap.String("component", "credentials_provider")),
		now:      time.Now,
	}
}

func (p *CredentialsProvider) SignIn(ctx context.Context, creds models.Credentials) (Session, error) {
	if len(p.secret) == 0 {
		return Session{}, newError(Configuration, errors.New("signing secret is empty"))
	}
	creds.Normalize()
	if creds.Email == "" || creds.Password == "" {
		return Session{}, newError(CredentialsSignin, errors.New("missing credentials"))
	}

	user, err := p.users.GetByEmail(ctx, creds.Email)
	if errors.Is(err, models.ErrNotFound) {
		return Session{}, newError(CredentialsSignin, errors.New("unknown email"))
	}
	if err != nil {
		p.logger.Error("user lookup failed", zap.Error(err))
		return Session{}, newError(CallbackRouteError, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		return Session{}, newError(CredentialsSignin, errors.New("password mismatch"))
	}

	return p.issue(user)
}

func (p *CredentialsProvider) issue(user models.User) (Session, error) {
	now := p.now()
	expiresAt := now.Add(p.ttl)

	c := claims{
		Name:  user.Name,
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(p.secret)
	if err != nil {
		return Session{}, newError(Configuration, err)
	}

	p.logger.Info("session issued", zap.String("user_id", user.ID.String()))

	return Session{
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Token:     signed,
		ExpiresAt: expiresAt,
	}, nil
}

func (p *CredentialsProvider) parse(token string) (*claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &claims{}, func(*jwt.Token) (interface{}, error) {
		return p.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(p.now),
	)
	if err != nil {
		return nil, newError(SessionTokenError, err)
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid {
		return nil, newError(SessionTokenError, errors.New("invalid token claims"))
	}
	return c, nil
}

// Verify accepts a token only if it is well-formed, unexpired and not revoked.
func (p *CredentialsProvider) Verify(ctx context.Context, token string) (Session, error) {
	c, err := p.parse(token)
	if err != nil {
		return Session{}, err
	}

	revoked, err := p.denylist.IsRevoked(ctx, c.ID)
	if err != nil {
		return Session{}, err
	}
	if revoked {
		return Session{}, newError(SessionTokenError, errors.New("token revoked"))
	}

	userID, err := uuid.Parse(c.Subject)
	if err != nil {
		return Session{}, newError(SessionTokenError, err)
	}

	return Session{
		UserID:    userID,
		Name:      c.Name,
		Email:     c.Email,
		Token:     token,
		ExpiresAt: c.ExpiresAt.Time,
	}, nil
}

// SignOut revokes the token for the rest of its lifetime.
// A denylist failure is returned as is, not as a provider error.
func (p *CredentialsProvider) SignOut(ctx context.Context, token string) error {
	c, err := p.parse(token)
	if err != nil {
		return err
	}

	if err := p.denylist.Revoke(ctx, c.ID, c.ExpiresAt.Sub(p.now())); err != nil {
		return err
	}

	p.logger.Info("session revoked", zap.String("user_id", c.Subject))
	return nil
}
