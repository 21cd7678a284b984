package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const denylistPrefix = "denylist:"

// TokenDenylist records revoked session token ids until they would have expired anyway.
type TokenDenylist struct {
	client *redis.Client
	logger *zap.Logger
}

func NewTokenDenylist(client *redis.Client, logger *zap.Logger) *TokenDenylist {
	return &TokenDenylist{
		client: client,
		logger: logger.With(zap.String("component", "token_denylist")),
	}
}

func (d *TokenDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := d.client.Set(ctx, denylistPrefix+tokenID, "revoked", ttl).Err(); err != nil {
		d.logger.Error("failed to revoke token", zap.String("jti", tokenID), zap.Error(err))
		return err
	}
	return nil
}

func (d *TokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	err := d.client.Get(ctx, denylistPrefix+tokenID).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
