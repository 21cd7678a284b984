package emailer

import (
	"context"
	"errors"

	"github.com/Nazarious-ucu/newsletter-manager/internal/config"
	"github.com/sony/gobreaker"
)

type sender interface {
	Send(ctx context.Context, to, subject, additionalHeaders, body string) error
}

// BreakerEmailer stops calling a failing transport until it has had time to recover.
type BreakerEmailer struct {
	name    string
	cb      *gobreaker.CircuitBreaker
	wrapped sender
}

func NewBreakerEmailer(name string, cfg config.Breaker, wrapped sender) *BreakerEmailer {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.RepeatNumber
		},
	}
	return &BreakerEmailer{
		name:    name,
		cb:      gobreaker.NewCircuitBreaker(settings),
		wrapped: wrapped,
	}
}

func (b *BreakerEmailer) Send(ctx context.Context, to, subject, additionalHeaders, body string) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, b.wrapped.Send(ctx, to, subject, additionalHeaders, body)
	})
	if err != nil {
		return errors.New(b.name + " unavailable: " + err.Error())
	}
	return nil
}

func (b *BreakerEmailer) State() gobreaker.State {
	return b.cb.State()
}
