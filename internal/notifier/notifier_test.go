package notifier_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Nazarious-ucu/newsletter-manager/internal/notifier"
	"github.com/Nazarious-ucu/newsletter-manager/pkg/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type recorder struct {
	mu      sync.Mutex
	results map[string][]error
}

func newRecorder() *recorder {
	return &recorder{results: map[string][]error{}}
}

func (r *recorder) RecordNotification(event string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results[event] = append(r.results[event], err)
}

type mockMailer struct {
	mu   sync.Mutex
	sent []messaging.NewLeadEvent
	err  error
	ctxs []context.Context
}

func (m *mockMailer) SendNewLead(ctx context.Context, event messaging.NewLeadEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, event)
	m.ctxs = append(m.ctxs, ctx)
	return m.err
}

func TestLeadNotifier_SendsInBackground(t *testing.T) {
	rec := newRecorder()
	d := notifier.NewDispatcher(time.Second, rec, zap.NewNop())
	mailer := &mockMailer{}
	n := notifier.NewLeadNotifier(d, mailer)

	reqCtx, cancel := context.WithCancel(context.Background())
	n.NotifyNewLead(reqCtx, messaging.NewLeadEvent{Email: "lead@example.com", Source: "web"})
	cancel()

	require.NoError(t, d.Stop(context.Background()))

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "lead@example.com", mailer.sent[0].Email)
	assert.Equal(t, []error{nil}, rec.results[messaging.NewLeadEventName])
}

func TestDispatcher_TaskOutlivesRequestContext(t *testing.T) {
	d := notifier.NewDispatcher(time.Second, newRecorder(), zap.NewNop())

	reqCtx, cancel := context.WithCancel(context.Background())
	cancel()

	var taskErr error
	d.Go(reqCtx, "test", func(ctx context.Context) error {
		taskErr = ctx.Err()
		return nil
	})
	require.NoError(t, d.Stop(context.Background()))
	assert.NoError(t, taskErr)
}

func TestDispatcher_FailureIsLoggedAndCounted(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	rec := newRecorder()
	d := notifier.NewDispatcher(time.Second, rec, zap.New(core))
	sendErr := errors.New("smtp unavailable")

	n := notifier.NewLeadNotifier(d, &mockMailer{err: sendErr})
	n.NotifyNewLead(context.Background(), messaging.NewLeadEvent{Email: "x@example.com"})
	require.NoError(t, d.Stop(context.Background()))

	assert.Equal(t, []error{sendErr}, rec.results[messaging.NewLeadEventName])
	assert.Equal(t, 1, logs.FilterMessage("notification failed").Len())
}

func TestDispatcher_TaskTimeout(t *testing.T) {
	d := notifier.NewDispatcher(20*time.Millisecond, newRecorder(), zap.NewNop())

	var taskErr error
	d.Go(context.Background(), "slow", func(ctx context.Context) error {
		<-ctx.Done()
		taskErr = ctx.Err()
		return taskErr
	})
	require.NoError(t, d.Stop(context.Background()))
	assert.ErrorIs(t, taskErr, context.DeadlineExceeded)
}

func TestDispatcher_RejectsAfterStop(t *testing.T) {
	d := notifier.NewDispatcher(time.Second, newRecorder(), zap.NewNop())
	require.NoError(t, d.Stop(context.Background()))

	ran := d.Go(context.Background(), "late", func(context.Context) error { return nil })
	assert.False(t, ran)
}

func TestDispatcher_StopHonoursDeadline(t *testing.T) {
	d := notifier.NewDispatcher(time.Minute, newRecorder(), zap.NewNop())
	release := make(chan struct{})
	defer close(release)

	d.Go(context.Background(), "stuck", func(context.Context) error {
		<-release
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, d.Stop(ctx), context.DeadlineExceeded)
}

type publisherFunc func(ctx context.Context, event messaging.NewLeadEvent) error

func (f publisherFunc) PublishNewLead(ctx context.Context, event messaging.NewLeadEvent) error {
	return f(ctx, event)
}

func TestLeadNotifier_PublishesWhenConfigured(t *testing.T) {
	rec := newRecorder()
	d := notifier.NewDispatcher(time.Second, rec, zap.NewNop())
	brokerErr := errors.New("broker down")

	var published []string
	var mu sync.Mutex
	n := notifier.NewLeadNotifier(d, &mockMailer{}).WithPublisher(publisherFunc(
		func(_ context.Context, event messaging.NewLeadEvent) error {
			mu.Lock()
			defer mu.Unlock()
			published = append(published, event.Email)
			return brokerErr
		}))

	n.NotifyNewLead(context.Background(), messaging.NewLeadEvent{Email: "lead@example.com"})
	require.NoError(t, d.Stop(context.Background()))

	assert.Equal(t, []string{"lead@example.com"}, published)
	assert.Equal(t, []error{nil}, rec.results[messaging.NewLeadEventName], "a broker failure must not affect the email")
	assert.Equal(t, []error{brokerErr}, rec.results[notifier.PublishEvent])
}
