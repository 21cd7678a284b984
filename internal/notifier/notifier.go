package notifier

import (
	"context"
	"sync"
	"time"

	"github.com/Nazarious-ucu/newsletter-manager/pkg/messaging"
	"go.uber.org/zap"
)

// PublishEvent labels broker publishes of new leads.
const PublishEvent = messaging.NewLeadEventName + ".publish"

type resultRecorder interface {
	RecordNotification(event string, err error)
}

// Dispatcher runs best-effort side effects in the background. A failed task is
// logged and counted, never reported back to the caller that queued it.
type Dispatcher struct {
	logger   *zap.Logger
	recorder resultRecorder
	timeout  time.Duration

	mu      sync.Mutex
	stopped bool
	wg      sync.WaitGroup
}

func NewDispatcher(timeout time.Duration, recorder resultRecorder, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		logger:   logger.With(zap.String("component", "notifier")),
		recorder: recorder,
		timeout:  timeout,
	}
}

// Go schedules task. The task context keeps ctx values but not its cancellation,
// so the task outlives the request that queued it. Returns false after Stop.
func (d *Dispatcher) Go(ctx context.Context, event string, task func(ctx context.Context) error) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		d.logger.Warn("dispatcher stopped, dropping task", zap.String("event", event))
		return false
	}

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		taskCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
		defer cancel()

		start := time.Now()
		err := task(taskCtx)
		d.recorder.RecordNotification(event, err)

		if err != nil {
			d.logger.Error("notification failed",
				zap.String("event", event),
				zap.Duration("duration", time.Since(start)),
				zap.Error(err),
			)
			return
		}
		d.logger.Debug("notification sent", zap.String("event", event), zap.Duration("duration", time.Since(start)))
	}()
	return true
}

// Stop refuses new tasks and waits for in-flight ones until ctx is done.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	d.stopped = true
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.logger.Info("dispatcher drained")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type LeadMailer interface {
	SendNewLead(ctx context.Context, event messaging.NewLeadEvent) error
}

type LeadPublisher interface {
	PublishNewLead(ctx context.Context, event messaging.NewLeadEvent) error
}

// LeadNotifier emails every newly captured lead and, when a publisher is set,
// announces it on the message broker.
type LeadNotifier struct {
	dispatcher *Dispatcher
	mailer     LeadMailer
	publisher  LeadPublisher
}

func NewLeadNotifier(dispatcher *Dispatcher, mailer LeadMailer) *LeadNotifier {
	return &LeadNotifier{dispatcher: dispatcher, mailer: mailer}
}

func (n *LeadNotifier) WithPublisher(p LeadPublisher) *LeadNotifier {
	n.publisher = p
	return n
}

func (n *LeadNotifier) NotifyNewLead(ctx context.Context, event messaging.NewLeadEvent) {
	n.dispatcher.Go(ctx, messaging.NewLeadEventName, func(ctx context.Context) error {
		return n.mailer.SendNewLead(ctx, event)
	})

	if n.publisher == nil {
		return
	}
	n.dispatcher.Go(ctx, PublishEvent, func(ctx context.Context) error {
		return n.publisher.PublishNewLead(ctx, event)
	})
}
