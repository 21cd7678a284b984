package producers_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Nazarious-ucu/newsletter-manager/internal/producers"
	"github.com/Nazarious-ucu/newsletter-manager/pkg/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wagslane/go-rabbitmq"
	"go.uber.org/zap"
)

type fakePublisher struct {
	body        []byte
	routingKeys []string
	opts        rabbitmq.PublishOptions
	err         error
}

func (f *fakePublisher) PublishWithContext(
	_ context.Context,
	data []byte,
	routingKeys []string,
	optionFuncs ...func(*rabbitmq.PublishOptions),
) error {
	f.body = data
	f.routingKeys = routingKeys
	for _, fn := range optionFuncs {
		fn(&f.opts)
	}
	return f.err
}

func TestPublishNewLead(t *testing.T) {
	pub := &fakePublisher{}
	p := producers.NewProducer(pub, zap.NewNop())

	event := messaging.NewLeadEvent{
		Email:      "lead@example.com",
		Source:     "web",
		CapturedAt: time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, p.PublishNewLead(context.Background(), event))

	assert.Equal(t, []string{messaging.NewLeadRoutingKey}, pub.routingKeys)
	assert.Equal(t, messaging.ExchangeName, pub.opts.Exchange)
	assert.Equal(t, "application/json", pub.opts.ContentType)
	assert.True(t, pub.opts.Mandatory)
	assert.EqualValues(t, rabbitmq.Persistent, pub.opts.DeliveryMode)

	var got messaging.NewLeadEvent
	require.NoError(t, json.Unmarshal(pub.body, &got))
	assert.Equal(t, event, got)
}

func TestPublish_Error(t *testing.T) {
	pub := &fakePublisher{err: errors.New("channel closed")}
	p := producers.NewProducer(pub, zap.NewNop())

	err := p.PublishNewLead(context.Background(), messaging.NewLeadEvent{Email: "x@example.com"})
	assert.EqualError(t, err, "channel closed")
}
