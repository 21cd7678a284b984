package producers

import (
	"context"
	"encoding/json"

	"github.com/Nazarious-ucu/newsletter-manager/pkg/messaging"
	"github.com/wagslane/go-rabbitmq"
	"go.uber.org/zap"
)

type publisher interface {
	PublishWithContext(
		ctx context.Context,
		data []byte,
		routingKeys []string,
		optionFuncs ...func(*rabbitmq.PublishOptions),
	) error
}

// Producer publishes domain events to the RabbitMQ exchange.
type Producer struct {
	prod publisher
	log  *zap.Logger
}

func NewProducer(prod publisher, logger *zap.Logger) *Producer {
	return &Producer{
		prod: prod,
		log:  logger.With(zap.String("component", "Producer")),
	}
}

func (p *Producer) Publish(ctx context.Context, routingKey string, body []byte) error {
	if err := p.prod.PublishWithContext(
		ctx,
		body,
		[]string{routingKey},
		rabbitmq.WithPublishOptionsContentType("application/json"),
		rabbitmq.WithPublishOptionsMandatory,
		rabbitmq.WithPublishOptionsPersistentDelivery,
		rabbitmq.WithPublishOptionsExchange(messaging.ExchangeName),
	); err != nil {
		p.log.Error("failed to publish message", zap.String("routing_key", routingKey), zap.Error(err))
		return err
	}
	p.log.Debug("message published", zap.String("routing_key", routingKey))
	return nil
}

func (p *Producer) PublishNewLead(ctx context.Context, event messaging.NewLeadEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.Publish(ctx, messaging.NewLeadRoutingKey, body)
}
