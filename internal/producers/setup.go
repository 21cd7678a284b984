package producers

import (
	"github.com/Nazarious-ucu/newsletter-manager/pkg/messaging"
	"github.com/wagslane/go-rabbitmq"
	"go.uber.org/zap"
)

// Connect opens a connection and a publisher bound to the events exchange.
// The caller closes both.
func Connect(address string, logger *zap.Logger) (*rabbitmq.Conn, *rabbitmq.Publisher, error) {
	sugar := logger.With(zap.String("component", "rabbitmq")).Sugar()

	conn, err := rabbitmq.NewConn(
		address,
		rabbitmq.WithConnectionOptionsLogger(sugar),
	)
	if err != nil {
		return nil, nil, err
	}

	publisher, err := rabbitmq.NewPublisher(
		conn,
		rabbitmq.WithPublisherOptionsLogger(sugar),
		rabbitmq.WithPublisherOptionsExchangeName(messaging.ExchangeName),
		rabbitmq.WithPublisherOptionsExchangeKind("topic"),
		rabbitmq.WithPublisherOptionsExchangeDeclare,
		rabbitmq.WithPublisherOptionsExchangeDurable,
	)
	if err != nil {
		_ = conn.Close()
		return nil, nil, err
	}

	publisher.NotifyReturn(func(r rabbitmq.Return) {
		sugar.Warnw("message returned from server",
			"routing_key", r.RoutingKey,
			"reply_code", r.ReplyCode,
			"reply_text", r.ReplyText)
	})

	return conn, publisher, nil
}
