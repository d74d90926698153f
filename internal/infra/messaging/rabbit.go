package messaging

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"pcapi/internal/pkg/config"
	"pcapi/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

const exchangeKind = "topic"

var ErrPublishNacked = errs.New("broker did not acknowledge message")

// Publisher sends outbox events to a topic exchange. The routing key is the
// event topic. The connection is opened on first use and reopened after the
// broker closes it.
type Publisher struct {
	url      string
	exchange string
	logger   *slog.Logger

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewPublisher(cfg config.RabbitMQConfig, logger *slog.Logger) *Publisher {
	return &Publisher{url: cfg.URL, exchange: cfg.Exchange, logger: logger}
}

func (p *Publisher) Publish(ctx context.Context, topic string, payload []byte, messageID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel()
	if err != nil {
		return err
	}

	confirm, err := ch.PublishWithDeferredConfirmWithContext(ctx, p.exchange, topic, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    messageID,
		Timestamp:    time.Now(),
		Body:         payload,
	})
	if err != nil {
		p.reset()
		return errs.Wrapf(err, "publish %s", topic)
	}

	acked, err := confirm.WaitContext(ctx)
	if err != nil {
		return errs.Wrapf(err, "wait confirm %s", topic)
	}
	if !acked {
		return errs.Wrapf(ErrPublishNacked, "publish %s", topic)
	}
	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reset()
	return nil
}

func (p *Publisher) channel() (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() && p.conn != nil && !p.conn.IsClosed() {
		return p.ch, nil
	}
	p.reset()

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return nil, errs.Wrap(err, "dial broker")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "open channel")
	}
	if err := ch.ExchangeDeclare(p.exchange, exchangeKind, true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, errs.Wrapf(err, "declare exchange %s", p.exchange)
	}
	if err := ch.Confirm(false); err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "enable confirms")
	}

	p.conn, p.ch = conn, ch
	p.logger.Info("connected to broker", "exchange", p.exchange)
	return ch, nil
}

func (p *Publisher) reset() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
	p.ch, p.conn = nil, nil
}
