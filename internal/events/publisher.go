// Package events publishes gift request lifecycle events to a RabbitMQ topic
// exchange so other services can react to new and reviewed submissions.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"giftrequests/internal/models"
)

// Routing keys
const (
	KeySubmissionCreated       = "submission.created"
	KeySubmissionStatusChanged = "submission.status_changed"
)

const publishTimeout = 5 * time.Second

// Event is the JSON body of every published message.
type Event struct {
	Type       string             `json:"type"`
	OccurredAt time.Time          `json:"occurredAt"`
	Submission *models.Submission `json:"submission"`
}

// channel is the subset of *amqp091.Channel the publisher needs.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// Publisher sends submission events to a topic exchange.
type Publisher struct {
	conn     *amqp091.Connection
	channel  channel
	exchange string
	now      func() time.Time
}

func sanitizeAMQPURL(raw string) (string, error) {
	clean := strings.TrimSpace(raw)
	clean = strings.Trim(clean, "\"'")
	if !strings.HasSuffix(clean, "/") {
		clean += "/"
	}
	u, err := url.Parse(clean)
	if err != nil {
		return "", err
	}
	if u.Scheme != "amqp" && u.Scheme != "amqps" {
		return "", errors.New("AMQP scheme must be either 'amqp://' or 'amqps://'")
	}
	return clean, nil
}

// NewPublisher connects to RabbitMQ and declares the exchange.
func NewPublisher(amqpURL, exchange string) (*Publisher, error) {
	cleanURL, err := sanitizeAMQPURL(amqpURL)
	if err != nil {
		return nil, err
	}

	conn, err := amqp091.Dial(cleanURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}

	return &Publisher{conn: conn, channel: ch, exchange: exchange, now: time.Now}, nil
}

// Publish marshals the event and sends it with the given routing key.
func (p *Publisher) Publish(ctx context.Context, routingKey string, sub *models.Submission) error {
	body, err := json.Marshal(Event{
		Type:       routingKey,
		OccurredAt: p.now().UTC(),
		Submission: sub,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(ctx,
		p.exchange, // exchange
		routingKey, // routing key
		false,      // mandatory
		false,      // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    sub.ID.String(),
			Timestamp:    p.now(),
			Body:         body,
		})
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", routingKey, err)
	}
	return nil
}

// SubmissionCreated publishes submission.created. Failures are logged; the
// submission itself is already stored.
func (p *Publisher) SubmissionCreated(ctx context.Context, sub *models.Submission) {
	p.publishLogged(ctx, KeySubmissionCreated, sub)
}

// SubmissionStatusChanged publishes submission.status_changed.
func (p *Publisher) SubmissionStatusChanged(ctx context.Context, sub *models.Submission) {
	p.publishLogged(ctx, KeySubmissionStatusChanged, sub)
}

func (p *Publisher) publishLogged(ctx context.Context, routingKey string, sub *models.Submission) {
	if err := p.Publish(ctx, routingKey, sub); err != nil {
		slog.Error("failed to publish event", "routing_key", routingKey, "submission_id", sub.ID, "error", err)
		return
	}
	slog.Debug("published event", "exchange", p.exchange, "routing_key", routingKey, "submission_id", sub.ID)
}

// Close gracefully closes the channel and connection.
func (p *Publisher) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
