package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"linkgate/internal/config"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/apache/rocketmq-client-go/v2/producer"
	"github.com/rs/zerolog/log"
)

// Producer publishes click events to RocketMQ
type Producer struct {
	client messageSender
	topic  string
	now    func() time.Time
}

// NewProducer creates a new RocketMQ producer
func NewProducer(cfg *config.RocketMQConfig) (*Producer, error) {
	p, err := rocketmq.NewProducer(
		producer.WithNameServer([]string{cfg.NameServer}),
		producer.WithRetry(3),
		producer.WithGroupName(cfg.Group+"_producer"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create RocketMQ producer: %w", err)
	}

	if err := p.Start(); err != nil {
		return nil, fmt.Errorf("failed to start RocketMQ producer: %w", err)
	}

	log.Info().Str("topic", cfg.Topic).Msg("RocketMQ producer started")

	return newProducer(p, cfg.Topic), nil
}

func newProducer(client messageSender, topic string) *Producer {
	return &Producer{
		client: client,
		topic:  topic,
		now:    time.Now,
	}
}

// RecordClick publishes a click on code. The stats write happens in the
// consumer.
func (p *Producer) RecordClick(ctx context.Context, code string) error {
	if p == nil {
		return nil // Producer disabled
	}

	msg := &ClickMessage{
		Code:       code,
		AccessTime: p.now().UTC(),
	}

	bytes, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	m := primitive.NewMessage(p.topic, bytes)
	m.WithTag(ClickTag)
	m.WithKeys([]string{code})

	result, err := p.client.SendSync(ctx, m)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	log.Debug().
		Str("msg_id", result.MsgID).
		Str("code", code).
		Msg("Click sent to RocketMQ")

	return nil
}

// Close closes the producer
func (p *Producer) Close() error {
	if p != nil && p.client != nil {
		return p.client.Shutdown()
	}
	return nil
}
