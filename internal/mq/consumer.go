package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"linkgate/internal/config"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/consumer"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/rs/zerolog/log"
)

// ClickHandler applies one click message
type ClickHandler func(ctx context.Context, msg *ClickMessage) error

// Consumer consumes click events from RocketMQ
type Consumer struct {
	client  rocketmq.PushConsumer
	topic   string
	group   string
	handler ClickHandler

	mu      sync.Mutex
	started bool
}

// NewConsumer creates a new RocketMQ consumer
func NewConsumer(cfg *config.RocketMQConfig, handler ClickHandler) (*Consumer, error) {
	c, err := rocketmq.NewPushConsumer(
		consumer.WithNameServer([]string{cfg.NameServer}),
		consumer.WithConsumerModel(consumer.Clustering),
		consumer.WithGroupName(cfg.Group),
		consumer.WithConsumeMessageBatchMaxSize(1),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create RocketMQ consumer: %w", err)
	}

	return &Consumer{
		client:  c,
		topic:   cfg.Topic,
		group:   cfg.Group,
		handler: handler,
	}, nil
}

// Subscribe subscribes to click messages on the topic and starts consuming
func (c *Consumer) Subscribe() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started {
		return nil
	}

	selector := consumer.MessageSelector{Type: consumer.TAG, Expression: ClickTag}
	if err := c.client.Subscribe(c.topic, selector, c.consume); err != nil {
		return fmt.Errorf("failed to subscribe to topic: %w", err)
	}

	if err := c.client.Start(); err != nil {
		return fmt.Errorf("failed to start consumer: %w", err)
	}

	c.started = true
	log.Info().Str("topic", c.topic).Str("group", c.group).Msg("RocketMQ consumer started")

	return nil
}

// consume handles one delivered batch. Undecodable messages are dropped;
// handler failures ask the broker to redeliver the batch. Batches hold a
// single message, so a redelivery never repeats an applied click.
func (c *Consumer) consume(ctx context.Context, msgs ...*primitive.MessageExt) (consumer.ConsumeResult, error) {
	for _, msg := range msgs {
		var click ClickMessage
		if err := json.Unmarshal(msg.Body, &click); err != nil {
			log.Error().Err(err).Str("msg_id", msg.MsgId).Msg("Dropping undecodable click message")
			continue
		}

		log.Debug().
			Str("msg_id", msg.MsgId).
			Str("code", click.Code).
			Time("access_time", click.AccessTime).
			Msg("Processing click")

		if c.handler != nil {
			if err := c.handler(ctx, &click); err != nil {
				log.Error().Err(err).Str("msg_id", msg.MsgId).Msg("Handler failed")
				return consumer.ConsumeRetryLater, err
			}
		}
	}
	return consumer.ConsumeSuccess, nil
}

// Close shuts the consumer down if it was started
func (c *Consumer) Close() error {
	if c == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.started || c.client == nil {
		return nil
	}
	c.started = false
	return c.client.Shutdown()
}
