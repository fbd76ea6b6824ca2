package mq

import (
	"context"

	"github.com/apache/rocketmq-client-go/v2/primitive"
)

// messageSender is the part of rocketmq.Producer used by Producer
type messageSender interface {
	SendSync(ctx context.Context, msgs ...*primitive.Message) (*primitive.SendResult, error)
	Shutdown() error
}
