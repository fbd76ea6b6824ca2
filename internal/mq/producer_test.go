package mq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent     []*primitive.Message
	err      error
	shutdown bool
}

func (f *fakeSender) SendSync(_ context.Context, msgs ...*primitive.Message) (*primitive.SendResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, msgs...)
	return &primitive.SendResult{MsgID: "msg-1"}, nil
}

func (f *fakeSender) Shutdown() error {
	f.shutdown = true
	return nil
}

func TestProducer_RecordClick(t *testing.T) {
	t.Run("publishes click message", func(t *testing.T) {
		sender := &fakeSender{}
		p := newProducer(sender, "click_events")
		at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		p.now = func() time.Time { return at }

		err := p.RecordClick(context.Background(), "Ab12Cd")
		require.NoError(t, err)

		require.Len(t, sender.sent, 1)
		m := sender.sent[0]
		assert.Equal(t, "click_events", m.Topic)
		assert.Equal(t, ClickTag, m.GetTags())
		assert.Equal(t, "Ab12Cd", m.GetKeys())

		var click ClickMessage
		require.NoError(t, json.Unmarshal(m.Body, &click))
		assert.Equal(t, "Ab12Cd", click.Code)
		assert.True(t, at.Equal(click.AccessTime))
	})

	t.Run("send error is returned", func(t *testing.T) {
		sendErr := errors.New("broker unavailable")
		p := newProducer(&fakeSender{err: sendErr}, "click_events")

		err := p.RecordClick(context.Background(), "Ab12Cd")
		assert.ErrorIs(t, err, sendErr)
	})

	t.Run("nil producer returns nil", func(t *testing.T) {
		var p *Producer
		assert.NoError(t, p.RecordClick(context.Background(), "Ab12Cd"))
	})
}

func TestProducer_Close(t *testing.T) {
	t.Run("nil producer close returns nil", func(t *testing.T) {
		var p *Producer
		assert.NoError(t, p.Close())
	})

	t.Run("shuts down client", func(t *testing.T) {
		sender := &fakeSender{}
		p := newProducer(sender, "click_events")

		assert.NoError(t, p.Close())
		assert.True(t, sender.shutdown)
	})
}
