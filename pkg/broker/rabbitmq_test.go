package broker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockChannel struct {
	mock.Mock
}

func (m *MockChannel) PublishWithDeferredConfirmWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) (*amqp.DeferredConfirmation, error) {
	args := m.Called(ctx, exchange, key, msg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*amqp.DeferredConfirmation), args.Error(1)
}

func (m *MockChannel) Close() error {
	return m.Called().Error(0)
}

func TestPublisher_PublishJSON(t *testing.T) {
	t.Run("Should send a persistent JSON message to the exchange", func(t *testing.T) {
		ch := new(MockChannel)
		var sent amqp.Publishing
		ch.On("PublishWithDeferredConfirmWithContext", mock.Anything, "bistro.events", "order.placed", mock.Anything).
			Run(func(args mock.Arguments) { sent = args.Get(3).(amqp.Publishing) }).
			Return(nil, errors.New("channel closed")).Once()
		publisher := newPublisher(nil, ch, "bistro.events", zap.NewNop())

		err := publisher.PublishJSON(context.Background(), "order.placed", map[string]any{"email": "a@x.io"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "publish order.placed")

		assert.Equal(t, amqp.Persistent, sent.DeliveryMode)
		assert.Equal(t, "application/json", sent.ContentType)
		var body map[string]any
		require.NoError(t, json.Unmarshal(sent.Body, &body))
		assert.Equal(t, "a@x.io", body["email"])
		ch.AssertExpectations(t)
	})

	t.Run("Should not publish a payload that cannot be encoded", func(t *testing.T) {
		ch := new(MockChannel)
		publisher := newPublisher(nil, ch, "bistro.events", zap.NewNop())

		err := publisher.PublishJSON(context.Background(), "order.placed", map[string]any{"bad": make(chan int)})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "encode event order.placed")
		ch.AssertNotCalled(t, "PublishWithDeferredConfirmWithContext", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should give up waiting for a confirm when the context ends", func(t *testing.T) {
		ch := new(MockChannel)
		ch.On("PublishWithDeferredConfirmWithContext", mock.Anything, "bistro.events", "order.placed", mock.Anything).
			Return(&amqp.DeferredConfirmation{}, nil).Once()
		publisher := newPublisher(nil, ch, "bistro.events", zap.NewNop())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := publisher.PublishJSON(ctx, "order.placed", map[string]any{"email": "a@x.io"})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestPublisher_Close(t *testing.T) {
	ch := new(MockChannel)
	ch.On("Close").Return(nil).Once()

	newPublisher(nil, ch, "bistro.events", zap.NewNop()).Close()

	ch.AssertExpectations(t)
}
