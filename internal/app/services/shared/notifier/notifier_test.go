package notifier

import (
	"context"
	"errors"
	"medibook-client/internal/app/models"
	"medibook-client/internal/pkg/constvars"
	"medibook-client/internal/pkg/exceptions"
	"medibook-client/internal/pkg/utils"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePublisher struct {
	exchange string
	key      string
	messages []amqp091.Publishing
	err      error
}

func (p *fakePublisher) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp091.Publishing) error {
	if p.err != nil {
		return p.err
	}
	p.exchange = exchange
	p.key = key
	p.messages = append(p.messages, msg)
	return nil
}

func TestFeed(t *testing.T) {
	ctx := context.Background()

	t.Run("Newest First", func(t *testing.T) {
		feed := NewFeed(3)
		Info(ctx, feed, "test", "one")
		Info(ctx, feed, "test", "two")

		recent := feed.Recent(0)
		require.Len(t, recent, 2)
		assert.Equal(t, "two", recent[0].Message)
		assert.Equal(t, "one", recent[1].Message)
	})

	t.Run("Ring Drops Oldest", func(t *testing.T) {
		feed := NewFeed(2)
		Info(ctx, feed, "test", "one")
		Info(ctx, feed, "test", "two")
		Info(ctx, feed, "test", "three")

		recent := feed.Recent(10)
		require.Len(t, recent, 2)
		assert.Equal(t, "three", recent[0].Message)
		assert.Equal(t, "two", recent[1].Message)
		assert.Len(t, feed.Recent(1), 1)
	})

	t.Run("Default Size", func(t *testing.T) {
		feed := NewFeed(0)
		assert.Empty(t, feed.Recent(0))
	})
}

func TestFailure(t *testing.T) {
	ctx := context.Background()
	feed := NewFeed(5)

	Failure(ctx, feed, "test", exceptions.ErrRemoteDomain("Slot not available", "appointment"), "fallback")
	Failure(ctx, feed, "test", errors.New("boom"), "fallback")
	FailureMessage(ctx, feed, "test", exceptions.ErrRemoteUnauthorized(constvars.ErrClientUnauthorized, "appointments"), "fixed")

	recent := feed.Recent(0)
	require.Len(t, recent, 3)
	assert.Equal(t, "fixed", recent[0].Message)
	assert.Equal(t, string(exceptions.KindAuth), recent[0].Kind)
	assert.Equal(t, "fallback", recent[1].Message)
	assert.Equal(t, string(exceptions.KindInternal), recent[1].Kind)
	assert.Equal(t, "Slot not available", recent[2].Message)
	assert.Equal(t, string(exceptions.KindDomain), recent[2].Kind)
	assert.Equal(t, models.NotificationLevelError, recent[2].Level)
	assert.NotEmpty(t, recent[2].ID)
}

func TestFanout(t *testing.T) {
	ctx := context.Background()
	first, second := NewFeed(2), NewFeed(2)

	Success(ctx, Fanout{first, nil, second, NewLogNotifier(zap.NewNop()), Discard{}}, "test", "done")

	assert.Len(t, first.Recent(0), 1)
	assert.Len(t, second.Recent(0), 1)
	assert.Equal(t, models.NotificationLevelSuccess, second.Recent(0)[0].Level)
}

func TestRabbitMQNotifier(t *testing.T) {
	ctx := utils.WithRequestID(context.Background(), "req-1")

	t.Run("Publishes JSON To Queue", func(t *testing.T) {
		publisher := &fakePublisher{}
		n := newRabbitMQNotifier(publisher, "medibook_notifications", zap.NewNop())

		Warn(ctx, n, "booking", "Login to book appointment")

		require.Len(t, publisher.messages, 1)
		assert.Equal(t, "", publisher.exchange)
		assert.Equal(t, "medibook_notifications", publisher.key)

		message := publisher.messages[0]
		assert.Equal(t, constvars.MIMEApplicationJSON, message.ContentType)
		assert.Equal(t, amqp091.Persistent, message.DeliveryMode)
		assert.Equal(t, "req-1", message.Headers["request_id"])

		var decoded models.Notification
		require.NoError(t, json.Unmarshal(message.Body, &decoded))
		assert.Equal(t, "Login to book appointment", decoded.Message)
		assert.Equal(t, models.NotificationLevelWarn, decoded.Level)
	})

	t.Run("Publish Error Is Swallowed", func(t *testing.T) {
		publisher := &fakePublisher{err: errors.New("channel closed")}
		n := newRabbitMQNotifier(publisher, "q", zap.NewNop())

		assert.NotPanics(t, func() { Info(ctx, n, "test", "hello") })
		assert.Error(t, n.publish(ctx, newNotification(models.NotificationLevelInfo, "test", "hello")))
	})
}

func TestConsoleNotifier(t *testing.T) {
	logger, hook := logrustest.NewNullLogger()
	n := NewConsoleNotifier(logger)

	Failure(context.Background(), n, "auth", exceptions.ErrSendHTTPRequest(errors.New("dial tcp")), "Login failed")
	Success(context.Background(), n, "auth", "Logged in successfully!")

	require.Len(t, hook.AllEntries(), 2)
	assert.Equal(t, logrus.ErrorLevel, hook.AllEntries()[0].Level)
	assert.Equal(t, constvars.ErrClientServerUnreachable, hook.AllEntries()[0].Message)
	assert.Equal(t, "transport", hook.AllEntries()[0].Data["kind"])
	assert.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)
}
