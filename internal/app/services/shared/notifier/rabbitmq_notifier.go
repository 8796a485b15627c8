package notifier

import (
	"context"
	"medibook-client/internal/app/models"
	"medibook-client/internal/pkg/constvars"
	"medibook-client/internal/pkg/exceptions"
	"medibook-client/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// publisher is the part of *amqp091.Channel the notifier uses.
type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

// RabbitMQNotifier publishes notifications to a queue so other devices of
// the same user can show them.
type RabbitMQNotifier struct {
	channel publisher
	queue   string
	log     *zap.Logger
}

func NewRabbitMQNotifier(rabbitMQConnection *amqp091.Connection, queue string, logger *zap.Logger) (*RabbitMQNotifier, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(
		queue, // name
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	)
	if err != nil {
		return nil, err
	}

	return newRabbitMQNotifier(channel, queue, logger), nil
}

func newRabbitMQNotifier(channel publisher, queue string, logger *zap.Logger) *RabbitMQNotifier {
	return &RabbitMQNotifier{channel: channel, queue: queue, log: logger}
}

// Notify never fails the caller; publish errors are logged.
func (n *RabbitMQNotifier) Notify(ctx context.Context, notification models.Notification) {
	if err := n.publish(ctx, notification); err != nil {
		n.log.Error("RabbitMQNotifier.Notify error",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingQueueNameKey, n.queue),
			zap.Error(err),
		)
	}
}

func (n *RabbitMQNotifier) publish(ctx context.Context, notification models.Notification) error {
	body, err := json.Marshal(notification)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type": "JSON",
		"level":        string(notification.Level),
	}
	if requestID := utils.GetRequestID(ctx); requestID != "" {
		headers["request_id"] = requestID
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		MessageId:    notification.ID,
		Timestamp:    notification.CreatedAt,
		Headers:      headers,
	}

	err = n.channel.PublishWithContext(ctx, "", n.queue, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, n.queue)
	}
	return nil
}
