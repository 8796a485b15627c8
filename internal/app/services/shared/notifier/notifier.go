package notifier

import (
	"context"
	"medibook-client/internal/app/contracts"
	"medibook-client/internal/app/models"
	"medibook-client/internal/pkg/exceptions"
	"medibook-client/internal/pkg/utils"
	"time"
)

func newNotification(level models.NotificationLevel, source, message string) models.Notification {
	return models.Notification{
		ID:        utils.GenerateNotificationID(),
		Level:     level,
		Message:   message,
		Source:    source,
		CreatedAt: time.Now(),
	}
}

func Success(ctx context.Context, n contracts.Notifier, source, message string) {
	n.Notify(ctx, newNotification(models.NotificationLevelSuccess, source, message))
}

func Info(ctx context.Context, n contracts.Notifier, source, message string) {
	n.Notify(ctx, newNotification(models.NotificationLevelInfo, source, message))
}

func Warn(ctx context.Context, n contracts.Notifier, source, message string) {
	n.Notify(ctx, newNotification(models.NotificationLevelWarn, source, message))
}

// Failure reports err with its client message, or fallback when it has none.
func Failure(ctx context.Context, n contracts.Notifier, source string, err error, fallback string) {
	notification := newNotification(models.NotificationLevelError, source, exceptions.ClientMessageOf(err, fallback))
	notification.Kind = string(exceptions.KindOf(err))
	n.Notify(ctx, notification)
}

// FailureMessage reports err under a fixed message.
func FailureMessage(ctx context.Context, n contracts.Notifier, source string, err error, message string) {
	notification := newNotification(models.NotificationLevelError, source, message)
	notification.Kind = string(exceptions.KindOf(err))
	n.Notify(ctx, notification)
}

// Fanout delivers every notification to each of its notifiers in order.
type Fanout []contracts.Notifier

func (f Fanout) Notify(ctx context.Context, notification models.Notification) {
	for _, n := range f {
		if n != nil {
			n.Notify(ctx, notification)
		}
	}
}

// Discard drops every notification.
type Discard struct{}

func (Discard) Notify(context.Context, models.Notification) {}
