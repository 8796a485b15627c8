package notifier

import (
	"context"
	"medibook-client/internal/app/models"
	"medibook-client/internal/pkg/constvars"
	"medibook-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type LogNotifier struct {
	log *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{log: logger}
}

func (n *LogNotifier) Notify(ctx context.Context, notification models.Notification) {
	fields := []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingOperationKey, notification.Source),
		zap.String(constvars.LoggingNotificationKey, notification.Message),
	}
	if notification.Kind != "" {
		fields = append(fields, zap.String(constvars.LoggingErrorKindKey, notification.Kind))
	}

	switch notification.Level {
	case models.NotificationLevelError:
		n.log.Error("Notification", fields...)
	case models.NotificationLevelWarn:
		n.log.Warn("Notification", fields...)
	default:
		n.log.Info("Notification", fields...)
	}
}
