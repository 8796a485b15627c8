package notifier

import (
	"context"
	"medibook-client/internal/app/models"

	"github.com/sirupsen/logrus"
)

// ConsoleNotifier prints notifications for a person at a terminal.
type ConsoleNotifier struct {
	log *logrus.Logger
}

func NewConsoleNotifier(logger *logrus.Logger) *ConsoleNotifier {
	return &ConsoleNotifier{log: logger}
}

func (n *ConsoleNotifier) Notify(_ context.Context, notification models.Notification) {
	entry := n.log.WithField("source", notification.Source)
	if notification.Kind != "" {
		entry = entry.WithField("kind", notification.Kind)
	}

	switch notification.Level {
	case models.NotificationLevelError:
		entry.Error(notification.Message)
	case models.NotificationLevelWarn:
		entry.Warn(notification.Message)
	default:
		entry.Info(notification.Message)
	}
}
