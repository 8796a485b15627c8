package contracts

import (
	"context"
	"medibook-client/internal/app/models"
)

// Notifier is the user facing side channel for outcomes of core operations.
type Notifier interface {
	Notify(ctx context.Context, notification models.Notification)
}

type NotificationFeed interface {
	Notifier
	Recent(limit int) []models.Notification
}
