package controllers

import (
	"medibook-client/internal/app/contracts"
	"medibook-client/internal/pkg/constvars"
	"medibook-client/internal/pkg/utils"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

type NotificationController struct {
	Log          *zap.Logger
	Feed         contracts.NotificationFeed
	DefaultLimit int
}

func NewNotificationController(logger *zap.Logger, feed contracts.NotificationFeed, defaultLimit int) *NotificationController {
	return &NotificationController{
		Log:          logger,
		Feed:         feed,
		DefaultLimit: defaultLimit,
	}
}

// FindRecent lists the latest notifications, newest first. ?limit=0 returns
// everything retained.
func (ctrl *NotificationController) FindRecent(w http.ResponseWriter, r *http.Request) {
	limit := ctrl.DefaultLimit
	if raw := r.URL.Query().Get(constvars.URLQueryParamLimit); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			limit = parsed
		}
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetNotificationsMessage, ctrl.Feed.Recent(limit))
}
