package utils

import (
	"medibook-client/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.New().String()
}

func GenerateNotificationID() string {
	return uuid.New().String()
}
