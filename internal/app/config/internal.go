package config

import (
	"strings"
	"time"
)

type InternalConfig struct {
	App      App         `mapstructure:"app"`
	Remote   AppRemote   `mapstructure:"remote"`
	Session  AppSession  `mapstructure:"session"`
	Notifier AppNotifier `mapstructure:"notifier"`
	Roster   AppRoster   `mapstructure:"roster"`
	CORS     AppCORS     `mapstructure:"cors"`
}

type App struct {
	Env            string `mapstructure:"env"`
	Port           string `mapstructure:"port"`
	Version        string `mapstructure:"version"`
	Timezone       string `mapstructure:"timezone"`
	EndpointPrefix string `mapstructure:"endpoint_prefix"`
	// MaxRequests is the number of requests allowed per second per client IP.
	MaxRequests            int `mapstructure:"max_requests"`
	ShutdownTimeout        int `mapstructure:"shutdown_timeout"`
	RequestBodyLimitInMB   int `mapstructure:"request_body_limit_in_mb"`
	NotificationFetchLimit int `mapstructure:"notification_fetch_limit"`
}

// AppRemote points at the booking service that owns doctors, users and
// appointments.
type AppRemote struct {
	BaseUrl                 string `mapstructure:"base_url"`
	RequestTimeoutInSeconds int    `mapstructure:"request_timeout_in_seconds"`
}

type AppSession struct {
	// StorageDriver is one of redis, mongo or memory.
	StorageDriver string `mapstructure:"storage_driver"`
	Namespace     string `mapstructure:"namespace"`
}

type AppNotifier struct {
	RabbitMQEnabled bool   `mapstructure:"rabbitmq_enabled"`
	RabbitMQQueue   string `mapstructure:"rabbitmq_queue"`
	FeedSize        int    `mapstructure:"feed_size"`
}

type AppRoster struct {
	RefreshCronSpec string `mapstructure:"refresh_cron_spec"`
}

type AppCORS struct {
	// AllowedOrigins is a comma separated list.
	AllowedOrigins string `mapstructure:"allowed_origins"`
}

func (r AppRemote) RequestTimeout() time.Duration {
	return time.Duration(r.RequestTimeoutInSeconds) * time.Second
}

func (a App) ShutdownTimeoutDuration() time.Duration {
	return time.Duration(a.ShutdownTimeout) * time.Second
}

func (c AppCORS) Origins() []string {
	var origins []string
	for _, origin := range strings.Split(c.AllowedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
