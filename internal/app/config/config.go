package config

import (
	"fmt"
	"medibook-client/internal/pkg/constvars"
	"medibook-client/internal/pkg/utils"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "medibook"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "info"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
	}
}

var internalDefaults = map[string]interface{}{
	"app.env":                           constvars.AppEnvDevelopment,
	"app.port":                          ":8080",
	"app.version":                       "v1",
	"app.timezone":                      "UTC",
	"app.endpoint_prefix":               "api",
	"app.max_requests":                  20,
	"app.shutdown_timeout":              10,
	"app.request_body_limit_in_mb":      8,
	"app.notification_fetch_limit":      20,
	"remote.base_url":                   "http://localhost:4000",
	"remote.request_timeout_in_seconds": 30,
	"session.storage_driver":            constvars.SessionStorageDriverRedis,
	"session.namespace":                 "default",
	"notifier.rabbitmq_enabled":         false,
	"notifier.rabbitmq_queue":           "medibook.notifications",
	"notifier.feed_size":                50,
	"roster.refresh_cron_spec":          "@every 5m",
	"cors.allowed_origins":              "http://localhost:5173",
}

// NewInternalConfig reads the application settings. Every key can be set
// through the environment by upper casing it and replacing dots with
// underscores, e.g. remote.base_url is REMOTE_BASE_URL.
func NewInternalConfig() (*InternalConfig, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, value := range internalDefaults {
		v.SetDefault(key, value)
	}

	internalConfig := &InternalConfig{}
	if err := v.Unmarshal(internalConfig); err != nil {
		return nil, fmt.Errorf("unmarshal internal config: %w", err)
	}
	if err := internalConfig.validate(); err != nil {
		return nil, err
	}
	return internalConfig, nil
}

func (c *InternalConfig) validate() error {
	switch c.Session.StorageDriver {
	case constvars.SessionStorageDriverRedis, constvars.SessionStorageDriverMongo, constvars.SessionStorageDriverMemory:
	default:
		return fmt.Errorf("unsupported SESSION_STORAGE_DRIVER %q", c.Session.StorageDriver)
	}
	if c.Remote.BaseUrl == "" {
		return fmt.Errorf("REMOTE_BASE_URL is required")
	}
	if c.Remote.RequestTimeoutInSeconds <= 0 {
		c.Remote.RequestTimeoutInSeconds = 30
	}
	if c.Notifier.FeedSize <= 0 {
		c.Notifier.FeedSize = 50
	}
	return nil
}

// ApplyTimezone makes APP_TIMEZONE the process local zone. Slot grids and
// booking date keys are computed in time.Local, so every entrypoint calls
// this before building the booking core.
func ApplyTimezone(internalConfig *InternalConfig) error {
	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		return fmt.Errorf("load APP_TIMEZONE %q: %w", internalConfig.App.Timezone, err)
	}
	time.Local = location
	return nil
}

func (c *InternalConfig) IsProduction() bool {
	return c.App.Env == constvars.AppEnvProduction
}
