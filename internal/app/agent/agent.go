// Package agent assembles the booking core from configuration. Both the
// HTTP agent and the CLI run on top of it.
package agent

import (
	"context"
	"fmt"
	"medibook-client/internal/app/config"
	"medibook-client/internal/app/contracts"
	"medibook-client/internal/app/drivers/database"
	"medibook-client/internal/app/drivers/messaging"
	"medibook-client/internal/app/services/core/appointments"
	"medibook-client/internal/app/services/core/auth"
	"medibook-client/internal/app/services/core/booking"
	"medibook-client/internal/app/services/core/profile"
	"medibook-client/internal/app/services/core/roster"
	"medibook-client/internal/app/services/core/session"
	"medibook-client/internal/app/services/core/slot"
	"medibook-client/internal/app/services/remote"
	"medibook-client/internal/app/services/shared/notifier"
	"medibook-client/internal/app/services/shared/redis"
	"medibook-client/internal/app/services/shared/sessionstorage"
	"medibook-client/internal/pkg/constvars"
	"time"

	"go.uber.org/zap"
)

type Agent struct {
	Client       contracts.BookingServiceClient
	Store        *session.Store
	Feed         *notifier.Feed
	Notifier     contracts.Notifier
	Generator    *slot.Generator
	Workflow     *booking.Workflow
	Appointments *appointments.View
	Auth         contracts.AuthUsecase
	Profile      contracts.ProfileUsecase
	RosterWorker *roster.Worker
}

// New opens the drivers the configuration asks for, records them on the
// bootstrap so Shutdown can release them, and restores the session. A
// session that cannot be fully restored is logged, not fatal: the booking
// service may simply be down for now.
func New(ctx context.Context, bootstrap *config.Bootstrap, extraNotifiers ...contracts.Notifier) (*Agent, error) {
	logger := bootstrap.Logger
	internalConfig := bootstrap.InternalConfig

	storage, err := newSessionStorage(ctx, bootstrap)
	if err != nil {
		return nil, err
	}

	feed := notifier.NewFeed(internalConfig.Notifier.FeedSize)
	notifiers := notifier.Fanout{feed, notifier.NewLogNotifier(logger)}
	notifiers = append(notifiers, extraNotifiers...)
	if internalConfig.Notifier.RabbitMQEnabled {
		rabbitMQ, err := messaging.NewRabbitMQ(bootstrap.DriverConfig)
		if err != nil {
			return nil, err
		}
		bootstrap.RabbitMQ = rabbitMQ

		rabbitMQNotifier, err := notifier.NewRabbitMQNotifier(rabbitMQ, internalConfig.Notifier.RabbitMQQueue, logger)
		if err != nil {
			return nil, err
		}
		notifiers = append(notifiers, rabbitMQNotifier)
	}

	client := remote.NewBookingServiceClient(internalConfig.Remote.BaseUrl, internalConfig.Remote.RequestTimeout(), logger)
	store := session.NewStore(client, storage, notifiers, logger)
	generator := slot.NewGenerator(time.Now)

	a := &Agent{
		Client:       client,
		Store:        store,
		Feed:         feed,
		Notifier:     notifiers,
		Generator:    generator,
		Workflow:     booking.NewWorkflow(store, client, notifiers, generator.Now, logger),
		Appointments: appointments.NewView(store, client, notifiers, logger),
		Auth:         auth.NewAuthUsecase(store, client, notifiers, logger),
		Profile:      profile.NewProfileUsecase(store, client, notifiers, internalConfig.Remote.BaseUrl, logger),
		RosterWorker: roster.NewWorker(logger, store, internalConfig.Roster.RefreshCronSpec),
	}
	bootstrap.SessionClose = store.Close
	bootstrap.RosterWorkerStop = a.RosterWorker.Stop

	if err := store.Init(ctx); err != nil {
		logger.Warn("agent.New session restored partially", zap.Error(err))
	}
	return a, nil
}

func newSessionStorage(ctx context.Context, bootstrap *config.Bootstrap) (contracts.SessionStorage, error) {
	namespace := bootstrap.InternalConfig.Session.Namespace

	switch bootstrap.InternalConfig.Session.StorageDriver {
	case constvars.SessionStorageDriverRedis:
		client, err := database.NewRedisClient(ctx, bootstrap.DriverConfig)
		if err != nil {
			return nil, err
		}
		bootstrap.Redis = client
		return sessionstorage.NewRedisSessionStorage(redis.NewRedisRepository(client), namespace), nil
	case constvars.SessionStorageDriverMongo:
		client, err := database.NewMongoDB(ctx, bootstrap.DriverConfig)
		if err != nil {
			return nil, err
		}
		bootstrap.MongoDB = client
		return sessionstorage.NewMongoSessionStorage(client.Database(bootstrap.DriverConfig.MongoDB.DbName), namespace), nil
	case constvars.SessionStorageDriverMemory:
		return sessionstorage.NewMemorySessionStorage(), nil
	default:
		return nil, fmt.Errorf("unsupported session storage driver %q", bootstrap.InternalConfig.Session.StorageDriver)
	}
}
