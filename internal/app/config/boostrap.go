package config

import (
	"context"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Redis          *redis.Client
	MongoDB        *mongo.Client
	Logger         *zap.Logger
	RabbitMQ       *amqp091.Connection
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// RosterWorkerStop if set is called during Shutdown to stop the roster refresh.
	RosterWorkerStop func()
	// SessionClose if set is called during Shutdown so late fetches are dropped.
	SessionClose func()
}

// Shutdown releases every driver that was opened. Drivers that were not
// configured are nil and skipped.
func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.RosterWorkerStop != nil {
		b.RosterWorkerStop()
		log.Println("Successfully stopped roster worker")
	}

	if b.SessionClose != nil {
		b.SessionClose()
		log.Println("Successfully closed session store")
	}

	if b.Redis != nil {
		err := b.Redis.Close()
		if err != nil {
			return err
		}
		log.Println("Successfully closing Redis")
	}

	if b.MongoDB != nil {
		err := b.MongoDB.Disconnect(ctx)
		if err != nil {
			return err
		}
		log.Println("Successfully closing MongoDB")
	}

	if b.RabbitMQ != nil {
		err := b.RabbitMQ.Close()
		if err != nil {
			return err
		}
		log.Println("Successfully closing RabbitMQ")
	}

	if b.Logger != nil {
		_ = b.Logger.Sync()
		log.Println("Successfully closing Logger")
	}

	return nil
}
