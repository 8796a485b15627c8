package migration

import (
	"context"
	"log"
	"medibook-client/internal/pkg/constvars"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Run creates the indexes of the sessions collection. A positive ttl makes
// sessions that were not touched for that long expire.
func Run(ctx context.Context, db *mongo.Database, ttl time.Duration) ([]string, error) {
	names, err := db.Collection(constvars.MongoCollectionSessions).Indexes().CreateMany(ctx, sessionIndexes(ttl))
	if err != nil {
		return nil, err
	}

	log.Printf("Applied %d indexes!\n", len(names))
	return names, nil
}

func sessionIndexes(ttl time.Duration) []mongo.IndexModel {
	updatedAt := options.Index().SetName("updated_at")
	if ttl > 0 {
		updatedAt.SetName("updated_at_ttl").SetExpireAfterSeconds(int32(ttl / time.Second))
	}

	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "updated_at", Value: 1}}, Options: updatedAt},
	}
}
