package sessionstorage

import (
	"context"
	"errors"
	"medibook-client/internal/app/contracts"
	"medibook-client/internal/app/models"
	"medibook-client/internal/pkg/constvars"
	"medibook-client/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoSessionStorage keeps one document per namespace in the sessions
// collection.
type mongoSessionStorage struct {
	collection *mongo.Collection
	namespace  string
}

func NewMongoSessionStorage(db *mongo.Database, namespace string) contracts.SessionStorage {
	return &mongoSessionStorage{
		collection: db.Collection(constvars.MongoCollectionSessions),
		namespace:  namespace,
	}
}

func (s *mongoSessionStorage) SaveToken(ctx context.Context, token string) error {
	return s.upsert(ctx, bson.M{"token": token})
}

func (s *mongoSessionStorage) LoadToken(ctx context.Context) (string, error) {
	session, err := s.find(ctx)
	if err != nil || session == nil {
		return "", err
	}
	return session.Token, nil
}

func (s *mongoSessionStorage) SaveProfile(ctx context.Context, profile *models.Profile) error {
	return s.upsert(ctx, bson.M{"profile": profile})
}

func (s *mongoSessionStorage) LoadProfile(ctx context.Context) (*models.Profile, error) {
	session, err := s.find(ctx)
	if err != nil || session == nil {
		return nil, err
	}
	return session.Profile, nil
}

func (s *mongoSessionStorage) Clear(ctx context.Context) error {
	_, err := s.collection.DeleteOne(ctx, bson.M{"_id": s.namespace})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (s *mongoSessionStorage) find(ctx context.Context) (*models.Session, error) {
	var session models.Session
	err := s.collection.FindOne(ctx, bson.M{"_id": s.namespace}).Decode(&session)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &session, nil
}

func (s *mongoSessionStorage) upsert(ctx context.Context, fields bson.M) error {
	fields["updated_at"] = time.Now()
	filter := bson.M{"_id": s.namespace}
	update := bson.M{"$set": fields}
	opts := options.Update().SetUpsert(true)

	_, err := s.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return exceptions.ErrMongoDBUpsertDocument(err)
	}
	return nil
}
