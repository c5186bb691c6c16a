package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	errorvalues "github.com/lmk2k5/itinerary-backend-email-services/internal/error_values"
	"github.com/lmk2k5/itinerary-backend-email-services/pkg/cleanup"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	defaultMongoDB         = "itinerary_app"
	defaultTripsCollection = "trips"
)

// MongoStore adapts *mongo.Collection to DocumentStore.
type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(coll *mongo.Collection) *MongoStore {
	return &MongoStore{
		coll: coll,
	}
}

// NewMongoClient connects and pings the server. Disconnect is registered as cleanup job.
func NewMongoClient(cfg DBConfig) *mongo.Client {
	client, err := mongo.Connect(options.Client().ApplyURI(cfg.ConnString()))
	if err != nil {
		log.Fatal("creating mongo client error: " + err.Error())
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = client.Ping(ctx, nil); err != nil {
		log.Fatal("error while pinging mongo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "disconnecting mongo client",
		F: func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return client.Disconnect(ctx)
		},
	})
	return client
}

// EnsureTripIndexes creates indexes used by owner-scoped trip queries.
func EnsureTripIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}}},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "days.dayNumber", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("creating trip indexes error: %w", err)
	}
	return nil
}

func (s *MongoStore) FindOne(ctx context.Context, filter any, out any) error {
	err := s.coll.FindOne(ctx, filter).Decode(out)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return errorvalues.ErrDocumentNotFound
		}
		return fmt.Errorf("mongo find one error: %w", err)
	}
	return nil
}

func (s *MongoStore) Find(ctx context.Context, filter any, out any) error {
	cur, err := s.coll.Find(ctx, filter)
	if err != nil {
		return fmt.Errorf("mongo find error: %w", err)
	}
	defer cur.Close(ctx)
	if err = cur.All(ctx, out); err != nil {
		return fmt.Errorf("mongo decoding cursor error: %w", err)
	}
	return nil
}

func (s *MongoStore) Count(ctx context.Context, filter any) (int64, error) {
	n, err := s.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return 0, fmt.Errorf("mongo count error: %w", err)
	}
	return n, nil
}

func (s *MongoStore) InsertOne(ctx context.Context, doc any) error {
	_, err := s.coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("mongo insert error: %w", err)
	}
	return nil
}

func (s *MongoStore) UpdateOne(ctx context.Context, filter any, update any) (UpdateResult, error) {
	res, err := s.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return UpdateResult{}, fmt.Errorf("mongo update error: %w", err)
	}
	return UpdateResult{
		Matched:  res.MatchedCount,
		Modified: res.ModifiedCount,
	}, nil
}

func (s *MongoStore) DeleteOne(ctx context.Context, filter any) (int64, error) {
	res, err := s.coll.DeleteOne(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("mongo delete error: %w", err)
	}
	return res.DeletedCount, nil
}
