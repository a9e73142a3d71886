package store

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lucidworks/gridbuilder/pkg/errors"
	"github.com/lucidworks/gridbuilder/pkg/grid"
	"github.com/lucidworks/gridbuilder/pkg/observability"
)

// MongoConfig holds MongoDB connection parameters.
type MongoConfig struct {
	// URI is the MongoDB connection string.
	URI string

	// Database is the database name.
	Database string

	// Collection is the canvas collection name. Defaults to "canvases".
	Collection string
}

// MongoStore is a MongoDB-backed canvas store for durable persistence.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore creates a MongoDB-backed canvas store and verifies connectivity.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "connect to mongodb")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeStore, err, "ping mongodb")
	}

	collName := cfg.Collection
	if collName == "" {
		collName = "canvases"
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(cfg.Database).Collection(collName),
	}, nil
}

func (s *MongoStore) Get(ctx context.Context, canvasID string) (*grid.Canvas, error) {
	var c grid.Canvas
	err := s.coll.FindOne(ctx, bson.M{"id": canvasID}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		observability.Store().OnStoreGet(ctx, "mongo", canvasID, false)
		return nil, nil
	}
	if err != nil {
		observability.Store().OnStoreError(ctx, "mongo", "get", err)
		return nil, errors.Wrap(errors.ErrCodeStore, err, "get canvas %q", canvasID)
	}
	observability.Store().OnStoreGet(ctx, "mongo", canvasID, true)
	return &c, nil
}

func (s *MongoStore) Put(ctx context.Context, canvas *grid.Canvas) error {
	_, err := s.coll.ReplaceOne(ctx,
		bson.M{"id": canvas.ID},
		canvas,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		observability.Store().OnStoreError(ctx, "mongo", "put", err)
		return errors.Wrap(errors.ErrCodeStore, err, "store canvas %q", canvas.ID)
	}
	observability.Store().OnStorePut(ctx, "mongo", canvas.ID)
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, canvasID string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"id": canvasID}); err != nil {
		observability.Store().OnStoreError(ctx, "mongo", "delete", err)
		return errors.Wrap(errors.ErrCodeStore, err, "delete canvas %q", canvasID)
	}
	return nil
}

func (s *MongoStore) List(ctx context.Context) ([]string, error) {
	cur, err := s.coll.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"id": 1}))
	if err != nil {
		observability.Store().OnStoreError(ctx, "mongo", "list", err)
		return nil, errors.Wrap(errors.ErrCodeStore, err, "list canvases")
	}
	defer cur.Close(ctx)

	var ids []string
	for cur.Next(ctx) {
		var doc struct {
			ID string `bson:"id"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeStore, err, "decode canvas id")
		}
		ids = append(ids, doc.ID)
	}
	if err := cur.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "iterate canvases")
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}
