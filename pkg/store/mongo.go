package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/dockyard/pkg/observability"
	"github.com/matzehuels/dockyard/pkg/persist"
)

// MongoStore persists layouts in a MongoDB collection. Unlike the byte
// oriented backends it parses documents on write, so layouts land in the
// collection as structured BSON that can be queried and migrated in place.
type MongoStore struct {
	client *mongo.Client
	col    *mongo.Collection
}

// layoutRecord is the collection schema, keyed by layout name.
type layoutRecord struct {
	Name      string           `bson:"_id"`
	Layout    persist.Document `bson:"layout"`
	UpdatedAt time.Time        `bson:"updated_at"`
}

// NewMongoStore connects to the MongoDB instance at uri and stores layouts
// in the given database and collection.
func NewMongoStore(ctx context.Context, uri, database, collection string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	return &MongoStore{
		client: client,
		col:    client.Database(database).Collection(collection),
	}, nil
}

// Get retrieves the layout stored under name. The returned bytes are a
// re-serialization of the stored document, not the original input.
func (s *MongoStore) Get(ctx context.Context, name string) ([]byte, bool, error) {
	var rec layoutRecord
	err := s.col.FindOne(ctx, bson.M{"_id": name}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		observability.Store().OnStoreMiss(ctx, "mongo")
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("mongo find: %w", err)
	}
	data, err := persist.Marshal(&rec.Layout)
	if err != nil {
		return nil, false, err
	}
	observability.Store().OnStoreHit(ctx, "mongo")
	return data, true, nil
}

// Set parses and stores a layout under name. Malformed documents are
// rejected here rather than stored opaquely. Transient failures are retried
// with backoff.
func (s *MongoStore) Set(ctx context.Context, name string, data []byte) error {
	doc, err := persist.Unmarshal(data)
	if err != nil {
		return err
	}
	rec := layoutRecord{Name: name, Layout: *doc, UpdatedAt: time.Now().UTC()}
	err = RetryWithBackoff(ctx, func() error {
		_, err := s.col.ReplaceOne(ctx, bson.M{"_id": name}, rec, options.Replace().SetUpsert(true))
		if err != nil {
			return Retryable(err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("mongo upsert: %w", err)
	}
	observability.Store().OnStoreSet(ctx, "mongo", len(data))
	return nil
}

// Delete removes the layout stored under name.
func (s *MongoStore) Delete(ctx context.Context, name string) error {
	if _, err := s.col.DeleteOne(ctx, bson.M{"_id": name}); err != nil {
		return fmt.Errorf("mongo delete: %w", err)
	}
	return nil
}

// List returns the names of all stored layouts.
func (s *MongoStore) List(ctx context.Context) ([]string, error) {
	cursor, err := s.col.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, fmt.Errorf("mongo find: %w", err)
	}
	defer cursor.Close(ctx)

	var names []string
	for cursor.Next(ctx) {
		var rec struct {
			Name string `bson:"_id"`
		}
		if err := cursor.Decode(&rec); err != nil {
			return nil, fmt.Errorf("mongo decode: %w", err)
		}
		names = append(names, rec.Name)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("mongo cursor: %w", err)
	}
	return names, nil
}

// Close disconnects from the server.
func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
