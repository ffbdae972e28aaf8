package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// stateDoc is the shape of one persisted document: the storage key as
// _id and the JSON-encoded collection as an opaque value, mirroring the
// whole-value semantics of browser local storage.
type stateDoc struct {
	Key   string `bson:"_id"`
	Value []byte `bson:"value"`
}

// MongoStorage persists each key as a single document in one
// collection.
type MongoStorage struct {
	coll *mongo.Collection
}

// NewMongoStorage creates a MongoStorage over the given database's
// "state" collection.
func NewMongoStorage(client *mongo.Client, database string) *MongoStorage {
	return &MongoStorage{coll: client.Database(database).Collection("state")}
}

func (s *MongoStorage) Load(ctx context.Context, key string, v interface{}) (bool, error) {
	var doc stateDoc
	err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: load %q: %v", ErrStorageUnavailable, key, err)
	}
	if err := json.Unmarshal(doc.Value, v); err != nil {
		return false, fmt.Errorf("%w: corrupt document %q: %v", ErrStorageUnavailable, key, err)
	}
	return true, nil
}

func (s *MongoStorage) Save(ctx context.Context, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %q: %w", key, err)
	}
	opts := options.Replace().SetUpsert(true)
	_, err = s.coll.ReplaceOne(ctx, bson.M{"_id": key}, stateDoc{Key: key, Value: raw}, opts)
	if err != nil {
		return fmt.Errorf("%w: save %q: %v", ErrStorageUnavailable, key, err)
	}
	return nil
}

func (s *MongoStorage) Delete(ctx context.Context, key string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("%w: delete %q: %v", ErrStorageUnavailable, key, err)
	}
	return nil
}
