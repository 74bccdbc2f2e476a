// Package store is a thin adapter over the keyed-document collections the
// application uses. The interface covers exactly the operations the
// handlers need, so tests can run against the in-memory implementation
// without a Mongo instance.
package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNoDocuments mirrors the driver sentinel so callers handle misses the
// same way against either implementation.
var ErrNoDocuments = mongo.ErrNoDocuments

// Collection is a keyed-document collection. Filters are equality matches
// on bson.M fields; UpdateOne and DeleteOne affect the first match only,
// as Mongo does.
type Collection interface {
	InsertOne(ctx context.Context, doc interface{}) (primitive.ObjectID, error)
	FindOne(ctx context.Context, filter bson.M, out interface{}) error
	Find(ctx context.Context, filter bson.M, out interface{}) error
	UpdateOne(ctx context.Context, filter bson.M, set bson.M) (matched int64, err error)
	DeleteOne(ctx context.Context, filter bson.M) (deleted int64, err error)
	DeleteMany(ctx context.Context, filter bson.M) (deleted int64, err error)
}

type mongoCollection struct {
	coll *mongo.Collection
}

// Wrap adapts a *mongo.Collection to the Collection interface.
func Wrap(coll *mongo.Collection) Collection {
	return &mongoCollection{coll: coll}
}

func (m *mongoCollection) InsertOne(ctx context.Context, doc interface{}) (primitive.ObjectID, error) {
	res, err := m.coll.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (m *mongoCollection) FindOne(ctx context.Context, filter bson.M, out interface{}) error {
	return m.coll.FindOne(ctx, filter).Decode(out)
}

func (m *mongoCollection) Find(ctx context.Context, filter bson.M, out interface{}) error {
	cursor, err := m.coll.Find(ctx, filter)
	if err != nil {
		return err
	}
	return cursor.All(ctx, out)
}

func (m *mongoCollection) UpdateOne(ctx context.Context, filter bson.M, set bson.M) (int64, error) {
	res, err := m.coll.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (m *mongoCollection) DeleteOne(ctx context.Context, filter bson.M) (int64, error) {
	res, err := m.coll.DeleteOne(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (m *mongoCollection) DeleteMany(ctx context.Context, filter bson.M) (int64, error) {
	res, err := m.coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
