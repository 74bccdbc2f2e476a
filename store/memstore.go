package store

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory is an in-memory Collection used by tests. Documents are kept in
// insertion order so first-match update/delete behaves like Mongo's
// natural-order matching on an unindexed collection.
type Memory struct {
	mu   sync.Mutex
	docs []bson.M
}

func NewMemory() *Memory {
	return &Memory{}
}

// Len reports the number of stored documents. Test helper.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.docs)
}

func (m *Memory) InsertOne(ctx context.Context, doc interface{}) (primitive.ObjectID, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	var d bson.M
	if err := bson.Unmarshal(raw, &d); err != nil {
		return primitive.NilObjectID, err
	}

	id, ok := d["_id"].(primitive.ObjectID)
	if !ok || id.IsZero() {
		id = primitive.NewObjectID()
		d["_id"] = id
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs = append(m.docs, d)
	return id, nil
}

func (m *Memory) FindOne(ctx context.Context, filter bson.M, out interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.docs {
		if matches(d, filter) {
			return decodeDoc(d, out)
		}
	}
	return ErrNoDocuments
}

func (m *Memory) Find(ctx context.Context, filter bson.M, out interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	v := reflect.ValueOf(out)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("store: Find needs a pointer to a slice, got %T", out)
	}
	slice := v.Elem()
	result := reflect.MakeSlice(slice.Type(), 0, len(m.docs))
	elemType := slice.Type().Elem()

	for _, d := range m.docs {
		if !matches(d, filter) {
			continue
		}
		elem := reflect.New(elemType)
		if err := decodeDoc(d, elem.Interface()); err != nil {
			return err
		}
		result = reflect.Append(result, elem.Elem())
	}
	slice.Set(result)
	return nil
}

func (m *Memory) UpdateOne(ctx context.Context, filter bson.M, set bson.M) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.docs {
		if matches(d, filter) {
			for k, v := range set {
				d[k] = v
			}
			return 1, nil
		}
	}
	return 0, nil
}

func (m *Memory) DeleteOne(ctx context.Context, filter bson.M) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, d := range m.docs {
		if matches(d, filter) {
			m.docs = append(m.docs[:i], m.docs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *Memory) DeleteMany(ctx context.Context, filter bson.M) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var kept []bson.M
	var deleted int64
	for _, d := range m.docs {
		if matches(d, filter) {
			deleted++
			continue
		}
		kept = append(kept, d)
	}
	m.docs = kept
	return deleted, nil
}

func decodeDoc(d bson.M, out interface{}) error {
	raw, err := bson.Marshal(d)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, out)
}

func matches(doc bson.M, filter bson.M) bool {
	for k, want := range filter {
		got, ok := doc[k]
		if !ok || !valueEqual(got, want) {
			return false
		}
	}
	return true
}

// valueEqual compares a stored value with a filter value, tolerating the
// int/int32/int64/float64 widening that bson round-trips introduce.
func valueEqual(got, want interface{}) bool {
	if g, ok := numeric(got); ok {
		if w, ok := numeric(want); ok {
			return g == w
		}
		return false
	}
	return reflect.DeepEqual(got, want)
}

func numeric(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	default:
		return 0, false
	}
}
