package store

import (
	"context"
	"testing"

	qt "github.com/frankban/quicktest"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type doc struct {
	Id     primitive.ObjectID `bson:"_id,omitempty"`
	Owner  primitive.ObjectID `bson:"owner"`
	Label  string             `bson:"label"`
	Amount int                `bson:"amount"`
}

func TestInsertAssignsId(t *testing.T) {
	c := qt.New(t)
	m := NewMemory()

	id, err := m.InsertOne(context.Background(), doc{Label: "a"})
	c.Assert(err, qt.IsNil)
	c.Assert(id.IsZero(), qt.IsFalse)

	var got doc
	c.Assert(m.FindOne(context.Background(), bson.M{"_id": id}, &got), qt.IsNil)
	c.Assert(got.Label, qt.Equals, "a")
}

func TestFindOneMiss(t *testing.T) {
	c := qt.New(t)
	m := NewMemory()

	var got doc
	err := m.FindOne(context.Background(), bson.M{"label": "missing"}, &got)
	c.Assert(err, qt.Equals, ErrNoDocuments)
}

func TestFirstMatchSemantics(t *testing.T) {
	c := qt.New(t)
	m := NewMemory()
	owner := primitive.NewObjectID()

	for i := 1; i <= 3; i++ {
		_, err := m.InsertOne(context.Background(), doc{Owner: owner, Label: "x", Amount: i})
		c.Assert(err, qt.IsNil)
	}

	// UpdateOne touches only the first row in insertion order.
	matched, err := m.UpdateOne(context.Background(), bson.M{"owner": owner}, bson.M{"amount": 99})
	c.Assert(err, qt.IsNil)
	c.Assert(matched, qt.Equals, int64(1))

	var all []doc
	c.Assert(m.Find(context.Background(), bson.M{"owner": owner}, &all), qt.IsNil)
	c.Assert(all, qt.HasLen, 3)
	c.Assert(all[0].Amount, qt.Equals, 99)
	c.Assert(all[1].Amount, qt.Equals, 2)

	deleted, err := m.DeleteOne(context.Background(), bson.M{"owner": owner})
	c.Assert(err, qt.IsNil)
	c.Assert(deleted, qt.Equals, int64(1))
	c.Assert(m.Len(), qt.Equals, 2)

	deleted, err = m.DeleteMany(context.Background(), bson.M{"owner": owner})
	c.Assert(err, qt.IsNil)
	c.Assert(deleted, qt.Equals, int64(2))
	c.Assert(m.Len(), qt.Equals, 0)
}

func TestNumericFilterMatching(t *testing.T) {
	c := qt.New(t)
	m := NewMemory()

	_, err := m.InsertOne(context.Background(), doc{Label: "n", Amount: 7})
	c.Assert(err, qt.IsNil)

	// bson round-trips widen ints; a plain int filter must still match.
	var got doc
	c.Assert(m.FindOne(context.Background(), bson.M{"amount": 7}, &got), qt.IsNil)
	c.Assert(got.Label, qt.Equals, "n")
}
