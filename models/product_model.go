package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product is a catalog entry managed by a seller or krishi bhavan admin.
// Optional fields default through bson decoding: a document written without
// them comes back with the zero value the API promises ("", 0).
type Product struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name              string             `bson:"name" json:"name"`
	Description       string             `bson:"description,omitempty" json:"description"`
	PriceRegistered   float64            `bson:"price_registered" json:"price_registered"`
	PriceUnregistered float64            `bson:"price_unregistered" json:"price_unregistered"`
	Stock             int                `bson:"stock,omitempty" json:"stock"`
	Category          string             `bson:"category" json:"category"`
	KrishiBhavan      string             `bson:"krishiBhavan,omitempty" json:"krishiBhavan"`
	ImageUrl          string             `bson:"imageUrl,omitempty" json:"imageUrl"`
}
