package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking is an immutable pre-booking intent. Product name and total are a
// snapshot taken at creation and are never re-derived from the catalog.
type Booking struct {
	Id               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserId           primitive.ObjectID `bson:"user_id" json:"user_id"`
	ProductName      string             `bson:"product_name" json:"product_name"`
	ProductId        primitive.ObjectID `bson:"product_id" json:"product_id"`
	Quantity         int                `bson:"quantity" json:"quantity"`
	KrishiBhavan     string             `bson:"krishiBhavan" json:"krishiBhavan"`
	BookingDateTime  string             `bson:"booking_date_time" json:"booking_date_time"`
	TotalAmount      float64            `bson:"total_amount" json:"total_amount"`
	CollectionStatus string             `bson:"collection_status" json:"collection_status"`
}

const CollectionStatusPending = "pending"
