package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartItem is one line in a user's cart. Duplicate rows for the same
// (user, product) pair are legal; adds never merge into an existing line.
type CartItem struct {
	Id        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserId    primitive.ObjectID `bson:"user_id" json:"user_id"`
	ProductId primitive.ObjectID `bson:"product_id" json:"product_id"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}

// CartEntry is the joined view returned by the cart read: the live product
// fields merged onto the stored line. Available is false when the product
// has been deleted since the item was carted.
type CartEntry struct {
	ProductId          primitive.ObjectID `json:"product_id"`
	ProductName        string             `json:"product_name"`
	ProductPrice       float64            `json:"product_price"`
	ProductImageUrl    string             `json:"product_imageUrl"`
	ProductDescription string             `json:"product_description"`
	ProductStock       int                `json:"product_stock"`
	Quantity           int                `json:"quantity"`
	KrishiBhavan       string             `json:"krishiBhavan"`
	Available          bool               `json:"available"`
}
