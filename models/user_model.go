package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type User struct {
	Id       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Phone    string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Address  string             `bson:"address,omitempty" json:"address,omitempty"`
	Pincode  string             `bson:"pincode,omitempty" json:"pincode,omitempty"`
	Password string             `bson:"password" json:"-"`
	Role     string             `bson:"role" json:"role"`
	UniqueId string             `bson:"uniqueId,omitempty" json:"uniqueId,omitempty"`
}
