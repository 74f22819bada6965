package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type User struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name            string             `bson:"name" json:"name"`
	Password        string             `bson:"password,omitempty" json:"-"` // bcrypt hash, không trả về client
	AdminPrivileges bool               `bson:"adminPrivileges" json:"adminPrivileges"`
}
