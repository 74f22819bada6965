package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Status ánh xạ mã trạng thái sang tiêu đề hiển thị
type Status struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Code  int                `bson:"code" json:"code"`
	Title string             `bson:"title" json:"title"`
}

// Priority ánh xạ mức ưu tiên sang tiêu đề hiển thị
type Priority struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Level int                `bson:"level" json:"level"`
	Title string             `bson:"title" json:"title"`
}
