package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Note là một ghi chú gắn vào task
type Note struct {
	Text string `bson:"text" json:"text"`
	Date string `bson:"date" json:"date"`
}

// Tag là một nhãn có màu gắn vào task
type Tag struct {
	Text  string `bson:"text" json:"text"`
	Color string `bson:"color" json:"color"`
}

// Task là cấu trúc dữ liệu của một task.
// EndDate và UpdateDate được lưu dưới dạng chuỗi dd/mm/yyyy.
type Task struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID      string             `bson:"userId" json:"userId"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Status      int                `bson:"status" json:"status"`
	Priority    int                `bson:"priority" json:"priority"`
	EndDate     string             `bson:"endDate" json:"endDate"`
	UpdateDate  string             `bson:"updateDate" json:"updateDate"`
	Notes       []Note             `bson:"notes" json:"notes"`
	Tags        []Tag              `bson:"tags" json:"tags"`
}

const (
	DefaultTaskStatus   = 1
	DefaultTaskPriority = 2
)
