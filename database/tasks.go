package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/biosecret/go-tasks/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TaskRepository struct {
	coll *mongo.Collection
}

func (r *TaskRepository) Insert(ctx context.Context, task *models.Task) error {
	res, err := r.coll.InsertOne(ctx, task)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		task.ID = oid
	}
	return nil
}

func (r *TaskRepository) Find(ctx context.Context, filter bson.M) ([]models.Task, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find tasks: %w", err)
	}
	tasks := []models.Task{}
	if err := cur.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}
	return tasks, nil
}

// Update cập nhật task thuộc userID; trả về nil nếu không có task khớp
func (r *TaskRepository) Update(ctx context.Context, id, userID string, set bson.M) (*models.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var task models.Task
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid, "userId": userID}, bson.M{"$set": set}, opts).Decode(&task)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return &task, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) (*models.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var task models.Task
	err = r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&task)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("delete task: %w", err)
	}
	return &task, nil
}
