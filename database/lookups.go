package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/biosecret/go-tasks/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// LookupRepository đọc các bảng tra cứu status và priority
type LookupRepository struct {
	statuses   *mongo.Collection
	priorities *mongo.Collection
}

// FindStatus trả về nil, nil khi không có mã code. MongoDB so sánh số khác kiểu theo giá trị
// nên 2.0 khớp bản ghi lưu 2 còn 1.5 thì không khớp gì.
func (r *LookupRepository) FindStatus(ctx context.Context, code float64) (*models.Status, error) {
	var status models.Status
	err := r.statuses.FindOne(ctx, bson.M{"code": code}).Decode(&status)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find status: %w", err)
	}
	return &status, nil
}

func (r *LookupRepository) FindPriority(ctx context.Context, level float64) (*models.Priority, error) {
	var priority models.Priority
	err := r.priorities.FindOne(ctx, bson.M{"level": level}).Decode(&priority)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find priority: %w", err)
	}
	return &priority, nil
}
