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

// withoutPassword loại bỏ hash mật khẩu khỏi kết quả truy vấn
var withoutPassword = bson.M{"password": 0}

type UserRepository struct {
	coll *mongo.Collection
}

// FindByName trả về user theo tên, nil nếu không tồn tại
func (r *UserRepository) FindByName(ctx context.Context, name string) (*models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by name: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) NameExists(ctx context.Context, name string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"name": name}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count users by name: %w", err)
	}
	return n > 0, nil
}

// Exists kiểm tra user theo id dạng hex
func (r *UserRepository) Exists(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": oid}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count users by id: %w", err)
	}
	return n > 0, nil
}

func (r *UserRepository) Insert(ctx context.Context, user *models.User) error {
	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

// Find trả về danh sách user khớp filter, không kèm mật khẩu
func (r *UserRepository) Find(ctx context.Context, filter bson.M) ([]models.User, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetProjection(withoutPassword))
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	users := []models.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

// Update ghi đè các field trong set và trả về bản ghi sau cập nhật, nil nếu không tồn tại
func (r *UserRepository) Update(ctx context.Context, id string, set bson.M) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var user models.User
	if len(set) == 0 {
		err = r.coll.FindOne(ctx, bson.M{"_id": oid}, options.FindOne().SetProjection(withoutPassword)).Decode(&user)
	} else {
		opts := options.FindOneAndUpdate().
			SetReturnDocument(options.After).
			SetProjection(withoutPassword)
		err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&user)
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return &user, nil
}

// Delete xóa user và trả về bản ghi đã xóa, nil nếu không tồn tại
func (r *UserRepository) Delete(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var user models.User
	err = r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}, options.FindOneAndDelete().SetProjection(withoutPassword)).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("delete user: %w", err)
	}
	return &user, nil
}
