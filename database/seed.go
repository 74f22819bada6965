package database

import (
	"context"
	"fmt"

	"github.com/biosecret/go-tasks/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var defaultStatuses = []any{
	models.Status{Code: 1, Title: "To Do"},
	models.Status{Code: 2, Title: "In Progress"},
	models.Status{Code: 3, Title: "Done"},
}

var defaultPriorities = []any{
	models.Priority{Level: 0, Title: "High"},
	models.Priority{Level: 1, Title: "Medium"},
	models.Priority{Level: 2, Title: "Low"},
}

// SeedLookups ghi dữ liệu mặc định vào statuses và priorities nếu còn trống
func (s *Store) SeedLookups(ctx context.Context) error {
	if err := seedIfEmpty(ctx, s.Lookups.statuses, defaultStatuses); err != nil {
		return fmt.Errorf("seed statuses: %w", err)
	}
	if err := seedIfEmpty(ctx, s.Lookups.priorities, defaultPriorities); err != nil {
		return fmt.Errorf("seed priorities: %w", err)
	}
	return nil
}

func seedIfEmpty(ctx context.Context, coll *mongo.Collection, docs []any) error {
	n, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	_, err = coll.InsertMany(ctx, docs)
	return err
}

// EnsureAdmin tạo tài khoản quản trị ban đầu nếu chưa có user nào trùng tên.
// passwordHash phải là hash bcrypt.
func (s *Store) EnsureAdmin(ctx context.Context, name, passwordHash string) (bool, error) {
	exists, err := s.Users.NameExists(ctx, name)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	admin := &models.User{Name: name, Password: passwordHash, AdminPrivileges: true}
	if err := s.Users.Insert(ctx, admin); err != nil {
		return false, err
	}
	s.log.Info().Str("name", name).Msg("admin user created")
	return true, nil
}
