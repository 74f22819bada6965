package database

import (
	"context"
	"fmt"

	"github.com/biosecret/go-tasks/config"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Tên các collection
const (
	UsersCollection      = "users"
	TasksCollection      = "tasks"
	StatusesCollection   = "statuses"
	PrioritiesCollection = "priority"
)

// Store sở hữu kết nối MongoDB; được tạo lúc khởi động và đóng khi tắt ứng dụng
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	log    zerolog.Logger

	Users   *UserRepository
	Tasks   *TaskRepository
	Lookups *LookupRepository
}

// StartMongoDB mở kết nối và kiểm tra bằng ping
func StartMongoDB(ctx context.Context, cfg config.MongoConfig, log zerolog.Logger) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("cannot connect to MongoDB: %w", err)
	}

	db := client.Database(cfg.Database)
	log.Info().Str("database", cfg.Database).Msg("connected to MongoDB")

	return &Store{
		client:  client,
		db:      db,
		log:     log,
		Users:   &UserRepository{coll: db.Collection(UsersCollection)},
		Tasks:   &TaskRepository{coll: db.Collection(TasksCollection)},
		Lookups: &LookupRepository{statuses: db.Collection(StatusesCollection), priorities: db.Collection(PrioritiesCollection)},
	}, nil
}

// Close đóng kết nối MongoDB
func (s *Store) Close(ctx context.Context) error {
	if s == nil || s.client == nil {
		return nil
	}
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	s.log.Info().Msg("database connection closed")
	return nil
}
