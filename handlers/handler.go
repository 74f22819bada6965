package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/biosecret/go-tasks/events"
	"github.com/biosecret/go-tasks/middleware"
	"github.com/biosecret/go-tasks/models"
	"github.com/biosecret/go-tasks/utils"
	"github.com/biosecret/go-tasks/validation"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
)

// UserStore là phần của database cần cho các handler user và login.
// Các hàm tìm theo id trả về nil, nil khi không có bản ghi.
type UserStore interface {
	FindByName(ctx context.Context, name string) (*models.User, error)
	NameExists(ctx context.Context, name string) (bool, error)
	Exists(ctx context.Context, id string) (bool, error)
	Insert(ctx context.Context, user *models.User) error
	Find(ctx context.Context, filter bson.M) ([]models.User, error)
	Update(ctx context.Context, id string, set bson.M) (*models.User, error)
	Delete(ctx context.Context, id string) (*models.User, error)
}

type TaskStore interface {
	Insert(ctx context.Context, task *models.Task) error
	Find(ctx context.Context, filter bson.M) ([]models.Task, error)
	Update(ctx context.Context, id, userID string, set bson.M) (*models.Task, error)
	Delete(ctx context.Context, id string) (*models.Task, error)
}

type LookupStore interface {
	FindStatus(ctx context.Context, code float64) (*models.Status, error)
	FindPriority(ctx context.Context, level float64) (*models.Priority, error)
}

// Options cấu hình xác thực cho Handler
type Options struct {
	TokenKey   []byte
	TokenTTL   time.Duration
	BcryptCost int
}

// Handler gom các handler HTTP cùng các phụ thuộc của chúng
type Handler struct {
	users   UserStore
	tasks   TaskStore
	lookups LookupStore
	events  events.Publisher
	hub     *events.Hub
	log     zerolog.Logger
	opts    Options
	now     func() time.Time
}

// New tạo Handler; hub có thể nil nếu không bật SSE, pub có thể nil nếu không phát sự kiện
func New(users UserStore, tasks TaskStore, lookups LookupStore, pub events.Publisher, hub *events.Hub, log zerolog.Logger, opts Options) *Handler {
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = time.Hour
	}
	return &Handler{
		users:   users,
		tasks:   tasks,
		lookups: lookups,
		events:  pub,
		hub:     hub,
		log:     log,
		opts:    opts,
		now:     time.Now,
	}
}

// request trả về struct request mà ValidateData đã kiểm tra cho route này
func request[T any](c *fiber.Ctx) (*T, error) {
	in, _ := c.Locals(middleware.InputKey).(*validation.Input)
	if in == nil {
		return nil, errors.New("request was not validated")
	}
	req, ok := in.Request.(*T)
	if !ok {
		return nil, fmt.Errorf("unexpected request type %T", in.Request)
	}
	return req, nil
}

// validated trả về các giá trị đã chuyển kiểu, chỉ gồm các key có trong request
func validated(c *fiber.Ctx) map[string]any {
	in, _ := c.Locals(middleware.InputKey).(*validation.Input)
	if in == nil {
		return map[string]any{}
	}
	return in.Values
}

func (h *Handler) storeError(c *fiber.Ctx, err error, msg string) error {
	h.log.Error().Err(err).Str("path", c.Path()).Msg(msg)
	return utils.SendErrorResponse(c, err)
}

func (h *Handler) publish(eventType string, data any) {
	if h.events == nil {
		return
	}
	h.events.Publish(events.Event{Type: eventType, Data: data, At: h.now()})
}

// HandleHealthCheck godoc
// @Summary Health check
// @Tags misc
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) HandleHealthCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
}
