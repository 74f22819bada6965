package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/biosecret/go-tasks/config"
	"github.com/biosecret/go-tasks/database"
	"github.com/biosecret/go-tasks/events"
	"github.com/biosecret/go-tasks/handlers"
	"github.com/biosecret/go-tasks/middleware"
	"github.com/biosecret/go-tasks/router"
	"github.com/biosecret/go-tasks/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

const shutdownTimeout = 10 * time.Second

// SetupAndRunApp khởi động ứng dụng Fiber và chặn cho tới khi nhận tín hiệu dừng
func SetupAndRunApp() error {
	// Load biến môi trường từ file .env
	cfg, err := config.LoadENV()
	if err != nil {
		return err
	}
	log := NewLogger(cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Khởi động MongoDB
	store, err := database.StartMongoDB(ctx, cfg.Mongo, log)
	if err != nil {
		return err
	}
	// Đảm bảo kết nối được đóng sau khi ứng dụng kết thúc
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			log.Error().Err(err).Msg("close store")
		}
	}()

	if err := seed(ctx, store, cfg, log); err != nil {
		return err
	}

	hub := events.NewHub(16)
	publishers := events.Multi{hub}
	if cfg.MQTTURL != "" {
		mq, err := connectMQTT(cfg.MQTTURL, log)
		if err != nil {
			// MQTT là tùy chọn, không dừng ứng dụng
			log.Warn().Err(err).Msg("mqtt publisher disabled")
		} else {
			defer mq.Close()
			publishers = append(publishers, mq)
		}
	}

	h := handlers.New(store.Users, store.Tasks, store.Lookups, publishers, hub, log, handlers.Options{
		TokenKey:   []byte(cfg.Token.Key),
		TokenTTL:   cfg.Token.TTL,
		BcryptCost: cfg.BcryptCost,
	})

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	app := NewApp(cfg, h, log, reg)

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		hub.Close()
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	}()

	log.Info().Str("port", cfg.Port).Msg("listening")
	return app.Listen(":" + cfg.Port)
}

// NewApp tạo ứng dụng Fiber với middleware và toàn bộ route
func NewApp(cfg *config.Config, h *handlers.Handler, log zerolog.Logger, reg *prometheus.Registry) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(log),
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept," + cfg.Token.Header,
	}))

	// Đính kèm middleware để xử lý lỗi, ghi log và đo metrics
	app.Use(recover.New())
	app.Use(middleware.RequestLogger(log))
	app.Use(middleware.NewMetrics(reg).Handler())

	router.SetupRoutes(app, h, middleware.JWTMiddleware([]byte(cfg.Token.Key), cfg.Token.Header))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	config.AddSwaggerRoutes(app)

	return app
}

func errorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		}
		if code >= fiber.StatusInternalServerError {
			log.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
		}
		return c.Status(code).JSON(utils.Response{Data: utils.Empty(), Msg: err.Error(), Code: utils.CodeAPIError})
	}
}

func seed(ctx context.Context, store *database.Store, cfg *config.Config, log zerolog.Logger) error {
	if err := store.SeedLookups(ctx); err != nil {
		return err
	}
	if cfg.AdminName == "" || cfg.AdminPassword == "" {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), cfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	created, err := store.EnsureAdmin(ctx, cfg.AdminName, string(hashed))
	if err != nil {
		return fmt.Errorf("ensure admin user: %w", err)
	}
	if !created {
		log.Debug().Str("name", cfg.AdminName).Msg("admin user already exists")
	}
	return nil
}

func connectMQTT(rawURL string, log zerolog.Logger) (*events.MQTTPublisher, error) {
	clientID, err := utils.ClientID("go-tasks")
	if err != nil {
		return nil, err
	}
	return events.ConnectMQTT(rawURL, clientID, log)
}
