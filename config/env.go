package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

// Config chứa toàn bộ cấu hình đọc từ biến môi trường
type Config struct {
	Env  string `env:"ENV" env-default:"local"`
	Port string `env:"PORT" env-default:"3000"`

	Mongo MongoConfig
	Token TokenConfig

	BcryptCost    int    `env:"BCRYPT_COST" env-default:"10"`
	AdminName     string `env:"ADMIN_NAME"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	MQTTURL     string `env:"MQTT_URL"`
	CORSOrigins string `env:"CORS_ALLOW_ORIGINS" env-default:"*"`
}

type MongoConfig struct {
	URI            string        `env:"MONGO_URI" env-required:"true"`
	Database       string        `env:"MONGO_DATABASE" env-default:"tasks"`
	ConnectTimeout time.Duration `env:"MONGO_CONNECT_TIMEOUT" env-default:"10s"`
}

type TokenConfig struct {
	Key    string        `env:"TOKEN_KEY" env-required:"true"`
	TTL    time.Duration `env:"TOKEN_TTL" env-default:"1h"`
	Header string        `env:"TOKEN_HEADER" env-default:"x-access-token"`
}

// LoadENV nạp file .env (nếu có) rồi đọc biến môi trường vào Config
func LoadENV(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	cfg := new(Config)
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read env: %w", err)
	}

	switch cfg.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return nil, fmt.Errorf("unknown env: %s", cfg.Env)
	}
	return cfg, nil
}
