package app

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/biosecret/go-tasks/config"
	"github.com/biosecret/go-tasks/handlers"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

func testApp(t *testing.T) *fiber.App {
	t.Helper()
	cfg := &config.Config{
		Env:         config.EnvLocal,
		Token:       config.TokenConfig{Key: "secret", TTL: time.Hour, Header: "x-access-token"},
		CORSOrigins: "*",
	}
	h := handlers.New(nil, nil, nil, nil, nil, zerolog.Nop(), handlers.Options{TokenKey: []byte(cfg.Token.Key)})
	return NewApp(cfg, h, zerolog.Nop(), prometheus.NewRegistry())
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return string(raw)
}

func TestNewAppHealth(t *testing.T) {
	app := testApp(t)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	if err != nil {
		t.Fatal(err)
	}
	if got := body(t, resp); resp.StatusCode != fiber.StatusOK || got != `{"status":"ok"}` {
		t.Errorf("health = %d %s", resp.StatusCode, got)
	}
}

func TestNewAppMetrics(t *testing.T) {
	app := testApp(t)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if err != nil {
		t.Fatal(err)
	}
	got := body(t, resp)
	if !strings.Contains(got, `http_requests_total{method="GET",route="/health",status="200"} 1`) {
		t.Errorf("metrics output missing request counter:\n%s", got)
	}
}

func TestNewAppUnknownRoute(t *testing.T) {
	app := testApp(t)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/nope", nil))
	if err != nil {
		t.Fatal(err)
	}
	got := body(t, resp)
	if resp.StatusCode != fiber.StatusNotFound || !strings.Contains(got, `"code":1`) {
		t.Errorf("unknown route = %d %s", resp.StatusCode, got)
	}
}

func TestNewAppRequiresToken(t *testing.T) {
	app := testApp(t)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/tasks", nil))
	if err != nil {
		t.Fatal(err)
	}
	got := body(t, resp)
	if resp.StatusCode != fiber.StatusForbidden || !strings.Contains(got, "A token is required for authentication.") {
		t.Errorf("tasks without token = %d %s", resp.StatusCode, got)
	}
}

func TestNewLoggerLevels(t *testing.T) {
	tests := map[string]zerolog.Level{
		config.EnvLocal: zerolog.DebugLevel,
		config.EnvDev:   zerolog.DebugLevel,
		config.EnvProd:  zerolog.InfoLevel,
	}
	for env, want := range tests {
		if got := NewLogger(env).GetLevel(); got != want {
			t.Errorf("NewLogger(%q) level = %v, want %v", env, got, want)
		}
	}
}
