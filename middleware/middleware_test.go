package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/biosecret/go-tasks/validation"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

var secret = []byte("secret")

func sign(t *testing.T, method jwt.SigningMethod, key any, claims jwt.Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestJWTMiddlewareStoresUserID(t *testing.T) {
	app := fiber.New()
	app.Get("/", JWTMiddleware(secret, "x-access-token"), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(UserIDKey).(string))
	})

	token := sign(t, jwt.SigningMethodHS256, secret, Claims{
		UserID:           "abc",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute))},
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("x-access-token", token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK || buf.String() != "abc" {
		t.Errorf("got %d %q", resp.StatusCode, buf.String())
	}
}

func TestParseTokenRejectsNoneAlgorithm(t *testing.T) {
	token := sign(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, Claims{UserID: "abc"})
	if _, err := ParseToken(token, secret); err == nil {
		t.Fatal("unsigned token must be rejected")
	}
}

func runValidate(t *testing.T, schema, contentType, body string) (int, map[string]any, map[string]any) {
	t.Helper()
	var got map[string]any
	app := fiber.New()
	app.Post("/", ValidateData(schema), func(c *fiber.Ctx) error {
		if in, ok := c.Locals(InputKey).(*validation.Input); ok {
			got = in.Values
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var env map[string]any
	if resp.StatusCode != fiber.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
			t.Fatal(err)
		}
	}
	return resp.StatusCode, env, got
}

func TestValidateDataJSONBody(t *testing.T) {
	status, _, got := runValidate(t, "loginSchema", fiber.MIMEApplicationJSON, `{"name":"admin","password":"x"}`)
	if status != fiber.StatusNoContent {
		t.Fatalf("status = %d", status)
	}
	if got["name"] != "admin" || got["password"] != "x" {
		t.Errorf("input = %v", got)
	}
}

func TestValidateDataFormBody(t *testing.T) {
	status, _, got := runValidate(t, "addUserSchema", fiber.MIMEApplicationForm,
		"name=johndoe&password=Passw0rd%21&adminPrivileges=true")
	if status != fiber.StatusNoContent {
		t.Fatalf("status = %d", status)
	}
	if got["adminPrivileges"] != true {
		t.Errorf("adminPrivileges = %v", got["adminPrivileges"])
	}
}

func TestValidateDataUnknownKeyInBodyOrder(t *testing.T) {
	status, env, _ := runValidate(t, "deleteUserSchema", fiber.MIMEApplicationJSON,
		`{"zeta":1,"_id":"64a5a590648bd50348e07e37","alpha":2}`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d", status)
	}
	d := env["data"].([]any)[0].(map[string]any)
	if d["type"] != "object.unknown" || d["message"] != `"zeta" is not allowed` {
		t.Errorf("detail = %v", d)
	}

	status, env, _ = runValidate(t, "deleteUserSchema", fiber.MIMEApplicationForm,
		"_id=64a5a590648bd50348e07e37&zeta=1&alpha=2")
	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d", status)
	}
	d = env["data"].([]any)[0].(map[string]any)
	if d["message"] != `"zeta" is not allowed` {
		t.Errorf("detail = %v", d)
	}
}

func TestValidateDataStoresRequest(t *testing.T) {
	var req *validation.AddUserRequest
	app := fiber.New()
	app.Post("/", ValidateData("addUserSchema"), func(c *fiber.Ctx) error {
		req, _ = c.Locals(InputKey).(*validation.Input).Request.(*validation.AddUserRequest)
		return c.SendStatus(fiber.StatusNoContent)
	})

	httpReq := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"johndoe","password":"Passw0rd!","adminPrivileges":false}`))
	httpReq.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	resp, err := app.Test(httpReq)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if req == nil || req.Name != "johndoe" || req.AdminPrivileges == nil || *req.AdminPrivileges {
		t.Errorf("request = %+v", req)
	}
}

func TestValidateDataRejects(t *testing.T) {
	status, env, _ := runValidate(t, "loginSchema", fiber.MIMEApplicationJSON, `{"name":"admin"}`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d", status)
	}
	if env["msg"] != "Invalid Data." || env["code"] != float64(3) {
		t.Errorf("envelope = %v", env)
	}
	details, _ := env["data"].([]any)
	if len(details) != 1 {
		t.Fatalf("data = %v", env["data"])
	}
	d := details[0].(map[string]any)
	if d["type"] != "any.required" || d["message"] != `"password" is required` {
		t.Errorf("detail = %v", d)
	}

	status, env, _ = runValidate(t, "loginSchema", fiber.MIMEApplicationJSON, `[1,2]`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d", status)
	}
	d = env["data"].([]any)[0].(map[string]any)
	if d["type"] != "object.base" {
		t.Errorf("detail = %v", d)
	}
}

func TestValidateDataUnknownSchemaPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	ValidateData("missingSchema")
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	app := fiber.New()
	app.Use(m.Handler())
	app.Get("/tasks/:userId", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	for _, path := range []string{"/tasks/a", "/tasks/b"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
	}

	got := testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/tasks/:userId", "200"))
	if got != 2 {
		t.Errorf("requests = %v, want 2", got)
	}
	if n := testutil.CollectAndCount(m.latency); n != 1 {
		t.Errorf("latency series = %d, want 1", n)
	}
}
