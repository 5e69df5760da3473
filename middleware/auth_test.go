package middleware

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/clinicdash/backpain-api/utils"
)

func testApp(t *testing.T) *fiber.App {
	t.Helper()

	app := fiber.New()
	app.Get("/protected", Protected(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"doctorID": c.Locals("doctorID"),
			"role":     c.Locals("role"),
		})
	})
	return app
}

func requestWithToken(t *testing.T, app *fiber.App, token string) (int, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest("GET", "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	var body map[string]interface{}
	json.Unmarshal(data, &body)
	return resp.StatusCode, body
}

func TestProtected_NoToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")
	app := testApp(t)

	status, body := requestWithToken(t, app, "")
	if status != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", status)
	}
	if body["message"] != "No token, authorization denied" {
		t.Errorf("unexpected message: %v", body["message"])
	}
}

func TestProtected_ExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")
	app := testApp(t)

	claims := jwt.MapClaims{
		"id":   uint(1),
		"role": "doctor",
		"exp":  time.Now().Add(-time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(utils.JWTSecret())
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	status, body := requestWithToken(t, app, token)
	if status != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", status)
	}
	if body["message"] != "Token expired, please login again" {
		t.Errorf("unexpected message: %v", body["message"])
	}
}

func TestProtected_MalformedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")
	app := testApp(t)

	status, body := requestWithToken(t, app, "not.a.token")
	if status != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", status)
	}
	if body["message"] != "Invalid token" {
		t.Errorf("unexpected message: %v", body["message"])
	}
}

func TestProtected_WrongSignature(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")
	app := testApp(t)

	claims := jwt.MapClaims{
		"id":   uint(1),
		"role": "doctor",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("another_secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	status, body := requestWithToken(t, app, token)
	if status != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", status)
	}
	if body["message"] != "Invalid token" {
		t.Errorf("unexpected message: %v", body["message"])
	}
}

func TestProtected_ValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")
	app := testApp(t)

	token, err := utils.GenerateToken(42, "doctor")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	status, body := requestWithToken(t, app, token)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if id := body["doctorID"].(float64); uint(id) != 42 {
		t.Errorf("expected doctorID 42, got %v", body["doctorID"])
	}
	if body["role"] != "doctor" {
		t.Errorf("expected role doctor, got %v", body["role"])
	}
}
