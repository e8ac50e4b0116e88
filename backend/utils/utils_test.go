package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"coursehub/backend/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenApp(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/whoami", func(c *fiber.Ctx) error {
		userID, err := ExtractUserIDFromToken(c, cfg)
		if err != nil {
			return err
		}
		return c.SendString(userID)
	})
	return app
}

func TestTokenRoundTrip(t *testing.T) {
	cfg := &config.Config{JWTSecret: "testsecret"}
	token, err := GenerateJWTToken("user-123", cfg)
	require.NoError(t, err)

	for _, header := range []string{token, "Bearer " + token} {
		req := httptest.NewRequest("GET", "/whoami", nil)
		req.Header.Set("Authorization", header)

		resp, err := tokenApp(cfg).Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "user-123", string(body))
	}
}

func TestTokenRejected(t *testing.T) {
	cfg := &config.Config{JWTSecret: "testsecret"}
	foreign, err := GenerateJWTToken("user-123", &config.Config{JWTSecret: "other"})
	require.NoError(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": "user-123", "exp": 1})
	expiredToken, err := expired.SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)

	numeric := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": 7})
	numericToken, err := numeric.SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)

	cases := map[string]string{
		"missing":    "",
		"garbage":    "not-a-token",
		"foreign":    foreign,
		"expired":    expiredToken,
		"numeric id": numericToken,
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/whoami", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			resp, err := tokenApp(cfg).Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

			var body ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestErrorHandlerHidesUnknownErrors(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("pq: relation does not exist")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"message":"Internal server error"}`, string(body))
}

func TestValidationErrorBody(t *testing.T) {
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		return ValidationError(c, map[string]string{"title": "is required"})
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/", bytes.NewBufferString("{}")))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"message":"Validation failed","details":{"title":"is required"}}`, string(body))
}

func TestInitLoggerPlainFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := InitLogger(LoggerConfig{Format: config.LogFormatPlain, Output: &buf, EnableColors: true})
	logger.Print("hello")

	assert.Contains(t, buf.String(), "[Course Catalog] ")
	assert.Contains(t, buf.String(), "hello")
	assert.NotContains(t, buf.String(), ".go:")
	assert.NotContains(t, buf.String(), "\033[")
}

func TestInitLoggerTextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := InitLogger(LoggerConfig{Format: config.LogFormatText, Output: &buf, EnableColors: true})
	logger.Print("hello")

	assert.Contains(t, buf.String(), "\033[36m[Course Catalog] ")
	assert.Contains(t, buf.String(), "utils_test.go:")
}
