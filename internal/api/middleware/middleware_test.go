package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecover(t *testing.T) {
	app := fiber.New()
	app.Use(Recover(slog.New(slog.NewTextHandler(io.Discard, nil))))
	app.Get("/boom", func(c *fiber.Ctx) error {
		panic("matcher state corrupted")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
}

func TestLoggerPassesRequestThrough(t *testing.T) {
	app := fiber.New()
	app.Use(requestid.New())
	app.Use(Logger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	payload, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "pong", string(payload))
}

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(requestid.New())

	var captured string
	app.Get("/id", func(c *fiber.Ctx) error {
		captured = requestID(c)
		return c.SendStatus(fiber.StatusOK)
	})

	_, err := app.Test(httptest.NewRequest("GET", "/id", nil))
	require.NoError(t, err)
	assert.NotEmpty(t, captured)
}
