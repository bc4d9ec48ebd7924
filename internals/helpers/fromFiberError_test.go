package helper

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func errorApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: FromFiberError})
	app.Get("/internal", func(c *fiber.Ctx) error {
		return errors.New(`pq: password authentication failed for user "admin" at 10.0.0.5`)
	})
	app.Get("/bisnis", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
	})
	return app
}

func errorBody(t *testing.T, app *fiber.App, path string) (int, ErrorResponse) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	assert.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)

	var body ErrorResponse
	assert.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestFromFiberErrorHidesDetailInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	status, body := errorBody(t, errorApp(), "/internal")
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "Terjadi kesalahan internal", body.Message)
	assert.NotContains(t, body.Message, "pq:")
	assert.Equal(t, "INTERNAL_ERROR", body.ErrorCode)
}

func TestFromFiberErrorShowsDetailInDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	status, body := errorBody(t, errorApp(), "/internal")
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Contains(t, body.Message, "pq: password authentication failed")
}

func TestFromFiberErrorKeepsBusinessMessage(t *testing.T) {
	// pesan *fiber.Error aman untuk user, tidak ikut disembunyikan
	t.Setenv("APP_ENV", "production")

	status, body := errorBody(t, errorApp(), "/bisnis")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Kelas tidak ditemukan", body.Message)
	assert.Equal(t, "NOT_FOUND", body.ErrorCode)
}
