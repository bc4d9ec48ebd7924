package middlewares

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestRecoveryMiddlewareTurnsPanicInto500(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	app := fiber.New()
	app.Use(RecoveryMiddleware())
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("kena nil pointer")
	})
	app.Get("/aman", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/panic", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	// request normal tidak terpengaruh
	resp, err = app.Test(httptest.NewRequest("GET", "/aman", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
