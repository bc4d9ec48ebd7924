package middleware

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"sekolahku_backend/internals/constants"
)

func roleApp(role string) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(LocRole, role)
		return c.Next()
	})
	app.Get("/staff",
		RequireRolesWithMessage(constants.RoleErrorStaff("dashboard admin"), constants.StaffAndUp...),
		func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/admin",
		RequireRolesWithMessage(constants.RoleErrorAdmin("pengaturan integrasi"), constants.AdminAndUp...),
		func(c *fiber.Ctx) error { return c.SendString("ok") })
	return app
}

func TestRequireRolesWithMessage(t *testing.T) {
	// staff boleh masuk dashboard, tapi bukan pengaturan
	app := roleApp(constants.RoleStaff)

	resp, err := app.Test(httptest.NewRequest("GET", "/staff", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/admin", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Equal(t, constants.RoleErrorAdmin("pengaturan integrasi"), string(raw))

	// teacher ditolak di kedua grup
	app = roleApp(constants.RoleTeacher)
	resp, err = app.Test(httptest.NewRequest("GET", "/staff", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// owner lolos semua
	app = roleApp(constants.RoleOwner)
	resp, err = app.Test(httptest.NewRequest("GET", "/admin", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
