package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/constants"
)

func setupRoleApp() *fiber.App {
	app := fiber.New()

	// simulasi AuthMiddleware: role diambil dari header test
	app.Use(func(c *fiber.Ctx) error {
		if role := c.Get("X-Test-Role"); role != "" {
			c.Locals("userRole", role)
		}
		return c.Next()
	})

	app.Get("/guru",
		OnlyRoles(constants.RoleErrorGuru("tes"), constants.GuruOnly...),
		func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/siswa",
		OnlyRoles(constants.RoleErrorSiswa("tes"), constants.SiswaOnly...),
		func(c *fiber.Ctx) error { return c.SendString("ok") })
	return app
}

func doRole(t *testing.T, app *fiber.App, path, role string) int {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if role != "" {
		req.Header.Set("X-Test-Role", role)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestOnlyRoles_GuruOnly(t *testing.T) {
	app := setupRoleApp()

	assert.Equal(t, fiber.StatusOK, doRole(t, app, "/guru", constants.RoleGuru))
	assert.Equal(t, fiber.StatusForbidden, doRole(t, app, "/guru", constants.RoleSiswa))
}

func TestOnlyRoles_SiswaOnly(t *testing.T) {
	app := setupRoleApp()

	assert.Equal(t, fiber.StatusOK, doRole(t, app, "/siswa", constants.RoleSiswa))
	assert.Equal(t, fiber.StatusForbidden, doRole(t, app, "/siswa", constants.RoleGuru))
}

func TestOnlyRoles_TanpaRole(t *testing.T) {
	app := setupRoleApp()

	assert.Equal(t, fiber.StatusUnauthorized, doRole(t, app, "/guru", ""))
}
