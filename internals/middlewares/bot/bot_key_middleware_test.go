package bot

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/configs"
)

func setupBotApp(key string) *fiber.App {
	configs.BotAPIKey = key

	app := fiber.New()
	app.Get("/bot/ping", BotAPIKeyMiddleware(), func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})
	return app
}

func TestBotAPIKey_Valid(t *testing.T) {
	app := setupBotApp("rahasia-bot")

	req := httptest.NewRequest("GET", "/bot/ping", nil)
	req.Header.Set("X-Bot-API-Key", "rahasia-bot")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestBotAPIKey_TanpaHeader(t *testing.T) {
	app := setupBotApp("rahasia-bot")

	resp, err := app.Test(httptest.NewRequest("GET", "/bot/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestBotAPIKey_Salah(t *testing.T) {
	app := setupBotApp("rahasia-bot")

	req := httptest.NewRequest("GET", "/bot/ping", nil)
	req.Header.Set("X-Bot-API-Key", "tebakan")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestBotAPIKey_ServerTanpaKey(t *testing.T) {
	// BOT_API_KEY kosong: semua request ditolak, bukan dibiarkan lolos
	app := setupBotApp("")

	req := httptest.NewRequest("GET", "/bot/ping", nil)
	req.Header.Set("X-Bot-API-Key", "apapun")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
