package http

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterSwagger_SinArchivoNoMontaNada(t *testing.T) {
	app := fiber.New()

	mounted := RegisterSwagger(app, filepath.Join(t.TempDir(), "swagger.json"))
	assert.False(t, mounted)

	// El resto de la app sigue sirviendo con normalidad.
	app.Get("/health", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRegisterSwagger_ConArchivoMontaLaUI(t *testing.T) {
	specPath := filepath.Join(t.TempDir(), "swagger.json")
	spec := `{"swagger":"2.0","info":{"title":"Stock Ledger API","version":"1.0"},"paths":{}}`
	require.NoError(t, os.WriteFile(specPath, []byte(spec), 0o644))

	app := fiber.New()
	mounted := RegisterSwagger(app, specPath)
	require.True(t, mounted)

	resp, err := app.Test(httptest.NewRequest("GET", "/docs", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
