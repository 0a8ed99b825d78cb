package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
)

// Caso 1: body con tipo desconocido y cantidad negativa → 400 y el handler
// no sigue ejecutando (la respuesta de validación no debe ser pisada).
func TestParseBody_CuerpoInvalidoCortaElHandler(t *testing.T) {
	app := fiber.New()
	reached := false
	app.Post("/movements", func(c *fiber.Ctx) error {
		var in dto.ApplyMovementRequest
		if !parseBody(c, &in) {
			return nil
		}
		reached = true
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"applied": true})
	})

	body := strings.NewReader(`{"product_id":"not-a-uuid","type":"XX","amount":-5}`)
	req := httptest.NewRequest(http.MethodPost, "/movements", body)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode,
		"un body inválido debe responder 400")
	assert.False(t, reached,
		"el handler no debe seguir ejecutando tras un fallo de validación")

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "VALIDATION", out.Code)
}

// Caso 2: body válido → el handler continúa con el DTO poblado.
func TestParseBody_CuerpoValidoContinua(t *testing.T) {
	app := fiber.New()
	var got dto.ApplyMovementRequest
	app.Post("/movements", func(c *fiber.Ctx) error {
		var in dto.ApplyMovementRequest
		if !parseBody(c, &in) {
			return nil
		}
		got = in
		return c.SendStatus(fiber.StatusCreated)
	})

	body := strings.NewReader(`{"product_id":"00000000-0000-4000-8000-000000000001","type":"IN","amount":5}`)
	req := httptest.NewRequest(http.MethodPost, "/movements", body)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "IN", got.Type)
	assert.Equal(t, int64(5), got.Amount)
}

// Caso 3: query params fuera de rango → 400 y el handler no corre.
func TestParseQuery_PaginacionInvalidaCorta(t *testing.T) {
	app := fiber.New()
	reached := false
	app.Get("/list", func(c *fiber.Ctx) error {
		var page dto.PageRequest
		if !parseQuery(c, &page) {
			return nil
		}
		reached = true
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/list?limit=9999", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, reached)
}
