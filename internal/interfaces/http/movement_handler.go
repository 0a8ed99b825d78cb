package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/application/ledger"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
)

// MovementHandler maneja el registro y la consulta de movimientos de stock (protegido).
type MovementHandler struct {
	apply   *ledger.ApplyMovementUseCase
	queries *ledger.QueryUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(apply *ledger.ApplyMovementUseCase, queries *ledger.QueryUseCase) *MovementHandler {
	return &MovementHandler{apply: apply, queries: queries}
}

// Apply godoc
// @Summary      Registrar movimiento de stock
// @Description  Aplica un movimiento IN/OUT de forma atómica: valida contra la
//
//	cantidad cacheada bajo lock de fila, actualiza el producto y
//	escribe el movimiento más su entrada de auditoría en la misma
//	transacción. Un 503 indica fallo transitorio: reintentar con la
//	misma idempotency_key devuelve el movimiento previo si se aplicó.
//
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ApplyMovementRequest  true  "product_id, type (IN|OUT), amount, idempotency_key (opcional)"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Apply(c *fiber.Ctx) error {
	var in dto.ApplyMovementRequest
	if !parseBody(c, &in) {
		return nil
	}
	movement, err := h.apply.Apply(c.Context(), ledger.MovementInputDTO{
		ProductID:      in.ProductID,
		Type:           in.Type,
		Amount:         in.Amount,
		ActorID:        GetUserID(c),
		IdempotencyKey: in.IdempotencyKey,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidMovement) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_MOVEMENT", Message: "tipo desconocido o cantidad no positiva"})
		}
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: "producto no encontrado"})
		}
		if errors.Is(err, domain.ErrInsufficientStock) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "IDEMPOTENCY_CONFLICT", Message: "clave de idempotencia en uso por otra petición, reintente"})
		}
		if errors.Is(err, domain.ErrStorage) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "STORAGE", Message: "fallo transitorio de almacenamiento, reintente"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MovementResponse{
		ID:        movement.ID,
		ProductID: movement.ProductID,
		Type:      movement.Type,
		Amount:    movement.Amount,
		CreatedAt: movement.CreatedAt,
	})
}

// List godoc
// @Summary      Listar movimientos (más recientes primero)
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por producto (UUID)"
// @Param        limit       query  int     false  "Tamaño de página (por defecto 10)"
// @Param        offset      query  int     false  "Desplazamiento"
// @Success      200  {array}   dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if !parseQuery(c, &page) {
		return nil
	}
	page.DefaultPage()
	movements, err := h.queries.ListMovements(c.Context(), c.Query("product_id"), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(movements)
}

// GetByID godoc
// @Summary      Obtener movimiento por ID
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [get]
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	movement, err := h.queries.GetMovement(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimiento no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(movement)
}
