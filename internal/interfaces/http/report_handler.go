package http

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/application/ledger"
)

// LowStockPDFGenerator genera el reporte de stock bajo en PDF.
type LowStockPDFGenerator interface {
	GenerateLowStockReport(ctx context.Context, items []dto.LowStockItemResponse, threshold int64) ([]byte, error)
}

// ReportHandler maneja reportes de inventario y el historial de auditoría.
type ReportHandler struct {
	queries          *ledger.QueryUseCase
	pdfGen           LowStockPDFGenerator
	defaultThreshold int64
}

// NewReportHandler construye el handler.
func NewReportHandler(queries *ledger.QueryUseCase, pdfGen LowStockPDFGenerator, defaultThreshold int64) *ReportHandler {
	return &ReportHandler{queries: queries, pdfGen: pdfGen, defaultThreshold: defaultThreshold}
}

// thresholdFromQuery lee ?threshold=; <= 0 o ausente usa el de configuración.
func (h *ReportHandler) thresholdFromQuery(c *fiber.Ctx) int64 {
	raw := c.Query("threshold")
	if raw == "" {
		return h.defaultThreshold
	}
	threshold, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || threshold <= 0 {
		return h.defaultThreshold
	}
	return threshold
}

// LowStock godoc
// @Summary      Productos con stock bajo
// @Tags         reports
// @Produce      json
// @Param        threshold  query  int  false  "Umbral (por defecto el configurado)"
// @Success      200  {array}   dto.LowStockItemResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/low-stock [get]
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	items, err := h.queries.ListLowStock(c.Context(), h.thresholdFromQuery(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(items)
}

// LowStockPDF godoc
// @Summary      Reporte de stock bajo en PDF
// @Tags         reports
// @Produce      application/pdf
// @Param        threshold  query  int  false  "Umbral (por defecto el configurado)"
// @Success      200  {file}  file
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/low-stock/pdf [get]
func (h *ReportHandler) LowStockPDF(c *fiber.Ctx) error {
	threshold := h.thresholdFromQuery(c)
	items, err := h.queries.ListLowStock(c.Context(), threshold)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	pdfBytes, err := h.pdfGen.GenerateLowStockReport(c.Context(), items, threshold)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF", Message: err.Error()})
	}
	filename := "stock-bajo-" + time.Now().Format("20060102") + ".pdf"
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// CategoryStats godoc
// @Summary      Totales de productos y unidades por categoría
// @Tags         reports
// @Produce      json
// @Success      200  {object}  map[string]dto.CategoryStatsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/category-stats [get]
func (h *ReportHandler) CategoryStats(c *fiber.Ctx) error {
	stats, err := h.queries.GetCategoryStats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(stats)
}

// AuditHistory godoc
// @Summary      Historial de auditoría (más recientes primero)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por producto (UUID)"
// @Param        limit       query  int     false  "Tamaño de página (por defecto 10)"
// @Param        offset      query  int     false  "Desplazamiento"
// @Success      200  {array}   dto.AuditEntryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/audit [get]
func (h *ReportHandler) AuditHistory(c *fiber.Ctx) error {
	var page dto.PageRequest
	if !parseQuery(c, &page) {
		return nil
	}
	page.DefaultPage()
	entries, err := h.queries.ListAuditHistory(c.Context(), c.Query("product_id"), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(entries)
}
