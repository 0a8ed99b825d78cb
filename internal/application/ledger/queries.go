package ledger

import (
	"context"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// QueryUseCase fachada de lectura del ledger: cantidad puntual, stock bajo,
// agregados por categoría, historial de auditoría y movimientos. Solo lecturas
// confirmadas; sin invariantes propios.
type QueryUseCase struct {
	productRepo      repository.ProductRepository
	movementRepo     repository.MovementRepository
	auditRepo        repository.AuditRepository
	reportRepo       repository.ReportRepository
	defaultThreshold int64
}

// NewQueryUseCase construye la fachada. defaultThreshold es el umbral de
// stock bajo cuando el caller no envía uno (configuración, por defecto 5).
func NewQueryUseCase(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
	auditRepo repository.AuditRepository,
	reportRepo repository.ReportRepository,
	defaultThreshold int64,
) *QueryUseCase {
	if defaultThreshold <= 0 {
		defaultThreshold = 5
	}
	return &QueryUseCase{
		productRepo:      productRepo,
		movementRepo:     movementRepo,
		auditRepo:        auditRepo,
		reportRepo:       reportRepo,
		defaultThreshold: defaultThreshold,
	}
}

// GetQuantity devuelve la cantidad actual confirmada de un producto.
func (uc *QueryUseCase) GetQuantity(_ context.Context, productID string) (int64, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return 0, err
	}
	if product == nil {
		return 0, domain.ErrProductNotFound
	}
	return product.Quantity, nil
}

// ListLowStock lista los productos con cantidad por debajo del umbral.
// threshold <= 0 usa el umbral por defecto del sistema.
func (uc *QueryUseCase) ListLowStock(ctx context.Context, threshold int64) ([]dto.LowStockItemResponse, error) {
	if threshold <= 0 {
		threshold = uc.defaultThreshold
	}
	items, err := uc.reportRepo.LowStock(ctx, threshold)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LowStockItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.LowStockItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Status:    "LOW STOCK",
		})
	}
	return out, nil
}

// GetCategoryStats devuelve conteo de productos y suma de cantidades por
// nombre de categoría. Las categorías sin productos no aparecen.
func (uc *QueryUseCase) GetCategoryStats(ctx context.Context) (map[string]dto.CategoryStatsResponse, error) {
	rows, err := uc.reportRepo.CategoryStats(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]dto.CategoryStatsResponse, len(rows))
	for _, row := range rows {
		out[row.CategoryName] = dto.CategoryStatsResponse{
			TotalProducts: row.TotalProducts,
			TotalQuantity: row.TotalQuantity,
		}
	}
	return out, nil
}

// ListAuditHistory devuelve las entradas de auditoría, más recientes primero
// (empates por id ascendente). productID vacío lista todo el sistema.
func (uc *QueryUseCase) ListAuditHistory(_ context.Context, productID string, limit, offset int) ([]dto.AuditEntryResponse, error) {
	entries, err := uc.auditRepo.List(productID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AuditEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.AuditEntryResponse{
			ID:        e.ID,
			ProductID: e.ProductID,
			Delta:     e.Delta,
			Type:      e.Type,
			ActorID:   e.ActorID,
			CreatedAt: e.CreatedAt,
		})
	}
	return out, nil
}

// ListMovements lista movimientos; productID vacío lista todo el sistema.
func (uc *QueryUseCase) ListMovements(_ context.Context, productID string, limit, offset int) ([]dto.MovementResponse, error) {
	movements, err := uc.movementRepo.List(productID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.MovementResponse{
			ID:        m.ID,
			ProductID: m.ProductID,
			Type:      m.Type,
			Amount:    m.Amount,
			CreatedAt: m.CreatedAt,
		})
	}
	return out, nil
}

// GetMovement obtiene un movimiento por id.
func (uc *QueryUseCase) GetMovement(_ context.Context, id string) (*dto.MovementResponse, error) {
	m, err := uc.movementRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.MovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		Type:      m.Type,
		Amount:    m.Amount,
		CreatedAt: m.CreatedAt,
	}, nil
}
