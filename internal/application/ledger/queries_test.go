package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

func newQueryFixture(store *memStore) *QueryUseCase {
	return NewQueryUseCase(
		&memProductRepo{store: store, lockOnAccess: true},
		&memMovementRepo{store: store},
		&memAuditRepo{store: store},
		&memReportRepo{store: store},
		5,
	)
}

func TestGetQuantity(t *testing.T) {
	store := newMemStore()
	store.addProduct("p1", "Martillo", "c1", 42)
	uc := newQueryFixture(store)

	qty, err := uc.GetQuantity(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(42), qty)

	// Idempotencia de lectura: sin movimientos de por medio, el valor no cambia.
	again, err := uc.GetQuantity(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, qty, again)

	_, err = uc.GetQuantity(context.Background(), "nope")
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestListLowStock(t *testing.T) {
	store := newMemStore()
	store.addProduct("p0", "Cero", "c1", 0)
	store.addProduct("p4", "Cuatro", "c1", 4)
	store.addProduct("p5", "Cinco", "c1", 5)
	store.addProduct("p6", "Seis", "c1", 6)
	uc := newQueryFixture(store)

	// Umbral 5: entran exactamente los productos con cantidad 0 y 4.
	items, err := uc.ListLowStock(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "p0", items[0].ProductID)
	assert.Equal(t, "p4", items[1].ProductID)
	for _, it := range items {
		assert.Equal(t, "LOW STOCK", it.Status)
	}

	// threshold <= 0 usa el umbral por defecto (5): mismo resultado.
	items, err = uc.ListLowStock(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestGetCategoryStats(t *testing.T) {
	store := newMemStore()
	store.categories["c1"] = "Tools"
	store.categories["c2"] = "Electronics" // sin productos: no debe aparecer
	store.addProduct("p1", "Martillo", "c1", 3)
	store.addProduct("p2", "Alicate", "c1", 7)
	uc := newQueryFixture(store)

	stats, err := uc.GetCategoryStats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 1)
	tools, ok := stats["Tools"]
	require.True(t, ok)
	assert.Equal(t, int64(2), tools.TotalProducts)
	assert.Equal(t, int64(10), tools.TotalQuantity)
	_, ok = stats["Electronics"]
	assert.False(t, ok)
}

func TestListAuditHistory_OrdenYFiltro(t *testing.T) {
	store := newMemStore()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	actor := "u1"
	store.audits = []*entity.AuditEntry{
		{ID: "a1", ProductID: "p1", Delta: 10, Type: entity.MovementTypeIn, ActorID: &actor, CreatedAt: base},
		{ID: "a2", ProductID: "p2", Delta: 5, Type: entity.MovementTypeIn, CreatedAt: base.Add(time.Minute)},
		// Empate de timestamp con a4: debe ganar el id menor.
		{ID: "a3", ProductID: "p1", Delta: -2, Type: entity.MovementTypeOut, CreatedAt: base.Add(2 * time.Minute)},
		{ID: "a4", ProductID: "p1", Delta: -1, Type: entity.MovementTypeOut, CreatedAt: base.Add(2 * time.Minute)},
	}
	uc := newQueryFixture(store)

	all, err := uc.ListAuditHistory(context.Background(), "", 50, 0)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, []string{"a3", "a4", "a2", "a1"}, []string{all[0].ID, all[1].ID, all[2].ID, all[3].ID})

	p1, err := uc.ListAuditHistory(context.Background(), "p1", 50, 0)
	require.NoError(t, err)
	require.Len(t, p1, 3)
	for _, e := range p1 {
		assert.Equal(t, "p1", e.ProductID)
	}
}

func TestGetMovement(t *testing.T) {
	store := newMemStore()
	store.movements["m1"] = &entity.Movement{ID: "m1", ProductID: "p1", Type: entity.MovementTypeIn, Amount: 3}
	store.order = []string{"m1"}
	uc := newQueryFixture(store)

	m, err := uc.GetMovement(context.Background(), "m1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), m.Amount)

	_, err = uc.GetMovement(context.Background(), "nope")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
