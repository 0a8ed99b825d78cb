package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/ledger"
)

func TestCheck_EntradaSiempreValida(t *testing.T) {
	require.NoError(t, ledger.Check(0, entity.MovementTypeIn, 1))
	require.NoError(t, ledger.Check(0, entity.MovementTypeIn, 1_000_000))
}

func TestCheck_SalidaConStockSuficiente(t *testing.T) {
	require.NoError(t, ledger.Check(10, entity.MovementTypeOut, 10))
	require.NoError(t, ledger.Check(10, entity.MovementTypeOut, 1))
}

func TestCheck_SalidaSinStock(t *testing.T) {
	err := ledger.Check(10, entity.MovementTypeOut, 11)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	err = ledger.Check(0, entity.MovementTypeOut, 1)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestCheck_CantidadNoPositiva(t *testing.T) {
	for _, amount := range []int64{0, -1, -50} {
		err := ledger.Check(100, entity.MovementTypeIn, amount)
		assert.ErrorIs(t, err, domain.ErrInvalidMovement, "amount=%d", amount)

		err = ledger.Check(100, entity.MovementTypeOut, amount)
		assert.ErrorIs(t, err, domain.ErrInvalidMovement, "amount=%d", amount)
	}
}

func TestCheck_TipoDesconocido(t *testing.T) {
	for _, typ := range []string{"", "in", "ADJUST", "TRANSFER"} {
		err := ledger.Check(100, typ, 5)
		assert.ErrorIs(t, err, domain.ErrInvalidMovement, "type=%q", typ)
	}
}

func TestDelta(t *testing.T) {
	assert.Equal(t, int64(7), ledger.Delta(entity.MovementTypeIn, 7))
	assert.Equal(t, int64(-7), ledger.Delta(entity.MovementTypeOut, 7))
}
