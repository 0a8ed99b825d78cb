package postgres

import (
	"fmt"
	"io"
	"net"
	"syscall"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stock-ledger-api/internal/domain"
)

func TestClassify_CodigosTransitoriosComoStorage(t *testing.T) {
	for _, code := range []string{"55P03", "40001", "40P01"} {
		err := classify(fmt.Errorf("exec: %w", &pgconn.PgError{Code: code}))
		assert.ErrorIs(t, err, domain.ErrStorage, "código %s", code)
	}
}

func TestClassify_ViolacionUniqueNoEsTransitoria(t *testing.T) {
	err := classify(fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23505"}))
	assert.NotErrorIs(t, err, domain.ErrStorage)
}

func TestClassify_CaidasDeConexionComoStorage(t *testing.T) {
	cases := map[string]error{
		"conexión reseteada": &net.OpError{Op: "read", Err: syscall.ECONNRESET},
		"conexión rechazada": &net.OpError{Op: "dial", Err: syscall.ECONNREFUSED},
		"respuesta cortada":  fmt.Errorf("scan: %w", io.ErrUnexpectedEOF),
	}
	for name, cause := range cases {
		err := classify(cause)
		assert.ErrorIs(t, err, domain.ErrStorage, name)
	}
}

func TestClassify_SentinelasDeDominioPasanIntactas(t *testing.T) {
	err := classify(domain.ErrInsufficientStock)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.NotErrorIs(t, err, domain.ErrStorage)
}

func TestClassify_NilSigueSiendoNil(t *testing.T) {
	assert.NoError(t, classify(nil))
}
