package postgres

import (
	"errors"
	"fmt"
	"io"
	"net"
	"syscall"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/stock-ledger-api/internal/domain"
)

// isUniqueViolation detecta violaciones de restricciones UNIQUE (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// isTransient detecta fallos que un reintento puede resolver: timeout de
// lock (55P03), fallo de serialización (40001), deadlock (40P01) y caídas
// de conexión (red, conexión rechazada o cortada a mitad de respuesta).
func isTransient(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "55P03", "40001", "40P01":
			return true
		}
		return false
	}
	if pgconn.SafeToRetry(err) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ECONNREFUSED)
}

// classify envuelve los fallos transitorios en domain.ErrStorage para que
// las capas superiores puedan distinguir lo reintentable. Los errores de
// dominio pasan sin tocar.
func classify(err error) error {
	if err == nil {
		return nil
	}
	for _, sentinel := range []error{
		domain.ErrNotFound,
		domain.ErrProductNotFound,
		domain.ErrInvalidMovement,
		domain.ErrInsufficientStock,
		domain.ErrDuplicate,
		domain.ErrUsernameAlreadyExists,
		domain.ErrInvalidInput,
		domain.ErrUnauthorized,
	} {
		if errors.Is(err, sentinel) {
			return err
		}
	}
	if isTransient(err) {
		return fmt.Errorf("%v: %w", err, domain.ErrStorage)
	}
	return err
}
