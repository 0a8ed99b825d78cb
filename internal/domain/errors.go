package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrProductNotFound       = errors.New("producto no encontrado")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrDuplicate             = errors.New("recurso duplicado")
	ErrUnauthorized          = errors.New("no autorizado")
	ErrUsernameAlreadyExists = errors.New("el nombre de usuario ya está registrado")

	// Errores del ledger de stock. ErrInvalidMovement y ErrInsufficientStock no se
	// deben reintentar (el caller tiene que corregir la petición); ErrStorage sí,
	// con los mismos datos de entrada.
	ErrInvalidMovement   = errors.New("movimiento inválido")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrStorage           = errors.New("fallo transitorio de almacenamiento")
)
