package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/ledger"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// ApplyMovementUseCase aplica exactamente un movimiento a exactamente un
// producto, de forma atómica: bloqueo de la fila del producto (SELECT FOR
// UPDATE), re-validación, actualización de la cantidad cacheada, inserción
// del movimiento y de su entrada de auditoría, todo en la misma transacción.
// Es el único punto del sistema que escribe products.quantity.
type ApplyMovementUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
}

// NewApplyMovementUseCase construye el caso de uso.
func NewApplyMovementUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *ApplyMovementUseCase {
	return &ApplyMovementUseCase{txRunner: txRunner, productRepo: productRepo}
}

// MovementInputDTO entrada para aplicar un movimiento de stock.
// ActorID es opcional (vacío = anónimo); IdempotencyKey es opcional: un
// reintento con la misma clave devuelve el movimiento previo sin aplicar nada.
type MovementInputDTO struct {
	ProductID      string
	Type           string // IN | OUT
	Amount         int64
	ActorID        string
	IdempotencyKey string
}

// Apply valida, bloquea la fila del producto y aplica el movimiento.
// Fallos posibles: ErrInvalidMovement (tipo o cantidad malformados),
// ErrProductNotFound, ErrInsufficientStock (OUT mayor que la cantidad
// actual) y ErrStorage (fallo transitorio; la transacción entera se
// revierte y el caller puede reintentar con los mismos datos).
func (uc *ApplyMovementUseCase) Apply(ctx context.Context, input MovementInputDTO) (*entity.Movement, error) {
	// Chequeo de forma antes de abrir transacción: tipo conocido y cantidad
	// positiva. El chequeo de stock se hace solo bajo el lock.
	if input.Amount <= 0 {
		return nil, domain.ErrInvalidMovement
	}
	if input.Type != entity.MovementTypeIn && input.Type != entity.MovementTypeOut {
		return nil, domain.ErrInvalidMovement
	}
	if input.ProductID == "" {
		return nil, domain.ErrProductNotFound
	}

	// El producto debe existir; dentro de la tx se re-lee con lock.
	product, err := uc.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	var applied *entity.Movement
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
		auditRepo repository.AuditRepository,
		idemRepo repository.IdempotencyKeyRepository,
	) error {
		if input.IdempotencyKey != "" {
			prevID, err := idemRepo.GetMovementID(input.IdempotencyKey)
			if err != nil {
				return err
			}
			if prevID != "" {
				// Clave ya procesada: no-op, se devuelve el resultado previo.
				prev, err := movementRepo.GetByID(prevID)
				if err != nil {
					return err
				}
				applied = prev
				return nil
			}
		}

		// Re-lee bajo lock de fila y re-valida: cierra la ventana entre el
		// chequeo especulativo y el commit.
		locked, err := productRepo.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrProductNotFound
		}

		if input.IdempotencyKey != "" {
			// Re-chequeo bajo el lock: otra petición con la misma clave pudo
			// confirmar entre el chequeo especulativo y la toma del lock.
			prevID, err := idemRepo.GetMovementID(input.IdempotencyKey)
			if err != nil {
				return err
			}
			if prevID != "" {
				prev, err := movementRepo.GetByID(prevID)
				if err != nil {
					return err
				}
				applied = prev
				return nil
			}
		}

		if err := ledger.Check(locked.Quantity, input.Type, input.Amount); err != nil {
			return err
		}

		now := time.Now()
		delta := ledger.Delta(input.Type, input.Amount)
		if err := productRepo.UpdateQuantity(locked.ID, locked.Quantity+delta); err != nil {
			return err
		}

		movement := &entity.Movement{
			ID:        uuid.New().String(),
			ProductID: locked.ID,
			Type:      input.Type,
			Amount:    input.Amount,
			CreatedAt: now,
		}
		if err := movementRepo.Create(movement); err != nil {
			return err
		}

		var actor *string
		if input.ActorID != "" {
			actor = &input.ActorID
		}
		entry := &entity.AuditEntry{
			ID:        uuid.New().String(),
			ProductID: locked.ID,
			Delta:     delta,
			Type:      input.Type,
			ActorID:   actor,
			CreatedAt: now,
		}
		if err := auditRepo.Create(entry); err != nil {
			return err
		}

		if input.IdempotencyKey != "" {
			if err := idemRepo.Save(input.IdempotencyKey, movement.ID); err != nil {
				return err
			}
		}
		applied = movement
		return nil
	})
	if err != nil {
		return nil, err
	}
	return applied, nil
}
