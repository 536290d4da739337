package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/inventario/internal/application/dto"
	"github.com/tu-usuario/inventario/internal/domain"
	"github.com/tu-usuario/inventario/internal/domain/entity"
	"github.com/tu-usuario/inventario/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos de inventario de forma
// transaccional, con bloqueo de fila (SELECT FOR UPDATE) sobre el producto
// y Commit/Rollback. El stock se lee siempre fresco bajo el bloqueo; dos
// salidas concurrentes sobre el mismo producto no pueden pasar ambas la
// verificación de stock.
type RegisterMovementUseCase struct {
	txRunner TxRunner
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner}
}

// MovementInput entrada para registrar un movimiento. UserID viene del
// contexto autenticado, nunca del body.
type MovementInput struct {
	ProductID string
	Quantity  int64
	Type      string
	Reason    string
	UserID    string
}

// RegisterMovement valida la entrada, abre una transacción, bloquea la fila
// del producto, verifica stock suficiente en salidas y aplica atómicamente
// (a) el ajuste de stock y (b) la inserción del movimiento inmutable.
// Devuelve el movimiento creado con ID y fecha asignados.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInput) (*entity.Movement, error) {
	if input.ProductID == "" || input.Reason == "" || input.UserID == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if input.Type != entity.MovementTypeEntry && input.Type != entity.MovementTypeExit {
		return nil, domain.ErrInvalidInput
	}

	mov := &entity.Movement{
		ID:        uuid.New().String(),
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
		Type:      input.Type,
		Reason:    input.Reason,
		UserID:    input.UserID,
		CreatedAt: time.Now(),
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloquea la fila del producto; el stock se lee bajo el candado.
		stock, err := productRepo.GetStockForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		var newStock int64
		switch input.Type {
		case entity.MovementTypeEntry:
			newStock = stock + input.Quantity
		case entity.MovementTypeExit:
			if stock < input.Quantity {
				return domain.ErrInsufficientStock
			}
			newStock = stock - input.Quantity
		}
		if err := productRepo.UpdateStock(input.ProductID, newStock); err != nil {
			return err
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// RegisterMovementFromRequest adapta el request HTTP al caso de uso.
func (uc *RegisterMovementUseCase) RegisterMovementFromRequest(ctx context.Context, userID string, in dto.RegisterMovementRequest) (*entity.Movement, error) {
	return uc.RegisterMovement(ctx, MovementInput{
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Type:      in.Type,
		Reason:    in.Reason,
		UserID:    userID,
	})
}
