package inventory

import (
	"context"

	"github.com/tu-usuario/inventario/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la actualización de stock y la
// inserción del movimiento se apliquen juntas o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// LedgerPDFGenerator genera la representación PDF del historial de movimientos.
type LedgerPDFGenerator interface {
	GenerateLedgerPDF(ctx context.Context, movements []repository.MovementWithNames) ([]byte, error)
}
