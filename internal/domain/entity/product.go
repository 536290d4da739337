package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// Stock nunca es negativo: durante la operación solo lo muta el libro de
// movimientos (RegisterMovementUseCase) dentro de una transacción.
type Product struct {
	ID          string
	CategoryID  string // vacío si no tiene categoría asignada
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta
	ImageURL    string
	Stock       int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
