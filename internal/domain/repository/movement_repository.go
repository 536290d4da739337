package repository

import "github.com/tu-usuario/inventario/internal/domain/entity"

// MovementWithNames movimiento enriquecido con los nombres del producto y del usuario.
type MovementWithNames struct {
	entity.Movement
	ProductName string
	UserName    string
}

// MovementRepository define el puerto de persistencia para el libro de movimientos.
// El libro es append-only: no hay Update ni Delete.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	// ListAll devuelve el historial completo, más reciente primero.
	ListAll() ([]MovementWithNames, error)
	// ListByProduct devuelve los movimientos de un producto, más reciente
	// primero. Lista vacía (no error) si el producto no tiene movimientos.
	ListByProduct(productID string) ([]*entity.Movement, error)
}
