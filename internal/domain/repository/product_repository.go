package repository

import "github.com/tu-usuario/inventario/internal/domain/entity"

// ProductWithCategory producto enriquecido con el nombre de su categoría (LEFT JOIN).
type ProductWithCategory struct {
	entity.Product
	CategoryName string
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetStockForUpdate y UpdateStock solo tienen sentido dentro de una
// transacción (ver inventory.TxRunner): juntas forman la sección crítica
// leer-decidir-escribir del stock.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List() ([]ProductWithCategory, error)
	GetWithCategory(id string) (*ProductWithCategory, error)
	Update(product *entity.Product) error
	Delete(id string) error

	// GetStockForUpdate lee el stock actual bloqueando la fila del producto
	// (SELECT ... FOR UPDATE). Devuelve domain.ErrNotFound si no existe.
	GetStockForUpdate(productID string) (int64, error)
	// UpdateStock escribe el nuevo valor de stock del producto.
	UpdateStock(productID string, stock int64) error
}
