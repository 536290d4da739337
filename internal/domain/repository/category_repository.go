package repository

import "github.com/tu-usuario/inventario/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	List() ([]*entity.Category, error)
	Update(category *entity.Category) error
	// CountProducts cuenta los productos asociados; una categoría con
	// productos no se puede eliminar.
	CountProducts(categoryID string) (int64, error)
	Delete(id string) error
}
