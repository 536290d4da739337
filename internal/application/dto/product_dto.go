package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRequest entrada para crear/actualizar un producto.
// Stock aquí es el stock inicial: después de la creación el stock solo
// se mueve a través del libro de movimientos.
type ProductRequest struct {
	Name        string          `json:"nombre" validate:"required,min=1,max=200"`
	Description string          `json:"descripcion"`
	Price       decimal.Decimal `json:"precio" validate:"required"`
	ImageURL    string          `json:"imagen"`
	Stock       int64           `json:"stock" validate:"min=0"`
	CategoryID  string          `json:"categoria_id" validate:"omitempty,uuid"`
}

// ProductResponse salida de un producto con el nombre de su categoría.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"nombre"`
	Description  string          `json:"descripcion"`
	Price        decimal.Decimal `json:"precio"`
	ImageURL     string          `json:"imagen"`
	Stock        int64           `json:"stock"`
	CategoryID   string          `json:"categoria_id,omitempty"`
	CategoryName string          `json:"categoria,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
