package dto

import "time"

// CategoryRequest entrada para crear/actualizar una categoría.
type CategoryRequest struct {
	Name string `json:"nombre" validate:"required,min=1,max=200"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"nombre"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
