package dto

import "time"

// RegisterRequest entrada para registro: nombre, email, password.
type RegisterRequest struct {
	Name     string `json:"nombre" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"rol" validate:"omitempty,oneof=admin operador"`
}

// UpdateUserRequest entrada para actualizar un usuario; los campos vacíos se conservan.
type UpdateUserRequest struct {
	Name     string `json:"nombre" validate:"omitempty,max=200"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=8"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"nombre"`
	Email     string    `json:"email"`
	Role      string    `json:"rol"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
