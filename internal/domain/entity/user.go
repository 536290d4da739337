package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleOperador = "operador"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, operador
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
