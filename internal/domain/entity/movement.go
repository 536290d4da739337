package entity

import "time"

// Tipos de movimiento de inventario. Son los valores que viajan por la API
// y los que se persisten en la columna tipo.
const (
	MovementTypeEntry = "entrada"
	MovementTypeExit  = "salida"
)

// Movement es una línea del libro de movimientos de inventario.
// Inmutable una vez creada: nunca se actualiza ni se borra.
type Movement struct {
	ID        string
	ProductID string
	Quantity  int64  // siempre positiva; el signo lo da Type
	Type      string // entrada, salida
	Reason    string
	UserID    string    // usuario autenticado que registró el movimiento
	CreatedAt time.Time // fecha asignada por el servidor
}
