package dto

import "time"

// RegisterMovementRequest body para POST /api/inventario/movimiento.
// tipo debe ser exactamente "entrada" o "salida".
type RegisterMovementRequest struct {
	ProductID string `json:"producto_id"`
	Quantity  int64  `json:"cantidad"`
	Type      string `json:"tipo"`
	Reason    string `json:"motivo"`
}

// MovementResponse una línea del historial, con nombres de producto y usuario.
type MovementResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"producto_id"`
	Quantity    int64     `json:"cantidad"`
	Type        string    `json:"tipo"`
	Reason      string    `json:"motivo"`
	UserID      string    `json:"usuario_id"`
	Date        time.Time `json:"fecha"`
	ProductName string    `json:"producto,omitempty"`
	UserName    string    `json:"usuario,omitempty"`
}

// StockEvolutionDTO cambio neto de stock de un día calendario (entradas - salidas).
type StockEvolutionDTO struct {
	Date      string `json:"fecha"` // YYYY-MM-DD
	NetChange int64  `json:"stock_cambio"`
}

// MovementDistributionDTO total de unidades movidas por producto (ambos tipos).
type MovementDistributionDTO struct {
	ProductName   string `json:"producto"`
	TotalQuantity int64  `json:"total_movimientos"`
}
