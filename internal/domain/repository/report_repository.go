package repository

import "time"

// StockEvolutionRow cambio neto de stock de un producto en un día calendario.
type StockEvolutionRow struct {
	Date      time.Time
	NetChange int64 // entradas menos salidas del día
}

// DistributionRow total de unidades movidas (entradas + salidas) por producto.
type DistributionRow struct {
	ProductName   string
	TotalQuantity int64
}

// ReportRepository consultas de solo lectura derivadas del libro de movimientos.
// Todo se calcula desde la tabla inventario; no hay estado adicional.
type ReportRepository interface {
	// StockEvolution devuelve una fila por día con movimientos del producto,
	// ordenadas por fecha ascendente.
	StockEvolution(productID string) ([]StockEvolutionRow, error)
	// DistributionByProduct devuelve una fila por producto con al menos un movimiento.
	DistributionByProduct() ([]DistributionRow, error)
}
