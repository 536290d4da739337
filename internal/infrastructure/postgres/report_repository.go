package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/inventario/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura derivadas del libro de movimientos.
// Corre sobre el pool: los reportes no participan de la transacción de escritura.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// StockEvolution devuelve el cambio neto de stock por día calendario
// (entradas - salidas), ordenado por fecha ascendente. Se computa
// íntegramente desde la tabla inventario.
func (r *ReportRepo) StockEvolution(productID string) ([]repository.StockEvolutionRow, error) {
	const query = `
	SELECT
	    fecha::date                                                          AS dia,
	    SUM(CASE WHEN tipo = 'entrada' THEN cantidad ELSE -cantidad END)     AS stock_cambio
	FROM inventario
	WHERE producto_id = $1
	GROUP BY fecha::date
	ORDER BY fecha::date ASC`

	rows, err := r.pool.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("report.StockEvolution: %w", err)
	}
	defer rows.Close()

	var results []repository.StockEvolutionRow
	for rows.Next() {
		var row repository.StockEvolutionRow
		if err := rows.Scan(&row.Date, &row.NetChange); err != nil {
			return nil, fmt.Errorf("report.StockEvolution scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// DistributionByProduct devuelve el total de unidades movidas (ambos tipos)
// por producto, un renglón por producto con al menos un movimiento.
func (r *ReportRepo) DistributionByProduct() ([]repository.DistributionRow, error) {
	const query = `
	SELECT
	    p.nombre          AS producto,
	    SUM(i.cantidad)   AS total_movimientos
	FROM inventario i
	JOIN productos p ON p.id = i.producto_id
	GROUP BY p.id, p.nombre`

	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("report.DistributionByProduct: %w", err)
	}
	defer rows.Close()

	var results []repository.DistributionRow
	for rows.Next() {
		var row repository.DistributionRow
		if err := rows.Scan(&row.ProductName, &row.TotalQuantity); err != nil {
			return nil, fmt.Errorf("report.DistributionByProduct scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
