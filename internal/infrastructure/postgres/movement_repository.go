package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tu-usuario/inventario/internal/domain/entity"
	"github.com/tu-usuario/inventario/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx). La tabla inventario es append-only.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento de inventario.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO inventario (id, producto_id, cantidad, tipo, motivo, usuario_id, fecha)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.Quantity, movement.Type,
		movement.Reason, movement.UserID, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

// ListAll devuelve el historial completo con nombres de producto y usuario,
// más reciente primero.
func (r *MovementRepo) ListAll() ([]repository.MovementWithNames, error) {
	query := `
		SELECT i.id, i.producto_id, i.cantidad, i.tipo, i.motivo, i.usuario_id, i.fecha,
		       p.nombre AS producto, u.nombre AS usuario
		FROM inventario i
		JOIN productos p ON p.id = i.producto_id
		JOIN usuarios  u ON u.id = i.usuario_id
		ORDER BY i.fecha DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	var list []repository.MovementWithNames
	for rows.Next() {
		var m repository.MovementWithNames
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Quantity, &m.Type, &m.Reason,
			&m.UserID, &m.CreatedAt, &m.ProductName, &m.UserName); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// ListByProduct devuelve los movimientos de un producto, más reciente primero.
func (r *MovementRepo) ListByProduct(productID string) ([]*entity.Movement, error) {
	query := `
		SELECT id, producto_id, cantidad, tipo, motivo, usuario_id, fecha
		FROM inventario WHERE producto_id = $1
		ORDER BY fecha DESC`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list movimientos por producto: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Quantity, &m.Type, &m.Reason,
			&m.UserID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
