package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/inventario/internal/domain/entity"
	"github.com/tu-usuario/inventario/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepo {
	return &CategoryRepo{pool: pool}
}

// Create persiste una nueva categoría.
func (r *CategoryRepo) Create(category *entity.Category) error {
	query := `
		INSERT INTO categorias (id, nombre, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.pool.Exec(context.Background(), query,
		category.ID, category.Name, category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert categoria: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	query := `
		SELECT id, nombre, created_at, updated_at
		FROM categorias WHERE id = $1`
	var c entity.Category
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoria: %w", err)
	}
	return &c, nil
}

// List devuelve todas las categorías.
func (r *CategoryRepo) List() ([]*entity.Category, error) {
	query := `
		SELECT id, nombre, created_at, updated_at
		FROM categorias ORDER BY nombre`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza una categoría.
func (r *CategoryRepo) Update(category *entity.Category) error {
	query := `UPDATE categorias SET nombre = $2, updated_at = $3 WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		category.ID, category.Name, category.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update categoria: %w", err)
	}
	return nil
}

// CountProducts cuenta los productos asociados a la categoría.
func (r *CategoryRepo) CountProducts(categoryID string) (int64, error) {
	var count int64
	err := r.pool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM productos WHERE categoria_id = $1`, categoryID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count productos de categoria: %w", err)
	}
	return count, nil
}

// Delete elimina una categoría por ID.
func (r *CategoryRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM categorias WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete categoria: %w", err)
	}
	return nil
}
