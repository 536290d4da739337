package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/inventario/internal/domain"
	"github.com/tu-usuario/inventario/internal/domain/entity"
	"github.com/tu-usuario/inventario/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto con su stock inicial.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO productos (id, categoria_id, nombre, descripcion, precio, imagen, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	categoryID := (*string)(nil)
	if product.CategoryID != "" {
		categoryID = &product.CategoryID
	}
	_, err := r.q.Exec(context.Background(), query,
		product.ID, categoryID, product.Name, product.Description,
		product.Price, product.ImageURL, product.Stock,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, categoria_id, nombre, descripcion, precio, imagen, stock, created_at, updated_at
		FROM productos WHERE id = $1`
	var p entity.Product
	var categoryID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &categoryID, &p.Name, &p.Description, &p.Price, &p.ImageURL,
		&p.Stock, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	if categoryID != nil {
		p.CategoryID = *categoryID
	}
	return &p, nil
}

// GetWithCategory obtiene un producto con el nombre de su categoría (LEFT JOIN).
func (r *ProductRepo) GetWithCategory(id string) (*repository.ProductWithCategory, error) {
	query := `
		SELECT p.id, p.categoria_id, p.nombre, p.descripcion, p.precio, p.imagen, p.stock,
		       p.created_at, p.updated_at, COALESCE(c.nombre, '') AS categoria
		FROM productos p
		LEFT JOIN categorias c ON c.id = p.categoria_id
		WHERE p.id = $1`
	var row repository.ProductWithCategory
	var categoryID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&row.ID, &categoryID, &row.Name, &row.Description, &row.Price, &row.ImageURL,
		&row.Stock, &row.CreatedAt, &row.UpdatedAt, &row.CategoryName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto con categoria: %w", err)
	}
	if categoryID != nil {
		row.CategoryID = *categoryID
	}
	return &row, nil
}

// List devuelve todos los productos con el nombre de su categoría (LEFT JOIN).
func (r *ProductRepo) List() ([]repository.ProductWithCategory, error) {
	query := `
		SELECT p.id, p.categoria_id, p.nombre, p.descripcion, p.precio, p.imagen, p.stock,
		       p.created_at, p.updated_at, COALESCE(c.nombre, '') AS categoria
		FROM productos p
		LEFT JOIN categorias c ON c.id = p.categoria_id
		ORDER BY p.nombre`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []repository.ProductWithCategory
	for rows.Next() {
		var row repository.ProductWithCategory
		var categoryID *string
		if err := rows.Scan(&row.ID, &categoryID, &row.Name, &row.Description, &row.Price,
			&row.ImageURL, &row.Stock, &row.CreatedAt, &row.UpdatedAt, &row.CategoryName); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		if categoryID != nil {
			row.CategoryID = *categoryID
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// Update actualiza los datos del producto (sin tocar el stock).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE productos SET categoria_id = $2, nombre = $3, descripcion = $4, precio = $5, imagen = $6, updated_at = $7
		WHERE id = $1`
	categoryID := (*string)(nil)
	if product.CategoryID != "" {
		categoryID = &product.CategoryID
	}
	_, err := r.q.Exec(context.Background(), query,
		product.ID, categoryID, product.Name, product.Description,
		product.Price, product.ImageURL, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}

// GetStockForUpdate lee el stock actual bloqueando la fila del producto
// (SELECT FOR UPDATE). Solo tiene sentido dentro de una transacción.
func (r *ProductRepo) GetStockForUpdate(productID string) (int64, error) {
	query := `SELECT stock FROM productos WHERE id = $1 FOR UPDATE`
	var stock int64
	err := r.q.QueryRow(context.Background(), query, productID).Scan(&stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("get stock for update: %w", err)
	}
	return stock, nil
}

// UpdateStock escribe el nuevo stock del producto.
func (r *ProductRepo) UpdateStock(productID string, stock int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE productos SET stock = $2, updated_at = now() WHERE id = $1`,
		productID, stock,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}
