package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/inventario/internal/application/dto"
	"github.com/tu-usuario/inventario/internal/domain"
	"github.com/tu-usuario/inventario/internal/domain/entity"
	"github.com/tu-usuario/inventario/internal/domain/repository"
)

// ProductUseCase CRUD de productos. El stock que entra por aquí es solo el
// inicial al crear; los movimientos posteriores pasan por el libro
// (inventory.RegisterMovementUseCase), que es quien mantiene el invariante.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto con su stock inicial.
func (uc *ProductUseCase) Create(in dto.ProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	p := &entity.Product{
		ID:          uuid.New().String(),
		CategoryID:  in.CategoryID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		Stock:       in.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toProductResponse(p, ""), nil
}

// List devuelve todos los productos con el nombre de su categoría.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	rows, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, *toProductResponse(&r.Product, r.CategoryName))
	}
	return out, nil
}

// GetByID devuelve un producto con el nombre de su categoría.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	row, err := uc.repo.GetWithCategory(id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(&row.Product, row.CategoryName), nil
}

// Update actualiza los datos del producto. No toca el stock: el stock vive
// bajo el libro de movimientos una vez creado el producto.
func (uc *ProductUseCase) Update(id string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	p.Name = in.Name
	p.Description = in.Description
	p.Price = in.Price
	p.ImageURL = in.ImageURL
	p.CategoryID = in.CategoryID
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toProductResponse(p, ""), nil
}

// Delete elimina un producto.
func (uc *ProductUseCase) Delete(id string) error {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product, categoryName string) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		ImageURL:     p.ImageURL,
		Stock:        p.Stock,
		CategoryID:   p.CategoryID,
		CategoryName: categoryName,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
