package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/inventario/internal/application/dto"
	"github.com/tu-usuario/inventario/internal/domain"
	"github.com/tu-usuario/inventario/internal/domain/entity"
	"github.com/tu-usuario/inventario/internal/domain/repository"
)

// CategoryUseCase CRUD de categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría.
func (uc *CategoryUseCase) Create(in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	cat := &entity.Category{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(cat); err != nil {
		return nil, err
	}
	return toCategoryResponse(cat), nil
}

// List devuelve todas las categorías.
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	cats, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, *toCategoryResponse(c))
	}
	return out, nil
}

// Update renombra una categoría existente.
func (uc *CategoryUseCase) Update(id string, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	cat, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}
	cat.Name = in.Name
	cat.UpdatedAt = time.Now()
	if err := uc.repo.Update(cat); err != nil {
		return nil, err
	}
	return toCategoryResponse(cat), nil
}

// Delete elimina una categoría solo si no tiene productos asociados.
func (uc *CategoryUseCase) Delete(id string) error {
	cat, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if cat == nil {
		return domain.ErrNotFound
	}
	count, err := uc.repo.CountProducts(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrCategoryInUse
	}
	return uc.repo.Delete(id)
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
