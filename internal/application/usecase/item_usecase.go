package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Suministros-api/internal/application/dto"
	"github.com/jhoicas/Suministros-api/internal/domain"
	"github.com/jhoicas/Suministros-api/internal/domain/entity"
	"github.com/jhoicas/Suministros-api/internal/domain/repository"
)

// ItemUseCase casos de uso para artículos del catálogo.
type ItemUseCase struct {
	itemRepo     repository.ItemRepository
	categoryRepo repository.CategoryRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(itemRepo repository.ItemRepository, categoryRepo repository.CategoryRepository) *ItemUseCase {
	return &ItemUseCase{itemRepo: itemRepo, categoryRepo: categoryRepo}
}

// Create crea un artículo. El SKU (cuando viene) se chequea por unicidad
// antes del insert; la categoría referenciada debe existir y estar activa al
// momento del alta (chequeo referencial, no garantía de FK: la categoría
// puede desactivarse después).
func (uc *ItemUseCase) Create(in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.SKU != "" {
		existing, err := uc.itemRepo.GetBySKU(in.SKU)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrConflict
		}
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil || !category.IsActive {
		return nil, fmt.Errorf("%w: la categoría no existe o está inactiva", domain.ErrInvalidInput)
	}
	trackable := true
	if in.IsTrackable != nil {
		trackable = *in.IsTrackable
	}
	now := time.Now()
	item := &entity.Item{
		ID:          uuid.New().String(),
		CategoryID:  in.CategoryID,
		Name:        in.Name,
		SKU:         in.SKU,
		Unit:        in.Unit,
		IsTrackable: trackable,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// List lista artículos, activos por defecto, con búsqueda substring
// case-insensitive sobre name y sku.
func (uc *ItemUseCase) List(search string, includeInactive bool, limit, offset int) (*dto.ItemListResponse, error) {
	list, err := uc.itemRepo.List(repository.ItemFilter{
		Search:          search,
		IncludeInactive: includeInactive,
		Limit:           limit,
		Offset:          offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toItemResponse(it))
	}
	return &dto.ItemListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toItemResponse(it *entity.Item) *dto.ItemResponse {
	if it == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:          it.ID,
		CategoryID:  it.CategoryID,
		Name:        it.Name,
		SKU:         it.SKU,
		Unit:        it.Unit,
		IsTrackable: it.IsTrackable,
		IsActive:    it.IsActive,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}
