package inventory

import (
	"context"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/Suministros-api/internal/application/dto"
	"github.com/jhoicas/Suministros-api/internal/domain/repository"
)

// ListStockLevels devuelve los niveles de stock con artículo y bodega
// adjuntos, ordenados por nombre de bodega y luego de artículo con collation
// case-insensitive. Solo lectura: cada llamada refleja el último estado
// confirmado de la DB, sin caché.
func (uc *StockUseCase) ListStockLevels(ctx context.Context, filter repository.StockLevelFilter) (*dto.StockLevelListResponse, error) {
	rows, err := uc.levelRepo.ListWithRefs(filter)
	if err != nil {
		return nil, err
	}

	// collate.Loose ignora mayúsculas/minúsculas y diacríticos; el sort
	// estable conserva el orden de la DB ante empates.
	c := collate.New(language.Und, collate.Loose)
	sort.SliceStable(rows, func(i, j int) bool {
		if r := c.CompareString(rows[i].WarehouseName, rows[j].WarehouseName); r != 0 {
			return r < 0
		}
		return c.CompareString(rows[i].ItemName, rows[j].ItemName) < 0
	})

	items := make([]dto.StockLevelResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.StockLevelResponse{
			ItemID:        r.ItemID,
			ItemName:      r.ItemName,
			ItemSKU:       r.ItemSKU,
			Unit:          r.Unit,
			WarehouseID:   r.WarehouseID,
			WarehouseName: r.WarehouseName,
			WarehouseCode: r.WarehouseCode,
			Quantity:      r.Quantity,
			ReorderLevel:  r.ReorderLevel,
		})
	}
	return &dto.StockLevelListResponse{Items: items}, nil
}

// ListMovements devuelve el historial de movimientos (append-only) con
// filtros opcionales por artículo y bodega.
func (uc *StockUseCase) ListMovements(ctx context.Context, filter repository.StockMovementFilter) (*dto.StockMovementListResponse, error) {
	list, err := uc.movementRepo.List(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockMovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.StockMovementResponse{
			ID:            m.ID,
			ItemID:        m.ItemID,
			WarehouseID:   m.WarehouseID,
			Type:          m.Type,
			Quantity:      m.Quantity,
			ReferenceType: m.ReferenceType,
			ReferenceID:   m.ReferenceID,
			Remarks:       m.Remarks,
			CreatedBy:     m.CreatedBy,
			CreatedAt:     m.CreatedAt,
		})
	}
	return &dto.StockMovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}, nil
}
