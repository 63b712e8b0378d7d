package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/Suministros-api/internal/domain/entity"
	"github.com/jhoicas/Suministros-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación sobre PostgreSQL (usable con pool o tx).
// El log es append-only: este adaptador no expone UPDATE ni DELETE.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste un movimiento de stock.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_movements (id, item_id, warehouse_id, type, quantity, reference_type, reference_id, remarks, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	createdBy := (*string)(nil)
	if movement.CreatedBy != "" {
		createdBy = &movement.CreatedBy
	}
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ItemID, movement.WarehouseID, movement.Type,
		movement.Quantity, movement.ReferenceType, movement.ReferenceID,
		movement.Remarks, createdBy, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// List devuelve el historial de movimientos, más recientes primero.
func (r *StockMovementRepo) List(filter repository.StockMovementFilter) ([]*entity.StockMovement, error) {
	// Filtros opcionales como parámetros uuid anulables (ver ListWithRefs).
	query := `
		SELECT id, item_id, warehouse_id, type, quantity, reference_type, reference_id, remarks, created_by, created_at
		FROM stock_movements
		WHERE ($1::uuid IS NULL OR item_id = $1::uuid)
		  AND ($2::uuid IS NULL OR warehouse_id = $2::uuid)
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query,
		uuidParam(filter.ItemID), uuidParam(filter.WarehouseID), filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		var createdBy *string
		if err := rows.Scan(
			&m.ID, &m.ItemID, &m.WarehouseID, &m.Type, &m.Quantity,
			&m.ReferenceType, &m.ReferenceID, &m.Remarks, &createdBy, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		if createdBy != nil {
			m.CreatedBy = *createdBy
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
