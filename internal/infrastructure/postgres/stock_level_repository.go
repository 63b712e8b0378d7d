package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Suministros-api/internal/domain/entity"
	"github.com/jhoicas/Suministros-api/internal/domain/repository"
)

var _ repository.StockLevelRepository = (*StockLevelRepo)(nil)

// StockLevelRepo implementación de StockLevelRepository sobre PostgreSQL
// (usable con pool o tx).
type StockLevelRepo struct {
	q Querier
}

// NewStockLevelRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockLevelRepository(q Querier) *StockLevelRepo {
	return &StockLevelRepo{q: q}
}

// Get obtiene el nivel actual de un artículo en una bodega. Retorna
// (nil, nil) si la fila no existe.
func (r *StockLevelRepo) Get(itemID, warehouseID string) (*entity.StockLevel, error) {
	return r.get(itemID, warehouseID, false)
}

// GetForUpdate obtiene el nivel y bloquea la fila (SELECT FOR UPDATE) para
// serializar escrituras concurrentes sobre el mismo par.
func (r *StockLevelRepo) GetForUpdate(itemID, warehouseID string) (*entity.StockLevel, error) {
	return r.get(itemID, warehouseID, true)
}

func (r *StockLevelRepo) get(itemID, warehouseID string, forUpdate bool) (*entity.StockLevel, error) {
	query := `
		SELECT item_id, warehouse_id, quantity, reorder_level, updated_at
		FROM stock_levels WHERE item_id = $1 AND warehouse_id = $2`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var s entity.StockLevel
	err := r.q.QueryRow(context.Background(), query, itemID, warehouseID).Scan(
		&s.ItemID, &s.WarehouseID, &s.Quantity, &s.ReorderLevel, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock level: %w", err)
	}
	return &s, nil
}

// Upsert inserta o sobreescribe el nivel por par artículo+bodega.
func (r *StockLevelRepo) Upsert(level *entity.StockLevel) error {
	query := `
		INSERT INTO stock_levels (item_id, warehouse_id, quantity, reorder_level, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (item_id, warehouse_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, reorder_level = EXCLUDED.reorder_level, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		level.ItemID, level.WarehouseID, level.Quantity, level.ReorderLevel, level.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert stock level: %w", err)
	}
	return nil
}

// ListWithRefs devuelve los niveles con artículo y bodega adjuntos. El orden
// definitivo (collation case-insensitive) lo aplica el caso de uso; aquí se
// ordena por claves para un resultado determinístico.
func (r *StockLevelRepo) ListWithRefs(filter repository.StockLevelFilter) ([]*repository.StockLevelRow, error) {
	// Filtros opcionales como parámetros uuid anulables: NULL desactiva el
	// filtro. Comparar el parámetro con '' fijaría su tipo en text y
	// uuid = text no existe en Postgres.
	query := `
		SELECT s.item_id, i.name, i.sku, i.unit,
		       s.warehouse_id, w.name, w.code,
		       s.quantity, s.reorder_level
		FROM stock_levels s
		JOIN items i ON i.id = s.item_id
		JOIN warehouses w ON w.id = s.warehouse_id
		WHERE ($1::uuid IS NULL OR s.item_id = $1::uuid)
		  AND ($2::uuid IS NULL OR s.warehouse_id = $2::uuid)
		ORDER BY s.warehouse_id, s.item_id`
	rows, err := r.q.Query(context.Background(), query, uuidParam(filter.ItemID), uuidParam(filter.WarehouseID))
	if err != nil {
		return nil, fmt.Errorf("list stock levels: %w", err)
	}
	defer rows.Close()
	var list []*repository.StockLevelRow
	for rows.Next() {
		var row repository.StockLevelRow
		if err := rows.Scan(
			&row.ItemID, &row.ItemName, &row.ItemSKU, &row.Unit,
			&row.WarehouseID, &row.WarehouseName, &row.WarehouseCode,
			&row.Quantity, &row.ReorderLevel,
		); err != nil {
			return nil, fmt.Errorf("scan stock level row: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}
