package repository

import (
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Suministros-api/internal/domain/entity"
)

// StockLevelFilter filtros opcionales para el listado de niveles de stock.
type StockLevelFilter struct {
	ItemID      string
	WarehouseID string
}

// StockLevelRow resultado crudo del join nivel + artículo + bodega.
type StockLevelRow struct {
	ItemID        string
	ItemName      string
	ItemSKU       string
	Unit          string
	WarehouseID   string
	WarehouseName string
	WarehouseCode string
	Quantity      decimal.Decimal
	ReorderLevel  decimal.Decimal
}

// StockLevelRepository define el puerto para consultar/actualizar el saldo
// por artículo+bodega. Las escrituras solo ocurren dentro de transacciones
// del Stock Ledger para garantizar consistencia con el log de movimientos.
type StockLevelRepository interface {
	Get(itemID, warehouseID string) (*entity.StockLevel, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE) para serializar
	// escrituras concurrentes sobre el mismo par artículo+bodega.
	GetForUpdate(itemID, warehouseID string) (*entity.StockLevel, error)
	Upsert(level *entity.StockLevel) error
	// ListWithRefs devuelve los niveles con artículo y bodega adjuntos.
	// El orden final (bodega, artículo, case-insensitive) lo aplica el caso de uso.
	ListWithRefs(filter StockLevelFilter) ([]*StockLevelRow, error)
}
