package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OpeningStockRequest body para POST /api/stock/opening. La cantidad FIJA el
// saldo del par artículo+bodega (overwrite, no aditivo).
type OpeningStockRequest struct {
	ItemID       string          `json:"item_id" validate:"required,uuid"`
	WarehouseID  string          `json:"warehouse_id" validate:"required,uuid"`
	Quantity     decimal.Decimal `json:"quantity"`
	ReorderLevel decimal.Decimal `json:"reorder_level"`
	Remarks      string          `json:"remarks" validate:"omitempty,max=500"`
}

// RegisterMovementRequest body para POST /api/stock/movements (IN, OUT,
// ADJUSTMENT). Quantity es positiva para IN/OUT; con signo para ADJUSTMENT.
type RegisterMovementRequest struct {
	ItemID        string          `json:"item_id" validate:"required,uuid"`
	WarehouseID   string          `json:"warehouse_id" validate:"required,uuid"`
	Type          string          `json:"type" validate:"required"`
	Quantity      decimal.Decimal `json:"quantity"`
	ReferenceType string          `json:"reference_type" validate:"omitempty,max=100"`
	ReferenceID   string          `json:"reference_id" validate:"omitempty,max=100"`
	Remarks       string          `json:"remarks" validate:"omitempty,max=500"`
}

// StockLevelResponse nivel de stock con artículo y bodega adjuntos.
type StockLevelResponse struct {
	ItemID        string          `json:"item_id"`
	ItemName      string          `json:"item_name"`
	ItemSKU       string          `json:"item_sku,omitempty"`
	Unit          string          `json:"unit"`
	WarehouseID   string          `json:"warehouse_id"`
	WarehouseName string          `json:"warehouse_name"`
	WarehouseCode string          `json:"warehouse_code"`
	Quantity      decimal.Decimal `json:"quantity"`
	ReorderLevel  decimal.Decimal `json:"reorder_level"`
}

// StockLevelListResponse listado de niveles de stock.
type StockLevelListResponse struct {
	Items []StockLevelResponse `json:"items"`
}

// StockMovementResponse registro del historial de movimientos.
type StockMovementResponse struct {
	ID            string          `json:"id"`
	ItemID        string          `json:"item_id"`
	WarehouseID   string          `json:"warehouse_id"`
	Type          string          `json:"type"`
	Quantity      decimal.Decimal `json:"quantity"`
	ReferenceType string          `json:"reference_type,omitempty"`
	ReferenceID   string          `json:"reference_id,omitempty"`
	Remarks       string          `json:"remarks,omitempty"`
	CreatedBy     string          `json:"created_by"`
	CreatedAt     time.Time       `json:"created_at"`
}

// StockMovementListResponse historial paginado de movimientos.
type StockMovementListResponse struct {
	Items []StockMovementResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
