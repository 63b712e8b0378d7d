package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockLevel representa el saldo actual de un artículo en una bodega
// (proyección materializada, una fila por par artículo+bodega). No es
// histórico: el historial vive en StockMovement.
type StockLevel struct {
	ItemID       string
	WarehouseID  string
	Quantity     decimal.Decimal // no negativa por política, no por constraint de storage
	ReorderLevel decimal.Decimal
	UpdatedAt    time.Time
}
