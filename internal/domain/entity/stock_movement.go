package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementTypeOpening    = "OPENING"
	MovementTypeIn         = "IN"
	MovementTypeOut        = "OUT"
	MovementTypeAdjustment = "ADJUSTMENT"
)

// Tipos de referencia usados por los casos de uso del ledger.
const (
	ReferenceOpeningStock = "OPENING_STOCK"
)

// StockMovement es el registro de auditoría de un cambio de cantidad.
// Append-only: una vez creado nunca se edita ni se elimina. Cada mutación
// de StockLevel va acompañada de exactamente un StockMovement en la misma
// transacción.
type StockMovement struct {
	ID            string
	ItemID        string
	WarehouseID   string
	Type          string          // OPENING, IN, OUT, ADJUSTMENT
	Quantity      decimal.Decimal // delta con signo para IN/OUT/ADJUSTMENT; cantidad fijada para OPENING
	ReferenceType string
	ReferenceID   string
	Remarks       string
	CreatedBy     string // UserID del actor
	CreatedAt     time.Time
}
