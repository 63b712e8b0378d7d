package repository

import "github.com/jhoicas/Suministros-api/internal/domain/entity"

// StockMovementFilter filtros opcionales para el historial de movimientos.
type StockMovementFilter struct {
	ItemID      string
	WarehouseID string
	Limit       int
	Offset      int
}

// StockMovementRepository define el puerto de persistencia para el log de
// movimientos. Solo existen Create y lecturas: el log es append-only y
// ninguna operación lo edita ni lo elimina.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	List(filter StockMovementFilter) ([]*entity.StockMovement, error)
}
