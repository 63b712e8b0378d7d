package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Suministros-api/internal/domain"
	"github.com/jhoicas/Suministros-api/internal/domain/entity"
	"github.com/jhoicas/Suministros-api/internal/domain/repository"
)

// StockUseCase es el Stock Ledger: el único componente que escribe
// StockLevel y StockMovement. Toda mutación de saldo se hace con bloqueo de
// fila (SELECT FOR UPDATE) dentro de una transacción que también hace el
// append del movimiento.
type StockUseCase struct {
	txRunner      TxRunner
	itemRepo      repository.ItemRepository
	warehouseRepo repository.WarehouseRepository
	levelRepo     repository.StockLevelRepository
	movementRepo  repository.StockMovementRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(
	txRunner TxRunner,
	itemRepo repository.ItemRepository,
	warehouseRepo repository.WarehouseRepository,
	levelRepo repository.StockLevelRepository,
	movementRepo repository.StockMovementRepository,
) *StockUseCase {
	return &StockUseCase{
		txRunner:      txRunner,
		itemRepo:      itemRepo,
		warehouseRepo: warehouseRepo,
		levelRepo:     levelRepo,
		movementRepo:  movementRepo,
	}
}

// OpeningStockInput entrada para RecordOpeningStock.
type OpeningStockInput struct {
	ItemID       string
	WarehouseID  string
	Quantity     decimal.Decimal
	ReorderLevel decimal.Decimal
	Remarks      string
	UserID       string
}

// RecordOpeningStock fija el saldo inicial del par artículo+bodega. Es una
// operación de reset: SOBREESCRIBE quantity y reorder_level si la fila
// existe, la crea si no. Siempre agrega un movimiento OPENING con la
// cantidad dada, así el historial conserva cada fijación aunque el saldo se
// pise. Ambas escrituras viven en una sola transacción; llamadas
// concurrentes sobre el mismo par serializan por el lock de fila
// (gana la última confirmada, ambos movimientos quedan registrados).
func (uc *StockUseCase) RecordOpeningStock(ctx context.Context, in OpeningStockInput) error {
	if in.Quantity.IsNegative() || in.ReorderLevel.IsNegative() {
		return fmt.Errorf("%w: la cantidad no puede ser negativa", domain.ErrInvalidInput)
	}
	item, err := uc.itemRepo.GetByID(in.ItemID)
	if err != nil {
		return err
	}
	if item == nil || !item.IsActive {
		return fmt.Errorf("%w: el artículo no existe o está inactivo", domain.ErrInvalidInput)
	}
	warehouse, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return err
	}
	if warehouse == nil || !warehouse.IsActive {
		return fmt.Errorf("%w: la bodega no existe o está inactiva", domain.ErrInvalidInput)
	}

	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		levelRepo repository.StockLevelRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		// Bloquea la fila del nivel para serializar aperturas concurrentes
		level, err := levelRepo.GetForUpdate(in.ItemID, in.WarehouseID)
		if err != nil {
			return err
		}
		if level == nil {
			level = &entity.StockLevel{ItemID: in.ItemID, WarehouseID: in.WarehouseID}
		}
		level.Quantity = in.Quantity
		level.ReorderLevel = in.ReorderLevel
		level.UpdatedAt = now
		if err := levelRepo.Upsert(level); err != nil {
			return err
		}
		movement := &entity.StockMovement{
			ID:            uuid.New().String(),
			ItemID:        in.ItemID,
			WarehouseID:   in.WarehouseID,
			Type:          entity.MovementTypeOpening,
			Quantity:      in.Quantity,
			ReferenceType: entity.ReferenceOpeningStock,
			Remarks:       in.Remarks,
			CreatedBy:     in.UserID,
			CreatedAt:     now,
		}
		return movementRepo.Create(movement)
	})
}

// MovementInput entrada para RegisterMovement (IN, OUT, ADJUSTMENT).
type MovementInput struct {
	ItemID        string
	WarehouseID   string
	Type          string
	Quantity      decimal.Decimal
	ReferenceType string
	ReferenceID   string
	Remarks       string
	UserID        string
}

// RegisterMovement registra una entrada, salida o ajuste de stock. IN y OUT
// exigen cantidad positiva; ADJUSTMENT acepta signo. El saldo resultante
// nunca puede quedar negativo (ErrInsufficientStock). El movimiento guarda el
// delta con signo.
func (uc *StockUseCase) RegisterMovement(ctx context.Context, in MovementInput) error {
	var delta decimal.Decimal
	switch in.Type {
	case entity.MovementTypeIn:
		if !in.Quantity.GreaterThan(decimal.Zero) {
			return fmt.Errorf("%w: la cantidad debe ser positiva", domain.ErrInvalidInput)
		}
		delta = in.Quantity
	case entity.MovementTypeOut:
		if !in.Quantity.GreaterThan(decimal.Zero) {
			return fmt.Errorf("%w: la cantidad debe ser positiva", domain.ErrInvalidInput)
		}
		delta = in.Quantity.Neg()
	case entity.MovementTypeAdjustment:
		if in.Quantity.IsZero() {
			return fmt.Errorf("%w: el ajuste no puede ser cero", domain.ErrInvalidInput)
		}
		delta = in.Quantity
	default:
		return fmt.Errorf("%w: tipo de movimiento desconocido", domain.ErrInvalidInput)
	}

	item, err := uc.itemRepo.GetByID(in.ItemID)
	if err != nil {
		return err
	}
	if item == nil || !item.IsActive {
		return fmt.Errorf("%w: el artículo no existe o está inactivo", domain.ErrInvalidInput)
	}
	if !item.IsTrackable {
		return fmt.Errorf("%w: el artículo no es trackeable", domain.ErrInvalidInput)
	}
	warehouse, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return err
	}
	if warehouse == nil || !warehouse.IsActive {
		return fmt.Errorf("%w: la bodega no existe o está inactiva", domain.ErrInvalidInput)
	}

	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		levelRepo repository.StockLevelRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		level, err := levelRepo.GetForUpdate(in.ItemID, in.WarehouseID)
		if err != nil {
			return err
		}
		if level == nil {
			level = &entity.StockLevel{ItemID: in.ItemID, WarehouseID: in.WarehouseID}
		}
		newQty := level.Quantity.Add(delta)
		if newQty.IsNegative() {
			return domain.ErrInsufficientStock
		}
		level.Quantity = newQty
		level.UpdatedAt = now
		if err := levelRepo.Upsert(level); err != nil {
			return err
		}
		movement := &entity.StockMovement{
			ID:            uuid.New().String(),
			ItemID:        in.ItemID,
			WarehouseID:   in.WarehouseID,
			Type:          in.Type,
			Quantity:      delta,
			ReferenceType: in.ReferenceType,
			ReferenceID:   in.ReferenceID,
			Remarks:       in.Remarks,
			CreatedBy:     in.UserID,
			CreatedAt:     now,
		}
		return movementRepo.Create(movement)
	})
}
