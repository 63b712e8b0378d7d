package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Suministros-api/internal/application/dto"
	"github.com/jhoicas/Suministros-api/internal/application/inventory"
	"github.com/jhoicas/Suministros-api/internal/domain/repository"
	"github.com/jhoicas/Suministros-api/pkg/validator"
)

// InventoryHandler maneja las operaciones del Stock Ledger (protegido).
type InventoryHandler struct {
	uc *inventory.StockUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.StockUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// RecordOpeningStock godoc
// @Summary      Fijar stock inicial (overwrite) para un par artículo+bodega
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OpeningStockRequest  true  "item_id, warehouse_id, quantity, reorder_level"
// @Success      201   {object}  dto.DataResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock/opening [post]
func (h *InventoryHandler) RecordOpeningStock(c *fiber.Ctx) error {
	var in dto.OpeningStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if fails := validator.ValidateStruct(in); len(fails) > 0 {
		return badRequest(c, "item_id y warehouse_id son requeridos")
	}
	err := h.uc.RecordOpeningStock(c.Context(), inventory.OpeningStockInput{
		ItemID:       in.ItemID,
		WarehouseID:  in.WarehouseID,
		Quantity:     in.Quantity,
		ReorderLevel: in.ReorderLevel,
		Remarks:      in.Remarks,
		UserID:       GetUserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(fiber.Map{"recorded": true}))
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de stock (IN, OUT, ADJUSTMENT)
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "item_id, warehouse_id, type, quantity"
// @Success      201   {object}  dto.DataResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if fails := validator.ValidateStruct(in); len(fails) > 0 {
		return badRequest(c, "item_id, warehouse_id y type son requeridos")
	}
	err := h.uc.RegisterMovement(c.Context(), inventory.MovementInput{
		ItemID:        in.ItemID,
		WarehouseID:   in.WarehouseID,
		Type:          in.Type,
		Quantity:      in.Quantity,
		ReferenceType: in.ReferenceType,
		ReferenceID:   in.ReferenceID,
		Remarks:       in.Remarks,
		UserID:        GetUserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(fiber.Map{"recorded": true}))
}

// ListStockLevels godoc
// @Summary      Listar niveles de stock con artículo y bodega
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        item_id       query  string  false  "Filtrar por artículo"
// @Param        warehouse_id  query  string  false  "Filtrar por bodega"
// @Success      200  {object}  dto.DataResponse
// @Router       /api/stock/levels [get]
func (h *InventoryHandler) ListStockLevels(c *fiber.Ctx) error {
	out, err := h.uc.ListStockLevels(c.Context(), repository.StockLevelFilter{
		ItemID:      c.Query("item_id"),
		WarehouseID: c.Query("warehouse_id"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// ListMovements godoc
// @Summary      Historial de movimientos de stock
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        item_id       query  string  false  "Filtrar por artículo"
// @Param        warehouse_id  query  string  false  "Filtrar por bodega"
// @Success      200  {object}  dto.DataResponse
// @Router       /api/stock/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListMovements(c.Context(), repository.StockMovementFilter{
		ItemID:      c.Query("item_id"),
		WarehouseID: c.Query("warehouse_id"),
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}
