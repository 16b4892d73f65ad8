package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/almacen-wms/internal/application/dto"
	"github.com/tu-usuario/almacen-wms/internal/application/stock"
	"github.com/tu-usuario/almacen-wms/internal/domain/entity"
	"github.com/tu-usuario/almacen-wms/internal/domain/repository"
)

// StockHandler expone el motor de movimientos y las consultas de stock.
type StockHandler struct {
	apply *stock.ApplyMovementUseCase
	query *stock.QueryUseCase
}

// NewStockHandler construye el handler de stock.
func NewStockHandler(apply *stock.ApplyMovementUseCase, query *stock.QueryUseCase) *StockHandler {
	return &StockHandler{apply: apply, query: query}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de stock (IN/OUT/ADJUST)
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "movimiento"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/movements [post]
func (h *StockHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	movement, err := h.apply.Apply(c.Context(), stock.MovementInput{
		ProductID:     in.ProductID,
		WarehouseID:   in.WarehouseID,
		ShelfID:       in.ShelfID,
		Kind:          in.Kind,
		Quantity:      in.Quantity,
		ReferenceType: in.ReferenceType,
		Reason:        in.Reason,
		Note:          in.Note,
		CreatedBy:     GetUserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(movement))
}

// ListLevels godoc
// @Summary      Listar saldos de stock
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "límite (default 20)"
// @Param        offset  query  int  false  "offset"
// @Success      200  {array}  dto.StockLevelResponse
// @Router       /api/stock/levels [get]
func (h *StockHandler) ListLevels(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	page.DefaultPage()
	views, err := h.query.ListLevels(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.StockLevelResponse, 0, len(views))
	for _, v := range views {
		out = append(out, dto.StockLevelResponse{
			ProductID:     v.ProductID,
			ProductName:   v.ProductName,
			SKU:           v.SKU,
			WarehouseID:   v.WarehouseID,
			WarehouseName: v.WarehouseName,
			ShelfCode:     v.ShelfCode,
			Quantity:      v.Quantity,
			UpdatedAt:     v.UpdatedAt,
		})
	}
	return c.JSON(out)
}

// ListMovements godoc
// @Summary      Historial de movimientos
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        product_id    query  string  false  "filtrar por producto"
// @Param        warehouse_id  query  string  false  "filtrar por bodega"
// @Param        kind          query  string  false  "IN, OUT o ADJUST"
// @Param        from          query  string  false  "desde (YYYY-MM-DD)"
// @Param        to            query  string  false  "hasta (YYYY-MM-DD)"
// @Success      200  {array}  dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/movements [get]
func (h *StockHandler) ListMovements(c *fiber.Ctx) error {
	var q dto.MovementListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	filter := repository.MovementFilter{
		ProductID:   q.ProductID,
		WarehouseID: q.WarehouseID,
		Kind:        q.Kind,
		Limit:       q.Limit,
		Offset:      q.Offset,
	}
	if q.From != "" {
		from, err := time.Parse("2006-01-02", q.From)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from debe ser YYYY-MM-DD"})
		}
		filter.From = &from
	}
	if q.To != "" {
		to, err := time.Parse("2006-01-02", q.To)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to debe ser YYYY-MM-DD"})
		}
		// inclusivo: cubre todo el día indicado
		end := to.Add(24*time.Hour - time.Nanosecond)
		filter.To = &end
	}
	views, err := h.query.ListMovements(filter)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.MovementResponse, 0, len(views))
	for _, v := range views {
		out = append(out, dto.MovementResponse{
			ID:            v.ID,
			ProductName:   v.ProductName,
			SKU:           v.SKU,
			WarehouseName: v.WarehouseName,
			ShelfCode:     v.ShelfCode,
			Kind:          v.Kind,
			Quantity:      v.Quantity,
			ReferenceType: v.ReferenceType,
			Reason:        v.Reason,
			Note:          v.Note,
			CreatedByName: v.CreatedByName,
			CreatedAt:     v.CreatedAt,
		})
	}
	return c.JSON(out)
}

// ListShelves godoc
// @Summary      Estantes de una bodega
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id  query  string  true  "bodega"
// @Success      200  {array}  dto.ShelfResponse
// @Router       /api/stock/shelves [get]
func (h *StockHandler) ListShelves(c *fiber.Ctx) error {
	shelves, err := h.query.ListShelves(c.Query("warehouse_id"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.ShelfResponse, 0, len(shelves))
	for _, s := range shelves {
		out = append(out, toShelfDTO(s))
	}
	return c.JSON(out)
}

func toMovementResponse(m *entity.StockMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:            m.ID,
		ProductID:     m.ProductID,
		WarehouseID:   m.WarehouseID,
		ShelfID:       m.ShelfID,
		Kind:          m.Kind,
		Quantity:      m.Quantity,
		ReferenceType: m.ReferenceType,
		Reason:        m.Reason,
		Note:          m.Note,
		CreatedBy:     m.CreatedBy,
		CreatedAt:     m.CreatedAt,
	}
}

func toShelfDTO(s *entity.Shelf) dto.ShelfResponse {
	return dto.ShelfResponse{
		ID:          s.ID,
		WarehouseID: s.WarehouseID,
		Code:        s.Code,
		Description: s.Description,
	}
}
