package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/almacen-wms/internal/application/dto"
	"github.com/tu-usuario/almacen-wms/internal/application/usecase"
)

// MasterHandler datos maestros del catálogo: categorías y unidades de medida.
type MasterHandler struct {
	categories *usecase.CategoryUseCase
	units      *usecase.UnitUseCase
}

// NewMasterHandler construye el handler de datos maestros.
func NewMasterHandler(categories *usecase.CategoryUseCase, units *usecase.UnitUseCase) *MasterHandler {
	return &MasterHandler{categories: categories, units: units}
}

// CreateCategory godoc
// @Summary      Crear categoría
// @Tags         master
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "categoría"
// @Success      201   {object}  dto.CategoryResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *MasterHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.categories.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListCategories godoc
// @Summary      Listar categorías
// @Tags         master
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CategoryResponse
// @Router       /api/categories [get]
func (h *MasterHandler) ListCategories(c *fiber.Ctx) error {
	out, err := h.categories.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateUnit godoc
// @Summary      Crear unidad de medida
// @Tags         master
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUnitRequest  true  "unidad"
// @Success      201   {object}  dto.UnitResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/units [post]
func (h *MasterHandler) CreateUnit(c *fiber.Ctx) error {
	var in dto.CreateUnitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.units.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListUnits godoc
// @Summary      Listar unidades de medida
// @Tags         master
// @Security     Bearer
// @Produce      json
// @Param        all  query  bool  false  "incluir inactivas"
// @Success      200  {array}  dto.UnitResponse
// @Router       /api/units [get]
func (h *MasterHandler) ListUnits(c *fiber.Ctx) error {
	onlyActive := !c.QueryBool("all")
	out, err := h.units.List(onlyActive)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeactivateUnit godoc
// @Summary      Desactivar unidad de medida
// @Tags         master
// @Security     Bearer
// @Param        id  path  string  true  "ID de la unidad"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/units/{id} [delete]
func (h *MasterHandler) DeactivateUnit(c *fiber.Ctx) error {
	if err := h.units.Deactivate(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
