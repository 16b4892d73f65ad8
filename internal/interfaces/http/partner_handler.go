package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/almacen-wms/internal/application/dto"
)

// partnerService operaciones comunes de proveedores y clientes: el handler
// es el mismo, solo cambia el caso de uso detrás.
type partnerService interface {
	Create(in dto.PartnerRequest) (*dto.PartnerResponse, error)
	Update(id string, in dto.PartnerRequest) (*dto.PartnerResponse, error)
	Deactivate(id string) error
	List(onlyActive bool, limit, offset int) ([]dto.PartnerResponse, error)
}

// PartnerHandler CRUD de proveedores o clientes según el servicio inyectado.
type PartnerHandler struct {
	svc partnerService
}

// NewPartnerHandler construye el handler para un servicio de socios.
func NewPartnerHandler(svc partnerService) *PartnerHandler {
	return &PartnerHandler{svc: svc}
}

// Create godoc
// @Summary      Crear proveedor o cliente
// @Tags         partners
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PartnerRequest  true  "socio"
// @Success      201   {object}  dto.PartnerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/suppliers [post]
func (h *PartnerHandler) Create(c *fiber.Ctx) error {
	var in dto.PartnerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.svc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar proveedor o cliente
// @Tags         partners
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del socio"
// @Param        body  body  dto.PartnerRequest  true  "datos"
// @Success      200   {object}  dto.PartnerResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [put]
func (h *PartnerHandler) Update(c *fiber.Ctx) error {
	var in dto.PartnerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.svc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Deactivate godoc
// @Summary      Desactivar proveedor o cliente
// @Tags         partners
// @Security     Bearer
// @Param        id  path  string  true  "ID del socio"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [delete]
func (h *PartnerHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.svc.Deactivate(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listar proveedores o clientes
// @Tags         partners
// @Security     Bearer
// @Produce      json
// @Param        all     query  bool  false  "incluir inactivos"
// @Param        limit   query  int   false  "Límite"   default(20)
// @Param        offset  query  int   false  "Offset"   default(0)
// @Success      200  {array}  dto.PartnerResponse
// @Router       /api/suppliers [get]
func (h *PartnerHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	page.DefaultPage()
	onlyActive := !c.QueryBool("all")
	out, err := h.svc.List(onlyActive, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
