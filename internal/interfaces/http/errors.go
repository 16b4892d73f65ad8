package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/tu-usuario/almacen-wms/internal/application/dto"
	"github.com/tu-usuario/almacen-wms/internal/domain"
)

// httpStatus mapa de error de dominio a status HTTP. Los handlers comparten
// este mapeo; el mensaje siempre es el del sentinel, nunca el error interno.
var httpStatus = map[error]int{
	domain.ErrInvalidInput:           fiber.StatusBadRequest,
	domain.ErrInvalidKind:            fiber.StatusBadRequest,
	domain.ErrInvalidQuantity:        fiber.StatusBadRequest,
	domain.ErrMissingReason:          fiber.StatusBadRequest,
	domain.ErrShelfWarehouseMismatch: fiber.StatusBadRequest,
	domain.ErrPurchaseEmpty:          fiber.StatusBadRequest,
	domain.ErrNotFound:               fiber.StatusNotFound,
	domain.ErrUserNotFound:           fiber.StatusNotFound,
	domain.ErrShelfNotFound:          fiber.StatusNotFound,
	domain.ErrWarehouseUnavailable:   fiber.StatusNotFound,
	domain.ErrUnknownUser:            fiber.StatusNotFound,
	domain.ErrUnauthorized:           fiber.StatusUnauthorized,
	domain.ErrForbidden:              fiber.StatusForbidden,
	domain.ErrPermissionDenied:       fiber.StatusForbidden,
	domain.ErrDuplicate:              fiber.StatusConflict,
	domain.ErrUsernameAlreadyExists:  fiber.StatusConflict,
	domain.ErrNegativeStock:          fiber.StatusConflict,
	domain.ErrPersistenceConflict:    fiber.StatusConflict,
	domain.ErrPurchaseReceived:       fiber.StatusConflict,
}

var httpCode = map[int]string{
	fiber.StatusBadRequest:   "VALIDATION",
	fiber.StatusNotFound:     "NOT_FOUND",
	fiber.StatusUnauthorized: "UNAUTHORIZED",
	fiber.StatusForbidden:    "FORBIDDEN",
	fiber.StatusConflict:     "CONFLICT",
}

// respondError traduce un error de use case a una respuesta JSON. Un error
// sin sentinel se registra con detalle y responde con un mensaje genérico:
// los errores de infraestructura no viajan al cliente.
func respondError(c *fiber.Ctx, err error) error {
	for sentinel, status := range httpStatus {
		if errors.Is(err, sentinel) {
			return c.Status(status).JSON(dto.ErrorResponse{Code: httpCode[status], Message: sentinel.Error()})
		}
	}
	log.Error().Err(err).Str("path", c.Path()).Msg("error no mapeado en handler")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}
