package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/print3d-api/internal/application/dto"
	"github.com/jhoicas/print3d-api/internal/domain"
)

// writeError traduce errores de dominio a status HTTP y dto.ErrorResponse.
// Los fallos de la fuente de datos se registran y se responden sin detalle interno.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_REQUEST", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	case errors.Is(err, domain.ErrDataSource):
		zerolog.Ctx(c.UserContext()).Error().Err(err).Msg("fuente de datos")
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Code: "DATA_SOURCE", Message: "no se pudieron leer los datos, intente más tarde",
		})
	default:
		zerolog.Ctx(c.UserContext()).Error().Err(err).Msg("error interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
}

// ErrorHandler manejador de errores de Fiber para errores no tratados por los handlers.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: "HTTP_ERROR", Message: fe.Message})
	}
	return writeError(c, err)
}
