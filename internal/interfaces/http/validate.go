package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/print3d-api/internal/application/dto"
)

// validate es seguro para uso concurrente y cachea los structs ya vistos.
var validate = validator.New(validator.WithRequiredStructEnabled())

// parseQuery lee los query params en dst y aplica sus tags validate.
// Si falla, ya respondió 400 y devuelve false.
func parseQuery(c *fiber.Ctx, dst any) (bool, error) {
	if err := c.QueryParser(dst); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
		})
	}
	if err := validate.Struct(dst); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: describeValidation(err),
		})
	}
	return true, nil
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s: %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
	}
	return "parámetros inválidos: " + strings.Join(parts, ", ")
}
