package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/print3d-api/internal/application/dto"
	"github.com/jhoicas/print3d-api/internal/application/usecase"
)

// LogHandler visor de registros de auditoría.
type LogHandler struct {
	uc  *usecase.LogUseCase
	loc *time.Location
}

// NewLogHandler construye el handler. loc es la zona en que se interpretan from/to.
func NewLogHandler(uc *usecase.LogUseCase, loc *time.Location) *LogHandler {
	return &LogHandler{uc: uc, loc: loc}
}

// List godoc
// @Summary      Registros de auditoría filtrados
// @Tags         logs
// @Security     Bearer
// @Produce      json
// @Param        user    query  string  false  "Email del usuario (contiene)"
// @Param        action  query  string  false  "insert | update | delete"
// @Param        table   query  string  false  "Tabla afectada"
// @Param        from    query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to      query  string  false  "Hasta (YYYY-MM-DD, incluido)"
// @Param        limit   query  int     false  "Filas leídas (default 500, max 1000)"
// @Success      200  {object}  dto.LogListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/logs [get]
func (h *LogHandler) List(c *fiber.Ctx) error {
	var req dto.LogListRequest
	if ok, err := parseQuery(c, &req); !ok {
		return err
	}
	resp, err := h.uc.List(c.UserContext(), req, h.loc)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}
