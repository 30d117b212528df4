package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/print3d-api/internal/application/analytics"
)

// Clock devuelve el instante actual; se inyecta para poder fijarlo en pruebas.
type Clock func() time.Time

// DashboardHandler maneja los endpoints del panel de producción.
type DashboardHandler struct {
	uc    *appanalytics.DashboardUseCase
	clock Clock
	loc   *time.Location
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, clock Clock, loc *time.Location) *DashboardHandler {
	return &DashboardHandler{uc: uc, clock: clock, loc: loc}
}

// GetSummary godoc
// @Summary      Valoración del almacén y cola de impresión
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext(), h.clock().In(h.loc))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}
