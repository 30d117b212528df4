package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/print3d-api/internal/application/usecase"
)

// VatRegimeHandler listado de regímenes de IVA.
type VatRegimeHandler struct {
	uc *usecase.VatRegimeUseCase
}

// NewVatRegimeHandler construye el handler.
func NewVatRegimeHandler(uc *usecase.VatRegimeUseCase) *VatRegimeHandler {
	return &VatRegimeHandler{uc: uc}
}

// List godoc
// @Summary      Regímenes de IVA
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.VatRegimeDTO
// @Router       /api/vat-regimes [get]
func (h *VatRegimeHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}
