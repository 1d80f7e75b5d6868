package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ledanza/academia-api/internal/application/obligaciones"
)

// ObligacionHandler maneja la generación de obligaciones de cobro.
type ObligacionHandler struct {
	generador *obligaciones.GeneradorMensual
}

// NewObligacionHandler construye el handler.
func NewObligacionHandler(generador *obligaciones.GeneradorMensual) *ObligacionHandler {
	return &ObligacionHandler{generador: generador}
}

// Generar dispara la corrida mensual: crea la mensualidad del período actual
// para cada inscripción activa que no la tenga. Re-ejecutable sin efecto.
// POST /api/obligaciones/generar
func (h *ObligacionHandler) Generar(c *fiber.Ctx) error {
	out, err := h.generador.GenerarObligacionesDelMes(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
