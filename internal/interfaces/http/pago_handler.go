package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ledanza/academia-api/internal/application/billing"
	"github.com/ledanza/academia-api/internal/application/dto"
)

// PagoHandler maneja las peticiones HTTP de cobranza.
type PagoHandler struct {
	registrar *billing.RegistrarPagoUseCase
	abonos    *billing.AplicarAbonoUseCase
	consultas *billing.ConsultarPagosUseCase
}

// NewPagoHandler construye el handler.
func NewPagoHandler(
	registrar *billing.RegistrarPagoUseCase,
	abonos *billing.AplicarAbonoUseCase,
	consultas *billing.ConsultarPagosUseCase,
) *PagoHandler {
	return &PagoHandler{registrar: registrar, abonos: abonos, consultas: consultas}
}

// Registrar abre un pago para un alumno: arrastra saldos pendientes y factura
// los detalles solicitados.
// POST /api/pagos
func (h *PagoHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarPagoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	pago, err := h.registrar.RegistrarPago(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(pago)
}

// GetByID obtiene un pago con sus detalles.
// GET /api/pagos/:id
func (h *PagoHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	pago, err := h.consultas.GetPago(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	if pago == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pago no encontrado"})
	}
	return c.JSON(pago)
}

// ListByAlumno lista los pagos de un alumno.
// GET /api/alumnos/:id/pagos
func (h *PagoHandler) ListByAlumno(c *fiber.Ctx) error {
	alumnoID := c.Params("id")
	if alumnoID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	pagos, err := h.consultas.ListPagosDeAlumno(c.Context(), alumnoID, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(pagos)
}

// AplicarAbono imputa un abono parcial o total a un detalle.
// POST /api/pagos/detalles/:id/abonos
func (h *PagoHandler) AplicarAbono(c *fiber.Ctx) error {
	detalleID := c.Params("id")
	if detalleID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	var in dto.AplicarAbonoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	detalle, err := h.abonos.AplicarAbono(c.Context(), detalleID, in.Monto)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(detalle)
}
