package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ledanza/academia-api/internal/application/dto"
	"github.com/ledanza/academia-api/internal/domain"
)

// respondError mapea los errores de dominio a status HTTP. Los casos de uso
// envuelven los sentinels con %w, por eso se compara con errors.Is.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrYaFacturado):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "YA_FACTURADO", Message: err.Error()})
	case errors.Is(err, domain.ErrObligacionDuplicada):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "OBLIGACION_DUPLICADA", Message: err.Error()})
	case errors.Is(err, domain.ErrStockInsuficiente):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "STOCK_INSUFICIENTE", Message: err.Error()})
	case errors.Is(err, domain.ErrCobroExcedido):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "COBRO_EXCEDIDO", Message: err.Error()})
	case errors.Is(err, domain.ErrConflictoVersion), errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
