package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ledanza/academia-api/internal/application/dto"
	"github.com/ledanza/academia-api/internal/application/usecase"
)

// AlumnoHandler maneja las peticiones HTTP para alumnos.
type AlumnoHandler struct {
	uc *usecase.AlumnoUseCase
}

// NewAlumnoHandler construye el handler.
func NewAlumnoHandler(uc *usecase.AlumnoUseCase) *AlumnoHandler {
	return &AlumnoHandler{uc: uc}
}

// Create da de alta un alumno.
// POST /api/alumnos
func (h *AlumnoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAlumnoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene un alumno por ID.
// GET /api/alumnos/:id
func (h *AlumnoHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "alumno no encontrado"})
	}
	return c.JSON(out)
}

// List lista alumnos.
// GET /api/alumnos
func (h *AlumnoHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	out, err := h.uc.List(page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
