package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ledanza/academia-api/internal/application/dto"
	"github.com/ledanza/academia-api/internal/application/usecase"
)

// CatalogoHandler maneja las peticiones HTTP del catálogo de venta y de
// disciplinas.
type CatalogoHandler struct {
	catalogo    *usecase.CatalogoUseCase
	disciplinas *usecase.DisciplinaUseCase
}

// NewCatalogoHandler construye el handler.
func NewCatalogoHandler(catalogo *usecase.CatalogoUseCase, disciplinas *usecase.DisciplinaUseCase) *CatalogoHandler {
	return &CatalogoHandler{catalogo: catalogo, disciplinas: disciplinas}
}

// CreateStock da de alta un artículo.
// POST /api/stock
func (h *CatalogoHandler) CreateStock(c *fiber.Ctx) error {
	var in dto.CreateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.catalogo.CreateStock(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetStock obtiene un artículo por ID.
// GET /api/stock/:id
func (h *CatalogoHandler) GetStock(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	out, err := h.catalogo.GetStock(id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado"})
	}
	return c.JSON(out)
}

// ListStock lista artículos.
// GET /api/stock
func (h *CatalogoHandler) ListStock(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	out, err := h.catalogo.ListStock(page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateConcepto da de alta un concepto facturable.
// POST /api/conceptos
func (h *CatalogoHandler) CreateConcepto(c *fiber.Ctx) error {
	var in dto.CreateConceptoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.catalogo.CreateConcepto(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListConceptos lista conceptos.
// GET /api/conceptos
func (h *CatalogoHandler) ListConceptos(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	out, err := h.catalogo.ListConceptos(page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateDisciplina da de alta una disciplina.
// POST /api/disciplinas
func (h *CatalogoHandler) CreateDisciplina(c *fiber.Ctx) error {
	var in dto.CreateDisciplinaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.disciplinas.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListDisciplinas lista disciplinas.
// GET /api/disciplinas
func (h *CatalogoHandler) ListDisciplinas(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	out, err := h.disciplinas.List(page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
