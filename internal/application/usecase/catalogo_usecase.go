package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/ledanza/academia-api/internal/application/dto"
	"github.com/ledanza/academia-api/internal/domain"
	"github.com/ledanza/academia-api/internal/domain/entity"
	"github.com/ledanza/academia-api/internal/domain/repository"
)

// CatalogoUseCase casos de uso CRUD del catálogo de venta: artículos de stock
// y conceptos genéricos. La cantidad de stock solo la muta la liquidación.
type CatalogoUseCase struct {
	stocks    repository.StockRepository
	conceptos repository.ConceptoRepository
}

// NewCatalogoUseCase construye el caso de uso.
func NewCatalogoUseCase(stocks repository.StockRepository, conceptos repository.ConceptoRepository) *CatalogoUseCase {
	return &CatalogoUseCase{stocks: stocks, conceptos: conceptos}
}

// CreateStock da de alta un artículo. El nombre es único sin distinguir
// mayúsculas.
func (uc *CatalogoUseCase) CreateStock(in dto.CreateStockRequest) (*dto.StockResponse, error) {
	if in.Nombre == "" || in.Precio.IsNegative() || in.Cantidad.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existente, err := uc.stocks.BuscarPorNombre(in.Nombre)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	stock := &entity.Stock{
		ID:        uuid.New().String(),
		Nombre:    in.Nombre,
		Precio:    in.Precio,
		Cantidad:  in.Cantidad,
		Activo:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.stocks.Create(stock); err != nil {
		return nil, err
	}
	return toStockResponse(stock), nil
}

// GetStock obtiene un artículo por ID, o nil si no existe.
func (uc *CatalogoUseCase) GetStock(id string) (*dto.StockResponse, error) {
	stock, err := uc.stocks.GetByID(id)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, nil
	}
	return toStockResponse(stock), nil
}

// ListStock lista artículos con paginación.
func (uc *CatalogoUseCase) ListStock(page dto.PageRequest) ([]*dto.StockResponse, error) {
	page.DefaultPage()
	articulos, err := uc.stocks.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.StockResponse, 0, len(articulos))
	for _, s := range articulos {
		out = append(out, toStockResponse(s))
	}
	return out, nil
}

// CreateConcepto da de alta un concepto facturable.
func (uc *CatalogoUseCase) CreateConcepto(in dto.CreateConceptoRequest) (*dto.ConceptoResponse, error) {
	if in.Descripcion == "" || in.Precio.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	concepto := &entity.Concepto{
		ID:            uuid.New().String(),
		Descripcion:   in.Descripcion,
		Precio:        in.Precio,
		SubConceptoID: in.SubConceptoID,
		Activo:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.conceptos.Create(concepto); err != nil {
		return nil, err
	}
	return toConceptoResponse(concepto), nil
}

// ListConceptos lista conceptos con paginación.
func (uc *CatalogoUseCase) ListConceptos(page dto.PageRequest) ([]*dto.ConceptoResponse, error) {
	page.DefaultPage()
	conceptos, err := uc.conceptos.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ConceptoResponse, 0, len(conceptos))
	for _, c := range conceptos {
		out = append(out, toConceptoResponse(c))
	}
	return out, nil
}

func toStockResponse(s *entity.Stock) *dto.StockResponse {
	return &dto.StockResponse{
		ID:       s.ID,
		Nombre:   s.Nombre,
		Precio:   s.Precio,
		Cantidad: s.Cantidad,
		Activo:   s.Activo,
	}
}

func toConceptoResponse(c *entity.Concepto) *dto.ConceptoResponse {
	return &dto.ConceptoResponse{
		ID:            c.ID,
		Descripcion:   c.Descripcion,
		Precio:        c.Precio,
		SubConceptoID: c.SubConceptoID,
		Activo:        c.Activo,
	}
}
