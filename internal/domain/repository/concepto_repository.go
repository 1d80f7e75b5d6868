package repository

import "github.com/ledanza/academia-api/internal/domain/entity"

// ConceptoRepository puerto de persistencia del catálogo de conceptos.
type ConceptoRepository interface {
	GetByID(id string) (*entity.Concepto, error)
	BuscarPorDescripcion(descripcion string) (*entity.Concepto, error)
	Create(concepto *entity.Concepto) error
	List(limit, offset int) ([]*entity.Concepto, error)
	ListSubConceptos() ([]*entity.SubConcepto, error)
}
