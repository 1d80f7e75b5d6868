package dto

import "github.com/shopspring/decimal"

// CreateStockRequest alta de artículo.
type CreateStockRequest struct {
	Nombre   string          `json:"nombre"`
	Precio   decimal.Decimal `json:"precio"`
	Cantidad decimal.Decimal `json:"cantidad"`
}

// StockResponse artículo del catálogo.
type StockResponse struct {
	ID       string          `json:"id"`
	Nombre   string          `json:"nombre"`
	Precio   decimal.Decimal `json:"precio"`
	Cantidad decimal.Decimal `json:"cantidad"`
	Activo   bool            `json:"activo"`
}

// CreateConceptoRequest alta de concepto facturable.
type CreateConceptoRequest struct {
	Descripcion   string          `json:"descripcion"`
	Precio        decimal.Decimal `json:"precio"`
	SubConceptoID *string         `json:"subConceptoId,omitempty"`
}

// ConceptoResponse concepto del catálogo.
type ConceptoResponse struct {
	ID            string          `json:"id"`
	Descripcion   string          `json:"descripcion"`
	Precio        decimal.Decimal `json:"precio"`
	SubConceptoID *string         `json:"subConceptoId,omitempty"`
	Activo        bool            `json:"activo"`
}

// CreateDisciplinaRequest alta de disciplina.
type CreateDisciplinaRequest struct {
	Nombre           string          `json:"nombre"`
	CuotaBase        decimal.Decimal `json:"cuotaBase"`
	ValorMatricula   decimal.Decimal `json:"valorMatricula"`
	ValorClaseSuelta decimal.Decimal `json:"valorClaseSuelta"`
	ValorClasePrueba decimal.Decimal `json:"valorClasePrueba"`
	RecargoID        *string         `json:"recargoId,omitempty"`
}

// DisciplinaResponse disciplina de la academia.
type DisciplinaResponse struct {
	ID               string          `json:"id"`
	Nombre           string          `json:"nombre"`
	CuotaBase        decimal.Decimal `json:"cuotaBase"`
	ValorMatricula   decimal.Decimal `json:"valorMatricula"`
	ValorClaseSuelta decimal.Decimal `json:"valorClaseSuelta"`
	ValorClasePrueba decimal.Decimal `json:"valorClasePrueba"`
	RecargoID        *string         `json:"recargoId,omitempty"`
	Activo           bool            `json:"activo"`
}
