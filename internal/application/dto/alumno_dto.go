package dto

import "github.com/shopspring/decimal"

// CreateAlumnoRequest alta de alumno.
type CreateAlumnoRequest struct {
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
}

// AlumnoResponse alumno con su crédito a favor.
type AlumnoResponse struct {
	ID            string          `json:"id"`
	Nombre        string          `json:"nombre"`
	Apellido      string          `json:"apellido"`
	Activo        bool            `json:"activo"`
	CreditoAFavor decimal.Decimal `json:"creditoAFavor"`
}
