package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Alumno representa a un estudiante de la academia.
// CreditoAFavor acumula sobrantes de cobro que no se imputan a ningún detalle
// (nunca se descuenta de un detalle en forma implícita).
type Alumno struct {
	ID            string
	Nombre        string
	Apellido      string
	Activo        bool
	CreditoAFavor decimal.Decimal // siempre >= 0
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
