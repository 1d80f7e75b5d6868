package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Disciplina representa una disciplina de la academia (danza clásica, tango, etc.).
// Sus valores son inmutables durante el ciclo de facturación: el generador de
// mensualidades copia CuotaBase al crear la obligación.
type Disciplina struct {
	ID               string
	Nombre           string
	CuotaBase        decimal.Decimal // valor de la cuota mensual
	ValorMatricula   decimal.Decimal // matrícula anual
	ValorClaseSuelta decimal.Decimal
	ValorClasePrueba decimal.Decimal
	RecargoID        *string // recargo por defecto para las cuotas (opcional)
	Activo           bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
