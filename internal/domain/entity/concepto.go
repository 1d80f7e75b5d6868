package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubConcepto agrupa conceptos del catálogo (ej. "Eventos", "Alquileres").
type SubConcepto struct {
	ID          string
	Descripcion string
}

// Concepto es un ítem genérico facturable del catálogo.
type Concepto struct {
	ID            string
	Descripcion   string
	Precio        decimal.Decimal
	SubConceptoID *string
	Activo        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
