package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock representa un artículo de venta de la academia (calzado, ropa, etc.).
// Nombre es único sin distinguir mayúsculas. Cantidad solo la muta la
// liquidación de un detalle tipo STOCK.
type Stock struct {
	ID        string
	Nombre    string
	Precio    decimal.Decimal
	Cantidad  decimal.Decimal
	Activo    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
