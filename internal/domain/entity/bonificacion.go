package entity

import "github.com/shopspring/decimal"

// Bonificacion es un descuento aplicable a un detalle de pago: un monto fijo,
// un porcentaje sobre la base (expresado 0–100), o ambos.
type Bonificacion struct {
	ID          string
	Descripcion string
	MontoFijo   decimal.Decimal
	Porcentaje  decimal.Decimal // 0–100
	Activo      bool
}
