package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovimientoEgreso  = "EGRESO"
	MovimientoIngreso = "INGRESO"
	MovimientoAjuste  = "AJUSTE"
)

// MovimientoStock registra cada cambio de cantidad de un artículo, con
// referencia al detalle de pago que lo originó cuando aplica.
type MovimientoStock struct {
	ID               string
	StockID          string
	Tipo             string
	Cantidad         decimal.Decimal // siempre positiva; Tipo indica el sentido
	CantidadAnterior decimal.Decimal
	CantidadNueva    decimal.Decimal
	DetallePagoID    *string
	Fecha            time.Time
	CreatedAt        time.Time
}
