package billing

import (
	"time"

	"github.com/shopspring/decimal"
)

// DetalleLiquidado es el evento de dominio emitido cuando el saldo pendiente
// de un detalle llega a cero. Los efectos por tipo de obligación (marcar
// mensualidad/matrícula pagada, descontar stock) los aplican handlers
// suscriptos, no el agregador.
type DetalleLiquidado struct {
	DetalleID    string
	Tipo         string // entity.Detalle*
	ReferenciaID string // ID de la obligación referenciada según Tipo
	Cantidad     decimal.Decimal
	Fecha        time.Time
}
