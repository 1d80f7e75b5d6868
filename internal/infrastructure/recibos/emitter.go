package recibos

import (
	"github.com/ledanza/academia-api/internal/application/billing"
	"github.com/ledanza/academia-api/internal/domain/entity"
	"github.com/ledanza/academia-api/pkg/logger"
)

var _ billing.ReciboEmitter = (*LogEmitter)(nil)

// LogEmitter emite el recibo como evento estructurado en el log. La impresión
// y el envío por email corren por fuera, consumiendo estos eventos.
type LogEmitter struct {
	log *logger.Logger
}

// NewLogEmitter construye el emisor.
func NewLogEmitter(log *logger.Logger) *LogEmitter {
	return &LogEmitter{log: log}
}

// EmitirRecibo registra el pago confirmado con sus totales.
func (e *LogEmitter) EmitirRecibo(pago *entity.Pago) {
	if pago == nil {
		return
	}
	e.log.Info().
		Str("pagoId", pago.ID).
		Str("alumnoId", pago.AlumnoID).
		Str("tipo", pago.Tipo).
		Str("estado", pago.Estado).
		Str("montoInicial", pago.MontoInicial.StringFixed(2)).
		Str("montoCobrado", pago.MontoCobrado.StringFixed(2)).
		Str("saldoPendiente", pago.SaldoPendiente.StringFixed(2)).
		Int("detalles", len(pago.Detalles)).
		Msg("recibo emitido")
}
