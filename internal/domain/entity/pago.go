package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pago.
const (
	PagoActivo    = "ACTIVO"
	PagoHistorico = "HISTORICO"
	PagoAnulado   = "ANULADO"
)

// Tipos de pago.
const (
	PagoSuscripcion     = "SUSCRIPCION"
	PagoGeneral         = "GENERAL"
	PagoResumenArrastre = "RESUMEN_ARRASTRE" // creado al arrastrar saldos de un pago anterior
)

// Pago es la cabecera de un evento de cobranza de un alumno: agrupa detalles y
// mantiene totales agregados. Los totales nunca se fijan a mano: siempre se
// recalculan como la suma de los detalles vigentes (RecalcularTotales).
type Pago struct {
	ID               string
	AlumnoID         string
	Fecha            time.Time
	FechaVencimiento time.Time
	Tipo             string
	Estado           string

	MontoBase      decimal.Decimal // Σ detalle.ImporteBase
	MontoInicial   decimal.Decimal // Σ detalle.ImporteInicial
	MontoCobrado   decimal.Decimal // Σ detalle.MontoCobrado
	SaldoPendiente decimal.Decimal // Σ detalle.ImportePendiente

	Observaciones string
	Version       int64
	Detalles      []*DetallePago

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RecalcularTotales deriva los cuatro agregados desde los detalles vigentes.
// Si no queda saldo pendiente el pago pasa a HISTORICO (un pago ANULADO no
// cambia de estado).
func (p *Pago) RecalcularTotales() {
	base, inicial, cobrado, pendiente := decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero
	for _, d := range p.Detalles {
		if d.Anulado {
			continue
		}
		base = base.Add(d.ImporteBase)
		inicial = inicial.Add(d.ImporteInicial)
		cobrado = cobrado.Add(d.MontoCobrado)
		pendiente = pendiente.Add(d.ImportePendiente)
	}
	p.MontoBase = base
	p.MontoInicial = inicial
	p.MontoCobrado = cobrado
	p.SaldoPendiente = pendiente

	if p.Estado == PagoActivo && pendiente.IsZero() {
		p.Estado = PagoHistorico
	}
}

// DetallesPendientes devuelve los detalles vigentes con saldo pendiente > 0.
func (p *Pago) DetallesPendientes() []*DetallePago {
	var pendientes []*DetallePago
	for _, d := range p.Detalles {
		if !d.Anulado && d.ImportePendiente.GreaterThan(decimal.Zero) {
			pendientes = append(pendientes, d)
		}
	}
	return pendientes
}
