package billing

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledanza/academia-api/internal/domain"
	domainbilling "github.com/ledanza/academia-api/internal/domain/billing"
	"github.com/ledanza/academia-api/internal/domain/entity"
)

// LiquidacionHandler aplica el efecto de un DetalleLiquidado sobre su
// obligación, dentro de la misma transacción del cobro.
type LiquidacionHandler interface {
	Aplicar(repos BillingRepos, ev domainbilling.DetalleLiquidado) error
}

// Liquidador despacha eventos DetalleLiquidado al handler de cada tipo de
// obligación. Los tipos sin handler (CONCEPTO) no tienen efecto.
type Liquidador struct {
	handlers map[string]LiquidacionHandler
}

// NewLiquidador construye el despachador con los handlers de mensualidad,
// matrícula y stock registrados.
func NewLiquidador() *Liquidador {
	return &Liquidador{handlers: map[string]LiquidacionHandler{
		entity.DetalleMensualidad: mensualidadLiquidada{},
		entity.DetalleMatricula:   matriculaLiquidada{},
		entity.DetalleStock:       stockLiquidado{},
	}}
}

// Liquidar despacha el evento. Un error del handler aborta el cobro que lo
// disparó (rollback de la transacción).
func (l *Liquidador) Liquidar(repos BillingRepos, ev domainbilling.DetalleLiquidado) error {
	h, ok := l.handlers[ev.Tipo]
	if !ok {
		return nil
	}
	return h.Aplicar(repos, ev)
}

// mensualidadLiquidada marca la mensualidad como PAGADA con la fecha del cobro.
type mensualidadLiquidada struct{}

func (mensualidadLiquidada) Aplicar(repos BillingRepos, ev domainbilling.DetalleLiquidado) error {
	m, err := repos.Mensualidades.GetByID(ev.ReferenciaID)
	if err != nil {
		return err
	}
	if m == nil {
		return fmt.Errorf("mensualidad %s: %w", ev.ReferenciaID, domain.ErrNotFound)
	}
	m.Estado = entity.MensualidadPagada
	m.MontoAbonado = m.ImporteTotal
	fecha := ev.Fecha
	m.FechaPago = &fecha
	m.UpdatedAt = ev.Fecha
	return repos.Mensualidades.Update(m)
}

// matriculaLiquidada marca la matrícula anual como pagada.
type matriculaLiquidada struct{}

func (matriculaLiquidada) Aplicar(repos BillingRepos, ev domainbilling.DetalleLiquidado) error {
	m, err := repos.Matriculas.GetByID(ev.ReferenciaID)
	if err != nil {
		return err
	}
	if m == nil {
		return fmt.Errorf("matrícula %s: %w", ev.ReferenciaID, domain.ErrNotFound)
	}
	m.Pagada = true
	fecha := ev.Fecha
	m.FechaPago = &fecha
	m.UpdatedAt = ev.Fecha
	return repos.Matriculas.Update(m)
}

// stockLiquidado descuenta la cantidad vendida y registra el movimiento.
// Sin stock suficiente falla con ErrStockInsuficiente y el cobro se revierte.
type stockLiquidado struct{}

func (stockLiquidado) Aplicar(repos BillingRepos, ev domainbilling.DetalleLiquidado) error {
	cantidad := ev.Cantidad
	if !cantidad.GreaterThan(decimal.Zero) {
		cantidad = decimal.NewFromInt(1)
	}
	articulo, err := repos.Stocks.GetForUpdate(ev.ReferenciaID)
	if err != nil {
		return err
	}
	if articulo == nil {
		return fmt.Errorf("stock %s: %w", ev.ReferenciaID, domain.ErrNotFound)
	}
	if articulo.Cantidad.LessThan(cantidad) {
		return fmt.Errorf("artículo %s (disponible %s, pedido %s): %w",
			articulo.Nombre, articulo.Cantidad, cantidad, domain.ErrStockInsuficiente)
	}

	anterior := articulo.Cantidad
	articulo.Cantidad = anterior.Sub(cantidad)
	articulo.UpdatedAt = ev.Fecha
	if err := repos.Stocks.Update(articulo); err != nil {
		return err
	}

	detalleID := ev.DetalleID
	mov := &entity.MovimientoStock{
		ID:               uuid.New().String(),
		StockID:          articulo.ID,
		Tipo:             entity.MovimientoEgreso,
		Cantidad:         cantidad,
		CantidadAnterior: anterior,
		CantidadNueva:    articulo.Cantidad,
		DetallePagoID:    &detalleID,
		Fecha:            ev.Fecha,
		CreatedAt:        ev.Fecha,
	}
	return repos.MovimientosStock.Create(mov)
}
