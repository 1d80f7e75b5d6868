package billing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledanza/academia-api/internal/domain"
	domainbilling "github.com/ledanza/academia-api/internal/domain/billing"
	"github.com/ledanza/academia-api/internal/domain/entity"
)

// referenciaDeDetalle devuelve el ID de la obligación que referencia el
// detalle según su tipo.
func referenciaDeDetalle(d *entity.DetallePago) string {
	switch d.Tipo {
	case entity.DetalleMensualidad:
		if d.MensualidadID != nil {
			return *d.MensualidadID
		}
	case entity.DetalleMatricula:
		if d.MatriculaID != nil {
			return *d.MatriculaID
		}
	case entity.DetalleStock:
		if d.StockID != nil {
			return *d.StockID
		}
	case entity.DetalleConcepto:
		if d.ConceptoID != nil {
			return *d.ConceptoID
		}
	}
	return ""
}

// aplicarAbonoADetalle imputa un abono al detalle en memoria y, si el saldo
// llega a cero, despacha el evento de liquidación dentro de la misma
// transacción. No persiste el detalle: eso queda a cargo del caller.
//
// Reglas: abono negativo es inválido; abono cero es no-op; un abono mayor al
// pendiente se rechaza con ErrCobroExcedido (el excedente debe acreditarse
// como saldo a favor del alumno, nunca dentro del detalle).
func aplicarAbonoADetalle(
	repos BillingRepos,
	liquidador *Liquidador,
	d *entity.DetallePago,
	monto decimal.Decimal,
	fecha time.Time,
) error {
	if monto.IsNegative() {
		return fmt.Errorf("abono negativo: %w", domain.ErrInvalidInput)
	}
	if monto.IsZero() {
		return nil
	}
	monto = domainbilling.Redondear(monto)
	if monto.GreaterThan(d.ImportePendiente) {
		return fmt.Errorf("abono %s sobre pendiente %s: %w",
			monto, d.ImportePendiente, domain.ErrCobroExcedido)
	}

	d.MontoCobrado = d.MontoCobrado.Add(monto)
	d.RecalcularPendiente()
	d.UpdatedAt = fecha

	// Una mensualidad cobrada en parte refleja el abono acumulado y pasa a
	// PARCIAL; el pase a PAGADA lo hace el handler de liquidación.
	if d.Tipo == entity.DetalleMensualidad && !d.Cobrado && d.MensualidadID != nil {
		m, err := repos.Mensualidades.GetByID(*d.MensualidadID)
		if err != nil {
			return err
		}
		if m == nil {
			return fmt.Errorf("mensualidad %s: %w", *d.MensualidadID, domain.ErrNotFound)
		}
		m.MontoAbonado = m.MontoAbonado.Add(monto)
		m.Estado = entity.MensualidadParcial
		m.UpdatedAt = fecha
		if err := repos.Mensualidades.Update(m); err != nil {
			return err
		}
	}

	if d.Cobrado {
		ev := domainbilling.DetalleLiquidado{
			DetalleID:    d.ID,
			Tipo:         d.Tipo,
			ReferenciaID: referenciaDeDetalle(d),
			Cantidad:     d.Cantidad,
			Fecha:        fecha,
		}
		if err := liquidador.Liquidar(repos, ev); err != nil {
			return err
		}
	}
	return nil
}
