package billing

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ledanza/academia-api/internal/application/dto"
	"github.com/ledanza/academia-api/internal/application/obligaciones"
	"github.com/ledanza/academia-api/internal/domain"
)

// AplicarAbonoUseCase imputa abonos parciales o totales a un detalle de pago
// existente y propaga la liquidación a la obligación cuando el saldo llega a
// cero.
type AplicarAbonoUseCase struct {
	txRunner   BillingTxRunner
	liquidador *Liquidador
	clock      obligaciones.PeriodClock
}

// NewAplicarAbonoUseCase construye el caso de uso.
func NewAplicarAbonoUseCase(txRunner BillingTxRunner, liquidador *Liquidador, clock obligaciones.PeriodClock) *AplicarAbonoUseCase {
	return &AplicarAbonoUseCase{txRunner: txRunner, liquidador: liquidador, clock: clock}
}

// AplicarAbono imputa monto al detalle, actualiza su saldo y recalcula los
// totales del pago al que pertenece. Abono cero es no-op; un abono mayor al
// pendiente falla con ErrCobroExcedido sin tocar el estado.
func (uc *AplicarAbonoUseCase) AplicarAbono(ctx context.Context, detalleID string, monto decimal.Decimal) (*dto.DetallePagoResponse, error) {
	if detalleID == "" {
		return nil, fmt.Errorf("detalleId requerido: %w", domain.ErrInvalidInput)
	}
	if monto.IsNegative() {
		return nil, fmt.Errorf("abono negativo: %w", domain.ErrInvalidInput)
	}

	var resp dto.DetallePagoResponse
	err := uc.txRunner.RunBilling(ctx, func(repos BillingRepos) error {
		d, err := repos.Pagos.GetDetalleByID(detalleID)
		if err != nil {
			return err
		}
		if d == nil {
			return fmt.Errorf("detalle %s: %w", detalleID, domain.ErrNotFound)
		}
		if d.Anulado {
			return fmt.Errorf("detalle %s anulado: %w", detalleID, domain.ErrConflict)
		}

		now := uc.clock.Ahora()
		if err := aplicarAbonoADetalle(repos, uc.liquidador, d, monto, now); err != nil {
			return err
		}
		if err := repos.Pagos.UpdateDetalle(d); err != nil {
			return err
		}

		// Los totales del pago se derivan siempre de sus detalles.
		pago, err := repos.Pagos.GetByID(d.PagoID)
		if err != nil {
			return err
		}
		if pago == nil {
			return fmt.Errorf("pago %s: %w", d.PagoID, domain.ErrNotFound)
		}
		pago.RecalcularTotales()
		pago.UpdatedAt = now
		if err := repos.Pagos.Update(pago); err != nil {
			return err
		}

		resp = ToDetalleResponse(d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// AcreditarSaldoAFavor registra un sobrante de cobro como crédito del alumno.
// Es la única vía para excedentes: nunca se imputan dentro de un detalle.
func (uc *AplicarAbonoUseCase) AcreditarSaldoAFavor(ctx context.Context, alumnoID string, monto decimal.Decimal) error {
	if alumnoID == "" || monto.IsNegative() {
		return domain.ErrInvalidInput
	}
	if monto.IsZero() {
		return nil
	}
	return uc.txRunner.RunBilling(ctx, func(repos BillingRepos) error {
		alumno, err := repos.Alumnos.GetByID(alumnoID)
		if err != nil {
			return err
		}
		if alumno == nil {
			return fmt.Errorf("alumno %s: %w", alumnoID, domain.ErrNotFound)
		}
		return repos.Alumnos.AcreditarSaldo(alumnoID, monto)
	})
}
