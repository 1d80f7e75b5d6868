package billing_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledanza/academia-api/internal/application/dto"
	"github.com/ledanza/academia-api/internal/domain"
	"github.com/ledanza/academia-api/internal/domain/entity"
)

// facturarMensualidad abre un pago por la mensualidad de 300 y devuelve el ID
// del detalle.
func facturarMensualidad(t *testing.T, e *entorno) (pagoID, detalleID string) {
	t.Helper()
	resp, err := e.registrar.RegistrarPago(context.Background(), dto.RegistrarPagoRequest{
		AlumnoID: "al-1",
		Detalles: []dto.DetalleRequest{{Tipo: entity.DetalleMensualidad, MensualidadID: ptr("men-1")}},
	})
	require.NoError(t, err)
	require.Len(t, resp.Detalles, 1)
	return resp.ID, resp.Detalles[0].ID
}

func TestAplicarAbono_ParcialLuegoTotal(t *testing.T) {
	e := newEntorno(t)
	ctx := context.Background()
	pagoID, detalleID := facturarMensualidad(t, e)

	// Primer abono parcial: 300 − 120 = 180 pendiente.
	d, err := e.abonos.AplicarAbono(ctx, detalleID, dec("120"))
	require.NoError(t, err)
	assert.Equal(t, "180.00", d.ImportePendiente.StringFixed(2))
	assert.False(t, d.Cobrado)

	m, err := e.mensualidades.GetByID("men-1")
	require.NoError(t, err)
	assert.Equal(t, entity.MensualidadParcial, m.Estado)
	assert.Equal(t, "120.00", m.MontoAbonado.StringFixed(2))

	// Segundo abono salda la línea y liquida la mensualidad.
	d, err = e.abonos.AplicarAbono(ctx, detalleID, dec("180"))
	require.NoError(t, err)
	assert.True(t, d.ImportePendiente.IsZero())
	assert.True(t, d.Cobrado)

	m, err = e.mensualidades.GetByID("men-1")
	require.NoError(t, err)
	assert.Equal(t, entity.MensualidadPagada, m.Estado)
	require.NotNil(t, m.FechaPago)

	pago, err := e.pagos.GetByID(pagoID)
	require.NoError(t, err)
	assert.True(t, pago.SaldoPendiente.IsZero())
	assert.Equal(t, "300.00", pago.MontoCobrado.StringFixed(2))
	assert.Equal(t, entity.PagoHistorico, pago.Estado)
}

func TestAplicarAbono_CeroEsNoOp(t *testing.T) {
	e := newEntorno(t)
	_, detalleID := facturarMensualidad(t, e)

	d, err := e.abonos.AplicarAbono(context.Background(), detalleID, decimal.Zero)

	require.NoError(t, err)
	assert.Equal(t, "300.00", d.ImportePendiente.StringFixed(2))
	assert.True(t, d.MontoCobrado.IsZero())
}

func TestAplicarAbono_CobroExcedido(t *testing.T) {
	e := newEntorno(t)
	ctx := context.Background()
	_, detalleID := facturarMensualidad(t, e)

	_, err := e.abonos.AplicarAbono(ctx, detalleID, dec("250"))
	require.NoError(t, err) // pendiente 50

	_, err = e.abonos.AplicarAbono(ctx, detalleID, dec("60"))

	assert.ErrorIs(t, err, domain.ErrCobroExcedido)

	// El estado no cambió: el excedente se registra aparte como crédito.
	d, errGet := e.pagos.GetDetalleByID(detalleID)
	require.NoError(t, errGet)
	assert.Equal(t, "50.00", d.ImportePendiente.StringFixed(2))
	assert.Equal(t, "250.00", d.MontoCobrado.StringFixed(2))
	assert.False(t, d.Cobrado)
}

func TestAplicarAbono_MontoNegativo(t *testing.T) {
	e := newEntorno(t)
	_, detalleID := facturarMensualidad(t, e)

	_, err := e.abonos.AplicarAbono(context.Background(), detalleID, dec("-1"))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAplicarAbono_DetalleInexistente(t *testing.T) {
	e := newEntorno(t)

	_, err := e.abonos.AplicarAbono(context.Background(), "det-999", dec("10"))

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAplicarAbono_StockInsuficiente(t *testing.T) {
	e := newEntorno(t)
	ctx := context.Background()

	// Cinco pares contra un stock de dos: la venta se factura pero el cobro
	// total debe abortar en la liquidación.
	resp, err := e.registrar.RegistrarPago(ctx, dto.RegistrarPagoRequest{
		AlumnoID: "al-1",
		Detalles: []dto.DetalleRequest{{
			Tipo:     entity.DetalleStock,
			StockID:  ptr("st-1"),
			Cantidad: dec("5"),
		}},
	})
	require.NoError(t, err)
	detalleID := resp.Detalles[0].ID

	_, err = e.abonos.AplicarAbono(ctx, detalleID, resp.Detalles[0].ImportePendiente)

	assert.ErrorIs(t, err, domain.ErrStockInsuficiente)

	d, errGet := e.pagos.GetDetalleByID(detalleID)
	require.NoError(t, errGet)
	assert.False(t, d.Cobrado, "el detalle sigue sin liquidar")
	assert.True(t, d.MontoCobrado.IsZero())

	s, errGet := e.stocks.GetByID("st-1")
	require.NoError(t, errGet)
	assert.Equal(t, "2", s.Cantidad.String(), "el stock no se descontó")
}

func TestAplicarAbono_LiquidaMatricula(t *testing.T) {
	e := newEntorno(t)
	ctx := context.Background()

	resp, err := e.registrar.RegistrarPago(ctx, dto.RegistrarPagoRequest{
		AlumnoID: "al-1",
		Detalles: []dto.DetalleRequest{{
			Tipo:        entity.DetalleMatricula,
			MatriculaID: ptr("mat-1"),
			ImporteBase: dec("500"),
		}},
	})
	require.NoError(t, err)

	_, err = e.abonos.AplicarAbono(ctx, resp.Detalles[0].ID, dec("500"))
	require.NoError(t, err)

	m, err := e.matriculas.GetByID("mat-1")
	require.NoError(t, err)
	assert.True(t, m.Pagada)
	require.NotNil(t, m.FechaPago)
}

func TestAplicarAbono_VentaDeStockDescuentaYRegistraMovimiento(t *testing.T) {
	e := newEntorno(t)
	ctx := context.Background()

	resp, err := e.registrar.RegistrarPago(ctx, dto.RegistrarPagoRequest{
		AlumnoID: "al-1",
		Detalles: []dto.DetalleRequest{{
			Tipo:     entity.DetalleStock,
			StockID:  ptr("st-1"),
			Cantidad: dec("2"),
			ACobrar:  dec("200"),
		}},
	})
	require.NoError(t, err)
	assert.True(t, resp.SaldoPendiente.IsZero())

	s, err := e.stocks.GetByID("st-1")
	require.NoError(t, err)
	assert.True(t, s.Cantidad.IsZero())

	movs, err := e.movimientos.ListByStock("st-1")
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovimientoEgreso, movs[0].Tipo)
	assert.Equal(t, "2", movs[0].Cantidad.String())
}

func TestAplicarAbono_DetalleAnulado(t *testing.T) {
	e := newEntorno(t)
	ctx := context.Background()
	_, detalleID := facturarMensualidad(t, e)

	// El arrastre anula el detalle original.
	_, err := e.registrar.RegistrarPago(ctx, dto.RegistrarPagoRequest{AlumnoID: "al-1"})
	require.NoError(t, err)

	_, err = e.abonos.AplicarAbono(ctx, detalleID, dec("10"))

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestAcreditarSaldoAFavor(t *testing.T) {
	e := newEntorno(t)

	err := e.abonos.AcreditarSaldoAFavor(context.Background(), "al-1", dec("35.50"))

	require.NoError(t, err)
	a, errGet := e.alumnos.GetByID("al-1")
	require.NoError(t, errGet)
	assert.Equal(t, "35.50", a.CreditoAFavor.StringFixed(2))
}
