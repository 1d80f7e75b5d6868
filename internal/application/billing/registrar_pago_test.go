package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbilling "github.com/ledanza/academia-api/internal/application/billing"
	"github.com/ledanza/academia-api/internal/application/dto"
	"github.com/ledanza/academia-api/internal/application/obligaciones"
	"github.com/ledanza/academia-api/internal/domain"
	"github.com/ledanza/academia-api/internal/domain/entity"
)

func ptr(s string) *string { return &s }

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// entorno arma los fakes con datos de base: un alumno con una inscripción
// activa a tango, la mensualidad 03/2026 pendiente de 300, una matrícula
// 2026 sin pagar, un artículo con stock 2 y un concepto de catálogo.
type entorno struct {
	alumnos       *fakeAlumnoRepo
	pagos         *fakePagoRepo
	mensualidades *fakeMensualidadRepo
	matriculas    *fakeMatriculaRepo
	stocks        *fakeStockRepo
	movimientos   *fakeMovimientoStockRepo
	recibos       *reciboCapturado

	registrar *appbilling.RegistrarPagoUseCase
	abonos    *appbilling.AplicarAbonoUseCase

	reloj obligaciones.RelojFijo
}

func newEntorno(t *testing.T) *entorno {
	t.Helper()

	e := &entorno{
		alumnos:       &fakeAlumnoRepo{alumnos: make(map[string]entity.Alumno)},
		pagos:         newFakePagoRepo(),
		mensualidades: &fakeMensualidadRepo{mensualidades: make(map[string]entity.Mensualidad)},
		matriculas:    &fakeMatriculaRepo{matriculas: make(map[string]entity.Matricula)},
		stocks:        &fakeStockRepo{stocks: make(map[string]entity.Stock)},
		movimientos:   &fakeMovimientoStockRepo{},
		recibos:       &reciboCapturado{},
		reloj:         obligaciones.RelojFijo{T: time.Date(2026, time.March, 5, 10, 0, 0, 0, time.UTC)},
	}

	bonificaciones := &fakeBonificacionRepo{bonificaciones: map[string]entity.Bonificacion{
		"bon-50": {ID: "bon-50", Descripcion: "hermanos", Porcentaje: dec("50"), Activo: true},
	}}
	recargos := &fakeRecargoRepo{recargos: map[string]entity.Recargo{
		"rec-1": {ID: "rec-1", Descripcion: "mora", Tramos: []entity.RecargoTramo{
			{DiaDelMes: 1, Porcentaje: dec("5")},
			{DiaDelMes: 10, Porcentaje: dec("10")},
			{DiaDelMes: 15, Porcentaje: dec("20")},
		}},
	}}
	conceptos := &fakeConceptoRepo{conceptos: map[string]entity.Concepto{
		"con-1": {ID: "con-1", Descripcion: "Alquiler de sala", Precio: dec("150"), Activo: true},
	}}
	disciplinas := &fakeDisciplinaRepo{disciplinas: map[string]entity.Disciplina{
		"dis-1": {ID: "dis-1", Nombre: "Tango", CuotaBase: dec("300"), ValorMatricula: dec("500"), Activo: true},
	}}
	inscripciones := &fakeInscripcionRepo{inscripciones: map[string]entity.Inscripcion{
		"ins-1": {ID: "ins-1", AlumnoID: "al-1", DisciplinaID: "dis-1", Estado: entity.InscripcionActiva},
	}}

	e.alumnos.alumnos["al-1"] = entity.Alumno{ID: "al-1", Nombre: "Marina", Apellido: "Suárez", Activo: true, CreditoAFavor: decimal.Zero}
	e.mensualidades.mensualidades["men-1"] = entity.Mensualidad{
		ID: "men-1", InscripcionID: "ins-1", Mes: 3, Anio: 2026,
		ImporteBase: dec("300"), ImporteTotal: dec("300"),
		MontoAbonado: decimal.Zero, Estado: entity.MensualidadPendiente,
	}
	e.matriculas.matriculas["mat-1"] = entity.Matricula{ID: "mat-1", AlumnoID: "al-1", Anio: 2026}
	e.stocks.stocks["st-1"] = entity.Stock{ID: "st-1", Nombre: "Zapatillas media punta", Precio: dec("100"), Cantidad: dec("2"), Activo: true}

	repos := appbilling.BillingRepos{
		Alumnos:          e.alumnos,
		Inscripciones:    inscripciones,
		Disciplinas:      disciplinas,
		Bonificaciones:   bonificaciones,
		Recargos:         recargos,
		Matriculas:       e.matriculas,
		Mensualidades:    e.mensualidades,
		Pagos:            e.pagos,
		Stocks:           e.stocks,
		MovimientosStock: e.movimientos,
		Conceptos:        conceptos,
	}
	runner := &fakeTxRunner{repos: repos}
	liquidador := appbilling.NewLiquidador()

	e.registrar = appbilling.NewRegistrarPagoUseCase(runner, liquidador, e.reloj, e.recibos)
	e.abonos = appbilling.NewAplicarAbonoUseCase(runner, liquidador, e.reloj)
	return e
}

// sumaPendiente suma el saldo pendiente de todos los pagos del alumno.
func (e *entorno) sumaPendiente(t *testing.T, alumnoID string) decimal.Decimal {
	t.Helper()
	pagos, err := e.pagos.ListByAlumno(alumnoID, 100, 0)
	require.NoError(t, err)
	total := decimal.Zero
	for _, p := range pagos {
		total = total.Add(p.SaldoPendiente)
	}
	return total
}

// verificarTotales asegura el invariante: cada total del pago es la suma del
// campo correspondiente de sus detalles vigentes.
func verificarTotales(t *testing.T, p *dto.PagoResponse) {
	t.Helper()
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
	assert.True(t, p.MontoBase.Equal(base), "MontoBase %s != Σ base %s", p.MontoBase, base)
	assert.True(t, p.MontoInicial.Equal(inicial), "MontoInicial %s != Σ inicial %s", p.MontoInicial, inicial)
	assert.True(t, p.MontoCobrado.Equal(cobrado), "MontoCobrado %s != Σ cobrado %s", p.MontoCobrado, cobrado)
	assert.True(t, p.SaldoPendiente.Equal(pendiente), "SaldoPendiente %s != Σ pendiente %s", p.SaldoPendiente, pendiente)
}

func TestRegistrarPago_TotalesDerivados(t *testing.T) {
	e := newEntorno(t)

	resp, err := e.registrar.RegistrarPago(context.Background(), dto.RegistrarPagoRequest{
		AlumnoID: "al-1",
		Detalles: []dto.DetalleRequest{
			{Tipo: entity.DetalleMensualidad, MensualidadID: ptr("men-1")},
			{Tipo: entity.DetalleConcepto, ConceptoID: ptr("con-1")},
		},
	})

	require.NoError(t, err)
	require.Len(t, resp.Detalles, 2)
	assert.Equal(t, entity.PagoActivo, resp.Estado)
	assert.Equal(t, entity.PagoGeneral, resp.Tipo)
	assert.Equal(t, "450.00", resp.MontoInicial.StringFixed(2))
	assert.Equal(t, "450.00", resp.SaldoPendiente.StringFixed(2))
	assert.True(t, resp.MontoCobrado.IsZero())
	assert.Equal(t, "CUOTA 03/2026", resp.Detalles[0].Descripcion)
	verificarTotales(t, resp)
}

func TestRegistrarPago_BonificacionYRecargo(t *testing.T) {
	e := newEntorno(t)

	// Día 5: tramo del día 1 (5%). 300 − 150 + 15 = 165.
	resp, err := e.registrar.RegistrarPago(context.Background(), dto.RegistrarPagoRequest{
		AlumnoID: "al-1",
		Detalles: []dto.DetalleRequest{{
			Tipo:           entity.DetalleMensualidad,
			MensualidadID:  ptr("men-1"),
			BonificacionID: ptr("bon-50"),
			RecargoID:      ptr("rec-1"),
		}},
	})

	require.NoError(t, err)
	assert.Equal(t, "165.00", resp.Detalles[0].ImporteInicial.StringFixed(2))
	verificarTotales(t, resp)
}

func TestRegistrarPago_MensualidadYaFacturada(t *testing.T) {
	e := newEntorno(t)
	req := dto.RegistrarPagoRequest{
		AlumnoID: "al-1",
		Detalles: []dto.DetalleRequest{{Tipo: entity.DetalleMensualidad, MensualidadID: ptr("men-1")}},
	}
	_, err := e.registrar.RegistrarPago(context.Background(), req)
	require.NoError(t, err)

	// El arrastre anula el original y crea un único clon vigente; facturar la
	// misma mensualidad de nuevo debe rechazarse.
	req.Detalles = append(req.Detalles[:0], dto.DetalleRequest{Tipo: entity.DetalleMensualidad, MensualidadID: ptr("men-1")})
	_, err = e.registrar.RegistrarPago(context.Background(), req)

	assert.ErrorIs(t, err, domain.ErrYaFacturado)
}

func TestRegistrarPago_MatriculaYaFacturada(t *testing.T) {
	e := newEntorno(t)
	req := dto.RegistrarPagoRequest{
		AlumnoID: "al-1",
		Detalles: []dto.DetalleRequest{{Tipo: entity.DetalleMatricula, MatriculaID: ptr("mat-1"), ImporteBase: dec("500")}},
	}
	_, err := e.registrar.RegistrarPago(context.Background(), req)
	require.NoError(t, err)

	_, err = e.registrar.RegistrarPago(context.Background(), req)

	assert.ErrorIs(t, err, domain.ErrYaFacturado)
}

func TestRegistrarPago_CobroEnElActoLiquidaMensualidad(t *testing.T) {
	e := newEntorno(t)

	resp, err := e.registrar.RegistrarPago(context.Background(), dto.RegistrarPagoRequest{
		AlumnoID: "al-1",
		Detalles: []dto.DetalleRequest{{
			Tipo:          entity.DetalleMensualidad,
			MensualidadID: ptr("men-1"),
			ACobrar:       dec("300"),
		}},
	})

	require.NoError(t, err)
	assert.True(t, resp.SaldoPendiente.IsZero())
	assert.Equal(t, entity.PagoHistorico, resp.Estado, "sin saldo pendiente el pago pasa a HISTORICO")

	m, err := e.mensualidades.GetByID("men-1")
	require.NoError(t, err)
	assert.Equal(t, entity.MensualidadPagada, m.Estado)
	require.NotNil(t, m.FechaPago)
	assert.True(t, m.FechaPago.Equal(e.reloj.T))
}

func TestRegistrarPago_ArrastreConservaSaldo(t *testing.T) {
	e := newEntorno(t)
	ctx := context.Background()

	primero, err := e.registrar.RegistrarPago(ctx, dto.RegistrarPagoRequest{
		AlumnoID: "al-1",
		Detalles: []dto.DetalleRequest{{Tipo: entity.DetalleMensualidad, MensualidadID: ptr("men-1")}},
	})
	require.NoError(t, err)

	_, err = e.abonos.AplicarAbono(ctx, primero.Detalles[0].ID, dec("120"))
	require.NoError(t, err)

	antes := e.sumaPendiente(t, "al-1")
	require.Equal(t, "180.00", antes.StringFixed(2))

	segundo, err := e.registrar.RegistrarPago(ctx, dto.RegistrarPagoRequest{AlumnoID: "al-1"})
	require.NoError(t, err)

	// Conservación: el arrastre re-aloja el saldo, no lo crea ni lo destruye.
	despues := e.sumaPendiente(t, "al-1")
	assert.True(t, antes.Equal(despues), "pendiente antes %s != después %s", antes, despues)

	assert.Equal(t, entity.PagoResumenArrastre, segundo.Tipo)
	require.Len(t, segundo.Detalles, 1)
	assert.Equal(t, "180.00", segundo.Detalles[0].ImporteInicial.StringFixed(2))
	assert.Equal(t, "180.00", segundo.Detalles[0].ImportePendiente.StringFixed(2))
	assert.True(t, segundo.Detalles[0].MontoCobrado.IsZero(), "el clon nace sin cobros")

	anterior, err := e.pagos.GetByID(primero.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PagoHistorico, anterior.Estado)
	require.Len(t, anterior.Detalles, 1)
	assert.True(t, anterior.Detalles[0].Anulado, "el detalle arrastrado queda anulado")

	// Unicidad: una sola línea vigente referencia la mensualidad.
	vigentes := 0
	for _, p := range []*entity.Pago{anterior} {
		for _, d := range p.Detalles {
			if !d.Anulado {
				vigentes++
			}
		}
	}
	for _, d := range segundo.Detalles {
		if !d.Anulado {
			vigentes++
		}
	}
	assert.Equal(t, 1, vigentes)
}

func TestRegistrarPago_ArrastreMasNuevosDetalles(t *testing.T) {
	e := newEntorno(t)
	ctx := context.Background()

	_, err := e.registrar.RegistrarPago(ctx, dto.RegistrarPagoRequest{
		AlumnoID: "al-1",
		Detalles: []dto.DetalleRequest{{Tipo: entity.DetalleConcepto, ConceptoID: ptr("con-1")}},
	})
	require.NoError(t, err)

	resp, err := e.registrar.RegistrarPago(ctx, dto.RegistrarPagoRequest{
		AlumnoID: "al-1",
		Detalles: []dto.DetalleRequest{{Tipo: entity.DetalleStock, StockID: ptr("st-1")}},
	})
	require.NoError(t, err)

	// Clon del concepto (150) + artículo nuevo (100).
	require.Len(t, resp.Detalles, 2)
	assert.Equal(t, entity.PagoGeneral, resp.Tipo)
	assert.Equal(t, "250.00", resp.SaldoPendiente.StringFixed(2))
	verificarTotales(t, resp)
}

func TestRegistrarPago_AlumnoInexistente(t *testing.T) {
	e := newEntorno(t)

	_, err := e.registrar.RegistrarPago(context.Background(), dto.RegistrarPagoRequest{
		AlumnoID: "al-999",
		Detalles: []dto.DetalleRequest{{Tipo: entity.DetalleConcepto, ConceptoID: ptr("con-1")}},
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegistrarPago_SinDetallesNiArrastre(t *testing.T) {
	e := newEntorno(t)

	_, err := e.registrar.RegistrarPago(context.Background(), dto.RegistrarPagoRequest{AlumnoID: "al-1"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegistrarPago_EmiteRecibo(t *testing.T) {
	e := newEntorno(t)

	_, err := e.registrar.RegistrarPago(context.Background(), dto.RegistrarPagoRequest{
		AlumnoID: "al-1",
		Detalles: []dto.DetalleRequest{{Tipo: entity.DetalleConcepto, ConceptoID: ptr("con-1")}},
	})

	require.NoError(t, err)
	require.Len(t, e.recibos.emitidos, 1)
	assert.Equal(t, "al-1", e.recibos.emitidos[0].AlumnoID)
}
