package billing_test

import (
	"context"

	"github.com/shopspring/decimal"

	appbilling "github.com/ledanza/academia-api/internal/application/billing"
	"github.com/ledanza/academia-api/internal/domain"
	domainbilling "github.com/ledanza/academia-api/internal/domain/billing"
	"github.com/ledanza/academia-api/internal/domain/entity"
)

// Fakes en memoria de los repositorios de facturación. Devuelven y guardan
// copias para que las mutaciones en memoria de los casos de uso no se
// persistan sin pasar por Update.

type fakeTxRunner struct {
	repos appbilling.BillingRepos
}

func (f *fakeTxRunner) RunBilling(_ context.Context, fn func(appbilling.BillingRepos) error) error {
	return fn(f.repos)
}

type fakeAlumnoRepo struct {
	alumnos map[string]entity.Alumno
}

func (r *fakeAlumnoRepo) GetByID(id string) (*entity.Alumno, error) {
	if a, ok := r.alumnos[id]; ok {
		return &a, nil
	}
	return nil, nil
}

func (r *fakeAlumnoRepo) Create(a *entity.Alumno) error {
	r.alumnos[a.ID] = *a
	return nil
}

func (r *fakeAlumnoRepo) Update(a *entity.Alumno) error {
	r.alumnos[a.ID] = *a
	return nil
}

func (r *fakeAlumnoRepo) List(_, _ int) ([]*entity.Alumno, error) {
	var out []*entity.Alumno
	for id := range r.alumnos {
		a := r.alumnos[id]
		out = append(out, &a)
	}
	return out, nil
}

func (r *fakeAlumnoRepo) AcreditarSaldo(id string, monto decimal.Decimal) error {
	a, ok := r.alumnos[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.CreditoAFavor = a.CreditoAFavor.Add(monto)
	r.alumnos[id] = a
	return nil
}

type fakeMensualidadRepo struct {
	mensualidades map[string]entity.Mensualidad
}

func (r *fakeMensualidadRepo) GetByID(id string) (*entity.Mensualidad, error) {
	if m, ok := r.mensualidades[id]; ok {
		return &m, nil
	}
	return nil, nil
}

func (r *fakeMensualidadRepo) GetByInscripcionPeriodo(inscripcionID string, mes, anio int) (*entity.Mensualidad, error) {
	for id := range r.mensualidades {
		m := r.mensualidades[id]
		if m.InscripcionID == inscripcionID && m.Mes == mes && m.Anio == anio {
			return &m, nil
		}
	}
	return nil, nil
}

func (r *fakeMensualidadRepo) Create(m *entity.Mensualidad) error {
	if existente, _ := r.GetByInscripcionPeriodo(m.InscripcionID, m.Mes, m.Anio); existente != nil {
		return domain.ErrObligacionDuplicada
	}
	r.mensualidades[m.ID] = *m
	return nil
}

func (r *fakeMensualidadRepo) Update(m *entity.Mensualidad) error {
	if _, ok := r.mensualidades[m.ID]; !ok {
		return domain.ErrNotFound
	}
	r.mensualidades[m.ID] = *m
	return nil
}

func (r *fakeMensualidadRepo) ListByInscripcion(inscripcionID string) ([]*entity.Mensualidad, error) {
	var out []*entity.Mensualidad
	for id := range r.mensualidades {
		m := r.mensualidades[id]
		if m.InscripcionID == inscripcionID {
			out = append(out, &m)
		}
	}
	return out, nil
}

type fakeMatriculaRepo struct {
	matriculas map[string]entity.Matricula
}

func (r *fakeMatriculaRepo) GetByID(id string) (*entity.Matricula, error) {
	if m, ok := r.matriculas[id]; ok {
		return &m, nil
	}
	return nil, nil
}

func (r *fakeMatriculaRepo) GetByAlumnoAnio(alumnoID string, anio int) (*entity.Matricula, error) {
	for id := range r.matriculas {
		m := r.matriculas[id]
		if m.AlumnoID == alumnoID && m.Anio == anio {
			return &m, nil
		}
	}
	return nil, nil
}

func (r *fakeMatriculaRepo) Create(m *entity.Matricula) error {
	if existente, _ := r.GetByAlumnoAnio(m.AlumnoID, m.Anio); existente != nil {
		return domain.ErrObligacionDuplicada
	}
	r.matriculas[m.ID] = *m
	return nil
}

func (r *fakeMatriculaRepo) Update(m *entity.Matricula) error {
	if _, ok := r.matriculas[m.ID]; !ok {
		return domain.ErrNotFound
	}
	r.matriculas[m.ID] = *m
	return nil
}

type fakePagoRepo struct {
	pagos         map[string]entity.Pago
	detalles      map[string]entity.DetallePago
	ordenDetalles []string
}

func newFakePagoRepo() *fakePagoRepo {
	return &fakePagoRepo{
		pagos:    make(map[string]entity.Pago),
		detalles: make(map[string]entity.DetallePago),
	}
}

func (r *fakePagoRepo) Create(p *entity.Pago) error {
	cabecera := *p
	cabecera.Detalles = nil
	r.pagos[p.ID] = cabecera
	return nil
}

func (r *fakePagoRepo) CreateDetalle(d *entity.DetallePago) error {
	r.detalles[d.ID] = *d
	r.ordenDetalles = append(r.ordenDetalles, d.ID)
	return nil
}

func (r *fakePagoRepo) detallesDePago(pagoID string) []*entity.DetallePago {
	var out []*entity.DetallePago
	for _, id := range r.ordenDetalles {
		d := r.detalles[id]
		if d.PagoID == pagoID {
			copia := d
			out = append(out, &copia)
		}
	}
	return out
}

func (r *fakePagoRepo) GetByID(id string) (*entity.Pago, error) {
	p, ok := r.pagos[id]
	if !ok {
		return nil, nil
	}
	p.Detalles = r.detallesDePago(id)
	return &p, nil
}

func (r *fakePagoRepo) GetActivoByAlumno(alumnoID string) (*entity.Pago, error) {
	for id := range r.pagos {
		p := r.pagos[id]
		if p.AlumnoID == alumnoID && p.Estado == entity.PagoActivo {
			p.Detalles = r.detallesDePago(id)
			return &p, nil
		}
	}
	return nil, nil
}

func (r *fakePagoRepo) Update(p *entity.Pago) error {
	actual, ok := r.pagos[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if actual.Version != p.Version {
		return domain.ErrConflictoVersion
	}
	p.Version++
	cabecera := *p
	cabecera.Detalles = nil
	r.pagos[p.ID] = cabecera
	return nil
}

func (r *fakePagoRepo) GetDetalleByID(id string) (*entity.DetallePago, error) {
	if d, ok := r.detalles[id]; ok {
		return &d, nil
	}
	return nil, nil
}

func (r *fakePagoRepo) UpdateDetalle(d *entity.DetallePago) error {
	actual, ok := r.detalles[d.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if actual.Version != d.Version {
		return domain.ErrConflictoVersion
	}
	d.Version++
	r.detalles[d.ID] = *d
	return nil
}

func (r *fakePagoRepo) ExisteDetalleVigente(tipo, referenciaID string) (bool, error) {
	for _, id := range r.ordenDetalles {
		d := r.detalles[id]
		if d.Anulado || d.Tipo != tipo {
			continue
		}
		switch tipo {
		case entity.DetalleMensualidad:
			if d.MensualidadID != nil && *d.MensualidadID == referenciaID {
				return true, nil
			}
		case entity.DetalleMatricula:
			if d.MatriculaID != nil && *d.MatriculaID == referenciaID {
				return true, nil
			}
		case entity.DetalleStock:
			if d.StockID != nil && *d.StockID == referenciaID {
				return true, nil
			}
		case entity.DetalleConcepto:
			if d.ConceptoID != nil && *d.ConceptoID == referenciaID {
				return true, nil
			}
		}
	}
	return false, nil
}

func (r *fakePagoRepo) ListByAlumno(alumnoID string, _, _ int) ([]*entity.Pago, error) {
	var out []*entity.Pago
	for id := range r.pagos {
		p := r.pagos[id]
		if p.AlumnoID == alumnoID {
			p.Detalles = r.detallesDePago(id)
			out = append(out, &p)
		}
	}
	return out, nil
}

type fakeStockRepo struct {
	stocks map[string]entity.Stock
}

func (r *fakeStockRepo) GetByID(id string) (*entity.Stock, error) {
	if s, ok := r.stocks[id]; ok {
		return &s, nil
	}
	return nil, nil
}

func (r *fakeStockRepo) GetForUpdate(id string) (*entity.Stock, error) {
	return r.GetByID(id)
}

func (r *fakeStockRepo) BuscarPorNombre(nombre string) (*entity.Stock, error) {
	clave := domainbilling.NormalizarNombre(nombre)
	for id := range r.stocks {
		s := r.stocks[id]
		if domainbilling.NormalizarNombre(s.Nombre) == clave {
			return &s, nil
		}
	}
	return nil, nil
}

func (r *fakeStockRepo) Create(s *entity.Stock) error {
	r.stocks[s.ID] = *s
	return nil
}

func (r *fakeStockRepo) Update(s *entity.Stock) error {
	if _, ok := r.stocks[s.ID]; !ok {
		return domain.ErrNotFound
	}
	r.stocks[s.ID] = *s
	return nil
}

func (r *fakeStockRepo) List(_, _ int) ([]*entity.Stock, error) {
	var out []*entity.Stock
	for id := range r.stocks {
		s := r.stocks[id]
		out = append(out, &s)
	}
	return out, nil
}

type fakeMovimientoStockRepo struct {
	movimientos []entity.MovimientoStock
}

func (r *fakeMovimientoStockRepo) Create(m *entity.MovimientoStock) error {
	r.movimientos = append(r.movimientos, *m)
	return nil
}

func (r *fakeMovimientoStockRepo) ListByStock(stockID string) ([]*entity.MovimientoStock, error) {
	var out []*entity.MovimientoStock
	for i := range r.movimientos {
		if r.movimientos[i].StockID == stockID {
			m := r.movimientos[i]
			out = append(out, &m)
		}
	}
	return out, nil
}

type fakeBonificacionRepo struct {
	bonificaciones map[string]entity.Bonificacion
}

func (r *fakeBonificacionRepo) GetByID(id string) (*entity.Bonificacion, error) {
	if b, ok := r.bonificaciones[id]; ok {
		return &b, nil
	}
	return nil, nil
}

func (r *fakeBonificacionRepo) Create(b *entity.Bonificacion) error {
	r.bonificaciones[b.ID] = *b
	return nil
}

func (r *fakeBonificacionRepo) List() ([]*entity.Bonificacion, error) { return nil, nil }

type fakeRecargoRepo struct {
	recargos map[string]entity.Recargo
}

func (r *fakeRecargoRepo) GetByID(id string) (*entity.Recargo, error) {
	if rec, ok := r.recargos[id]; ok {
		return &rec, nil
	}
	return nil, nil
}

func (r *fakeRecargoRepo) Create(rec *entity.Recargo) error {
	r.recargos[rec.ID] = *rec
	return nil
}

func (r *fakeRecargoRepo) List() ([]*entity.Recargo, error) { return nil, nil }

type fakeConceptoRepo struct {
	conceptos map[string]entity.Concepto
}

func (r *fakeConceptoRepo) GetByID(id string) (*entity.Concepto, error) {
	if c, ok := r.conceptos[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (r *fakeConceptoRepo) BuscarPorDescripcion(descripcion string) (*entity.Concepto, error) {
	for id := range r.conceptos {
		c := r.conceptos[id]
		if c.Descripcion == descripcion {
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeConceptoRepo) Create(c *entity.Concepto) error {
	r.conceptos[c.ID] = *c
	return nil
}

func (r *fakeConceptoRepo) List(_, _ int) ([]*entity.Concepto, error) { return nil, nil }

func (r *fakeConceptoRepo) ListSubConceptos() ([]*entity.SubConcepto, error) { return nil, nil }

type fakeInscripcionRepo struct {
	inscripciones map[string]entity.Inscripcion
}

func (r *fakeInscripcionRepo) GetByID(id string) (*entity.Inscripcion, error) {
	if i, ok := r.inscripciones[id]; ok {
		return &i, nil
	}
	return nil, nil
}

func (r *fakeInscripcionRepo) Create(i *entity.Inscripcion) error {
	r.inscripciones[i.ID] = *i
	return nil
}

func (r *fakeInscripcionRepo) Update(i *entity.Inscripcion) error {
	r.inscripciones[i.ID] = *i
	return nil
}

func (r *fakeInscripcionRepo) ListActivas() ([]*entity.Inscripcion, error) {
	var out []*entity.Inscripcion
	for id := range r.inscripciones {
		i := r.inscripciones[id]
		if i.Estado == entity.InscripcionActiva {
			out = append(out, &i)
		}
	}
	return out, nil
}

func (r *fakeInscripcionRepo) ListByAlumno(alumnoID string) ([]*entity.Inscripcion, error) {
	var out []*entity.Inscripcion
	for id := range r.inscripciones {
		i := r.inscripciones[id]
		if i.AlumnoID == alumnoID {
			out = append(out, &i)
		}
	}
	return out, nil
}

type fakeDisciplinaRepo struct {
	disciplinas map[string]entity.Disciplina
}

func (r *fakeDisciplinaRepo) GetByID(id string) (*entity.Disciplina, error) {
	if d, ok := r.disciplinas[id]; ok {
		return &d, nil
	}
	return nil, nil
}

func (r *fakeDisciplinaRepo) Create(d *entity.Disciplina) error {
	r.disciplinas[d.ID] = *d
	return nil
}

func (r *fakeDisciplinaRepo) Update(d *entity.Disciplina) error {
	r.disciplinas[d.ID] = *d
	return nil
}

func (r *fakeDisciplinaRepo) List(_, _ int) ([]*entity.Disciplina, error) { return nil, nil }

// reciboCapturado acumula los pagos emitidos para asertar sobre ellos.
type reciboCapturado struct {
	emitidos []*entity.Pago
}

func (r *reciboCapturado) EmitirRecibo(p *entity.Pago) {
	r.emitidos = append(r.emitidos, p)
}
