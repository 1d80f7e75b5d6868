package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledanza/academia-api/internal/application/dto"
	"github.com/ledanza/academia-api/internal/application/obligaciones"
	"github.com/ledanza/academia-api/internal/domain"
	domainbilling "github.com/ledanza/academia-api/internal/domain/billing"
	"github.com/ledanza/academia-api/internal/domain/entity"
)

// RegistrarPagoUseCase abre un pago para un alumno: arrastra los saldos
// pendientes de su pago ACTIVO anterior, arma los detalles solicitados con la
// calculadora y deriva los totales. Todo dentro de una transacción.
type RegistrarPagoUseCase struct {
	txRunner   BillingTxRunner
	liquidador *Liquidador
	clock      obligaciones.PeriodClock
	emitter    ReciboEmitter
}

// NewRegistrarPagoUseCase construye el caso de uso.
func NewRegistrarPagoUseCase(
	txRunner BillingTxRunner,
	liquidador *Liquidador,
	clock obligaciones.PeriodClock,
	emitter ReciboEmitter,
) *RegistrarPagoUseCase {
	return &RegistrarPagoUseCase{
		txRunner:   txRunner,
		liquidador: liquidador,
		clock:      clock,
		emitter:    emitter,
	}
}

// RegistrarPago crea el pago y sus detalles, aplica los cobros en el acto y
// emite el recibo al confirmar la transacción.
func (uc *RegistrarPagoUseCase) RegistrarPago(ctx context.Context, in dto.RegistrarPagoRequest) (*dto.PagoResponse, error) {
	if in.AlumnoID == "" {
		return nil, fmt.Errorf("alumnoId requerido: %w", domain.ErrInvalidInput)
	}
	tipo := in.Tipo
	if tipo == "" {
		tipo = entity.PagoGeneral
	}
	if tipo != entity.PagoGeneral && tipo != entity.PagoSuscripcion {
		return nil, fmt.Errorf("tipo de pago %q: %w", in.Tipo, domain.ErrInvalidInput)
	}
	for i := range in.Detalles {
		if err := validarDetalleRequest(&in.Detalles[i]); err != nil {
			return nil, err
		}
	}

	var pago *entity.Pago
	err := uc.txRunner.RunBilling(ctx, func(repos BillingRepos) error {
		alumno, err := repos.Alumnos.GetByID(in.AlumnoID)
		if err != nil {
			return err
		}
		if alumno == nil {
			return fmt.Errorf("alumno %s: %w", in.AlumnoID, domain.ErrNotFound)
		}

		now := uc.clock.Ahora()
		vencimiento := in.FechaVencimiento
		if vencimiento.IsZero() {
			vencimiento = now
		}
		pago = &entity.Pago{
			ID:               uuid.New().String(),
			AlumnoID:         in.AlumnoID,
			Fecha:            now,
			FechaVencimiento: vencimiento,
			Tipo:             tipo,
			Estado:           entity.PagoActivo,
			Observaciones:    in.Observaciones,
			Version:          1,
			CreatedAt:        now,
			UpdatedAt:        now,
		}

		// Saldos del pago ACTIVO anterior: se re-alojan en el pago nuevo y el
		// anterior pasa a HISTORICO.
		arrastrados, err := uc.arrastrarSaldos(repos, in.AlumnoID, pago, now)
		if err != nil {
			return err
		}
		if len(in.Detalles) == 0 {
			if len(arrastrados) == 0 {
				return fmt.Errorf("pago sin detalles ni saldos a arrastrar: %w", domain.ErrInvalidInput)
			}
			pago.Tipo = entity.PagoResumenArrastre
		}
		pago.Detalles = arrastrados

		// Obligaciones ya referenciadas en este pago (incluye los clones del
		// arrastre, que todavía no están persistidos).
		referenciadas := make(map[string]bool)
		for _, d := range arrastrados {
			referenciadas[d.Tipo+"/"+referenciaDeDetalle(d)] = true
		}

		// Cobros en el acto se difieren hasta después de persistir los
		// detalles, para que la liquidación vea filas existentes.
		aCobrar := make(map[string]decimal.Decimal)
		for i := range in.Detalles {
			detalle, err := uc.construirDetalle(repos, pago.ID, &in.Detalles[i], now, referenciadas)
			if err != nil {
				return err
			}
			referenciadas[detalle.Tipo+"/"+referenciaDeDetalle(detalle)] = true
			pago.Detalles = append(pago.Detalles, detalle)
			if in.Detalles[i].ACobrar.GreaterThan(decimal.Zero) {
				aCobrar[detalle.ID] = in.Detalles[i].ACobrar
			}
		}

		pago.RecalcularTotales()
		if err := repos.Pagos.Create(pago); err != nil {
			return err
		}
		for _, d := range pago.Detalles {
			if err := repos.Pagos.CreateDetalle(d); err != nil {
				return err
			}
		}

		if len(aCobrar) > 0 {
			for _, d := range pago.Detalles {
				monto, ok := aCobrar[d.ID]
				if !ok {
					continue
				}
				if err := aplicarAbonoADetalle(repos, uc.liquidador, d, monto, now); err != nil {
					return err
				}
				if err := repos.Pagos.UpdateDetalle(d); err != nil {
					return err
				}
			}
			pago.RecalcularTotales()
			if err := repos.Pagos.Update(pago); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.emitter.EmitirRecibo(pago)
	return ToPagoResponse(pago), nil
}

// arrastrarSaldos clona en el pago nuevo cada detalle vigente con saldo del
// pago ACTIVO anterior del alumno, anula los originales y deja el pago
// anterior en HISTORICO. El saldo pendiente total se conserva: cada clon nace
// con inicial = pendiente = saldo arrastrado y cobrado en cero.
func (uc *RegistrarPagoUseCase) arrastrarSaldos(
	repos BillingRepos,
	alumnoID string,
	nuevo *entity.Pago,
	now time.Time,
) ([]*entity.DetallePago, error) {
	anterior, err := repos.Pagos.GetActivoByAlumno(alumnoID)
	if err != nil {
		return nil, err
	}
	if anterior == nil {
		return nil, nil
	}

	var clones []*entity.DetallePago
	for _, d := range anterior.DetallesPendientes() {
		clon := &entity.DetallePago{
			ID:               uuid.New().String(),
			PagoID:           nuevo.ID,
			Tipo:             d.Tipo,
			Descripcion:      d.Descripcion,
			Cantidad:         d.Cantidad,
			ImporteBase:      d.ImportePendiente,
			BonificacionID:   d.BonificacionID,
			RecargoID:        d.RecargoID,
			ImporteInicial:   d.ImportePendiente,
			MontoCobrado:     decimal.Zero,
			ImportePendiente: d.ImportePendiente,
			MensualidadID:    d.MensualidadID,
			MatriculaID:      d.MatriculaID,
			StockID:          d.StockID,
			ConceptoID:       d.ConceptoID,
			Version:          1,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		clones = append(clones, clon)

		// El original queda anulado: el clon pasa a ser el único detalle
		// vigente de la obligación.
		d.Anulado = true
		d.UpdatedAt = now
		if err := repos.Pagos.UpdateDetalle(d); err != nil {
			return nil, err
		}
	}

	anterior.Estado = entity.PagoHistorico
	anterior.RecalcularTotales()
	anterior.UpdatedAt = now
	if err := repos.Pagos.Update(anterior); err != nil {
		return nil, err
	}
	return clones, nil
}

// construirDetalle resuelve la obligación referenciada, controla unicidad de
// facturación y deriva los importes con la calculadora.
func (uc *RegistrarPagoUseCase) construirDetalle(
	repos BillingRepos,
	pagoID string,
	req *dto.DetalleRequest,
	now time.Time,
	referenciadas map[string]bool,
) (*entity.DetallePago, error) {
	yaFacturada := func(tipo, referenciaID string) (bool, error) {
		if referenciadas[tipo+"/"+referenciaID] {
			return true, nil
		}
		return repos.Pagos.ExisteDetalleVigente(tipo, referenciaID)
	}

	base := req.ImporteBase
	descripcion := req.Descripcion
	cantidad := req.Cantidad
	if cantidad.IsZero() {
		cantidad = decimal.NewFromInt(1)
	}

	switch req.Tipo {
	case entity.DetalleMensualidad:
		m, err := repos.Mensualidades.GetByID(*req.MensualidadID)
		if err != nil {
			return nil, err
		}
		if m == nil {
			return nil, fmt.Errorf("mensualidad %s: %w", *req.MensualidadID, domain.ErrNotFound)
		}
		existe, err := yaFacturada(entity.DetalleMensualidad, m.ID)
		if err != nil {
			return nil, err
		}
		if existe {
			return nil, fmt.Errorf("mensualidad %s: %w", m.Periodo(), domain.ErrYaFacturado)
		}
		if base.IsZero() {
			base = m.ImporteBase
		}
		if descripcion == "" {
			descripcion = "CUOTA " + m.Periodo()
		}

	case entity.DetalleMatricula:
		m, err := repos.Matriculas.GetByID(*req.MatriculaID)
		if err != nil {
			return nil, err
		}
		if m == nil {
			return nil, fmt.Errorf("matrícula %s: %w", *req.MatriculaID, domain.ErrNotFound)
		}
		existe, err := yaFacturada(entity.DetalleMatricula, m.ID)
		if err != nil {
			return nil, err
		}
		if existe {
			return nil, fmt.Errorf("matrícula %d: %w", m.Anio, domain.ErrYaFacturado)
		}
		if base.IsZero() {
			return nil, fmt.Errorf("importe de matrícula requerido: %w", domain.ErrInvalidInput)
		}
		if descripcion == "" {
			descripcion = obligaciones.DescripcionMatricula(m.Anio)
		}

	case entity.DetalleStock:
		articulo, err := repos.Stocks.GetByID(*req.StockID)
		if err != nil {
			return nil, err
		}
		if articulo == nil {
			return nil, fmt.Errorf("stock %s: %w", *req.StockID, domain.ErrNotFound)
		}
		if base.IsZero() {
			base = articulo.Precio.Mul(cantidad)
		}
		if descripcion == "" {
			descripcion = articulo.Nombre
		}

	case entity.DetalleConcepto:
		if req.ConceptoID != nil {
			concepto, err := repos.Conceptos.GetByID(*req.ConceptoID)
			if err != nil {
				return nil, err
			}
			if concepto == nil {
				return nil, fmt.Errorf("concepto %s: %w", *req.ConceptoID, domain.ErrNotFound)
			}
			if base.IsZero() {
				base = concepto.Precio
			}
			if descripcion == "" {
				descripcion = concepto.Descripcion
			}
		}
		if base.IsZero() || descripcion == "" {
			return nil, fmt.Errorf("concepto sin importe o descripción: %w", domain.ErrInvalidInput)
		}
	}

	var bonif *entity.Bonificacion
	if req.BonificacionID != nil {
		var err error
		bonif, err = repos.Bonificaciones.GetByID(*req.BonificacionID)
		if err != nil {
			return nil, err
		}
		if bonif == nil {
			return nil, fmt.Errorf("bonificación %s: %w", *req.BonificacionID, domain.ErrNotFound)
		}
	}
	var recargo *entity.Recargo
	if req.RecargoID != nil {
		var err error
		recargo, err = repos.Recargos.GetByID(*req.RecargoID)
		if err != nil {
			return nil, err
		}
		if recargo == nil {
			return nil, fmt.Errorf("recargo %s: %w", *req.RecargoID, domain.ErrNotFound)
		}
	}

	calc := domainbilling.CalcularDetalle(base, bonif, recargo, now)
	return &entity.DetallePago{
		ID:               uuid.New().String(),
		PagoID:           pagoID,
		Tipo:             req.Tipo,
		Descripcion:      descripcion,
		Cantidad:         cantidad,
		ImporteBase:      calc.ImporteBase,
		BonificacionID:   req.BonificacionID,
		RecargoID:        req.RecargoID,
		ImporteInicial:   calc.ImporteInicial,
		MontoCobrado:     calc.MontoCobrado,
		ImportePendiente: calc.ImportePendiente,
		Cobrado:          calc.Cobrado,
		MensualidadID:    req.MensualidadID,
		MatriculaID:      req.MatriculaID,
		StockID:          req.StockID,
		ConceptoID:       req.ConceptoID,
		Version:          1,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// validarDetalleRequest controla tipo, referencia y montos de una línea
// solicitada.
func validarDetalleRequest(req *dto.DetalleRequest) error {
	switch req.Tipo {
	case entity.DetalleMensualidad:
		if req.MensualidadID == nil {
			return fmt.Errorf("mensualidadId requerido: %w", domain.ErrInvalidInput)
		}
	case entity.DetalleMatricula:
		if req.MatriculaID == nil {
			return fmt.Errorf("matriculaId requerido: %w", domain.ErrInvalidInput)
		}
	case entity.DetalleStock:
		if req.StockID == nil {
			return fmt.Errorf("stockId requerido: %w", domain.ErrInvalidInput)
		}
	case entity.DetalleConcepto:
		// ConceptoID opcional: admite conceptos libres con descripción e importe.
	default:
		return fmt.Errorf("tipo de detalle %q: %w", req.Tipo, domain.ErrInvalidInput)
	}
	if req.ImporteBase.IsNegative() || req.ACobrar.IsNegative() || req.Cantidad.IsNegative() {
		return fmt.Errorf("importes negativos: %w", domain.ErrInvalidInput)
	}
	return nil
}

// ToPagoResponse mapea la entidad al DTO de respuesta.
func ToPagoResponse(p *entity.Pago) *dto.PagoResponse {
	resp := &dto.PagoResponse{
		ID:               p.ID,
		AlumnoID:         p.AlumnoID,
		Fecha:            p.Fecha,
		FechaVencimiento: p.FechaVencimiento,
		Tipo:             p.Tipo,
		Estado:           p.Estado,
		MontoBase:        p.MontoBase,
		MontoInicial:     p.MontoInicial,
		MontoCobrado:     p.MontoCobrado,
		SaldoPendiente:   p.SaldoPendiente,
		Observaciones:    p.Observaciones,
		Detalles:         make([]dto.DetallePagoResponse, 0, len(p.Detalles)),
	}
	for _, d := range p.Detalles {
		resp.Detalles = append(resp.Detalles, ToDetalleResponse(d))
	}
	return resp
}

// ToDetalleResponse mapea un detalle al DTO de respuesta.
func ToDetalleResponse(d *entity.DetallePago) dto.DetallePagoResponse {
	return dto.DetallePagoResponse{
		ID:               d.ID,
		Tipo:             d.Tipo,
		Descripcion:      d.Descripcion,
		Cantidad:         d.Cantidad,
		ImporteBase:      d.ImporteBase,
		ImporteInicial:   d.ImporteInicial,
		MontoCobrado:     d.MontoCobrado,
		ImportePendiente: d.ImportePendiente,
		Cobrado:          d.Cobrado,
		Anulado:          d.Anulado,
	}
}
