package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ledanza/academia-api/internal/domain"
	"github.com/ledanza/academia-api/internal/domain/entity"
	"github.com/ledanza/academia-api/internal/domain/repository"
)

var _ repository.PagoRepository = (*PagoRepo)(nil)

// PagoRepo implementación del puerto PagoRepository sobre PostgreSQL.
// Update y UpdateDetalle usan control de versión optimista: la cláusula
// WHERE version = $n detecta escrituras concurrentes y las reporta como
// ErrConflictoVersion sin bloquear lectores.
type PagoRepo struct {
	q Querier
}

// NewPagoRepository construye el adaptador de persistencia para pagos.
func NewPagoRepository(q Querier) *PagoRepo {
	return &PagoRepo{q: q}
}

const pagoCols = `id, alumno_id, fecha, fecha_vencimiento, tipo, estado, monto_base, monto_inicial, monto_cobrado, saldo_pendiente, observaciones, version, created_at, updated_at`

const detalleCols = `id, pago_id, tipo, descripcion, cantidad, importe_base, bonificacion_id, recargo_id, importe_inicial, monto_cobrado, importe_pendiente, cobrado, anulado, mensualidad_id, matricula_id, stock_id, concepto_id, version, created_at, updated_at`

func scanPago(row pgx.Row) (*entity.Pago, error) {
	var p entity.Pago
	err := row.Scan(&p.ID, &p.AlumnoID, &p.Fecha, &p.FechaVencimiento, &p.Tipo, &p.Estado,
		&p.MontoBase, &p.MontoInicial, &p.MontoCobrado, &p.SaldoPendiente,
		&p.Observaciones, &p.Version, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanDetalle(row pgx.Row) (*entity.DetallePago, error) {
	var d entity.DetallePago
	err := row.Scan(&d.ID, &d.PagoID, &d.Tipo, &d.Descripcion, &d.Cantidad,
		&d.ImporteBase, &d.BonificacionID, &d.RecargoID, &d.ImporteInicial,
		&d.MontoCobrado, &d.ImportePendiente, &d.Cobrado, &d.Anulado,
		&d.MensualidadID, &d.MatriculaID, &d.StockID, &d.ConceptoID,
		&d.Version, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Create persiste la cabecera de un pago. El índice único parcial sobre
// (alumno_id) con estado ACTIVO garantiza a lo sumo un pago activo por alumno.
func (r *PagoRepo) Create(pago *entity.Pago) error {
	query := `
		INSERT INTO pagos (` + pagoCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		pago.ID, pago.AlumnoID, pago.Fecha, pago.FechaVencimiento, pago.Tipo, pago.Estado,
		pago.MontoBase, pago.MontoInicial, pago.MontoCobrado, pago.SaldoPendiente,
		pago.Observaciones, pago.Version, pago.CreatedAt, pago.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert pago: %w", err)
	}
	return nil
}

// CreateDetalle persiste un detalle de pago. El índice único parcial por
// obligación (solo filas no anuladas) respalda el invariante de unicidad.
func (r *PagoRepo) CreateDetalle(detalle *entity.DetallePago) error {
	query := `
		INSERT INTO pago_detalles (` + detalleCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err := r.q.Exec(context.Background(), query,
		detalle.ID, detalle.PagoID, detalle.Tipo, detalle.Descripcion, detalle.Cantidad,
		detalle.ImporteBase, detalle.BonificacionID, detalle.RecargoID, detalle.ImporteInicial,
		detalle.MontoCobrado, detalle.ImportePendiente, detalle.Cobrado, detalle.Anulado,
		detalle.MensualidadID, detalle.MatriculaID, detalle.StockID, detalle.ConceptoID,
		detalle.Version, detalle.CreatedAt, detalle.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrObligacionDuplicada
		}
		return fmt.Errorf("insert detalle pago: %w", err)
	}
	return nil
}

// GetByID obtiene un pago con sus detalles ordenados por creación, o nil.
func (r *PagoRepo) GetByID(id string) (*entity.Pago, error) {
	ctx := context.Background()
	p, err := scanPago(r.q.QueryRow(ctx, `SELECT `+pagoCols+` FROM pagos WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pago: %w", err)
	}

	detalles, err := r.detallesDe(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.Detalles = detalles
	return p, nil
}

// GetActivoByAlumno devuelve el pago ACTIVO del alumno con sus detalles, o nil.
func (r *PagoRepo) GetActivoByAlumno(alumnoID string) (*entity.Pago, error) {
	ctx := context.Background()
	p, err := scanPago(r.q.QueryRow(ctx,
		`SELECT `+pagoCols+` FROM pagos WHERE alumno_id = $1 AND estado = $2`,
		alumnoID, entity.PagoActivo,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pago activo: %w", err)
	}

	detalles, err := r.detallesDe(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.Detalles = detalles
	return p, nil
}

func (r *PagoRepo) detallesDe(ctx context.Context, pagoID string) ([]*entity.DetallePago, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+detalleCols+` FROM pago_detalles WHERE pago_id = $1 ORDER BY created_at, id`,
		pagoID,
	)
	if err != nil {
		return nil, fmt.Errorf("list detalles pago: %w", err)
	}
	defer rows.Close()

	var detalles []*entity.DetallePago
	for rows.Next() {
		d, err := scanDetalle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan detalle pago: %w", err)
		}
		detalles = append(detalles, d)
	}
	return detalles, rows.Err()
}

// Update actualiza la cabecera con control de versión optimista. Si otra
// transacción ya escribió la fila devuelve ErrConflictoVersion; en éxito la
// versión en memoria queda sincronizada con la de la base.
func (r *PagoRepo) Update(pago *entity.Pago) error {
	query := `
		UPDATE pagos SET estado = $2, monto_base = $3, monto_inicial = $4, monto_cobrado = $5, saldo_pendiente = $6, observaciones = $7, updated_at = $8, version = version + 1
		WHERE id = $1 AND version = $9`
	cmd, err := r.q.Exec(context.Background(), query,
		pago.ID, pago.Estado, pago.MontoBase, pago.MontoInicial, pago.MontoCobrado,
		pago.SaldoPendiente, pago.Observaciones, pago.UpdatedAt, pago.Version,
	)
	if err != nil {
		return fmt.Errorf("update pago: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("pago %s: %w", pago.ID, domain.ErrConflictoVersion)
	}
	pago.Version++
	return nil
}

// GetDetalleByID obtiene un detalle por ID, o nil si no existe.
func (r *PagoRepo) GetDetalleByID(id string) (*entity.DetallePago, error) {
	d, err := scanDetalle(r.q.QueryRow(context.Background(),
		`SELECT `+detalleCols+` FROM pago_detalles WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get detalle pago: %w", err)
	}
	return d, nil
}

// UpdateDetalle actualiza un detalle con control de versión optimista.
func (r *PagoRepo) UpdateDetalle(detalle *entity.DetallePago) error {
	query := `
		UPDATE pago_detalles SET monto_cobrado = $2, importe_pendiente = $3, cobrado = $4, anulado = $5, updated_at = $6, version = version + 1
		WHERE id = $1 AND version = $7`
	cmd, err := r.q.Exec(context.Background(), query,
		detalle.ID, detalle.MontoCobrado, detalle.ImportePendiente,
		detalle.Cobrado, detalle.Anulado, detalle.UpdatedAt, detalle.Version,
	)
	if err != nil {
		return fmt.Errorf("update detalle pago: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("detalle %s: %w", detalle.ID, domain.ErrConflictoVersion)
	}
	detalle.Version++
	return nil
}

// ExisteDetalleVigente informa si alguna fila no anulada referencia la
// obligación (tipo + ID).
func (r *PagoRepo) ExisteDetalleVigente(tipo, referenciaID string) (bool, error) {
	var col string
	switch tipo {
	case entity.DetalleMensualidad:
		col = "mensualidad_id"
	case entity.DetalleMatricula:
		col = "matricula_id"
	case entity.DetalleStock:
		col = "stock_id"
	case entity.DetalleConcepto:
		col = "concepto_id"
	default:
		return false, fmt.Errorf("tipo de detalle %q: %w", tipo, domain.ErrInvalidInput)
	}

	query := `SELECT EXISTS (SELECT 1 FROM pago_detalles WHERE ` + col + ` = $1 AND NOT anulado)`
	var existe bool
	if err := r.q.QueryRow(context.Background(), query, referenciaID).Scan(&existe); err != nil {
		return false, fmt.Errorf("existe detalle vigente: %w", err)
	}
	return existe, nil
}

// ListByAlumno lista los pagos de un alumno (sin detalles) con paginación,
// del más reciente al más antiguo.
func (r *PagoRepo) ListByAlumno(alumnoID string, limit, offset int) ([]*entity.Pago, error) {
	query := `
		SELECT ` + pagoCols + ` FROM pagos WHERE alumno_id = $1
		ORDER BY fecha DESC, created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, alumnoID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list pagos: %w", err)
	}
	defer rows.Close()

	var pagos []*entity.Pago
	for rows.Next() {
		p, err := scanPago(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pago: %w", err)
		}
		pagos = append(pagos, p)
	}
	return pagos, rows.Err()
}
