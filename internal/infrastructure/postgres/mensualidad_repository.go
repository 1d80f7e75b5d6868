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

var _ repository.MensualidadRepository = (*MensualidadRepo)(nil)

// MensualidadRepo implementación del puerto MensualidadRepository sobre PostgreSQL.
// El índice único (inscripcion_id, mes, anio) respalda la idempotencia del
// generador.
type MensualidadRepo struct {
	q Querier
}

// NewMensualidadRepository construye el adaptador de persistencia para mensualidades.
func NewMensualidadRepository(q Querier) *MensualidadRepo {
	return &MensualidadRepo{q: q}
}

const mensualidadCols = `id, inscripcion_id, mes, anio, importe_base, importe_total, monto_abonado, estado, fecha_pago, created_at, updated_at`

func scanMensualidad(row pgx.Row) (*entity.Mensualidad, error) {
	var m entity.Mensualidad
	err := row.Scan(&m.ID, &m.InscripcionID, &m.Mes, &m.Anio, &m.ImporteBase, &m.ImporteTotal,
		&m.MontoAbonado, &m.Estado, &m.FechaPago, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create persiste una nueva mensualidad. Una violación del índice único se
// reporta como ErrObligacionDuplicada para que el generador relea.
func (r *MensualidadRepo) Create(mensualidad *entity.Mensualidad) error {
	query := `
		INSERT INTO mensualidades (` + mensualidadCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		mensualidad.ID, mensualidad.InscripcionID, mensualidad.Mes, mensualidad.Anio,
		mensualidad.ImporteBase, mensualidad.ImporteTotal, mensualidad.MontoAbonado,
		mensualidad.Estado, mensualidad.FechaPago, mensualidad.CreatedAt, mensualidad.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrObligacionDuplicada
		}
		return fmt.Errorf("insert mensualidad: %w", err)
	}
	return nil
}

// GetByID obtiene una mensualidad por ID, o nil si no existe.
func (r *MensualidadRepo) GetByID(id string) (*entity.Mensualidad, error) {
	query := `SELECT ` + mensualidadCols + ` FROM mensualidades WHERE id = $1`
	m, err := scanMensualidad(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get mensualidad: %w", err)
	}
	return m, nil
}

// GetByInscripcionPeriodo obtiene la mensualidad de un período, o nil.
func (r *MensualidadRepo) GetByInscripcionPeriodo(inscripcionID string, mes, anio int) (*entity.Mensualidad, error) {
	query := `SELECT ` + mensualidadCols + ` FROM mensualidades WHERE inscripcion_id = $1 AND mes = $2 AND anio = $3`
	m, err := scanMensualidad(r.q.QueryRow(context.Background(), query, inscripcionID, mes, anio))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get mensualidad por periodo: %w", err)
	}
	return m, nil
}

// Update actualiza una mensualidad existente.
func (r *MensualidadRepo) Update(mensualidad *entity.Mensualidad) error {
	query := `
		UPDATE mensualidades SET importe_base = $2, importe_total = $3, monto_abonado = $4, estado = $5, fecha_pago = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		mensualidad.ID, mensualidad.ImporteBase, mensualidad.ImporteTotal,
		mensualidad.MontoAbonado, mensualidad.Estado, mensualidad.FechaPago, mensualidad.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update mensualidad: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByInscripcion devuelve las mensualidades de una inscripción ordenadas por período.
func (r *MensualidadRepo) ListByInscripcion(inscripcionID string) ([]*entity.Mensualidad, error) {
	query := `SELECT ` + mensualidadCols + ` FROM mensualidades WHERE inscripcion_id = $1 ORDER BY anio, mes`
	rows, err := r.q.Query(context.Background(), query, inscripcionID)
	if err != nil {
		return nil, fmt.Errorf("list mensualidades: %w", err)
	}
	defer rows.Close()

	var mensualidades []*entity.Mensualidad
	for rows.Next() {
		m, err := scanMensualidad(rows)
		if err != nil {
			return nil, fmt.Errorf("scan mensualidad: %w", err)
		}
		mensualidades = append(mensualidades, m)
	}
	return mensualidades, rows.Err()
}
