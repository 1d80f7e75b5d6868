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

var _ repository.InscripcionRepository = (*InscripcionRepo)(nil)

// InscripcionRepo implementación del puerto InscripcionRepository sobre PostgreSQL.
type InscripcionRepo struct {
	q Querier
}

// NewInscripcionRepository construye el adaptador de persistencia para inscripciones.
func NewInscripcionRepository(q Querier) *InscripcionRepo {
	return &InscripcionRepo{q: q}
}

const inscripcionCols = `id, alumno_id, disciplina_id, bonificacion_id, fecha_alta, fecha_baja, estado, created_at, updated_at`

func scanInscripcion(row pgx.Row) (*entity.Inscripcion, error) {
	var i entity.Inscripcion
	err := row.Scan(&i.ID, &i.AlumnoID, &i.DisciplinaID, &i.BonificacionID,
		&i.FechaAlta, &i.FechaBaja, &i.Estado, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// Create persiste una nueva inscripción. El índice único parcial sobre
// (alumno, disciplina) con estado ACTIVA impide duplicar la vigente.
func (r *InscripcionRepo) Create(inscripcion *entity.Inscripcion) error {
	query := `
		INSERT INTO inscripciones (` + inscripcionCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		inscripcion.ID, inscripcion.AlumnoID, inscripcion.DisciplinaID, inscripcion.BonificacionID,
		inscripcion.FechaAlta, inscripcion.FechaBaja, inscripcion.Estado,
		inscripcion.CreatedAt, inscripcion.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inscripcion: %w", err)
	}
	return nil
}

// GetByID obtiene una inscripción por ID, o nil si no existe.
func (r *InscripcionRepo) GetByID(id string) (*entity.Inscripcion, error) {
	query := `SELECT ` + inscripcionCols + ` FROM inscripciones WHERE id = $1`
	i, err := scanInscripcion(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inscripcion: %w", err)
	}
	return i, nil
}

// Update actualiza una inscripción existente.
func (r *InscripcionRepo) Update(inscripcion *entity.Inscripcion) error {
	query := `
		UPDATE inscripciones SET bonificacion_id = $2, fecha_baja = $3, estado = $4, updated_at = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		inscripcion.ID, inscripcion.BonificacionID, inscripcion.FechaBaja,
		inscripcion.Estado, inscripcion.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inscripcion: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListActivas devuelve todas las inscripciones en estado ACTIVA.
func (r *InscripcionRepo) ListActivas() ([]*entity.Inscripcion, error) {
	query := `SELECT ` + inscripcionCols + ` FROM inscripciones WHERE estado = $1 ORDER BY created_at`
	return r.list(query, entity.InscripcionActiva)
}

// ListByAlumno devuelve las inscripciones de un alumno.
func (r *InscripcionRepo) ListByAlumno(alumnoID string) ([]*entity.Inscripcion, error) {
	query := `SELECT ` + inscripcionCols + ` FROM inscripciones WHERE alumno_id = $1 ORDER BY created_at`
	return r.list(query, alumnoID)
}

func (r *InscripcionRepo) list(query string, args ...any) ([]*entity.Inscripcion, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inscripciones: %w", err)
	}
	defer rows.Close()

	var inscripciones []*entity.Inscripcion
	for rows.Next() {
		i, err := scanInscripcion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inscripcion: %w", err)
		}
		inscripciones = append(inscripciones, i)
	}
	return inscripciones, rows.Err()
}
