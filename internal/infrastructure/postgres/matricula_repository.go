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

var _ repository.MatriculaRepository = (*MatriculaRepo)(nil)

// MatriculaRepo implementación del puerto MatriculaRepository sobre PostgreSQL.
// El índice único (alumno_id, anio) respalda la idempotencia del generador.
type MatriculaRepo struct {
	q Querier
}

// NewMatriculaRepository construye el adaptador de persistencia para matrículas.
func NewMatriculaRepository(q Querier) *MatriculaRepo {
	return &MatriculaRepo{q: q}
}

const matriculaCols = `id, alumno_id, anio, pagada, fecha_pago, created_at, updated_at`

func scanMatricula(row pgx.Row) (*entity.Matricula, error) {
	var m entity.Matricula
	err := row.Scan(&m.ID, &m.AlumnoID, &m.Anio, &m.Pagada, &m.FechaPago, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create persiste una nueva matrícula. Una violación del índice único se
// reporta como ErrObligacionDuplicada para que el generador relea.
func (r *MatriculaRepo) Create(matricula *entity.Matricula) error {
	query := `
		INSERT INTO matriculas (` + matriculaCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		matricula.ID, matricula.AlumnoID, matricula.Anio, matricula.Pagada,
		matricula.FechaPago, matricula.CreatedAt, matricula.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrObligacionDuplicada
		}
		return fmt.Errorf("insert matricula: %w", err)
	}
	return nil
}

// GetByID obtiene una matrícula por ID, o nil si no existe.
func (r *MatriculaRepo) GetByID(id string) (*entity.Matricula, error) {
	query := `SELECT ` + matriculaCols + ` FROM matriculas WHERE id = $1`
	m, err := scanMatricula(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get matricula: %w", err)
	}
	return m, nil
}

// GetByAlumnoAnio obtiene la matrícula del alumno para un año, o nil.
func (r *MatriculaRepo) GetByAlumnoAnio(alumnoID string, anio int) (*entity.Matricula, error) {
	query := `SELECT ` + matriculaCols + ` FROM matriculas WHERE alumno_id = $1 AND anio = $2`
	m, err := scanMatricula(r.q.QueryRow(context.Background(), query, alumnoID, anio))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get matricula por alumno/anio: %w", err)
	}
	return m, nil
}

// Update actualiza una matrícula existente.
func (r *MatriculaRepo) Update(matricula *entity.Matricula) error {
	query := `
		UPDATE matriculas SET pagada = $2, fecha_pago = $3, updated_at = $4
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		matricula.ID, matricula.Pagada, matricula.FechaPago, matricula.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update matricula: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
