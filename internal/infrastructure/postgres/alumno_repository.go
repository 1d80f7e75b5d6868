package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/ledanza/academia-api/internal/domain"
	"github.com/ledanza/academia-api/internal/domain/entity"
	"github.com/ledanza/academia-api/internal/domain/repository"
)

var _ repository.AlumnoRepository = (*AlumnoRepo)(nil)

// AlumnoRepo implementación del puerto AlumnoRepository sobre PostgreSQL (usable con pool o tx).
type AlumnoRepo struct {
	q Querier
}

// NewAlumnoRepository construye el adaptador de persistencia para alumnos. Pasar pool o tx (Querier).
func NewAlumnoRepository(q Querier) *AlumnoRepo {
	return &AlumnoRepo{q: q}
}

// Create persiste un nuevo alumno.
func (r *AlumnoRepo) Create(alumno *entity.Alumno) error {
	query := `
		INSERT INTO alumnos (id, nombre, apellido, activo, credito_a_favor, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		alumno.ID, alumno.Nombre, alumno.Apellido, alumno.Activo,
		alumno.CreditoAFavor, alumno.CreatedAt, alumno.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert alumno: %w", err)
	}
	return nil
}

// GetByID obtiene un alumno por ID, o nil si no existe.
func (r *AlumnoRepo) GetByID(id string) (*entity.Alumno, error) {
	query := `
		SELECT id, nombre, apellido, activo, credito_a_favor, created_at, updated_at
		FROM alumnos WHERE id = $1`
	var a entity.Alumno
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.Nombre, &a.Apellido, &a.Activo, &a.CreditoAFavor, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get alumno: %w", err)
	}
	return &a, nil
}

// Update actualiza los datos del alumno (el crédito a favor se muta vía AcreditarSaldo).
func (r *AlumnoRepo) Update(alumno *entity.Alumno) error {
	query := `
		UPDATE alumnos SET nombre = $2, apellido = $3, activo = $4, updated_at = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		alumno.ID, alumno.Nombre, alumno.Apellido, alumno.Activo, alumno.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update alumno: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AcreditarSaldo suma monto al crédito a favor del alumno en forma atómica.
func (r *AlumnoRepo) AcreditarSaldo(id string, monto decimal.Decimal) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE alumnos SET credito_a_favor = credito_a_favor + $2, updated_at = now() WHERE id = $1`,
		id, monto,
	)
	if err != nil {
		return fmt.Errorf("acreditar saldo: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista alumnos con paginación.
func (r *AlumnoRepo) List(limit, offset int) ([]*entity.Alumno, error) {
	query := `
		SELECT id, nombre, apellido, activo, credito_a_favor, created_at, updated_at
		FROM alumnos ORDER BY apellido, nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list alumnos: %w", err)
	}
	defer rows.Close()

	var alumnos []*entity.Alumno
	for rows.Next() {
		var a entity.Alumno
		if err := rows.Scan(&a.ID, &a.Nombre, &a.Apellido, &a.Activo, &a.CreditoAFavor, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan alumno: %w", err)
		}
		alumnos = append(alumnos, &a)
	}
	return alumnos, rows.Err()
}
