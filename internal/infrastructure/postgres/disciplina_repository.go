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

var _ repository.DisciplinaRepository = (*DisciplinaRepo)(nil)

// DisciplinaRepo implementación del puerto DisciplinaRepository sobre PostgreSQL.
type DisciplinaRepo struct {
	q Querier
}

// NewDisciplinaRepository construye el adaptador de persistencia para disciplinas.
func NewDisciplinaRepository(q Querier) *DisciplinaRepo {
	return &DisciplinaRepo{q: q}
}

// Create persiste una nueva disciplina.
func (r *DisciplinaRepo) Create(disciplina *entity.Disciplina) error {
	query := `
		INSERT INTO disciplinas (id, nombre, cuota_base, valor_matricula, valor_clase_suelta, valor_clase_prueba, recargo_id, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		disciplina.ID, disciplina.Nombre, disciplina.CuotaBase, disciplina.ValorMatricula,
		disciplina.ValorClaseSuelta, disciplina.ValorClasePrueba, disciplina.RecargoID,
		disciplina.Activo, disciplina.CreatedAt, disciplina.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert disciplina: %w", err)
	}
	return nil
}

// GetByID obtiene una disciplina por ID, o nil si no existe.
func (r *DisciplinaRepo) GetByID(id string) (*entity.Disciplina, error) {
	query := `
		SELECT id, nombre, cuota_base, valor_matricula, valor_clase_suelta, valor_clase_prueba, recargo_id, activo, created_at, updated_at
		FROM disciplinas WHERE id = $1`
	var d entity.Disciplina
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.Nombre, &d.CuotaBase, &d.ValorMatricula, &d.ValorClaseSuelta,
		&d.ValorClasePrueba, &d.RecargoID, &d.Activo, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get disciplina: %w", err)
	}
	return &d, nil
}

// Update actualiza una disciplina existente.
func (r *DisciplinaRepo) Update(disciplina *entity.Disciplina) error {
	query := `
		UPDATE disciplinas SET nombre = $2, cuota_base = $3, valor_matricula = $4, valor_clase_suelta = $5, valor_clase_prueba = $6, recargo_id = $7, activo = $8, updated_at = $9
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		disciplina.ID, disciplina.Nombre, disciplina.CuotaBase, disciplina.ValorMatricula,
		disciplina.ValorClaseSuelta, disciplina.ValorClasePrueba, disciplina.RecargoID,
		disciplina.Activo, disciplina.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update disciplina: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista disciplinas con paginación.
func (r *DisciplinaRepo) List(limit, offset int) ([]*entity.Disciplina, error) {
	query := `
		SELECT id, nombre, cuota_base, valor_matricula, valor_clase_suelta, valor_clase_prueba, recargo_id, activo, created_at, updated_at
		FROM disciplinas ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list disciplinas: %w", err)
	}
	defer rows.Close()

	var disciplinas []*entity.Disciplina
	for rows.Next() {
		var d entity.Disciplina
		if err := rows.Scan(&d.ID, &d.Nombre, &d.CuotaBase, &d.ValorMatricula, &d.ValorClaseSuelta,
			&d.ValorClasePrueba, &d.RecargoID, &d.Activo, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan disciplina: %w", err)
		}
		disciplinas = append(disciplinas, &d)
	}
	return disciplinas, rows.Err()
}
