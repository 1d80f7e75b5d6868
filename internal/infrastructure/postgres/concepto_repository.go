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

var _ repository.ConceptoRepository = (*ConceptoRepo)(nil)

// ConceptoRepo implementación del puerto ConceptoRepository sobre PostgreSQL.
type ConceptoRepo struct {
	q Querier
}

// NewConceptoRepository construye el adaptador de persistencia del catálogo de conceptos.
func NewConceptoRepository(q Querier) *ConceptoRepo {
	return &ConceptoRepo{q: q}
}

const conceptoCols = `id, descripcion, precio, sub_concepto_id, activo, created_at, updated_at`

func scanConcepto(row pgx.Row) (*entity.Concepto, error) {
	var c entity.Concepto
	err := row.Scan(&c.ID, &c.Descripcion, &c.Precio, &c.SubConceptoID, &c.Activo, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un nuevo concepto.
func (r *ConceptoRepo) Create(concepto *entity.Concepto) error {
	query := `
		INSERT INTO conceptos (` + conceptoCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		concepto.ID, concepto.Descripcion, concepto.Precio, concepto.SubConceptoID,
		concepto.Activo, concepto.CreatedAt, concepto.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert concepto: %w", err)
	}
	return nil
}

// GetByID obtiene un concepto por ID, o nil si no existe.
func (r *ConceptoRepo) GetByID(id string) (*entity.Concepto, error) {
	query := `SELECT ` + conceptoCols + ` FROM conceptos WHERE id = $1`
	c, err := scanConcepto(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get concepto: %w", err)
	}
	return c, nil
}

// BuscarPorDescripcion obtiene un concepto por descripción sin distinguir mayúsculas, o nil.
func (r *ConceptoRepo) BuscarPorDescripcion(descripcion string) (*entity.Concepto, error) {
	query := `SELECT ` + conceptoCols + ` FROM conceptos WHERE lower(descripcion) = lower($1)`
	c, err := scanConcepto(r.q.QueryRow(context.Background(), query, descripcion))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar concepto: %w", err)
	}
	return c, nil
}

// List lista conceptos con paginación.
func (r *ConceptoRepo) List(limit, offset int) ([]*entity.Concepto, error) {
	query := `SELECT ` + conceptoCols + ` FROM conceptos ORDER BY descripcion LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list conceptos: %w", err)
	}
	defer rows.Close()

	var conceptos []*entity.Concepto
	for rows.Next() {
		c, err := scanConcepto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan concepto: %w", err)
		}
		conceptos = append(conceptos, c)
	}
	return conceptos, rows.Err()
}

// ListSubConceptos devuelve los agrupadores del catálogo.
func (r *ConceptoRepo) ListSubConceptos() ([]*entity.SubConcepto, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, descripcion FROM sub_conceptos ORDER BY descripcion`)
	if err != nil {
		return nil, fmt.Errorf("list sub conceptos: %w", err)
	}
	defer rows.Close()

	var subs []*entity.SubConcepto
	for rows.Next() {
		var s entity.SubConcepto
		if err := rows.Scan(&s.ID, &s.Descripcion); err != nil {
			return nil, fmt.Errorf("scan sub concepto: %w", err)
		}
		subs = append(subs, &s)
	}
	return subs, rows.Err()
}
