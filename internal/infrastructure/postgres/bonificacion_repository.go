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

var _ repository.BonificacionRepository = (*BonificacionRepo)(nil)

// BonificacionRepo implementación del puerto BonificacionRepository sobre PostgreSQL.
type BonificacionRepo struct {
	q Querier
}

// NewBonificacionRepository construye el adaptador de persistencia para bonificaciones.
func NewBonificacionRepository(q Querier) *BonificacionRepo {
	return &BonificacionRepo{q: q}
}

// Create persiste una nueva bonificación.
func (r *BonificacionRepo) Create(bonificacion *entity.Bonificacion) error {
	query := `
		INSERT INTO bonificaciones (id, descripcion, monto_fijo, porcentaje, activo)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		bonificacion.ID, bonificacion.Descripcion, bonificacion.MontoFijo,
		bonificacion.Porcentaje, bonificacion.Activo,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert bonificacion: %w", err)
	}
	return nil
}

// GetByID obtiene una bonificación por ID, o nil si no existe.
func (r *BonificacionRepo) GetByID(id string) (*entity.Bonificacion, error) {
	query := `
		SELECT id, descripcion, monto_fijo, porcentaje, activo
		FROM bonificaciones WHERE id = $1`
	var b entity.Bonificacion
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.Descripcion, &b.MontoFijo, &b.Porcentaje, &b.Activo,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bonificacion: %w", err)
	}
	return &b, nil
}

// List devuelve todas las bonificaciones.
func (r *BonificacionRepo) List() ([]*entity.Bonificacion, error) {
	query := `
		SELECT id, descripcion, monto_fijo, porcentaje, activo
		FROM bonificaciones ORDER BY descripcion`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list bonificaciones: %w", err)
	}
	defer rows.Close()

	var bonificaciones []*entity.Bonificacion
	for rows.Next() {
		var b entity.Bonificacion
		if err := rows.Scan(&b.ID, &b.Descripcion, &b.MontoFijo, &b.Porcentaje, &b.Activo); err != nil {
			return nil, fmt.Errorf("scan bonificacion: %w", err)
		}
		bonificaciones = append(bonificaciones, &b)
	}
	return bonificaciones, rows.Err()
}
