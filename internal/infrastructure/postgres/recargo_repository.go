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

var _ repository.RecargoRepository = (*RecargoRepo)(nil)

// RecargoRepo implementación del puerto RecargoRepository sobre PostgreSQL.
// Los tramos se leen siempre junto con el recargo, ordenados por día.
type RecargoRepo struct {
	q Querier
}

// NewRecargoRepository construye el adaptador de persistencia para recargos.
func NewRecargoRepository(q Querier) *RecargoRepo {
	return &RecargoRepo{q: q}
}

// Create persiste un recargo con sus tramos.
func (r *RecargoRepo) Create(recargo *entity.Recargo) error {
	ctx := context.Background()
	_, err := r.q.Exec(ctx,
		`INSERT INTO recargos (id, descripcion) VALUES ($1, $2)`,
		recargo.ID, recargo.Descripcion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert recargo: %w", err)
	}
	for _, t := range recargo.Tramos {
		_, err := r.q.Exec(ctx,
			`INSERT INTO recargo_tramos (id, recargo_id, dia_del_mes, porcentaje, monto_fijo)
			 VALUES ($1, $2, $3, $4, $5)`,
			t.ID, recargo.ID, t.DiaDelMes, t.Porcentaje, t.MontoFijo,
		)
		if err != nil {
			return fmt.Errorf("insert recargo tramo: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un recargo con sus tramos, o nil si no existe.
func (r *RecargoRepo) GetByID(id string) (*entity.Recargo, error) {
	ctx := context.Background()
	var rec entity.Recargo
	err := r.q.QueryRow(ctx,
		`SELECT id, descripcion FROM recargos WHERE id = $1`, id,
	).Scan(&rec.ID, &rec.Descripcion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get recargo: %w", err)
	}

	tramos, err := r.tramosDe(ctx, rec.ID)
	if err != nil {
		return nil, err
	}
	rec.Tramos = tramos
	return &rec, nil
}

// List devuelve todos los recargos con sus tramos.
func (r *RecargoRepo) List() ([]*entity.Recargo, error) {
	ctx := context.Background()
	rows, err := r.q.Query(ctx, `SELECT id, descripcion FROM recargos ORDER BY descripcion`)
	if err != nil {
		return nil, fmt.Errorf("list recargos: %w", err)
	}
	defer rows.Close()

	var recargos []*entity.Recargo
	for rows.Next() {
		var rec entity.Recargo
		if err := rows.Scan(&rec.ID, &rec.Descripcion); err != nil {
			return nil, fmt.Errorf("scan recargo: %w", err)
		}
		recargos = append(recargos, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, rec := range recargos {
		tramos, err := r.tramosDe(ctx, rec.ID)
		if err != nil {
			return nil, err
		}
		rec.Tramos = tramos
	}
	return recargos, nil
}

func (r *RecargoRepo) tramosDe(ctx context.Context, recargoID string) ([]entity.RecargoTramo, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, recargo_id, dia_del_mes, porcentaje, monto_fijo
		 FROM recargo_tramos WHERE recargo_id = $1 ORDER BY dia_del_mes`,
		recargoID,
	)
	if err != nil {
		return nil, fmt.Errorf("list recargo tramos: %w", err)
	}
	defer rows.Close()

	var tramos []entity.RecargoTramo
	for rows.Next() {
		var t entity.RecargoTramo
		if err := rows.Scan(&t.ID, &t.RecargoID, &t.DiaDelMes, &t.Porcentaje, &t.MontoFijo); err != nil {
			return nil, fmt.Errorf("scan recargo tramo: %w", err)
		}
		tramos = append(tramos, t)
	}
	return tramos, rows.Err()
}
