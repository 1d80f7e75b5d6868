package postgres

import (
	"context"
	"fmt"

	"github.com/ledanza/academia-api/internal/domain/entity"
	"github.com/ledanza/academia-api/internal/domain/repository"
)

var _ repository.MovimientoStockRepository = (*MovimientoStockRepo)(nil)

// MovimientoStockRepo implementación del puerto MovimientoStockRepository sobre PostgreSQL.
// El historial es append-only: no hay update ni delete.
type MovimientoStockRepo struct {
	q Querier
}

// NewMovimientoStockRepository construye el adaptador de persistencia del historial de stock.
func NewMovimientoStockRepository(q Querier) *MovimientoStockRepo {
	return &MovimientoStockRepo{q: q}
}

// Create persiste un movimiento de stock.
func (r *MovimientoStockRepo) Create(movimiento *entity.MovimientoStock) error {
	query := `
		INSERT INTO movimientos_stock (id, stock_id, tipo, cantidad, cantidad_anterior, cantidad_nueva, detalle_pago_id, fecha, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		movimiento.ID, movimiento.StockID, movimiento.Tipo, movimiento.Cantidad,
		movimiento.CantidadAnterior, movimiento.CantidadNueva, movimiento.DetallePagoID,
		movimiento.Fecha, movimiento.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movimiento stock: %w", err)
	}
	return nil
}

// ListByStock devuelve el historial de un artículo, del más reciente al más antiguo.
func (r *MovimientoStockRepo) ListByStock(stockID string) ([]*entity.MovimientoStock, error) {
	query := `
		SELECT id, stock_id, tipo, cantidad, cantidad_anterior, cantidad_nueva, detalle_pago_id, fecha, created_at
		FROM movimientos_stock WHERE stock_id = $1 ORDER BY fecha DESC, created_at DESC`
	rows, err := r.q.Query(context.Background(), query, stockID)
	if err != nil {
		return nil, fmt.Errorf("list movimientos stock: %w", err)
	}
	defer rows.Close()

	var movimientos []*entity.MovimientoStock
	for rows.Next() {
		var m entity.MovimientoStock
		if err := rows.Scan(&m.ID, &m.StockID, &m.Tipo, &m.Cantidad, &m.CantidadAnterior,
			&m.CantidadNueva, &m.DetallePagoID, &m.Fecha, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movimiento stock: %w", err)
		}
		movimientos = append(movimientos, &m)
	}
	return movimientos, rows.Err()
}
