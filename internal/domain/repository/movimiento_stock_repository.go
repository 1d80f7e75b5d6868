package repository

import "github.com/ledanza/academia-api/internal/domain/entity"

// MovimientoStockRepository puerto de persistencia del historial de stock.
type MovimientoStockRepository interface {
	Create(movimiento *entity.MovimientoStock) error
	ListByStock(stockID string) ([]*entity.MovimientoStock, error)
}
