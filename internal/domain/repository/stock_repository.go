package repository

import "github.com/ledanza/academia-api/internal/domain/entity"

// StockRepository puerto de persistencia del catálogo de artículos.
// BuscarPorNombre compara sin distinguir mayúsculas.
type StockRepository interface {
	GetByID(id string) (*entity.Stock, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE); usar solo
	// dentro de una transacción.
	GetForUpdate(id string) (*entity.Stock, error)
	BuscarPorNombre(nombre string) (*entity.Stock, error)
	Create(stock *entity.Stock) error
	Update(stock *entity.Stock) error
	List(limit, offset int) ([]*entity.Stock, error)
}
