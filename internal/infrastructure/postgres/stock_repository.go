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

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación del puerto StockRepository sobre PostgreSQL.
// El índice único sobre lower(nombre) garantiza nombres únicos sin distinguir
// mayúsculas.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de persistencia para artículos de stock.
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

const stockCols = `id, nombre, precio, cantidad, activo, created_at, updated_at`

func scanStock(row pgx.Row) (*entity.Stock, error) {
	var s entity.Stock
	err := row.Scan(&s.ID, &s.Nombre, &s.Precio, &s.Cantidad, &s.Activo, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create persiste un nuevo artículo.
func (r *StockRepo) Create(stock *entity.Stock) error {
	query := `
		INSERT INTO stock (` + stockCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		stock.ID, stock.Nombre, stock.Precio, stock.Cantidad, stock.Activo,
		stock.CreatedAt, stock.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stock: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID, o nil si no existe.
func (r *StockRepo) GetByID(id string) (*entity.Stock, error) {
	query := `SELECT ` + stockCols + ` FROM stock WHERE id = $1`
	s, err := scanStock(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return s, nil
}

// GetForUpdate bloquea la fila del artículo (SELECT FOR UPDATE). Usar solo
// dentro de una transacción: serializa las liquidaciones concurrentes sobre el
// mismo artículo.
func (r *StockRepo) GetForUpdate(id string) (*entity.Stock, error) {
	query := `SELECT ` + stockCols + ` FROM stock WHERE id = $1 FOR UPDATE`
	s, err := scanStock(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return s, nil
}

// BuscarPorNombre obtiene un artículo por nombre sin distinguir mayúsculas, o nil.
func (r *StockRepo) BuscarPorNombre(nombre string) (*entity.Stock, error) {
	query := `SELECT ` + stockCols + ` FROM stock WHERE lower(nombre) = lower($1)`
	s, err := scanStock(r.q.QueryRow(context.Background(), query, nombre))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar stock por nombre: %w", err)
	}
	return s, nil
}

// Update actualiza un artículo existente.
func (r *StockRepo) Update(stock *entity.Stock) error {
	query := `
		UPDATE stock SET nombre = $2, precio = $3, cantidad = $4, activo = $5, updated_at = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		stock.ID, stock.Nombre, stock.Precio, stock.Cantidad, stock.Activo, stock.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista artículos con paginación.
func (r *StockRepo) List(limit, offset int) ([]*entity.Stock, error) {
	query := `SELECT ` + stockCols + ` FROM stock ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()

	var articulos []*entity.Stock
	for rows.Next() {
		s, err := scanStock(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		articulos = append(articulos, s)
	}
	return articulos, rows.Err()
}
