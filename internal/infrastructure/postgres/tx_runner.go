package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ledanza/academia-api/internal/application/billing"
	"github.com/ledanza/academia-api/internal/application/obligaciones"
	"github.com/ledanza/academia-api/internal/domain/repository"
)

var _ billing.BillingTxRunner = (*TxRunner)(nil)
var _ obligaciones.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunBilling inicia una transacción, ejecuta fn con los repositorios de
// facturación atados a la tx y hace Commit o Rollback.
func (r *TxRunner) RunBilling(ctx context.Context, fn func(repos billing.BillingRepos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := billing.BillingRepos{
		Alumnos:          NewAlumnoRepository(tx),
		Inscripciones:    NewInscripcionRepository(tx),
		Disciplinas:      NewDisciplinaRepository(tx),
		Bonificaciones:   NewBonificacionRepository(tx),
		Recargos:         NewRecargoRepository(tx),
		Matriculas:       NewMatriculaRepository(tx),
		Mensualidades:    NewMensualidadRepository(tx),
		Pagos:            NewPagoRepository(tx),
		Stocks:           NewStockRepository(tx),
		MovimientosStock: NewMovimientoStockRepository(tx),
		Conceptos:        NewConceptoRepository(tx),
	}

	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunObligaciones inicia una transacción con los repos que usa la generación
// mensual de obligaciones.
func (r *TxRunner) RunObligaciones(ctx context.Context, fn func(
	mensualidadRepo repository.MensualidadRepository,
	inscripcionRepo repository.InscripcionRepository,
	disciplinaRepo repository.DisciplinaRepository,
	bonificacionRepo repository.BonificacionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = fn(
		NewMensualidadRepository(tx),
		NewInscripcionRepository(tx),
		NewDisciplinaRepository(tx),
		NewBonificacionRepository(tx),
	)
	if err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
