package billing

import (
	"context"

	"github.com/ledanza/academia-api/internal/domain/entity"
	"github.com/ledanza/academia-api/internal/domain/repository"
)

// BillingRepos agrupa los repositorios atados a la transacción de facturación.
// El TxRunner los construye sobre la misma tx: todo lo que muta un pago, sus
// obligaciones y el stock comparte atomicidad.
type BillingRepos struct {
	Alumnos          repository.AlumnoRepository
	Inscripciones    repository.InscripcionRepository
	Disciplinas      repository.DisciplinaRepository
	Bonificaciones   repository.BonificacionRepository
	Recargos         repository.RecargoRepository
	Matriculas       repository.MatriculaRepository
	Mensualidades    repository.MensualidadRepository
	Pagos            repository.PagoRepository
	Stocks           repository.StockRepository
	MovimientosStock repository.MovimientoStockRepository
	Conceptos        repository.ConceptoRepository
}

// BillingTxRunner ejecuta fn dentro de una transacción con los repositorios
// de facturación; cualquier error revierte la unidad completa.
type BillingTxRunner interface {
	RunBilling(ctx context.Context, fn func(repos BillingRepos) error) error
}

// ReciboEmitter recibe el pago finalizado para la generación de recibo y
// notificación aguas abajo (PDF/email quedan fuera del motor; no vuelve dato
// alguno).
type ReciboEmitter interface {
	EmitirRecibo(pago *entity.Pago)
}
