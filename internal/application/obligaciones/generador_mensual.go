package obligaciones

import (
	"context"

	"github.com/ledanza/academia-api/internal/application/dto"
	"github.com/ledanza/academia-api/internal/domain/repository"
	"github.com/ledanza/academia-api/pkg/logger"
)

// TxRunner ejecuta la generación de obligaciones dentro de una transacción,
// con repositorios atados a la tx.
type TxRunner interface {
	RunObligaciones(ctx context.Context, fn func(
		mensualidadRepo repository.MensualidadRepository,
		inscripcionRepo repository.InscripcionRepository,
		disciplinaRepo repository.DisciplinaRepository,
		bonificacionRepo repository.BonificacionRepository,
	) error) error
}

// GeneradorMensual es la operación que dispara el job programado una vez por
// mes: genera la mensualidad de cada inscripción activa del período vigente.
// Es seguro re-ejecutarlo: los períodos ya generados se omiten.
type GeneradorMensual struct {
	txRunner  TxRunner
	generator *MensualidadGenerator
	clock     PeriodClock
	log       *logger.Logger
}

// NewGeneradorMensual construye el job.
func NewGeneradorMensual(txRunner TxRunner, clock PeriodClock, log *logger.Logger) *GeneradorMensual {
	return &GeneradorMensual{
		txRunner:  txRunner,
		generator: NewMensualidadGenerator(clock),
		clock:     clock,
		log:       log,
	}
}

// GenerarObligacionesDelMes recorre las inscripciones activas y crea la
// mensualidad del período actual donde falte. Corre en una sola transacción:
// una falla revierte la corrida completa.
func (g *GeneradorMensual) GenerarObligacionesDelMes(ctx context.Context) (*dto.GenerarObligacionesResponse, error) {
	mes, anio := g.clock.PeriodoActual()
	out := &dto.GenerarObligacionesResponse{Mes: mes, Anio: anio}

	err := g.txRunner.RunObligaciones(ctx, func(
		mensualidadRepo repository.MensualidadRepository,
		inscripcionRepo repository.InscripcionRepository,
		disciplinaRepo repository.DisciplinaRepository,
		bonificacionRepo repository.BonificacionRepository,
	) error {
		inscripciones, err := inscripcionRepo.ListActivas()
		if err != nil {
			return err
		}
		for _, insc := range inscripciones {
			previa, err := mensualidadRepo.GetByInscripcionPeriodo(insc.ID, mes, anio)
			if err != nil {
				return err
			}
			if previa != nil {
				out.MensualidadesPrevias++
				continue
			}
			if _, err := g.generator.ObtenerOCrearInTx(mensualidadRepo, disciplinaRepo, bonificacionRepo, insc, mes, anio); err != nil {
				return err
			}
			out.MensualidadesCreadas++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	g.log.Info().
		Int("mes", mes).
		Int("anio", anio).
		Int("creadas", out.MensualidadesCreadas).
		Int("previas", out.MensualidadesPrevias).
		Msg("generación mensual de obligaciones")
	return out, nil
}
