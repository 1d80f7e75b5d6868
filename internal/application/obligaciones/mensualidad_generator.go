package obligaciones

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ledanza/academia-api/internal/domain"
	"github.com/ledanza/academia-api/internal/domain/billing"
	"github.com/ledanza/academia-api/internal/domain/entity"
	"github.com/ledanza/academia-api/internal/domain/repository"
)

// MensualidadGenerator crea la mensualidad de una inscripción activa para un
// período, garantizando a lo sumo una por (inscripción, mes, año).
type MensualidadGenerator struct {
	clock PeriodClock
}

// NewMensualidadGenerator construye el generador.
func NewMensualidadGenerator(clock PeriodClock) *MensualidadGenerator {
	return &MensualidadGenerator{clock: clock}
}

// ObtenerOCrearInTx devuelve la mensualidad existente para (inscripción, mes,
// año) o crea una nueva con la cuota base de la disciplina, usando los
// repositorios del caller (misma transacción). Una violación de unicidad por
// carrera se resuelve releyendo: el resultado es idempotente.
func (g *MensualidadGenerator) ObtenerOCrearInTx(
	mensualidadRepo repository.MensualidadRepository,
	disciplinaRepo repository.DisciplinaRepository,
	bonificacionRepo repository.BonificacionRepository,
	inscripcion *entity.Inscripcion,
	mes, anio int,
) (*entity.Mensualidad, error) {
	if inscripcion == nil || mes < 1 || mes > 12 || anio <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if inscripcion.Estado != entity.InscripcionActiva {
		return nil, fmt.Errorf("inscripción %s: %w", inscripcion.ID, domain.ErrConflict)
	}

	existente, err := mensualidadRepo.GetByInscripcionPeriodo(inscripcion.ID, mes, anio)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return existente, nil
	}

	disciplina, err := disciplinaRepo.GetByID(inscripcion.DisciplinaID)
	if err != nil {
		return nil, err
	}
	if disciplina == nil {
		return nil, fmt.Errorf("disciplina %s: %w", inscripcion.DisciplinaID, domain.ErrNotFound)
	}

	// ImporteTotal lleva la bonificación de la inscripción ya aplicada; el
	// recargo por mora se resuelve recién al facturar (depende de la fecha).
	var bonif *entity.Bonificacion
	if inscripcion.BonificacionID != nil {
		bonif, err = bonificacionRepo.GetByID(*inscripcion.BonificacionID)
		if err != nil {
			return nil, err
		}
	}
	calc := billing.CalcularDetalle(disciplina.CuotaBase, bonif, nil, g.clock.Ahora())

	nueva := &entity.Mensualidad{
		ID:            uuid.New().String(),
		InscripcionID: inscripcion.ID,
		Mes:           mes,
		Anio:          anio,
		ImporteBase:   calc.ImporteBase,
		ImporteTotal:  calc.ImporteInicial,
		Estado:        entity.MensualidadPendiente,
		CreatedAt:     g.clock.Ahora(),
		UpdatedAt:     g.clock.Ahora(),
	}
	if err := mensualidadRepo.Create(nueva); err != nil {
		if errors.Is(err, domain.ErrObligacionDuplicada) {
			// Otra transacción la creó primero: releer y devolver la existente.
			return mensualidadRepo.GetByInscripcionPeriodo(inscripcion.ID, mes, anio)
		}
		return nil, err
	}
	return nueva, nil
}
