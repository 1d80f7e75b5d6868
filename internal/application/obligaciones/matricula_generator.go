package obligaciones

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ledanza/academia-api/internal/domain"
	"github.com/ledanza/academia-api/internal/domain/entity"
	"github.com/ledanza/academia-api/internal/domain/repository"
)

// DescripcionMatricula arma la descripción canónica del detalle de matrícula,
// la misma que usa el chequeo de unicidad de facturación.
func DescripcionMatricula(anio int) string {
	return fmt.Sprintf("MATRICULA %d", anio)
}

// MatriculaGenerator crea la matrícula anual de un alumno, garantizando a lo
// sumo una por (alumno, año).
type MatriculaGenerator struct {
	clock PeriodClock
}

// NewMatriculaGenerator construye el generador.
func NewMatriculaGenerator(clock PeriodClock) *MatriculaGenerator {
	return &MatriculaGenerator{clock: clock}
}

// ObtenerOCrearInTx devuelve la matrícula existente para (alumno, año) o crea
// una nueva sin pagar, usando los repositorios del caller (misma transacción).
func (g *MatriculaGenerator) ObtenerOCrearInTx(
	matriculaRepo repository.MatriculaRepository,
	alumnoID string,
	anio int,
) (*entity.Matricula, error) {
	if alumnoID == "" || anio <= 0 {
		return nil, domain.ErrInvalidInput
	}

	existente, err := matriculaRepo.GetByAlumnoAnio(alumnoID, anio)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return existente, nil
	}

	nueva := &entity.Matricula{
		ID:        uuid.New().String(),
		AlumnoID:  alumnoID,
		Anio:      anio,
		Pagada:    false,
		CreatedAt: g.clock.Ahora(),
		UpdatedAt: g.clock.Ahora(),
	}
	if err := matriculaRepo.Create(nueva); err != nil {
		if errors.Is(err, domain.ErrObligacionDuplicada) {
			return matriculaRepo.GetByAlumnoAnio(alumnoID, anio)
		}
		return nil, err
	}
	return nueva, nil
}
