package repository

import "github.com/ledanza/academia-api/internal/domain/entity"

// MatriculaRepository puerto de persistencia de matrículas anuales.
// El índice único (alumno, año) respalda la idempotencia del generador.
type MatriculaRepository interface {
	GetByID(id string) (*entity.Matricula, error)
	GetByAlumnoAnio(alumnoID string, anio int) (*entity.Matricula, error)
	Create(matricula *entity.Matricula) error
	Update(matricula *entity.Matricula) error
}
