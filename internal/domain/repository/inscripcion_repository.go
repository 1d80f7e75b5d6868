package repository

import "github.com/ledanza/academia-api/internal/domain/entity"

// InscripcionRepository puerto de persistencia de inscripciones.
// ListActivas es el contrato de solo lectura que consume el generador de
// mensualidades.
type InscripcionRepository interface {
	GetByID(id string) (*entity.Inscripcion, error)
	Create(inscripcion *entity.Inscripcion) error
	Update(inscripcion *entity.Inscripcion) error
	ListActivas() ([]*entity.Inscripcion, error)
	ListByAlumno(alumnoID string) ([]*entity.Inscripcion, error)
}
