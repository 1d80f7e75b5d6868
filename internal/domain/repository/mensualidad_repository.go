package repository

import "github.com/ledanza/academia-api/internal/domain/entity"

// MensualidadRepository puerto de persistencia de mensualidades.
// El índice único (inscripción, mes, año) respalda la idempotencia del
// generador.
type MensualidadRepository interface {
	GetByID(id string) (*entity.Mensualidad, error)
	GetByInscripcionPeriodo(inscripcionID string, mes, anio int) (*entity.Mensualidad, error)
	Create(mensualidad *entity.Mensualidad) error
	Update(mensualidad *entity.Mensualidad) error
	ListByInscripcion(inscripcionID string) ([]*entity.Mensualidad, error)
}
