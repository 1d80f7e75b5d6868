package repository

import "github.com/ledanza/academia-api/internal/domain/entity"

// BonificacionRepository puerto de persistencia de bonificaciones.
type BonificacionRepository interface {
	GetByID(id string) (*entity.Bonificacion, error)
	Create(bonificacion *entity.Bonificacion) error
	List() ([]*entity.Bonificacion, error)
}
