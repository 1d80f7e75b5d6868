package repository

import "github.com/ledanza/academia-api/internal/domain/entity"

// RecargoRepository puerto de persistencia de recargos (con sus tramos).
type RecargoRepository interface {
	GetByID(id string) (*entity.Recargo, error)
	Create(recargo *entity.Recargo) error
	List() ([]*entity.Recargo, error)
}
