package repository

import "github.com/ledanza/academia-api/internal/domain/entity"

// DisciplinaRepository puerto de persistencia de disciplinas.
type DisciplinaRepository interface {
	GetByID(id string) (*entity.Disciplina, error)
	Create(disciplina *entity.Disciplina) error
	Update(disciplina *entity.Disciplina) error
	List(limit, offset int) ([]*entity.Disciplina, error)
}
