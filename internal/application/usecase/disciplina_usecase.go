package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/ledanza/academia-api/internal/application/dto"
	"github.com/ledanza/academia-api/internal/domain"
	"github.com/ledanza/academia-api/internal/domain/entity"
	"github.com/ledanza/academia-api/internal/domain/repository"
)

// DisciplinaUseCase casos de uso CRUD para disciplinas.
type DisciplinaUseCase struct {
	repo repository.DisciplinaRepository
}

// NewDisciplinaUseCase construye el caso de uso.
func NewDisciplinaUseCase(repo repository.DisciplinaRepository) *DisciplinaUseCase {
	return &DisciplinaUseCase{repo: repo}
}

// Create da de alta una disciplina.
func (uc *DisciplinaUseCase) Create(in dto.CreateDisciplinaRequest) (*dto.DisciplinaResponse, error) {
	if in.Nombre == "" || in.CuotaBase.IsNegative() || in.ValorMatricula.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	disciplina := &entity.Disciplina{
		ID:               uuid.New().String(),
		Nombre:           in.Nombre,
		CuotaBase:        in.CuotaBase,
		ValorMatricula:   in.ValorMatricula,
		ValorClaseSuelta: in.ValorClaseSuelta,
		ValorClasePrueba: in.ValorClasePrueba,
		RecargoID:        in.RecargoID,
		Activo:           true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(disciplina); err != nil {
		return nil, err
	}
	return toDisciplinaResponse(disciplina), nil
}

// GetByID obtiene una disciplina por ID, o nil si no existe.
func (uc *DisciplinaUseCase) GetByID(id string) (*dto.DisciplinaResponse, error) {
	disciplina, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if disciplina == nil {
		return nil, nil
	}
	return toDisciplinaResponse(disciplina), nil
}

// List lista disciplinas con paginación.
func (uc *DisciplinaUseCase) List(page dto.PageRequest) ([]*dto.DisciplinaResponse, error) {
	page.DefaultPage()
	disciplinas, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DisciplinaResponse, 0, len(disciplinas))
	for _, d := range disciplinas {
		out = append(out, toDisciplinaResponse(d))
	}
	return out, nil
}

func toDisciplinaResponse(d *entity.Disciplina) *dto.DisciplinaResponse {
	return &dto.DisciplinaResponse{
		ID:               d.ID,
		Nombre:           d.Nombre,
		CuotaBase:        d.CuotaBase,
		ValorMatricula:   d.ValorMatricula,
		ValorClaseSuelta: d.ValorClaseSuelta,
		ValorClasePrueba: d.ValorClasePrueba,
		RecargoID:        d.RecargoID,
		Activo:           d.Activo,
	}
}
