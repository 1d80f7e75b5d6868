package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledanza/academia-api/internal/application/dto"
	"github.com/ledanza/academia-api/internal/domain"
	"github.com/ledanza/academia-api/internal/domain/entity"
	"github.com/ledanza/academia-api/internal/domain/repository"
)

// AlumnoUseCase casos de uso CRUD para alumnos. El crédito a favor solo lo
// muta el motor de cobranza.
type AlumnoUseCase struct {
	repo repository.AlumnoRepository
}

// NewAlumnoUseCase construye el caso de uso.
func NewAlumnoUseCase(repo repository.AlumnoRepository) *AlumnoUseCase {
	return &AlumnoUseCase{repo: repo}
}

// Create da de alta un alumno activo con crédito en cero.
func (uc *AlumnoUseCase) Create(in dto.CreateAlumnoRequest) (*dto.AlumnoResponse, error) {
	if in.Nombre == "" || in.Apellido == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	alumno := &entity.Alumno{
		ID:            uuid.New().String(),
		Nombre:        in.Nombre,
		Apellido:      in.Apellido,
		Activo:        true,
		CreditoAFavor: decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(alumno); err != nil {
		return nil, err
	}
	return toAlumnoResponse(alumno), nil
}

// GetByID obtiene un alumno por ID, o nil si no existe.
func (uc *AlumnoUseCase) GetByID(id string) (*dto.AlumnoResponse, error) {
	alumno, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if alumno == nil {
		return nil, nil
	}
	return toAlumnoResponse(alumno), nil
}

// List lista alumnos con paginación.
func (uc *AlumnoUseCase) List(page dto.PageRequest) ([]*dto.AlumnoResponse, error) {
	page.DefaultPage()
	alumnos, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AlumnoResponse, 0, len(alumnos))
	for _, a := range alumnos {
		out = append(out, toAlumnoResponse(a))
	}
	return out, nil
}

func toAlumnoResponse(a *entity.Alumno) *dto.AlumnoResponse {
	return &dto.AlumnoResponse{
		ID:            a.ID,
		Nombre:        a.Nombre,
		Apellido:      a.Apellido,
		Activo:        a.Activo,
		CreditoAFavor: a.CreditoAFavor,
	}
}
