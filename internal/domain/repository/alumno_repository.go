package repository

import (
	"github.com/shopspring/decimal"

	"github.com/ledanza/academia-api/internal/domain/entity"
)

// AlumnoRepository puerto de persistencia de alumnos.
type AlumnoRepository interface {
	GetByID(id string) (*entity.Alumno, error)
	Create(alumno *entity.Alumno) error
	Update(alumno *entity.Alumno) error
	List(limit, offset int) ([]*entity.Alumno, error)
	// AcreditarSaldo suma monto al crédito a favor del alumno (monto >= 0).
	AcreditarSaldo(id string, monto decimal.Decimal) error
}
