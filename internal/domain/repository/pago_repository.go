package repository

import "github.com/ledanza/academia-api/internal/domain/entity"

// PagoRepository puerto de persistencia de pagos y sus detalles.
// Update y UpdateDetalle aplican control de versión optimista: si la fila fue
// modificada por otra transacción devuelven domain.ErrConflictoVersion.
type PagoRepository interface {
	Create(pago *entity.Pago) error
	CreateDetalle(detalle *entity.DetallePago) error
	// GetByID devuelve el pago con sus detalles ordenados, o nil si no existe.
	GetByID(id string) (*entity.Pago, error)
	// GetActivoByAlumno devuelve el pago ACTIVO del alumno (a lo sumo uno), o nil.
	GetActivoByAlumno(alumnoID string) (*entity.Pago, error)
	Update(pago *entity.Pago) error
	GetDetalleByID(id string) (*entity.DetallePago, error)
	UpdateDetalle(detalle *entity.DetallePago) error
	// ExisteDetalleVigente informa si alguna obligación ya tiene un detalle no
	// anulado que la referencie (tipo + ID de la obligación).
	ExisteDetalleVigente(tipo, referenciaID string) (bool, error)
	ListByAlumno(alumnoID string, limit, offset int) ([]*entity.Pago, error)
}
