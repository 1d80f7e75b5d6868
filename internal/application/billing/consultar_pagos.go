package billing

import (
	"context"

	"github.com/ledanza/academia-api/internal/application/dto"
	"github.com/ledanza/academia-api/internal/domain/repository"
)

// ConsultarPagosUseCase lecturas de pagos. No abre transacción: opera sobre
// el repositorio atado al pool.
type ConsultarPagosUseCase struct {
	pagos repository.PagoRepository
}

// NewConsultarPagosUseCase construye el caso de uso.
func NewConsultarPagosUseCase(pagos repository.PagoRepository) *ConsultarPagosUseCase {
	return &ConsultarPagosUseCase{pagos: pagos}
}

// GetPago devuelve un pago con sus detalles, o nil si no existe.
func (uc *ConsultarPagosUseCase) GetPago(_ context.Context, id string) (*dto.PagoResponse, error) {
	pago, err := uc.pagos.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pago == nil {
		return nil, nil
	}
	return ToPagoResponse(pago), nil
}

// ListPagosDeAlumno lista los pagos de un alumno (cabeceras, sin detalles).
func (uc *ConsultarPagosUseCase) ListPagosDeAlumno(_ context.Context, alumnoID string, page dto.PageRequest) ([]*dto.PagoResponse, error) {
	page.DefaultPage()
	pagos, err := uc.pagos.ListByAlumno(alumnoID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PagoResponse, 0, len(pagos))
	for _, p := range pagos {
		out = append(out, ToPagoResponse(p))
	}
	return out, nil
}
