package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una mensualidad.
const (
	MensualidadPendiente = "PENDIENTE"
	MensualidadParcial   = "PARCIAL"
	MensualidadPagada    = "PAGADA"
)

// Mensualidad es la obligación de cuota mensual: una por (inscripción, mes, año).
// Invariante: a lo sumo un DetallePago no anulado la referencia.
type Mensualidad struct {
	ID            string
	InscripcionID string
	Mes           int // 1–12
	Anio          int
	ImporteBase   decimal.Decimal // CuotaBase de la disciplina al momento de generar
	ImporteTotal  decimal.Decimal // base con bonificación/recargo aplicados
	MontoAbonado  decimal.Decimal
	Estado        string
	FechaPago     *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Periodo devuelve la clave legible del período, ej. "03/2026".
func (m *Mensualidad) Periodo() string {
	return fmt.Sprintf("%02d/%d", m.Mes, m.Anio)
}
