package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DetalleRequest una línea de cobro solicitada al registrar un pago.
// Tipo es obligatorio (los generadores y la UI conocen el tipo; la
// clasificación por texto quedó solo para importación de datos históricos).
// Según Tipo debe venir la referencia correspondiente: MensualidadID,
// MatriculaID, StockID o ConceptoID.
type DetalleRequest struct {
	Tipo        string `json:"tipo"`
	Descripcion string `json:"descripcion"`

	MensualidadID *string `json:"mensualidadId,omitempty"`
	MatriculaID   *string `json:"matriculaId,omitempty"`
	StockID       *string `json:"stockId,omitempty"`
	ConceptoID    *string `json:"conceptoId,omitempty"`

	// ImporteBase en cero se deriva de la obligación o del catálogo.
	ImporteBase    decimal.Decimal `json:"importeBase"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	BonificacionID *string         `json:"bonificacionId,omitempty"`
	RecargoID      *string         `json:"recargoId,omitempty"`

	// ACobrar monto a imputar en el acto (0 = solo se factura).
	ACobrar decimal.Decimal `json:"aCobrar"`
}

// RegistrarPagoRequest request para abrir un pago de un alumno.
type RegistrarPagoRequest struct {
	AlumnoID         string           `json:"alumnoId"`
	FechaVencimiento time.Time        `json:"fechaVencimiento"`
	Tipo             string           `json:"tipo"` // SUSCRIPCION | GENERAL (vacío = GENERAL)
	Observaciones    string           `json:"observaciones"`
	Detalles         []DetalleRequest `json:"detalles"`
}

// AplicarAbonoRequest request para imputar un abono a un detalle.
type AplicarAbonoRequest struct {
	Monto decimal.Decimal `json:"monto"`
}

// DetallePagoResponse una línea de cobro en respuestas.
type DetallePagoResponse struct {
	ID               string          `json:"id"`
	Tipo             string          `json:"tipo"`
	Descripcion      string          `json:"descripcion"`
	Cantidad         decimal.Decimal `json:"cantidad"`
	ImporteBase      decimal.Decimal `json:"importeBase"`
	ImporteInicial   decimal.Decimal `json:"importeInicial"`
	MontoCobrado     decimal.Decimal `json:"montoCobrado"`
	ImportePendiente decimal.Decimal `json:"importePendiente"`
	Cobrado          bool            `json:"cobrado"`
	Anulado          bool            `json:"anulado"`
}

// PagoResponse cabecera de pago con detalles y totales derivados.
type PagoResponse struct {
	ID               string                `json:"id"`
	AlumnoID         string                `json:"alumnoId"`
	Fecha            time.Time             `json:"fecha"`
	FechaVencimiento time.Time             `json:"fechaVencimiento"`
	Tipo             string                `json:"tipo"`
	Estado           string                `json:"estado"`
	MontoBase        decimal.Decimal       `json:"montoBase"`
	MontoInicial     decimal.Decimal       `json:"montoInicial"`
	MontoCobrado     decimal.Decimal       `json:"montoCobrado"`
	SaldoPendiente   decimal.Decimal       `json:"saldoPendiente"`
	Observaciones    string                `json:"observaciones,omitempty"`
	Detalles         []DetallePagoResponse `json:"detalles"`
}
