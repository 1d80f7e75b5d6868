package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de detalle de pago. Cada detalle referencia exactamente una obligación
// según su tipo (los IDs de referencia son mutuamente excluyentes).
const (
	DetalleMensualidad = "MENSUALIDAD"
	DetalleMatricula   = "MATRICULA"
	DetalleStock       = "STOCK"
	DetalleConcepto    = "CONCEPTO"
)

// DetallePago es la unidad de cobro dentro de un Pago.
// Invariantes: ImportePendiente = max(ImporteInicial − MontoCobrado, 0);
// Cobrado == (ImportePendiente == 0).
type DetallePago struct {
	ID          string
	PagoID      string
	Tipo        string
	Descripcion string
	Cantidad    decimal.Decimal // > 0; relevante para tipo STOCK

	ImporteBase      decimal.Decimal
	BonificacionID   *string
	RecargoID        *string
	ImporteInicial   decimal.Decimal // base − bonificación + recargo, piso 0
	MontoCobrado     decimal.Decimal
	ImportePendiente decimal.Decimal
	Cobrado          bool
	Anulado          bool

	// Referencia a la obligación según Tipo (exactamente una no nula).
	MensualidadID *string
	MatriculaID   *string
	StockID       *string
	ConceptoID    *string

	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RecalcularPendiente reestablece ImportePendiente y Cobrado a partir de
// ImporteInicial y MontoCobrado.
func (d *DetallePago) RecalcularPendiente() {
	pendiente := d.ImporteInicial.Sub(d.MontoCobrado)
	if pendiente.IsNegative() {
		pendiente = decimal.Zero
	}
	d.ImportePendiente = pendiente
	d.Cobrado = pendiente.IsZero()
}

// EsVigente indica si el detalle cuenta para los invariantes de unicidad.
func (d *DetallePago) EsVigente() bool {
	return !d.Anulado
}
