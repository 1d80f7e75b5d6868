package entity

import "github.com/shopspring/decimal"

// RecargoTramo es un escalón del recargo: a partir de DiaDelMes (inclusive)
// aplica el porcentaje y/o monto fijo del tramo.
type RecargoTramo struct {
	ID         string
	RecargoID  string
	DiaDelMes  int
	Porcentaje decimal.Decimal // 0–100
	MontoFijo  decimal.Decimal
}

// Recargo es una regla de recargo por mora con tramos ordenados por día.
// El tramo aplicable es el de mayor DiaDelMes que no supere el día de la
// fecha de referencia; si ningún tramo califica no hay recargo.
type Recargo struct {
	ID          string
	Descripcion string
	Tramos      []RecargoTramo // ordenados por DiaDelMes ascendente
}

// TramoAplicable devuelve el tramo vigente para el día del mes dado, o nil si
// ningún tramo tiene DiaDelMes <= dia.
func (r *Recargo) TramoAplicable(dia int) *RecargoTramo {
	var aplicable *RecargoTramo
	for i := range r.Tramos {
		t := &r.Tramos[i]
		if t.DiaDelMes <= dia && (aplicable == nil || t.DiaDelMes > aplicable.DiaDelMes) {
			aplicable = t
		}
	}
	return aplicable
}
