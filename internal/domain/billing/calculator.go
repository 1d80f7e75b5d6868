package billing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledanza/academia-api/internal/domain/entity"
)

// cien para porcentajes expresados 0–100.
var cien = decimal.NewFromInt(100)

// Redondear aplica el redondeo monetario de la academia: dos decimales,
// mitad hacia arriba.
func Redondear(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// ImporteBonificacion calcula el descuento sobre la base: monto fijo más
// porcentaje de la base. Bonificación nil descuenta 0.
func ImporteBonificacion(b *entity.Bonificacion, base decimal.Decimal) decimal.Decimal {
	if b == nil {
		return decimal.Zero
	}
	porc := b.Porcentaje.Div(cien).Mul(base)
	return Redondear(b.MontoFijo.Add(porc))
}

// ImporteRecargo calcula el recargo sobre la base según el tramo vigente para
// el día del mes de fechaRef. Sin recargo o sin tramo aplicable recarga 0.
func ImporteRecargo(r *entity.Recargo, base decimal.Decimal, fechaRef time.Time) decimal.Decimal {
	if r == nil {
		return decimal.Zero
	}
	tramo := r.TramoAplicable(fechaRef.Day())
	if tramo == nil {
		return decimal.Zero
	}
	porc := tramo.Porcentaje.Div(cien).Mul(base)
	return Redondear(tramo.MontoFijo.Add(porc))
}

// ResultadoDetalle son los importes derivados para una línea de cobro recién
// creada: sin cobros previos, pendiente == inicial.
type ResultadoDetalle struct {
	ImporteBase      decimal.Decimal
	Bonificacion     decimal.Decimal
	Recargo          decimal.Decimal
	ImporteInicial   decimal.Decimal
	ImportePendiente decimal.Decimal
	MontoCobrado     decimal.Decimal
	Cobrado          bool
}

// CalcularDetalle deriva los importes de una línea de cobro:
// inicial = base − bonificación + recargo, con piso en 0 (una bonificación
// nunca deja el importe negativo). Todos los montos redondeados a 2 decimales.
func CalcularDetalle(base decimal.Decimal, bonif *entity.Bonificacion, recargo *entity.Recargo, fechaRef time.Time) ResultadoDetalle {
	base = Redondear(base)
	descuento := ImporteBonificacion(bonif, base)
	mora := ImporteRecargo(recargo, base, fechaRef)

	inicial := base.Sub(descuento).Add(mora)
	if inicial.IsNegative() {
		inicial = decimal.Zero
	}
	inicial = Redondear(inicial)

	return ResultadoDetalle{
		ImporteBase:      base,
		Bonificacion:     descuento,
		Recargo:          mora,
		ImporteInicial:   inicial,
		ImportePendiente: inicial,
		MontoCobrado:     decimal.Zero,
		// Una bonificación total deja la línea sin saldo desde el inicio.
		Cobrado: inicial.IsZero(),
	}
}
