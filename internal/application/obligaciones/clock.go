package obligaciones

import "time"

// PeriodClock abstrae el reloj de períodos de facturación. Los generadores
// nunca leen el reloj de pared directamente: los tests inyectan un reloj fijo.
type PeriodClock interface {
	Ahora() time.Time
	// PeriodoActual devuelve (mes 1–12, año) del período de facturación vigente.
	PeriodoActual() (int, int)
}

// RelojSistema implementación de PeriodClock sobre time.Now.
type RelojSistema struct{}

func (RelojSistema) Ahora() time.Time { return time.Now() }

func (RelojSistema) PeriodoActual() (int, int) {
	now := time.Now()
	return int(now.Month()), now.Year()
}

// RelojFijo reloj congelado para tests y reprocesos de períodos pasados.
type RelojFijo struct {
	T time.Time
}

func (r RelojFijo) Ahora() time.Time { return r.T }

func (r RelojFijo) PeriodoActual() (int, int) {
	return int(r.T.Month()), r.T.Year()
}
