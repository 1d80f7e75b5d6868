package dto

// GenerarObligacionesResponse resumen de la corrida mensual del generador.
type GenerarObligacionesResponse struct {
	Mes                  int `json:"mes"`
	Anio                 int `json:"anio"`
	MensualidadesCreadas int `json:"mensualidadesCreadas"`
	MensualidadesPrevias int `json:"mensualidadesPrevias"`
}
