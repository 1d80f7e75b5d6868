package entity

import "time"

// Matricula es la obligación anual de inscripción: una por (alumno, año).
// Invariante: a lo sumo un DetallePago no anulado la referencia.
type Matricula struct {
	ID        string
	AlumnoID  string
	Anio      int
	Pagada    bool
	FechaPago *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
