package entity

import "time"

// Estados de una inscripción.
const (
	InscripcionActiva = "ACTIVA"
	InscripcionBaja   = "BAJA"
)

// Inscripcion vincula un alumno con una disciplina. A lo sumo una inscripción
// vigente por (alumno, disciplina); la bonificación, si existe, se aplica a
// cada mensualidad generada.
type Inscripcion struct {
	ID             string
	AlumnoID       string
	DisciplinaID   string
	BonificacionID *string
	FechaAlta      time.Time
	FechaBaja      *time.Time
	Estado         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
