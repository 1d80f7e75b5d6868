package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ledanza/academia-api/internal/application/billing"
	"github.com/ledanza/academia-api/internal/application/obligaciones"
	"github.com/ledanza/academia-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AlumnoUC      *usecase.AlumnoUseCase
	CatalogoUC    *usecase.CatalogoUseCase
	DisciplinaUC  *usecase.DisciplinaUseCase
	RegistrarPago *billing.RegistrarPagoUseCase
	AplicarAbono  *billing.AplicarAbonoUseCase
	Consultas     *billing.ConsultarPagosUseCase
	Generador     *obligaciones.GeneradorMensual
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Alumnos
	alumnos := api.Group("/alumnos")
	alumnoHandler := NewAlumnoHandler(deps.AlumnoUC)
	alumnos.Post("/", alumnoHandler.Create)
	alumnos.Get("/", alumnoHandler.List)
	alumnos.Get("/:id", alumnoHandler.GetByID)

	// Catálogo: stock, conceptos y disciplinas
	catalogoHandler := NewCatalogoHandler(deps.CatalogoUC, deps.DisciplinaUC)
	stock := api.Group("/stock")
	stock.Post("/", catalogoHandler.CreateStock)
	stock.Get("/", catalogoHandler.ListStock)
	stock.Get("/:id", catalogoHandler.GetStock)

	conceptos := api.Group("/conceptos")
	conceptos.Post("/", catalogoHandler.CreateConcepto)
	conceptos.Get("/", catalogoHandler.ListConceptos)

	disciplinas := api.Group("/disciplinas")
	disciplinas.Post("/", catalogoHandler.CreateDisciplina)
	disciplinas.Get("/", catalogoHandler.ListDisciplinas)

	// Cobranza
	pagoHandler := NewPagoHandler(deps.RegistrarPago, deps.AplicarAbono, deps.Consultas)
	pagos := api.Group("/pagos")
	pagos.Post("/", pagoHandler.Registrar)
	pagos.Get("/:id", pagoHandler.GetByID)
	pagos.Post("/detalles/:id/abonos", pagoHandler.AplicarAbono)
	alumnos.Get("/:id/pagos", pagoHandler.ListByAlumno)

	// Obligaciones (job mensual disparable por HTTP)
	obligacionHandler := NewObligacionHandler(deps.Generador)
	api.Post("/obligaciones/generar", obligacionHandler.Generar)
}
