package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/ledanza/academia-api/internal/application/billing"
	"github.com/ledanza/academia-api/internal/application/obligaciones"
	"github.com/ledanza/academia-api/internal/application/usecase"
	"github.com/ledanza/academia-api/internal/infrastructure/postgres"
	"github.com/ledanza/academia-api/internal/infrastructure/recibos"
	httpRouter "github.com/ledanza/academia-api/internal/interfaces/http"
	"github.com/ledanza/academia-api/pkg/config"
	"github.com/ledanza/academia-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	alumnoRepo := postgres.NewAlumnoRepository(pool)
	disciplinaRepo := postgres.NewDisciplinaRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	conceptoRepo := postgres.NewConceptoRepository(pool)
	pagoRepo := postgres.NewPagoRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	reloj := obligaciones.RelojSistema{}
	liquidador := billing.NewLiquidador()
	emitter := recibos.NewLogEmitter(log)

	registrarPagoUC := billing.NewRegistrarPagoUseCase(txRunner, liquidador, reloj, emitter)
	aplicarAbonoUC := billing.NewAplicarAbonoUseCase(txRunner, liquidador, reloj)
	consultasUC := billing.NewConsultarPagosUseCase(pagoRepo)
	generador := obligaciones.NewGeneradorMensual(txRunner, reloj, log)

	alumnoUC := usecase.NewAlumnoUseCase(alumnoRepo)
	catalogoUC := usecase.NewCatalogoUseCase(stockRepo, conceptoRepo)
	disciplinaUC := usecase.NewDisciplinaUseCase(disciplinaRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AlumnoUC:      alumnoUC,
		CatalogoUC:    catalogoUC,
		DisciplinaUC:  disciplinaUC,
		RegistrarPago: registrarPagoUC,
		AplicarAbono:  aplicarAbonoUC,
		Consultas:     consultasUC,
		Generador:     generador,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
