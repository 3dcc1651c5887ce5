package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/tienda-infantil/internal/application/catalog"
	"github.com/jhoicas/tienda-infantil/internal/application/form"
	"github.com/jhoicas/tienda-infantil/internal/infrastructure/imaging"
	infrapdf "github.com/jhoicas/tienda-infantil/internal/infrastructure/pdf"
	"github.com/jhoicas/tienda-infantil/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/tienda-infantil/internal/interfaces/http"
	"github.com/jhoicas/tienda-infantil/pkg/config"
	"github.com/jhoicas/tienda-infantil/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	slot, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("abrir almacenamiento")
	}
	defer func() {
		if err := slot.Close(); err != nil {
			log.Error().Err(err).Msg("cerrar almacenamiento")
		}
	}()

	store := catalog.NewStore(slot, catalog.Options{
		SlotKey:        cfg.Storage.SlotKey,
		StrictNotFound: cfg.Catalog.StrictNotFound,
	}, log.Zerolog())
	store.Initialize(ctx)

	encoder := imaging.NewDataURIEncoder(cfg.Upload.MaxImageBytes, cfg.Upload.MaxParallel)
	formController := form.NewController(store, encoder, log.Zerolog())
	printer := infrapdf.NewCatalogPDFGenerator(cfg.App.Name)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		// Las imágenes viajan en multipart; el límite por archivo lo aplica el encoder.
		BodyLimit: 64 * 1024 * 1024,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Tienda Infantil API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName: cfg.App.Name,
		Store:   store,
		Form:    formController,
		Printer: printer,
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
