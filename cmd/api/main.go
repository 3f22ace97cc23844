package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"docsearch/docs"
	"docsearch/internal/config"
	"docsearch/internal/database"
	"docsearch/internal/database/migration"
	handlers "docsearch/internal/http/handler"
	"docsearch/internal/http/middleware"
	"docsearch/internal/llm"
	"docsearch/internal/logger"
	"docsearch/internal/ocr/provider"
	"docsearch/internal/otel"
	"docsearch/internal/raster"
	"docsearch/internal/repository/postgres"
	"docsearch/internal/service"
	"docsearch/internal/storage"
)

// @title Document Search API
// @version 1.0
// @description OCR ingestion of images and PDFs with LLM-backed search over the extracted text.
// @BasePath /
func main() {
	cfg := config.Load()

	if err := logger.Setup(cfg.Log); err != nil {
		log.Fatal().Err(err).Msg("invalid logging configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, logger.WithComponent("otel"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracing")
	}

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, log.Logger, cfg.Database.Host); err != nil {
		log.Fatal().Err(err).Msg("database migration failed")
	}

	docRepo := postgres.NewDocumentPostgres(db)

	linker := storage.NewFileLinker(newObjectStore(ctx, cfg.Storage), cfg.Storage.KeyPrefix)

	engine, err := provider.New(ctx, cfg.OCR)
	if err != nil {
		log.Fatal().Err(err).Str("provider", cfg.OCR.Provider).Msg("failed to initialize OCR engine")
	}
	if c, ok := engine.(io.Closer); ok {
		defer c.Close()
	}

	synth := llm.NewSynthesizer(llm.NewOpenAIClient(cfg.LLM))

	ingestSvc := service.NewIngestionService(raster.New(cfg.OCR.DPI, cfg.OCR.MaxPixels), engine, linker, docRepo, service.IngestOptions{
		Workers: cfg.Ingest.Workers,
		TempDir: cfg.Ingest.TempDir,
	})
	querySvc := service.NewQueryService(docRepo, synth)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    cfg.Ingest.MaxUploadMB * 1024 * 1024,
	})

	promMiddleware, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register metrics")
	}

	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(logger.WithComponent("http")))
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == "/metrics" || c.Path() == "/healthz"
	})))
	app.Use(promMiddleware.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	handlers.RegisterRoutes(app, db, ingestSvc, querySvc)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("ocr_provider", cfg.OCR.Provider).Int("ingest_workers", cfg.Ingest.Workers).Msg("starting server")
	if err := app.Listen(addr); err != nil {
		log.Error().Err(err).Msg("failed to start server")
	}

	flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdownTracing(flushCtx); err != nil {
		log.Error().Err(err).Msg("tracer shutdown failed")
	}
}

// newObjectStore connects to the configured bucket. The service keeps
// running without it: uploads then degrade to records with an empty link.
func newObjectStore(ctx context.Context, cfg config.StorageConfig) storage.Storage {
	store, err := storage.NewMinIO(cfg)
	if err == nil {
		err = store.EnsureBucket(ctx)
	}
	if err != nil {
		log.Warn().Err(err).Str("bucket", cfg.Bucket).Msg("object storage unavailable, file links disabled")
		return storage.Unavailable(err)
	}
	return store
}
