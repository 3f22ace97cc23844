package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"docsearch/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, db *sql.DB, ingestSvc service.IngestionService, querySvc service.QueryService) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Post("/upload", UploadFiles(ingestSvc))
	// Registered after POST so only the remaining verbs reach it.
	app.All("/upload", MethodNotAllowed())

	app.Get("/search", Search(querySvc))
	app.Get("/files", ListFiles(querySvc))
}
