package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tallyflow/tallyflow/internal/application/convert"
	"github.com/tallyflow/tallyflow/pkg/logger"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	ConvertUC *convert.UseCase
	Log       *logger.Logger
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	convertHandler := NewConvertHandler(deps.ConvertUC, deps.Log)
	api.Post("/convert", convertHandler.Convert)

	templateHandler := NewTemplateHandler()
	api.Get("/template", templateHandler.Download)
}
