package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tallyflow/tallyflow/internal/application/dto"
	"github.com/tallyflow/tallyflow/internal/infrastructure/excel"
)

const templateFilename = "tally-import-template.xlsx"

// TemplateHandler serves the import template workbook.
type TemplateHandler struct{}

// NewTemplateHandler builds the handler.
func NewTemplateHandler() *TemplateHandler {
	return &TemplateHandler{}
}

// Download generates and streams the template workbook.
// GET /api/template
func (h *TemplateHandler) Download(c *fiber.Ctx) error {
	data, err := excel.BuildTemplate()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+templateFilename+`"`)
	return c.Send(data)
}
