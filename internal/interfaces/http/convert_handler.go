package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tallyflow/tallyflow/internal/application/convert"
	"github.com/tallyflow/tallyflow/internal/application/dto"
	"github.com/tallyflow/tallyflow/internal/domain"
	"github.com/tallyflow/tallyflow/internal/infrastructure/excel"
	"github.com/tallyflow/tallyflow/pkg/logger"
)

// ConvertHandler handles spreadsheet-to-voucher conversion requests.
type ConvertHandler struct {
	uc  *convert.UseCase
	log *logger.Logger
}

// NewConvertHandler builds the handler.
func NewConvertHandler(uc *convert.UseCase, log *logger.Logger) *ConvertHandler {
	return &ConvertHandler{uc: uc, log: log}
}

// Convert accepts a multipart workbook upload and responds with the Tally
// import XML as an attachment. The download filename is unique per request so
// concurrent conversions never collide on a shared artifact.
// POST /api/convert
func (h *ConvertHandler) Convert(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_FILE", Message: "multipart field 'file' is required"})
	}

	src, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "uploaded file could not be opened"})
	}
	defer src.Close()

	table, err := excel.ReadTable(src)
	if err != nil {
		return h.fail(c, err)
	}

	start := time.Now()
	res, err := h.uc.Convert(c.Context(), table)
	if err != nil {
		return h.fail(c, err)
	}

	h.log.Info().
		Str("upload", fh.Filename).
		Int("invoices", res.Invoices).
		Int("rows", res.Rows).
		Int("bytes", len(res.XML)).
		Dur("took", time.Since(start)).
		Msg("workbook converted")

	name := fmt.Sprintf("vouchers-%s.xml", uuid.New().String())
	c.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, name))
	return c.Send(res.XML)
}

// fail maps domain errors to HTTP statuses. Structural dataset problems are
// 422: the upload itself arrived fine but cannot become a valid document.
func (h *ConvertHandler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: err.Error()})
	case errors.Is(err, domain.ErrMissingColumn):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "MISSING_COLUMN", Message: err.Error()})
	case errors.Is(err, domain.ErrEmptyDataset):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "EMPTY_DATASET", Message: err.Error()})
	case errors.Is(err, domain.ErrUnparsableDate):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "BAD_DATE", Message: err.Error()})
	case errors.Is(err, domain.ErrInconsistentGroup):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INCONSISTENT_GROUP", Message: err.Error()})
	default:
		h.log.Error().Err(err).Msg("conversion failed")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
