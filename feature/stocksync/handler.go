package stocksync

import (
	"errors"

	"stock-sync/core/logger"
	"stock-sync/core/middleware/rayid"
	"stock-sync/core/stores"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the sync flow.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, log *zap.Logger) *Handler {
	return &Handler{service: service, logger: log}
}

// RegisterRoutes registers the sync routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/sync")
	group.Post("/:filename", h.HandleSync)
}

// HandleSync validates an uploaded spreadsheet against a shop's catalog and
// pushes the quantity changes when validation passes.
// @Summary Sync a spreadsheet
// @Description Validates the stored spreadsheet against the shop catalog and pushes quantity adjustments in batches. Any missing or duplicated reference blocks the whole push.
// @Tags sync
// @Produce json
// @Param filename path string true "Stored file name"
// @Param store query string true "Target store ID"
// @Param mode query string false "Sync mode (adjust, replace, tabula_rasa)" default(adjust)
// @Param identifier query string false "Identifier override (sku, barcode)"
// @Success 200 {object} stocksync.Outcome "Sync outcome"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Unknown store"
// @Failure 422 {object} stocksync.Outcome "Validation failed"
// @Failure 501 {object} stocksync.Outcome "Mode not implemented"
// @Failure 502 {object} map[string]any "Push failed mid-batch"
// @Router /sync/{filename} [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	storeID := c.Query("store")
	if storeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "missing required query parameter 'store'",
		})
	}

	req := SyncRequest{
		Filename:   c.Params("filename"),
		StoreID:    storeID,
		Mode:       c.Query("mode"),
		Identifier: c.Query("identifier"),
	}
	if rid, ok := c.Locals(rayid.LocalsKey).(string); ok {
		req.RayID = rid
	}

	outcome, err := h.service.SyncFile(c.Context(), req)
	if err != nil {
		var batchErr *BatchError
		switch {
		case errors.Is(err, stores.ErrUnknownStore):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		case errors.As(err, &batchErr):
			l.Error("Sync push failed mid-batch", zap.Error(err))
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error":       err.Error(),
				"batch":       batchErr.Index,
				"batch_total": batchErr.Total,
				"outcome":     outcome,
			})
		default:
			l.Error("Sync failed", zap.Error(err))
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
	}

	switch outcome.Status {
	case StatusValidationFailed:
		return c.Status(fiber.StatusUnprocessableEntity).JSON(outcome)
	case StatusNotImplemented:
		return c.Status(fiber.StatusNotImplemented).JSON(outcome)
	default:
		return c.JSON(outcome)
	}
}
