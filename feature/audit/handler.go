package audit

import (
	"stock-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the audit trail.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, log *zap.Logger) *Handler {
	return &Handler{service: service, logger: log}
}

// RegisterRoutes registers the audit routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/audit")
	group.Get("/", h.HandleRecent)
}

// HandleRecent returns the latest sync runs.
// @Summary List sync runs
// @Description Returns the most recent sync runs, newest first.
// @Tags audit
// @Produce json
// @Param limit query int false "Maximum number of records (default 50)"
// @Success 200 {array} audit.SyncRecord "Sync runs"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /audit [get]
func (h *Handler) HandleRecent(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	records, err := h.service.Recent(c.Context(), c.QueryInt("limit"))
	if err != nil {
		l.Error("Audit query failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if records == nil {
		records = []SyncRecord{}
	}
	return c.JSON(records)
}
