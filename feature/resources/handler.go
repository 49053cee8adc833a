package resources

import (
	"stock-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for stored spreadsheets.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, log *zap.Logger) *Handler {
	return &Handler{service: service, logger: log}
}

// RegisterRoutes registers the resources routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/resources")
	group.Post("/", h.HandleUpload)
	group.Get("/", h.HandleList)
	group.Delete("/:filename", h.HandleDelete)
}

// HandleUpload stores an uploaded spreadsheet.
// @Summary Upload a spreadsheet
// @Description Stores a CSV or Excel file to be synced later. Returns the stored name.
// @Tags resources
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Spreadsheet file (.csv, .xlsx)"
// @Success 201 {object} map[string]string "Stored file name"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /resources [post]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "missing form file 'file'",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		l.Error("Failed to open upload", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	defer file.Close()

	stored, err := h.service.Upload(c.Context(), fileHeader.Filename, file, fileHeader.Size)
	if err != nil {
		l.Error("Upload failed", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"filename": stored,
	})
}

// HandleList lists the stored spreadsheets.
// @Summary List spreadsheets
// @Description Lists every stored spreadsheet with size and modification time.
// @Tags resources
// @Produce json
// @Success 200 {array} resources.FileInfo "Stored files"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /resources [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	files, err := h.service.List(c.Context())
	if err != nil {
		l.Error("List failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if files == nil {
		files = []FileInfo{}
	}
	return c.JSON(files)
}

// HandleDelete removes one stored spreadsheet.
// @Summary Delete a spreadsheet
// @Description Removes a stored spreadsheet by its stored name.
// @Tags resources
// @Produce json
// @Param filename path string true "Stored file name"
// @Success 204 "Deleted"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /resources/{filename} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	if err := h.service.Delete(c.Context(), c.Params("filename")); err != nil {
		l.Error("Delete failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
