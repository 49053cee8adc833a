package audit

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the audit feature.
func NewFeature(db *gorm.DB, log *zap.Logger) *Feature {
	svc := NewService(db, log)
	return &Feature{service: svc, handler: NewHandler(svc, log)}
}

// Service exposes the underlying audit service to other features.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "audit"
}

// IsEnabled checks if the feature is enabled. The audit trail only loads
// when a database connection exists.
func (f *Feature) IsEnabled() bool {
	return f.service.Enabled()
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	if err := f.service.Migrate(); err != nil {
		return err
	}
	f.handler.RegisterRoutes(app)
	return nil
}
