package resources

import (
	"stock-sync/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the resources feature.
func NewFeature(client storage.Client, bucket string, log *zap.Logger) *Feature {
	svc := NewService(client, bucket, log)
	return &Feature{service: svc, handler: NewHandler(svc, log)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "resources"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
