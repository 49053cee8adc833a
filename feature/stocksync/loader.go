package stocksync

import (
	"stock-sync/core/catalog"
	"stock-sync/core/storage"
	"stock-sync/core/stores"
	"stock-sync/feature/audit"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the sync feature.
func NewFeature(client storage.Client, bucket string, registry *stores.Registry, cfg catalog.Config, auditSvc *audit.Service, log *zap.Logger) *Feature {
	svc := NewService(client, bucket, registry, cfg, auditSvc, log)
	return &Feature{service: svc, handler: NewHandler(svc, log)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "stocksync"
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
