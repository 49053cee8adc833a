package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stock-sync/core/config"
	"stock-sync/core/database"
	"stock-sync/core/loader"
	"stock-sync/core/logger"
	"stock-sync/core/middleware/auth"
	"stock-sync/core/middleware/rayid"
	"stock-sync/core/storage"
	"stock-sync/core/stores"

	"stock-sync/feature/audit"
	"stock-sync/feature/resources"
	"stock-sync/feature/stocksync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "stock-sync/docs/swagger"
)

// @title Stock Sync API
// @version 1.0
// @description API for validating warehouse spreadsheets against shop catalogs and pushing quantity changes.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the stock sync server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Load the store registry
		registry, err := stores.Load(cfg.Stores.File)
		if err != nil {
			logg.Fatal("Failed to load store registry",
				zap.String("file", cfg.Stores.File), zap.Error(err))
		}
		logg.Info("Store registry loaded", zap.Int("stores", registry.Len()))

		// 4. Connect to Database (Optional)
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed, audit trail disabled", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to audit database")
		}

		// 5. Initialize Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := storage.EnsureBucket(ctx, store, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
			cancel()
			logg.Fatal("Failed to prepare upload bucket", zap.Error(err))
		}
		cancel()

		// 6. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
			BodyLimit:             cfg.Server.BodyLimit(),
		})

		// 7. Initialize Feature Loader
		mgr := loader.NewManager()

		auditFeature := audit.NewFeature(db, logg)
		mgr.Register(auditFeature)
		mgr.Register(resources.NewFeature(store, cfg.Storage.Bucket, logg))
		mgr.Register(stocksync.NewFeature(store, cfg.Storage.Bucket, registry, cfg.Catalog, auditFeature.Service(), logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 3. Public routes: health and swagger
		app.Get("/health", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok"})
		})
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 4. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 5. Store listing (credentials are never serialized)
		app.Get("/stores", func(c *fiber.Ctx) error {
			return c.JSON(registry.List())
		})

		// 6. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
