package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"stock-sync/core/config"
	"stock-sync/core/database"
	"stock-sync/core/logger"
	"stock-sync/core/storage"
	"stock-sync/core/stores"
	"stock-sync/feature/audit"
	"stock-sync/feature/stocksync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	syncStore      string
	syncMode       string
	syncIdentifier string
)

// syncCmd runs one sync from the command line, without the HTTP server.
var syncCmd = &cobra.Command{
	Use:   "sync <filename>",
	Short: "Sync a stored spreadsheet against a shop catalog",
	Long: `Validates a previously uploaded spreadsheet against the shop's catalog
and pushes the quantity changes when every reference matches.

Examples:
  # Push deltas from a stored file
  stock-sync sync 20260825-103000_stock.csv --store af-milano

  # Force barcode lookup
  stock-sync sync stock.csv --store af-milano --identifier barcode`,
	Args: cobra.ExactArgs(1),
	RunE: runSync,
}

func init() {
	syncCmd.Flags().StringVar(&syncStore, "store", "", "Target store ID (required)")
	syncCmd.Flags().StringVar(&syncMode, "mode", stocksync.ModeAdjust, "Sync mode (adjust, replace, tabula_rasa)")
	syncCmd.Flags().StringVar(&syncIdentifier, "identifier", "", "Identifier override (sku, barcode)")
	_ = syncCmd.MarkFlagRequired("store")

	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.New(&logger.Config{Level: cfg.Log.Level, Format: "console"})
	if err != nil {
		return err
	}
	defer logg.Sync()

	registry, err := stores.Load(cfg.Stores.File)
	if err != nil {
		return err
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return err
	}

	// Audit is best effort on the CLI as well.
	var db *gorm.DB
	if conn, err := database.Connect(cfg.Database); err != nil {
		logg.Warn("Running without audit trail", zap.Error(err))
	} else {
		db = conn
	}
	auditSvc := audit.NewService(db, logg)
	if err := auditSvc.Migrate(); err != nil {
		return err
	}

	svc := stocksync.NewService(client, cfg.Storage.Bucket, registry, cfg.Catalog, auditSvc, logg)

	outcome, err := svc.SyncFile(ctx, stocksync.SyncRequest{
		Filename:   args[0],
		StoreID:    syncStore,
		Mode:       syncMode,
		Identifier: syncIdentifier,
	})
	if outcome != nil {
		pretty, jsonErr := json.MarshalIndent(outcome, "", "  ")
		if jsonErr == nil {
			fmt.Println(string(pretty))
		}
	}
	if err != nil {
		return err
	}

	if outcome.Status == stocksync.StatusValidationFailed {
		return fmt.Errorf("validation failed: %d missing, %d duplicated",
			len(outcome.Missing), len(outcome.Duplicates))
	}
	return nil
}
