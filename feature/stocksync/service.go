package stocksync

import (
	"context"
	"fmt"

	"stock-sync/core/catalog"
	"stock-sync/core/logger"
	"stock-sync/core/reconcile"
	"stock-sync/core/storage"
	"stock-sync/core/stores"
	"stock-sync/feature/audit"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Sync modes. Only adjust is implemented: the spreadsheet quantities are
// pushed as relative deltas. The other two are reserved.
const (
	ModeAdjust     = "adjust"
	ModeReplace    = "replace"
	ModeTabulaRasa = "tabula_rasa"
)

// ValidMode reports whether the given mode is a known sync mode.
func ValidMode(mode string) bool {
	switch mode {
	case ModeAdjust, ModeReplace, ModeTabulaRasa:
		return true
	default:
		return false
	}
}

// Outcome statuses.
const (
	StatusCompleted        = "completed"
	StatusValidationFailed = "validation_failed"
	StatusNotImplemented   = "not_implemented"
	StatusFailed           = "failed"
)

// SyncRequest identifies one sync run: which stored file to push to which
// shop, and how.
type SyncRequest struct {
	Filename   string
	StoreID    string
	Mode       string
	Identifier string
	RayID      string
}

// Outcome is the result of a sync run.
type Outcome struct {
	Status       string                   `json:"status"`
	Store        string                   `json:"store"`
	Mode         string                   `json:"mode"`
	Identifier   string                   `json:"identifier,omitempty"`
	TotalRows    int                      `json:"total_rows"`
	Matched      int                      `json:"matched"`
	Missing      []string                 `json:"missing"`
	Duplicates   []string                 `json:"duplicates"`
	SkippedLines []int                    `json:"skipped_lines,omitempty"`
	Batches      int                      `json:"batches,omitempty"`
	Applied      *catalog.AdjustmentGroup `json:"applied,omitempty"`
}

// Service orchestrates the sync pipeline.
type Service struct {
	client     storage.Client
	bucket     string
	registry   *stores.Registry
	cfg        catalog.Config
	audit      *audit.Service
	logger     *zap.Logger
	newCatalog func(stores.Store) Catalog
}

// NewService creates a new sync service.
func NewService(client storage.Client, bucket string, registry *stores.Registry, cfg catalog.Config, auditSvc *audit.Service, log *zap.Logger) *Service {
	s := &Service{
		client:   client,
		bucket:   bucket,
		registry: registry,
		cfg:      cfg,
		audit:    auditSvc,
		logger:   log,
	}
	s.newCatalog = func(st stores.Store) Catalog {
		return catalog.NewInventory(catalog.NewClient(st, cfg), cfg, log)
	}
	return s
}

// SyncFile runs the full pipeline for one stored spreadsheet. Validation is
// all-or-nothing: any missing or duplicated reference blocks the push and
// the outcome reports both lists. When a later batch fails, the batches
// already applied stay applied.
func (s *Service) SyncFile(ctx context.Context, req SyncRequest) (*Outcome, error) {
	store, err := s.registry.Get(req.StoreID)
	if err != nil {
		return nil, err
	}

	mode := req.Mode
	if mode == "" {
		mode = ModeAdjust
	}
	if !ValidMode(mode) {
		return nil, fmt.Errorf("unknown sync mode %q", mode)
	}

	l := logger.WithStore(s.logger, store.ID).With(
		zap.String("file", req.Filename),
		zap.String("mode", mode))

	outcome := &Outcome{
		Store:      store.ID,
		Mode:       mode,
		Missing:    []string{},
		Duplicates: []string{},
	}

	if mode != ModeAdjust {
		outcome.Status = StatusNotImplemented
		return outcome, nil
	}

	// 1. Fetch and parse the spreadsheet.
	reader, err := s.client.GetObject(ctx, s.bucket, req.Filename, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %q: %w", req.Filename, err)
	}
	defer reader.Close()

	table, err := ParseTable(req.Filename, reader)
	if err != nil {
		return nil, err
	}

	rows, refColumn, noLocation, err := ExtractRows(table)
	if err != nil {
		return nil, err
	}
	outcome.TotalRows = len(rows)
	outcome.SkippedLines = noLocation
	if len(noLocation) > 0 {
		l.Warn("Rows without location are validated but not pushed",
			zap.Ints("lines", noLocation))
	}

	// 2. Resolve the identifier type.
	idType, err := s.resolveIdentifier(refColumn, req.Identifier, rows)
	if err != nil {
		return nil, err
	}
	outcome.Identifier = string(idType)
	l = l.With(zap.String("identifier", string(idType)))

	// 3. Look the references up remotely and reconcile.
	cat := s.newCatalog(store)

	refs := make([]string, 0, len(rows))
	for _, row := range rows {
		refs = append(refs, row.Reference)
	}

	variants, err := cat.VariantsByReference(ctx, refs, idType)
	if err != nil {
		return nil, err
	}

	result := reconcile.Reconcile(rows, variants)
	outcome.Missing = result.Missing
	outcome.Duplicates = result.Duplicates
	outcome.Matched = len(result.Matched)

	if !result.Clean() {
		l.Warn("Validation failed, nothing pushed",
			zap.Int("missing", len(result.Missing)),
			zap.Int("duplicates", len(result.Duplicates)))
		outcome.Status = StatusValidationFailed
		s.record(ctx, req, outcome)
		return outcome, nil
	}

	// 4. Prepare the changes: activate levels, publish channels.
	changes := s.prepareChanges(ctx, cat, rows, result.Matched, l)

	// 5. Push in sequential batches.
	mutator := NewMutator(cat, s.cfg.BatchLimit, l)
	outcome.Batches = len(chunk(changes, mutator.limit))

	applied, err := mutator.Apply(ctx, changes)
	outcome.Applied = applied
	if err != nil {
		outcome.Status = StatusFailed
		s.record(ctx, req, outcome)
		return outcome, err
	}

	outcome.Status = StatusCompleted
	l.Info("Sync completed",
		zap.Int("rows", outcome.TotalRows),
		zap.Int("changes", len(changes)),
		zap.Int("batches", outcome.Batches))
	s.record(ctx, req, outcome)

	return outcome, nil
}

// resolveIdentifier picks the identifier type: a barcode column always
// wins, then an explicit request override, then the content heuristic.
// When the file gives no usable sample the configured default applies.
func (s *Service) resolveIdentifier(refColumn, explicit string, rows []reconcile.Row) (reconcile.IdentifierType, error) {
	if refColumn == ColumnBarcode {
		return reconcile.IdentifierBarcode, nil
	}

	if explicit != "" {
		idType := reconcile.IdentifierType(explicit)
		if !idType.IsValid() {
			return "", fmt.Errorf("unknown identifier type %q", explicit)
		}
		return idType, nil
	}

	samples := make([]string, 0, len(rows))
	for _, row := range rows {
		if row.Reference != reconcile.EmptyReference {
			samples = append(samples, row.Reference)
		}
	}
	if len(samples) == 0 {
		if def := reconcile.IdentifierType(s.cfg.DefaultIdentifier); def.IsValid() {
			return def, nil
		}
		return reconcile.IdentifierSKU, nil
	}

	return reconcile.DetectIdentifierType(samples), nil
}

// prepareChanges builds the quantity deltas for every matched row that has
// a location, activating the inventory level first and publishing the
// row's sales channels. Channel and activation failures are logged but do
// not stop the push.
func (s *Service) prepareChanges(ctx context.Context, cat Catalog, rows []reconcile.Row, matched map[string]reconcile.Variant, l *zap.Logger) []catalog.Change {
	changes := make([]catalog.Change, 0, len(rows))

	for _, row := range rows {
		variant, ok := matched[row.Reference]
		if !ok || row.LocationID == "" {
			continue
		}

		locationGID := catalog.LocationGID(row.LocationID)

		if len(row.SaleChannels) > 0 {
			publications := make([]string, 0, len(row.SaleChannels))
			for _, ch := range row.SaleChannels {
				publications = append(publications, catalog.PublicationGID(ch))
			}
			if err := cat.PublishToChannels(ctx, variant.ProductID, publications); err != nil {
				l.Warn("Channel publish failed",
					zap.String("reference", row.Reference),
					zap.Error(err))
			}
		}

		if err := cat.ActivateLevel(ctx, variant.InventoryItemID, locationGID); err != nil {
			l.Warn("Inventory level activation failed",
				zap.String("reference", row.Reference),
				zap.Error(err))
		}

		if row.Quantity == 0 {
			continue
		}
		changes = append(changes, catalog.Change{
			Delta:           row.Quantity,
			InventoryItemID: variant.InventoryItemID,
			LocationID:      locationGID,
		})
	}

	return changes
}

func (s *Service) record(ctx context.Context, req SyncRequest, outcome *Outcome) {
	applied := 0
	if outcome.Applied != nil {
		applied = len(outcome.Applied.Changes)
	}

	detail := ""
	if outcome.Status == StatusValidationFailed {
		detail = fmt.Sprintf("%d missing, %d duplicated", len(outcome.Missing), len(outcome.Duplicates))
	}

	s.audit.Record(ctx, audit.SyncRecord{
		StoreID:    outcome.Store,
		Filename:   req.Filename,
		Mode:       outcome.Mode,
		Identifier: outcome.Identifier,
		Status:     outcome.Status,
		TotalRows:  outcome.TotalRows,
		Applied:    applied,
		Missing:    len(outcome.Missing),
		Duplicates: len(outcome.Duplicates),
		Detail:     detail,
		RayID:      req.RayID,
	})
}
