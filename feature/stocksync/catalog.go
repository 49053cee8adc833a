package stocksync

import (
	"context"

	"stock-sync/core/catalog"
	"stock-sync/core/reconcile"
)

// Catalog is the subset of remote catalog operations the sync flow uses.
// *catalog.Inventory satisfies it.
type Catalog interface {
	VariantsByReference(ctx context.Context, refs []string, idType reconcile.IdentifierType) ([]reconcile.Variant, error)
	ActivateLevel(ctx context.Context, inventoryItemID, locationID string) error
	AdjustQuantities(ctx context.Context, changes []catalog.Change) (*catalog.AdjustmentGroup, error)
	PublishToChannels(ctx context.Context, productID string, publicationIDs []string) error
}
