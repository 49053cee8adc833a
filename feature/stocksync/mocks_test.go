package stocksync

import (
	"context"

	"stock-sync/core/catalog"
	"stock-sync/core/reconcile"

	"github.com/stretchr/testify/mock"
)

// fakeCatalog is a mock implementation of the Catalog interface.
type fakeCatalog struct {
	mock.Mock
}

func (m *fakeCatalog) VariantsByReference(ctx context.Context, refs []string, idType reconcile.IdentifierType) ([]reconcile.Variant, error) {
	args := m.Called(ctx, refs, idType)
	if v, ok := args.Get(0).([]reconcile.Variant); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *fakeCatalog) ActivateLevel(ctx context.Context, inventoryItemID, locationID string) error {
	args := m.Called(ctx, inventoryItemID, locationID)
	return args.Error(0)
}

func (m *fakeCatalog) AdjustQuantities(ctx context.Context, changes []catalog.Change) (*catalog.AdjustmentGroup, error) {
	args := m.Called(ctx, changes)
	if g, ok := args.Get(0).(*catalog.AdjustmentGroup); ok {
		return g, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *fakeCatalog) PublishToChannels(ctx context.Context, productID string, publicationIDs []string) error {
	args := m.Called(ctx, productID, publicationIDs)
	return args.Error(0)
}
