package catalog

import (
	"context"
	"testing"

	"stock-sync/core/catalog/mocks"
	"stock-sync/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInventory_VariantsByReference_Paginated(t *testing.T) {
	client := new(mocks.Client)
	inv := NewInventory(client, Config{PageSize: 2}, zap.NewNop())

	page1 := `{"productVariants":{"pageInfo":{"hasNextPage":true,"endCursor":"c1"},"nodes":[
		{"id":"gid://shopify/ProductVariant/1","sku":"A1","barcode":"111","product":{"id":"gid://shopify/Product/1"},"inventoryItem":{"id":"gid://shopify/InventoryItem/1"}},
		{"id":"gid://shopify/ProductVariant/2","sku":"B2","barcode":"222","product":{"id":"gid://shopify/Product/2"},"inventoryItem":{"id":"gid://shopify/InventoryItem/2"}}
	]}}`
	page2 := `{"productVariants":{"pageInfo":{"hasNextPage":false,"endCursor":""},"nodes":[
		{"id":"gid://shopify/ProductVariant/3","sku":"C3","barcode":"333","product":{"id":"gid://shopify/Product/3"},"inventoryItem":{"id":"gid://shopify/InventoryItem/3"}}
	]}}`

	// First call has no cursor, second carries the end cursor of page one.
	client.On("Execute", mock.Anything, "VariantsByReference", mock.Anything,
		mock.MatchedBy(func(vars map[string]any) bool { _, ok := vars["after"]; return !ok }),
		mock.Anything).Run(mocks.Respond(page1)).Return(nil).Once()
	client.On("Execute", mock.Anything, "VariantsByReference", mock.Anything,
		mock.MatchedBy(func(vars map[string]any) bool { return vars["after"] == "c1" }),
		mock.Anything).Run(mocks.Respond(page2)).Return(nil).Once()

	variants, err := inv.VariantsByReference(context.Background(), []string{"A1", "B2", "C3"}, reconcile.IdentifierSKU)

	require.NoError(t, err)
	require.Len(t, variants, 3)
	assert.Equal(t, "A1", variants[0].Reference)
	assert.Equal(t, "C3", variants[2].Reference)
	assert.Equal(t, "gid://shopify/InventoryItem/3", variants[2].InventoryItemID)
	client.AssertExpectations(t)
}

func TestInventory_VariantsByReference_BarcodeField(t *testing.T) {
	client := new(mocks.Client)
	inv := NewInventory(client, Config{}, zap.NewNop())

	page := `{"productVariants":{"pageInfo":{"hasNextPage":false},"nodes":[
		{"id":"gid://shopify/ProductVariant/1","sku":"A1","barcode":"8001234567890","product":{"id":"gid://shopify/Product/1"},"inventoryItem":{"id":"gid://shopify/InventoryItem/1"}}
	]}}`

	client.On("Execute", mock.Anything, "VariantsByReference", mock.Anything,
		mock.MatchedBy(func(vars map[string]any) bool {
			return vars["query"] == "barcode:8001234567890"
		}),
		mock.Anything).Run(mocks.Respond(page)).Return(nil).Once()

	variants, err := inv.VariantsByReference(context.Background(), []string{"8001234567890"}, reconcile.IdentifierBarcode)

	require.NoError(t, err)
	require.Len(t, variants, 1)
	assert.Equal(t, "8001234567890", variants[0].Reference)
}

func TestInventory_VariantsByReference_ORJoinedQuery(t *testing.T) {
	client := new(mocks.Client)
	inv := NewInventory(client, Config{}, zap.NewNop())

	empty := `{"productVariants":{"pageInfo":{"hasNextPage":false},"nodes":[]}}`
	client.On("Execute", mock.Anything, "VariantsByReference", mock.Anything,
		mock.MatchedBy(func(vars map[string]any) bool {
			return vars["query"] == "sku:A1 OR sku:B2"
		}),
		mock.Anything).Run(mocks.Respond(empty)).Return(nil).Once()

	// Sentinel references are dropped from the query expression.
	variants, err := inv.VariantsByReference(context.Background(),
		[]string{"A1", reconcile.EmptyReference, "B2"}, reconcile.IdentifierSKU)

	require.NoError(t, err)
	assert.Empty(t, variants)
	client.AssertExpectations(t)
}

func TestInventory_VariantsByReference_NoValidRefs(t *testing.T) {
	client := new(mocks.Client)
	inv := NewInventory(client, Config{}, zap.NewNop())

	variants, err := inv.VariantsByReference(context.Background(), []string{reconcile.EmptyReference}, reconcile.IdentifierSKU)

	require.NoError(t, err)
	assert.Empty(t, variants)
	client.AssertNotCalled(t, "Execute")
}

func TestInventory_AdjustQuantities(t *testing.T) {
	client := new(mocks.Client)
	inv := NewInventory(client, Config{}, zap.NewNop())

	fixture := `{"inventoryAdjustQuantities":{"inventoryAdjustmentGroup":{
		"createdAt":"2026-08-25T10:00:00Z","reason":"other","referenceDocumentUri":"",
		"changes":[{"name":"available","delta":10,"location":{"id":"gid://shopify/Location/30","name":"Main"}}]
	},"userErrors":[]}}`

	client.On("Execute", mock.Anything, "inventoryAdjustQuantities", mock.Anything, mock.Anything, mock.Anything).
		Run(mocks.Respond(fixture)).Return(nil).Once()

	group, err := inv.AdjustQuantities(context.Background(), []Change{
		{Delta: 10, InventoryItemID: "gid://shopify/InventoryItem/1", LocationID: "gid://shopify/Location/30"},
	})

	require.NoError(t, err)
	require.Len(t, group.Changes, 1)
	assert.Equal(t, 10, group.Changes[0].Delta)
	assert.Equal(t, "2026-08-25T10:00:00Z", group.CreatedAt)
}

func TestInventory_AdjustQuantities_UserErrors(t *testing.T) {
	client := new(mocks.Client)
	inv := NewInventory(client, Config{}, zap.NewNop())

	fixture := `{"inventoryAdjustQuantities":{"inventoryAdjustmentGroup":{},
		"userErrors":[{"field":["input"],"message":"Quantity couldn't be adjusted"}]}}`

	client.On("Execute", mock.Anything, "inventoryAdjustQuantities", mock.Anything, mock.Anything, mock.Anything).
		Run(mocks.Respond(fixture)).Return(nil).Once()

	group, err := inv.AdjustQuantities(context.Background(), []Change{{Delta: 1}})

	require.Error(t, err)
	assert.Nil(t, group)
	assert.Contains(t, err.Error(), "Quantity couldn't be adjusted")
}

func TestInventory_ActivateLevel(t *testing.T) {
	client := new(mocks.Client)
	inv := NewInventory(client, Config{}, zap.NewNop())

	fixture := `{"inventoryActivate":{"inventoryLevel":{"id":"gid://shopify/InventoryLevel/1"},"userErrors":[]}}`
	client.On("Execute", mock.Anything, "inventoryActivate", mock.Anything,
		mock.MatchedBy(func(vars map[string]any) bool {
			return vars["inventoryItemId"] == "gid://shopify/InventoryItem/1" &&
				vars["locationId"] == "gid://shopify/Location/10" &&
				vars["available"] == 0
		}),
		mock.Anything).Run(mocks.Respond(fixture)).Return(nil).Once()

	err := inv.ActivateLevel(context.Background(), "gid://shopify/InventoryItem/1", "gid://shopify/Location/10")
	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestInventory_PublishToChannels(t *testing.T) {
	client := new(mocks.Client)
	inv := NewInventory(client, Config{}, zap.NewNop())

	fixture := `{"publishablePublish":{"publishable":{"publicationCount":2},"userErrors":[]}}`
	client.On("Execute", mock.Anything, "publishablePublish", mock.Anything,
		mock.MatchedBy(func(vars map[string]any) bool {
			input, ok := vars["input"].([]map[string]any)
			return ok && len(input) == 2 && vars["id"] == "gid://shopify/Product/1"
		}),
		mock.Anything).Run(mocks.Respond(fixture)).Return(nil).Once()

	err := inv.PublishToChannels(context.Background(), "gid://shopify/Product/1",
		[]string{"gid://shopify/Publication/1", "gid://shopify/Publication/2"})
	require.NoError(t, err)
	client.AssertExpectations(t)
}
