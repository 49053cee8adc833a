package catalog

import (
	"context"
	"fmt"
	"strings"

	"stock-sync/core/reconcile"

	"go.uber.org/zap"
)

// LocationGID expands a bare location identifier into the full GID form the
// Admin API expects. Already-expanded identifiers pass through unchanged.
func LocationGID(id string) string {
	if strings.HasPrefix(id, "gid://") {
		return id
	}
	return "gid://shopify/Location/" + id
}

// PublicationGID expands a bare sales-channel identifier into the full
// publication GID form.
func PublicationGID(id string) string {
	if strings.HasPrefix(id, "gid://") {
		return id
	}
	return "gid://shopify/Publication/" + id
}

// Change is one quantity delta submitted to the adjust mutation.
type Change struct {
	Delta           int    `json:"delta"`
	InventoryItemID string `json:"inventoryItemId"`
	LocationID      string `json:"locationId"`
}

// AdjustedChange is one applied change echoed back by the adjust mutation.
type AdjustedChange struct {
	Name     string `json:"name"`
	Delta    int    `json:"delta"`
	Location struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"location"`
}

// AdjustmentGroup is the payload of a successful quantity adjustment.
type AdjustmentGroup struct {
	CreatedAt            string           `json:"createdAt"`
	Reason               string           `json:"reason"`
	ReferenceDocumentURI string           `json:"referenceDocumentUri"`
	Changes              []AdjustedChange `json:"changes"`
}

// Inventory bundles the catalog operations the sync flow needs on top of a
// Client.
type Inventory struct {
	client   Client
	pageSize int
	logger   *zap.Logger
}

// NewInventory creates the operation set for one store client.
func NewInventory(client Client, cfg Config, logger *zap.Logger) *Inventory {
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 250
	}
	return &Inventory{
		client:   client,
		pageSize: pageSize,
		logger:   logger,
	}
}

const variantsQuery = `
query VariantsByReference($first: Int!, $after: String, $query: String!) {
	productVariants(first: $first, after: $after, query: $query) {
		pageInfo {
			hasNextPage
			endCursor
		}
		nodes {
			id
			sku
			barcode
			product {
				id
			}
			inventoryItem {
				id
			}
		}
	}
}`

type variantsData struct {
	ProductVariants struct {
		PageInfo struct {
			HasNextPage bool   `json:"hasNextPage"`
			EndCursor   string `json:"endCursor"`
		} `json:"pageInfo"`
		Nodes []struct {
			ID      string `json:"id"`
			SKU     string `json:"sku"`
			Barcode string `json:"barcode"`
			Product struct {
				ID string `json:"id"`
			} `json:"product"`
			InventoryItem struct {
				ID string `json:"id"`
			} `json:"inventoryItem"`
		} `json:"nodes"`
	} `json:"productVariants"`
}

// VariantsByReference fetches every variant matching any of the given
// references, following cursor pagination until all pages are retrieved.
// The lookup field is chosen by the identifier type, and each returned
// variant carries that field as its Reference.
func (inv *Inventory) VariantsByReference(ctx context.Context, refs []string, idType reconcile.IdentifierType) ([]reconcile.Variant, error) {
	if len(refs) == 0 {
		return nil, nil
	}

	terms := make([]string, 0, len(refs))
	for _, ref := range refs {
		if ref == "" || ref == reconcile.EmptyReference {
			continue
		}
		terms = append(terms, fmt.Sprintf("%s:%s", idType, ref))
	}
	if len(terms) == 0 {
		return nil, nil
	}
	queryStr := strings.Join(terms, " OR ")

	var variants []reconcile.Variant
	after := ""

	for {
		variables := map[string]any{
			"first": inv.pageSize,
			"query": queryStr,
		}
		if after != "" {
			variables["after"] = after
		}

		var data variantsData
		if err := inv.client.Execute(ctx, "VariantsByReference", variantsQuery, variables, &data); err != nil {
			return nil, err
		}

		for _, node := range data.ProductVariants.Nodes {
			ref := node.SKU
			if idType == reconcile.IdentifierBarcode {
				ref = node.Barcode
			}
			variants = append(variants, reconcile.Variant{
				Reference:       ref,
				InventoryItemID: node.InventoryItem.ID,
				ProductID:       node.Product.ID,
			})
		}

		if !data.ProductVariants.PageInfo.HasNextPage {
			break
		}
		after = data.ProductVariants.PageInfo.EndCursor
	}

	inv.logger.Debug("Variant lookup completed",
		zap.Int("requested", len(terms)),
		zap.Int("found", len(variants)))

	return variants, nil
}

const activateMutation = `
mutation ActivateInventoryItem($inventoryItemId: ID!, $locationId: ID!, $available: Int) {
	inventoryActivate(inventoryItemId: $inventoryItemId, locationId: $locationId, available: $available) {
		inventoryLevel {
			id
		}
		userErrors {
			field
			message
		}
	}
}`

type activateData struct {
	InventoryActivate struct {
		InventoryLevel struct {
			ID string `json:"id"`
		} `json:"inventoryLevel"`
		UserErrors []UserError `json:"userErrors"`
	} `json:"inventoryActivate"`
}

// ActivateLevel makes the inventory item stocked at the given location so a
// subsequent quantity mutation can target it. Activation with available: 0
// is idempotent on the remote side.
func (inv *Inventory) ActivateLevel(ctx context.Context, inventoryItemID, locationID string) error {
	variables := map[string]any{
		"inventoryItemId": inventoryItemID,
		"locationId":      locationID,
		"available":       0,
	}

	var data activateData
	if err := inv.client.Execute(ctx, "inventoryActivate", activateMutation, variables, &data); err != nil {
		return err
	}
	return UserErrorsToError("inventoryActivate", data.InventoryActivate.UserErrors)
}

const adjustMutation = `
mutation inventoryAdjustQuantities($input: InventoryAdjustQuantitiesInput!) {
	inventoryAdjustQuantities(input: $input) {
		inventoryAdjustmentGroup {
			createdAt
			reason
			referenceDocumentUri
			changes(quantityNames: ["available"]) {
				name
				delta
				location {
					id
					name
				}
			}
		}
		userErrors {
			field
			message
		}
	}
}`

type adjustData struct {
	InventoryAdjustQuantities struct {
		InventoryAdjustmentGroup AdjustmentGroup `json:"inventoryAdjustmentGroup"`
		UserErrors               []UserError     `json:"userErrors"`
	} `json:"inventoryAdjustQuantities"`
}

// AdjustQuantities applies one batch of relative quantity changes. The
// caller is responsible for respecting the per-call batch limit.
func (inv *Inventory) AdjustQuantities(ctx context.Context, changes []Change) (*AdjustmentGroup, error) {
	variables := map[string]any{
		"input": map[string]any{
			"reason":  "other",
			"name":    "available",
			"changes": changes,
		},
	}

	var data adjustData
	if err := inv.client.Execute(ctx, "inventoryAdjustQuantities", adjustMutation, variables, &data); err != nil {
		return nil, err
	}
	if err := UserErrorsToError("inventoryAdjustQuantities", data.InventoryAdjustQuantities.UserErrors); err != nil {
		return nil, err
	}

	group := data.InventoryAdjustQuantities.InventoryAdjustmentGroup
	return &group, nil
}

const publishMutation = `
mutation publishablePublish($id: ID!, $input: [PublicationInput!]!) {
	publishablePublish(id: $id, input: $input) {
		publishable {
			publicationCount
		}
		userErrors {
			field
			message
		}
	}
}`

type publishData struct {
	PublishablePublish struct {
		UserErrors []UserError `json:"userErrors"`
	} `json:"publishablePublish"`
}

// PublishToChannels publishes a product to the given sales channels.
func (inv *Inventory) PublishToChannels(ctx context.Context, productID string, publicationIDs []string) error {
	input := make([]map[string]any, 0, len(publicationIDs))
	for _, id := range publicationIDs {
		input = append(input, map[string]any{"publicationId": id})
	}

	variables := map[string]any{
		"id":    productID,
		"input": input,
	}

	var data publishData
	if err := inv.client.Execute(ctx, "publishablePublish", publishMutation, variables, &data); err != nil {
		return err
	}
	return UserErrorsToError("publishablePublish", data.PublishablePublish.UserErrors)
}
