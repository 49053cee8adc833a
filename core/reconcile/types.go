package reconcile

// EmptyReference is the sentinel for rows whose reference cell is absent or
// unparseable. It keeps such rows inside the normal set operations instead of
// special-casing them everywhere.
const EmptyReference = "EMPTY_SKU"

// IdentifierType tags which catalog field a reference is matched against.
type IdentifierType string

const (
	// IdentifierSKU matches references against the variant SKU field.
	IdentifierSKU IdentifierType = "sku"
	// IdentifierBarcode matches references against the variant barcode field.
	IdentifierBarcode IdentifierType = "barcode"
)

// IsValid checks if the identifier type is one of the known values.
func (t IdentifierType) IsValid() bool {
	return t == IdentifierSKU || t == IdentifierBarcode
}

// Row is one accepted spreadsheet line, already extracted from its raw cells.
type Row struct {
	// Reference is the raw product reference (SKU or barcode) of the row.
	// It is normalized on comparison, not on ingestion.
	Reference string `json:"reference"`

	// Quantity is the signed quantity value. Its meaning (delta or absolute)
	// depends on the sync mode.
	Quantity int `json:"quantity"`

	// LocationID is the destination location identifier. Empty when the row
	// had no resolvable location column; such rows are excluded from the
	// mutation batch but still reconciled.
	LocationID string `json:"location_id"`

	// SaleChannels holds the channel identifiers the product should be
	// published to, in file order. May be empty.
	SaleChannels []string `json:"sale_channels,omitempty"`

	// Line is the 1-based source line, used for warnings.
	Line int `json:"line"`
}

// Variant is a catalog entry fetched from the remote store. Immutable once
// fetched.
type Variant struct {
	// Reference is the variant's value for the identifier type the lookup
	// was performed with (SKU or barcode).
	Reference string `json:"reference"`

	// InventoryItemID is the remote inventory-item GID.
	InventoryItemID string `json:"inventory_item_id"`

	// ProductID is the remote product GID.
	ProductID string `json:"product_id"`
}

// Result is the reconciliation outcome for one upload.
type Result struct {
	// Matched maps normalized reference -> remote variant for every local
	// reference that exists remotely.
	Matched map[string]Variant `json:"matched"`

	// Missing lists unique references present locally but absent remotely,
	// in first-occurrence order.
	Missing []string `json:"missing"`

	// Duplicates lists unique references appearing more than once locally,
	// in second-occurrence order.
	Duplicates []string `json:"duplicates"`
}

// Clean reports whether the result permits mutation: no missing and no
// duplicate references.
func (r *Result) Clean() bool {
	return len(r.Missing) == 0 && len(r.Duplicates) == 0
}
