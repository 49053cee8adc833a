package catalog

// Config holds configuration for the remote catalog client.
type Config struct {
	// TimeoutSeconds is the HTTP timeout for a single API call.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// PageSize is the page size for paginated variant lookups.
	PageSize int `mapstructure:"page_size" default:"250"`
	// BatchLimit caps how many quantity changes go into one mutation call.
	BatchLimit int `mapstructure:"batch_limit" default:"250"`
	// DefaultIdentifier is the identifier type assumed when neither the file
	// nor the caller decides one ("sku" or "barcode"). The content heuristic
	// still runs on top of it; an explicit barcode column always wins.
	DefaultIdentifier string `mapstructure:"default_identifier" default:"sku"`
}
