package stores

// Config holds configuration for the store registry.
type Config struct {
	// File is the path to the TOML file listing the configured shops.
	File string `mapstructure:"file" default:"config_stores.toml"`
}
