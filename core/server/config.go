package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimitMB caps the size of uploaded spreadsheets, in megabytes.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"25"`
}

// BodyLimit returns the request body size limit in bytes, falling back to
// the default when the configured value is missing or invalid.
func (c Config) BodyLimit() int {
	mb := c.BodyLimitMB
	if mb <= 0 {
		mb = 25
	}
	return mb * 1024 * 1024
}
