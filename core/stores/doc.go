// Package stores holds the per-store catalog configuration.
//
// Each configured store carries the display title, the remote store name,
// the API version and the access credential used to talk to its catalog.
// The table is loaded once at startup from a TOML file (config_stores.toml)
// into an immutable Registry that is passed into request handlers; there is
// no ambient global state.
//
// # File format
//
//	[stores.murphy]
//	TITLE = "Murphy"
//	STORE_NAME = "af-murphy"
//	API_VERSION = "2025-10"
//	ACCESS_TOKEN = "shpat_xxx"
//
// The Registry never exposes credentials through listing APIs; only the
// catalog client reads the access token.
package stores
