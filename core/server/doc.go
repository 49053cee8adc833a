// Package server holds the HTTP server configuration.
//
// The main application entry point handles the server startup; this package
// defines the configuration structure for it: the listen port, the API key
// protecting the routes, and the upload body limit.
package server
