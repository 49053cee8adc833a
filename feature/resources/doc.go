// Package resources manages the uploaded spreadsheets in object storage.
//
// Files are uploaded via multipart form, stored under a timestamped
// lower-case name so repeated uploads of the same file never collide, and
// later referenced by that stored name when a sync run is started.
package resources
