// Package database handles the relational database connection.
//
// It provides a wrapper around GORM to properly configure MySQL connections
// based on the application's configuration. The connection is optional: it
// backs the sync audit trail, and the application degrades gracefully when
// no database is reachable.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("Running without audit trail", err)
//	}
package database
