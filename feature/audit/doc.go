// Package audit persists a trail of sync runs in the relational database.
//
// The trail is optional: when no database connection is available the
// service degrades to a no-op recorder and the rest of the application
// keeps working. Each entry captures which shop was targeted, which file
// was pushed, and how the run ended.
package audit
