// Package reconcile matches uploaded spreadsheet rows against the remote
// catalog's product-variant set.
//
// It is the algorithmic core of the service: given the local rows and the
// variants fetched from the remote catalog, it produces a matched set, the
// references that are missing remotely, and the references duplicated within
// the upload itself.
//
// # Normalization
//
// Local and remote references must go through the same Normalize function
// before comparison, otherwise mixed-type spreadsheet cells (123 vs "123" vs
// 123.0) silently fail to match. Absent values map to the EmptyReference
// sentinel so they participate predictably in set operations.
//
// # Identifier detection
//
// DetectIdentifierType decides whether a batch of raw references should be
// looked up as barcodes or SKUs. It is a sampling heuristic; an explicit
// barcode column in the source file always takes precedence.
package reconcile
