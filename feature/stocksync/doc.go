// Package stocksync implements the spreadsheet-driven inventory sync flow.
//
// A previously uploaded spreadsheet is parsed into reference/quantity rows,
// validated against the remote catalog of the selected shop, and — only when
// every row matches exactly one variant — pushed as quantity adjustments in
// fixed-size sequential batches.
//
// # Pipeline
//
//  1. Fetch the spreadsheet from object storage.
//  2. Parse it (CSV or Excel) into normalized rows.
//  3. Resolve the identifier type (sku or barcode).
//  4. Look the references up in the remote catalog.
//  5. Reconcile: any missing or duplicated reference blocks the push.
//  6. Activate inventory levels, publish sales channels, adjust quantities.
//
// The validation gate is all-or-nothing: a single missing or duplicated
// reference means no mutation is sent at all. Batches that were already
// applied when a later batch fails are not rolled back.
package stocksync
