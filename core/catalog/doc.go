// Package catalog talks to the remote store's GraphQL Admin API.
//
// It provides a thin per-store client plus the three operation families the
// sync flow needs:
//
//   - paginated product-variant lookup by reference list (OR-joined query)
//   - inventory-level activation on a location
//   - quantity mutation and channel publication
//
// # Error model
//
// Any entry under the response's "errors" key and any non-empty "userErrors"
// array on a mutation payload is treated as a failure. Transport problems and
// GraphQL errors surface as a *QueryError; userErrors are folded into one
// through UserErrorsToError.
//
// Calls are synchronous and blocking. There is no retry; a transient failure
// requires the caller to resubmit the whole sync.
package catalog
