package catalog

import (
	"fmt"
	"strings"
)

// GraphQLError is one entry of a response's top-level "errors" array.
type GraphQLError struct {
	Message string `json:"message"`
}

// UserError is one entry of a mutation payload's "userErrors" array.
type UserError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}

// QueryError reports a failed API call: either a transport problem or
// GraphQL-level errors returned by the remote.
type QueryError struct {
	// Operation names the call that failed (e.g. "inventoryAdjustQuantities").
	Operation string
	// Errors holds the GraphQL errors, if any.
	Errors []GraphQLError
	// Err holds the underlying transport or decoding error, if any.
	Err error
}

func (e *QueryError) Error() string {
	if len(e.Errors) > 0 {
		msgs := make([]string, 0, len(e.Errors))
		for _, ge := range e.Errors {
			msgs = append(msgs, ge.Message)
		}
		return fmt.Sprintf("%s: graphql errors: %s", e.Operation, strings.Join(msgs, "; "))
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("%s: query failed", e.Operation)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// UserErrorsToError folds a mutation's userErrors array into a single error.
// An empty array returns nil.
func UserErrorsToError(operation string, errs []UserError) error {
	if len(errs) == 0 {
		return nil
	}
	msgs := make([]string, 0, len(errs))
	for _, ue := range errs {
		if len(ue.Field) > 0 {
			msgs = append(msgs, fmt.Sprintf("%s: %s", strings.Join(ue.Field, "."), ue.Message))
		} else {
			msgs = append(msgs, ue.Message)
		}
	}
	return fmt.Errorf("%s: user errors: %s", operation, strings.Join(msgs, "; "))
}
