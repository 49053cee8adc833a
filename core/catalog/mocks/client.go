package mocks

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of catalog.Client.
type Client struct {
	mock.Mock
}

func (m *Client) Execute(ctx context.Context, operation, query string, variables map[string]any, out any) error {
	args := m.Called(ctx, operation, query, variables, out)
	return args.Error(0)
}

// Respond returns a Run function that decodes the given JSON fixture into
// the call's output argument, simulating a successful API response body's
// "data" object.
func Respond(fixture string) func(args mock.Arguments) {
	return func(args mock.Arguments) {
		out := args.Get(4)
		if out == nil {
			return
		}
		_ = json.Unmarshal([]byte(fixture), out)
	}
}
