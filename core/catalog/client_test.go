package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"stock-sync/core/stores"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testClient builds an httpClient pointed at a local test server.
func testClient(serverURL string) *httpClient {
	store := stores.Store{StoreName: "af-test", APIVersion: "2025-10", AccessToken: "shpat_test"}
	c := NewClient(store, Config{TimeoutSeconds: 5}).(*httpClient)
	c.endpoint = serverURL
	return c
}

func TestClient_Execute(t *testing.T) {
	var gotToken string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-Shopify-Access-Token")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"shop":{"name":"test"}}}`))
	}))
	defer server.Close()

	c := testClient(server.URL)

	var out struct {
		Shop struct {
			Name string `json:"name"`
		} `json:"shop"`
	}
	err := c.Execute(context.Background(), "shop", `query { shop { name } }`, map[string]any{"x": 1}, &out)

	require.NoError(t, err)
	assert.Equal(t, "test", out.Shop.Name)
	assert.Equal(t, "shpat_test", gotToken)
	assert.Equal(t, `query { shop { name } }`, gotBody["query"])
	assert.NotNil(t, gotBody["variables"])
}

func TestClient_Execute_GraphQLErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"errors":[{"message":"Throttled"}]}`))
	}))
	defer server.Close()

	c := testClient(server.URL)

	err := c.Execute(context.Background(), "VariantsByReference", `query {}`, nil, nil)
	require.Error(t, err)

	var qerr *QueryError
	require.ErrorAs(t, err, &qerr)
	assert.Equal(t, "VariantsByReference", qerr.Operation)
	assert.Contains(t, qerr.Error(), "Throttled")
}

func TestClient_Execute_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors":"Invalid API key"}`))
	}))
	defer server.Close()

	c := testClient(server.URL)

	err := c.Execute(context.Background(), "shop", `query {}`, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestUserErrorsToError(t *testing.T) {
	assert.NoError(t, UserErrorsToError("inventoryActivate", nil))

	err := UserErrorsToError("inventoryAdjustQuantities", []UserError{
		{Field: []string{"input", "changes"}, Message: "delta out of range"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inventoryAdjustQuantities")
	assert.Contains(t, err.Error(), "input.changes")
	assert.Contains(t, err.Error(), "delta out of range")
}

func TestGIDHelpers(t *testing.T) {
	assert.Equal(t, "gid://shopify/Location/10", LocationGID("10"))
	assert.Equal(t, "gid://shopify/Location/10", LocationGID("gid://shopify/Location/10"))
	assert.Equal(t, "gid://shopify/Publication/2", PublicationGID("2"))
}
