package payments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSession(t *testing.T) {
	var got sessionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/create-payment-intent", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"clientSecret":"cs_test_123"}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, "developerhorizon")
	require.NoError(t, err)

	secret, err := c.CreateSession(context.Background(), 5999, "usd")
	require.NoError(t, err)
	assert.Equal(t, "cs_test_123", secret)
	assert.Equal(t, "developerhorizon", got.StoreID)
	assert.Equal(t, int64(5999), got.Amount)
	assert.Equal(t, "usd", got.Currency)
}

func TestCreateSession_EmptySecret(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, "developerhorizon")
	require.NoError(t, err)

	_, err = c.CreateSession(context.Background(), 100, "usd")
	require.Error(t, err)
}

func TestCreateSession_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, err := New(srv.URL, "developerhorizon")
	require.NoError(t, err)

	_, err = c.CreateSession(context.Background(), 100, "usd")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}
