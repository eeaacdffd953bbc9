package geo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/countries/positions", r.URL.Path)
		_, _ = w.Write([]byte(`{"error":false,"data":[{"name":"Sri Lanka"},{"name":"Singapore"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	countries, err := client.Countries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Sri Lanka", "Singapore"}, countries)
}

func TestSubdivisions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/countries/states", r.URL.Path)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Sri Lanka", payload["country"])

		_, _ = w.Write([]byte(`{"error":false,"data":{"name":"Sri Lanka","states":[{"name":"Western","state_code":"1"},{"name":"Central","state_code":"2"}]}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	states, err := client.Subdivisions(context.Background(), "Sri Lanka")
	require.NoError(t, err)
	assert.Equal(t, []string{"Western", "Central"}, states)
}

func TestSubdivisionsUnknownCountryIsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":false,"data":{"name":"Atlantis","states":[]}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	states, err := client.Subdivisions(context.Background(), "Atlantis")
	require.NoError(t, err)
	assert.Empty(t, states)
}

func TestSubdivisionsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	_, err := client.Subdivisions(context.Background(), "Sri Lanka")
	assert.Error(t, err)
}

func TestCurrenciesDedupesAndUppercases(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":false,"data":[{"name":"Sri Lanka","currency":"lkr"},{"name":"France","currency":"EUR"},{"name":"Germany","currency":"EUR"},{"name":"Nowhere","currency":""}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	assert.Equal(t, []string{"LKR", "EUR"}, client.Currencies(context.Background()))
}

func TestCurrenciesFallbackOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	assert.Equal(t, FallbackCurrencies(), client.Currencies(context.Background()))
}
