// ABOUTME: Tests for the backend submission client
// ABOUTME: Covers success decoding and the transport/malformed error taxonomy
package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickflip/quickflip/models"
)

func newTestClient(serverURL string) *Client {
	c := NewClient(serverURL)
	c.SetLogger(log.New(io.Discard))
	return c
}

func minimalInput() *models.PropertyInput {
	return &models.PropertyInput{
		OwnerName:    "Jane Doe",
		Address:      "1 Main St",
		City:         "Springfield",
		State:        "IL",
		ZipCode:      "62701",
		PropertyType: models.PropertySingleFamily,
		AskingPrice:  150000,
	}
}

func TestSubmitPropertySuccess(t *testing.T) {
	var gotPath, gotContentType, gotRequestID string
	var gotBody map[string]json.RawMessage

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotRequestID = r.Header.Get("X-Request-ID")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"deal_id":"d1","rank":"B","analysis":{"mao":120000,"discount_pct":20},"matched_buyers":[]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	deal, err := client.SubmitProperty(context.Background(), minimalInput())
	require.NoError(t, err)

	assert.Equal(t, "d1", deal.DealID)
	assert.Equal(t, "B", deal.Rank)
	assert.Equal(t, float64(120000), deal.Analysis["mao"])
	assert.Empty(t, deal.MatchedBuyers)

	assert.Equal(t, "/properties", gotPath)
	assert.Equal(t, "application/json", gotContentType)
	assert.NotEmpty(t, gotRequestID)
	assert.Equal(t, "150000", string(gotBody["asking_price"]))
	assert.Equal(t, "null", string(gotBody["bedrooms"]))
	assert.Equal(t, "0", string(gotBody["repair_cost"]))
}

func TestSubmitPropertyServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("internal error"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	deal, err := client.SubmitProperty(context.Background(), minimalInput())
	require.Error(t, err)
	assert.Nil(t, deal)

	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, http.StatusInternalServerError, terr.StatusCode)
	assert.Equal(t, "internal error", terr.Message)
	assert.Equal(t, "internal error", err.Error())
}

func TestSubmitPropertyServerErrorWithoutBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.SubmitProperty(context.Background(), minimalInput())

	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, fallbackErrorMessage, terr.Message)
}

func TestSubmitPropertyNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	client := newTestClient(server.URL)
	_, err := client.SubmitProperty(context.Background(), minimalInput())

	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, fallbackErrorMessage, terr.Message)
	assert.NotNil(t, errors.Unwrap(terr))
}

func TestSubmitPropertyMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.SubmitProperty(context.Background(), minimalInput())

	var merr *MalformedResponseError
	require.ErrorAs(t, err, &merr)

	var terr *TransportError
	assert.False(t, errors.As(err, &terr), "malformed response must not be a transport error")
}

func TestSubmitPropertyMissingDealID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"rank":"A"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.SubmitProperty(context.Background(), minimalInput())

	var merr *MalformedResponseError
	require.ErrorAs(t, err, &merr)
}

func TestSubmitPropertyOneRequestPerCall(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.SubmitProperty(context.Background(), minimalInput())
	require.Error(t, err)

	assert.Equal(t, 1, requests, "no automatic retries")
}

func TestNewClientTrimsTrailingSlash(t *testing.T) {
	client := newTestClient("http://localhost:8000/")
	assert.Equal(t, "http://localhost:8000", client.BaseURL())
}
