package listingservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MarketplaceBooking/internal/domain"
	"github.com/m04kA/SMC-MarketplaceBooking/pkg/logger"
	"github.com/m04kA/SMC-MarketplaceBooking/pkg/types"
)

const listingJSON = `{
	"id": "listing-1",
	"provider_id": "prov-1",
	"title": "Deep cleaning",
	"category": "cleaning",
	"availability": {"start_hour": 9, "end_hour": 17},
	"services": [
		{"id": "opt-1", "name": "Kitchen", "rate": 80.5, "time_limit": "1.5 hours",
		 "materials": [{"id": "m-1", "name": "Eco detergent", "price": 12.99}]},
		{"id": "opt-2", "name": "Windows", "rate": 40, "time_limit": "whenever"}
	]
}`

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, time.Second, logger.NewNop())
}

func TestClient_GetListing(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/listings/listing-1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(listingJSON))
	})

	listing, err := client.GetListing(context.Background(), "listing-1")
	require.NoError(t, err)

	assert.Equal(t, "prov-1", listing.ProviderID)
	assert.Equal(t, domain.ProviderAvailability{StartHour: 9, EndHour: 17}, listing.Availability)
	require.Len(t, listing.Catalog, 2)

	kitchen := listing.Catalog[0]
	assert.Equal(t, types.Money(8050), kitchen.Rate)
	assert.Equal(t, "1.5 hours", kitchen.TimeLimit)
	require.Len(t, kitchen.Materials, 1)
	assert.Equal(t, types.Money(1299), kitchen.Materials[0].Price)

	assert.Nil(t, listing.Catalog[1].Materials)
}

func TestClient_GetListing_NotFound(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetListing(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrListingNotFound)
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestClient_GetListing_Errors(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/internal/listings/broken" {
			_, _ = w.Write([]byte("{not json"))
			return
		}
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.GetListing(context.Background(), "broken")
	assert.ErrorIs(t, err, ErrInvalidResponse)

	_, err = client.GetListing(context.Background(), "listing-1")
	assert.ErrorIs(t, err, ErrInvalidResponse)
	assert.NotErrorIs(t, err, domain.ErrListingNotFound)
}

func TestClient_GetListing_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 20*time.Millisecond, logger.NewNop())

	_, err := client.GetListing(context.Background(), "listing-1")
	assert.ErrorIs(t, err, ErrInternal)
}
