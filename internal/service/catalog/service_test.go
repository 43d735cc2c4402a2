package catalog

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MarketplaceBooking/internal/domain"
	"github.com/m04kA/SMC-MarketplaceBooking/pkg/types"
)

type mockCatalog struct {
	mock.Mock
}

func (m *mockCatalog) GetListing(ctx context.Context, listingID string) (*domain.Listing, error) {
	args := m.Called(ctx, listingID)
	if l := args.Get(0); l != nil {
		return l.(*domain.Listing), args.Error(1)
	}
	return nil, args.Error(1)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestService_GetServiceOptions(t *testing.T) {
	listing := &domain.Listing{
		ID:           "listing-1",
		ProviderID:   "prov-1",
		Title:        "Home cleaning",
		Availability: domain.ProviderAvailability{StartHour: 20, EndHour: 8},
		Catalog: []domain.ServiceCatalogEntry{
			{ID: "basic", Name: "Basic", Rate: types.Money(8000), TimeLimit: "1.5 hours"},
			{ID: "deep", Name: "Deep", Rate: types.Money(15000), TimeLimit: "all day",
				Materials: []domain.Material{{ID: "eco", Name: "Eco kit", Price: types.Money(1250)}}},
			{ID: "broken", Name: "Broken", Rate: types.Money(5000), Materials: []domain.Material{}},
		},
	}

	catalog := &mockCatalog{}
	catalog.On("GetListing", mock.Anything, "listing-1").Return(listing, nil)

	resp, err := NewService(catalog, noopLogger{}).GetServiceOptions(context.Background(), " listing-1 ")
	require.NoError(t, err)

	assert.Equal(t, "prov-1", resp.ProviderID)
	assert.Equal(t, 9, resp.Availability.StartHour)
	assert.Equal(t, 17, resp.Availability.EndHour)

	require.Len(t, resp.Options, 2)
	assert.Equal(t, 1.5, resp.Options[0].DurationHours)
	assert.Equal(t, 90, resp.Options[0].DurationMinutes)
	assert.Equal(t, 80.0, resp.Options[0].Rate)

	assert.Equal(t, 1.0, resp.Options[1].DurationHours)
	require.Len(t, resp.Options[1].Materials, 1)
	assert.Equal(t, 12.5, resp.Options[1].Materials[0].Price)
}

func TestService_GetServiceOptions_Errors(t *testing.T) {
	tests := []struct {
		name      string
		serviceID string
		lookupErr error
		wantErr   error
	}{
		{name: "empty id", serviceID: "  ", wantErr: ErrInvalidInput},
		{name: "not found", serviceID: "x", lookupErr: fmt.Errorf("mongo: %w", domain.ErrListingNotFound), wantErr: ErrServiceNotFound},
		{name: "catalog down", serviceID: "x", lookupErr: errors.New("timeout"), wantErr: ErrCatalogUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := &mockCatalog{}
			catalog.On("GetListing", mock.Anything, mock.Anything).Return(nil, tt.lookupErr)

			_, err := NewService(catalog, noopLogger{}).GetServiceOptions(context.Background(), tt.serviceID)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
