package get_provider_bookings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MarketplaceBooking/internal/api/middleware"
	"github.com/m04kA/SMC-MarketplaceBooking/internal/domain"
	"github.com/m04kA/SMC-MarketplaceBooking/internal/service/bookings"
	"github.com/m04kA/SMC-MarketplaceBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-MarketplaceBooking/pkg/ptr"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetProviderBookings(ctx context.Context, req *models.GetProviderBookingsRequest) (*models.BookingListResponse, error) {
	args := m.Called(ctx, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*models.BookingListResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func serve(svc BookingService, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/providers/{providerId}/bookings", NewHandler(svc, noopLogger{}).Handle)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	req = req.WithContext(middleware.WithActor(req.Context(), domain.Actor{
		Email:      "owner@provider.com",
		ProviderID: ptr.Ptr("prov-1"),
	}))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestToServiceRequest(t *testing.T) {
	actor := domain.Actor{Email: "owner@provider.com"}

	req, err := ToServiceRequest(actor, "prov-1", "2025-10-20", "confirmed", "true")
	require.NoError(t, err)
	assert.Equal(t, "2025-10-20", ptr.Value(req.Date))
	assert.Equal(t, "confirmed", ptr.Value(req.Status))
	assert.True(t, req.IncludeInactive)

	req, err = ToServiceRequest(actor, "prov-1", "", "", "")
	require.NoError(t, err)
	assert.Nil(t, req.Date)
	assert.False(t, req.IncludeInactive)

	_, err = ToServiceRequest(actor, "prov-1", "", "", "maybe")
	assert.Error(t, err)
}

func TestHandler(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		svc := &mockService{}
		svc.On("GetProviderBookings", mock.Anything, mock.MatchedBy(func(req *models.GetProviderBookingsRequest) bool {
			return req.ProviderID == "prov-1" && ptr.Value(req.Date) == "2025-10-20"
		})).Return(&models.BookingListResponse{Bookings: []models.BookingResponse{{ID: "b1"}}}, nil)

		rec := serve(svc, "/providers/prov-1/bookings?date=2025-10-20")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":"b1"`)
	})

	t.Run("forbidden", func(t *testing.T) {
		svc := &mockService{}
		svc.On("GetProviderBookings", mock.Anything, mock.Anything).Return(nil, bookings.ErrAccessDenied)

		rec := serve(svc, "/providers/prov-2/bookings")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("bad includeInactive", func(t *testing.T) {
		rec := serve(&mockService{}, "/providers/prov-1/bookings?includeInactive=maybe")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid status", func(t *testing.T) {
		svc := &mockService{}
		svc.On("GetProviderBookings", mock.Anything, mock.Anything).Return(nil, bookings.ErrInvalidInput)

		rec := serve(svc, "/providers/prov-1/bookings?status=unknown")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
