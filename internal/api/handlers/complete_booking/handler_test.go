package complete_booking

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-MarketplaceBooking/internal/api/middleware"
	"github.com/m04kA/SMC-MarketplaceBooking/internal/domain"
	"github.com/m04kA/SMC-MarketplaceBooking/internal/service/bookings"
	"github.com/m04kA/SMC-MarketplaceBooking/internal/service/bookings/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Complete(ctx context.Context, bookingID string, actor domain.Actor) (*models.ApplyEventResponse, error) {
	args := m.Called(ctx, bookingID, actor)
	if resp := args.Get(0); resp != nil {
		return resp.(*models.ApplyEventResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func serve(svc BookingService) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Handle("/bookings/{bookingId}/complete", middleware.Auth(http.HandlerFunc(NewHandler(svc, noopLogger{}).Handle)))

	req := httptest.NewRequest(http.MethodPatch, "/bookings/b1/complete", nil)
	req.Header.Set(middleware.HeaderUserEmail, "owner@provider.com")
	req.Header.Set(middleware.HeaderProviderID, "prov-1")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name       string
		resp       *models.ApplyEventResponse
		err        error
		wantStatus int
	}{
		{name: "completed", resp: &models.ApplyEventResponse{Booking: &models.BookingResponse{ID: "b1", Status: "completed"}, Applied: true}, wantStatus: http.StatusOK},
		{name: "not found", err: bookings.ErrBookingNotFound, wantStatus: http.StatusNotFound},
		{name: "customer cannot complete", err: bookings.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{name: "unpaid booking", err: fmt.Errorf("%w: pending", domain.ErrInvalidTransition), wantStatus: http.StatusConflict},
		{name: "storage down", err: fmt.Errorf("%w: x", bookings.ErrStorageUnavailable), wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("Complete", mock.Anything, "b1", mock.MatchedBy(func(a domain.Actor) bool {
				return a.IsProvider("prov-1")
			})).Return(tt.resp, tt.err)

			rec := serve(svc)
			assert.Equal(t, tt.wantStatus, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}
