package get_customer_bookings

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MarketplaceBooking/internal/api/middleware"
	"github.com/m04kA/SMC-MarketplaceBooking/internal/service/bookings"
	"github.com/m04kA/SMC-MarketplaceBooking/internal/service/bookings/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetCustomerBookings(ctx context.Context, req *models.GetCustomerBookingsRequest) (*models.BookingListResponse, error) {
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
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set(middleware.HeaderUserEmail, "jane@example.com")
	rec := httptest.NewRecorder()
	middleware.Auth(http.HandlerFunc(NewHandler(svc, noopLogger{}).Handle)).ServeHTTP(rec, req)
	return rec
}

func TestHandler_Success(t *testing.T) {
	svc := &mockService{}
	svc.On("GetCustomerBookings", mock.Anything, mock.MatchedBy(func(req *models.GetCustomerBookingsRequest) bool {
		return req.Actor.Email == "jane@example.com" && req.Status != nil && *req.Status == "confirmed"
	})).Return(&models.BookingListResponse{Bookings: []models.BookingResponse{
		{ID: "b2", Status: "confirmed"},
		{ID: "b1", Status: "confirmed"},
	}}, nil)

	rec := serve(svc, "/customers/me/bookings?status=confirmed")
	require.Equal(t, http.StatusOK, rec.Code)

	var body []models.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, "b2", body[0].ID)
	svc.AssertExpectations(t)
}

func TestHandler_EmptyListIsArray(t *testing.T) {
	svc := &mockService{}
	svc.On("GetCustomerBookings", mock.Anything, mock.MatchedBy(func(req *models.GetCustomerBookingsRequest) bool {
		return req.Status == nil
	})).Return(&models.BookingListResponse{Bookings: []models.BookingResponse{}}, nil)

	rec := serve(svc, "/customers/me/bookings")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "bad status", err: fmt.Errorf("%w: unknown status", bookings.ErrInvalidInput), wantStatus: http.StatusBadRequest},
		{name: "storage down", err: fmt.Errorf("%w: x", bookings.ErrStorageUnavailable), wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("GetCustomerBookings", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(svc, "/customers/me/bookings?status=x")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
