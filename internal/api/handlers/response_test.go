package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MarketplaceBooking/internal/domain"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   domain.ErrorKind
		wantOK     bool
	}{
		{
			name:       "missing address",
			err:        fmt.Errorf("%w: line1", domain.NewValidationError(domain.KindMissingAddress, "address")),
			wantStatus: http.StatusBadRequest,
			wantKind:   domain.KindMissingAddress,
			wantOK:     true,
		},
		{
			name:       "service not found",
			err:        domain.NewValidationError(domain.KindServiceNotFound, "service"),
			wantStatus: http.StatusNotFound,
			wantKind:   domain.KindServiceNotFound,
			wantOK:     true,
		},
		{
			name:       "slot taken",
			err:        domain.NewConflictError(domain.KindSlotTaken, "taken"),
			wantStatus: http.StatusConflict,
			wantKind:   domain.KindSlotTaken,
			wantOK:     true,
		},
		{
			name:       "storage unavailable",
			err:        fmt.Errorf("%w: dial tcp", domain.NewTransientError(domain.KindStorageUnavailable, "storage")),
			wantStatus: http.StatusServiceUnavailable,
			wantKind:   domain.KindStorageUnavailable,
			wantOK:     true,
		},
		{
			name:   "unclassified",
			err:    errors.New("boom"),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, kind, ok := StatusFromError(tt.err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantKind, kind)
		})
	}
}

func TestRespondClassified_Transient(t *testing.T) {
	rec := httptest.NewRecorder()

	ok := RespondClassified(rec, domain.NewTransientError(domain.KindCatalogLookupTimeout, "x"), "повторите позже")
	require.True(t, ok)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "catalog_lookup_timeout", body.Code)
	assert.Equal(t, "повторите позже", body.Error)
}

func TestRespondClassified_Unclassified(t *testing.T) {
	rec := httptest.NewRecorder()
	assert.False(t, RespondClassified(rec, errors.New("boom"), "x"))
	assert.Zero(t, rec.Body.Len())
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a"}`))
	require.NoError(t, DecodeJSON(req, &v))
	assert.Equal(t, "a", v.Name)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a","extra":1}`))
	assert.Error(t, DecodeJSON(req, &v))
}
