package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-MarketplaceBooking/pkg/ptr"
	"github.com/m04kA/SMC-MarketplaceBooking/pkg/types"
)

func TestCalculateTotalPrice(t *testing.T) {
	assert.Equal(t, types.Money(8000), CalculateTotalPrice(8000, nil))
	assert.Equal(t, types.Money(9500), CalculateTotalPrice(8000, ptr.Ptr(types.Money(1500))))
}

func TestAddress_IsComplete(t *testing.T) {
	full := Address{Line1: "1 Main St", City: "Springfield", State: "IL", Zip: "62701"}
	assert.True(t, full.IsComplete())

	missingZip := full
	missingZip.Zip = "  "
	assert.False(t, missingZip.IsComplete())

	missingLine1 := full
	missingLine1.Line1 = ""
	assert.False(t, missingLine1.IsComplete())
}

func TestBooking_Ownership(t *testing.T) {
	b := &Booking{ProviderID: "p1", CustomerEmail: "Jane@Example.com", Status: StatusConfirmed}

	assert.True(t, b.IsOwnedBy("jane@example.com"))
	assert.False(t, b.IsOwnedBy(""))
	assert.True(t, b.BelongsToProvider("p1"))
	assert.False(t, b.BelongsToProvider("p2"))
	assert.True(t, b.HoldsSlot())

	b.Status = StatusCompleted
	assert.False(t, b.HoldsSlot())
	assert.True(t, b.IsTerminal())
}
