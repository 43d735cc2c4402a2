package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/m04kA/SMC-MarketplaceBooking/pkg/types"
)

func TestIDFilter(t *testing.T) {
	oid := primitive.NewObjectID()

	assert.Equal(t, bson.M{"_id": oid}, idFilter(oid.Hex()))
	assert.Equal(t, bson.M{"_id": "listing-1"}, idFilter("listing-1"))
}

func TestListingDocument_Decode(t *testing.T) {
	raw, err := bson.Marshal(bson.M{
		"_id":          primitive.NewObjectID(),
		"provider_id":  "prov-1",
		"title":        "Lawn care",
		"availability": bson.M{"start_hour": 8, "end_hour": 12},
		"services": bson.A{
			bson.M{"id": "opt-1", "name": "Mowing", "rate": 55.25, "time_limit": "2 hours",
				"materials": bson.A{bson.M{"id": "m-1", "name": "Fertilizer", "price": 9.5}}},
			bson.M{"id": "opt-2", "name": "Edging", "rate": 20.0},
		},
	})
	require.NoError(t, err)

	var doc listingDocument
	require.NoError(t, bson.Unmarshal(raw, &doc))

	listing := doc.toDomain("listing-1")

	assert.Equal(t, "listing-1", listing.ID)
	assert.Equal(t, "prov-1", listing.ProviderID)
	assert.Equal(t, 8, listing.Availability.StartHour)
	assert.Equal(t, 12, listing.Availability.EndHour)
	require.Len(t, listing.Catalog, 2)

	mowing, ok := listing.FindEntry("opt-1")
	require.True(t, ok)
	assert.Equal(t, types.Money(5525), mowing.Rate)
	material, ok := mowing.FindMaterial("m-1")
	require.True(t, ok)
	assert.Equal(t, types.Money(950), material.Price)

	edging, ok := listing.FindEntry("opt-2")
	require.True(t, ok)
	assert.Empty(t, edging.TimeLimit)
	assert.Nil(t, edging.Materials)
}
