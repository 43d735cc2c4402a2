package listing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/m04kA/SMC-MarketplaceBooking/internal/domain"
)

// Repository источник каталога услуг поверх коллекции MongoDB
type Repository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewRepository создает новый экземпляр репозитория объявлений
func NewRepository(coll *mongo.Collection, timeout time.Duration) *Repository {
	return &Repository{coll: coll, timeout: timeout}
}

// GetListing получает объявление по ID (ObjectID в hex или строковый _id)
func (r *Repository) GetListing(ctx context.Context, listingID string) (*domain.Listing, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	var doc listingDocument
	err := r.coll.FindOne(ctx, idFilter(listingID)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrListingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetListing - listing_id=%s: %v", ErrFindListing, listingID, err)
	}

	return doc.toDomain(listingID), nil
}

func idFilter(listingID string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(listingID); err == nil {
		return bson.M{"_id": oid}
	}
	return bson.M{"_id": listingID}
}
