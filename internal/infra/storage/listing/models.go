package listing

import (
	"github.com/m04kA/SMC-MarketplaceBooking/internal/domain"
	"github.com/m04kA/SMC-MarketplaceBooking/pkg/types"
)

// listingDocument документ коллекции listings
type listingDocument struct {
	ProviderID   string               `bson:"provider_id"`
	Title        string               `bson:"title"`
	Category     string               `bson:"category"`
	Description  string               `bson:"description"`
	Availability availabilityDocument `bson:"availability"`
	Services     []serviceDocument    `bson:"services"`
}

type availabilityDocument struct {
	StartHour int `bson:"start_hour"`
	EndHour   int `bson:"end_hour"`
}

type serviceDocument struct {
	ID          string             `bson:"id"`
	Name        string             `bson:"name"`
	Category    string             `bson:"category"`
	Rate        float64            `bson:"rate"`
	TimeLimit   string             `bson:"time_limit"`
	Materials   []materialDocument `bson:"materials,omitempty"`
	Description string             `bson:"description"`
}

type materialDocument struct {
	ID    string  `bson:"id"`
	Name  string  `bson:"name"`
	Price float64 `bson:"price"`
}

func (d *listingDocument) toDomain(id string) *domain.Listing {
	catalog := make([]domain.ServiceCatalogEntry, 0, len(d.Services))
	for _, s := range d.Services {
		entry := domain.ServiceCatalogEntry{
			ID:          s.ID,
			Name:        s.Name,
			Category:    s.Category,
			Rate:        types.MoneyFromFloat(s.Rate),
			TimeLimit:   s.TimeLimit,
			Description: s.Description,
		}
		if s.Materials != nil {
			entry.Materials = make([]domain.Material, len(s.Materials))
			for i, m := range s.Materials {
				entry.Materials[i] = domain.Material{ID: m.ID, Name: m.Name, Price: types.MoneyFromFloat(m.Price)}
			}
		}
		catalog = append(catalog, entry)
	}

	return &domain.Listing{
		ID:          id,
		ProviderID:  d.ProviderID,
		Title:       d.Title,
		Category:    d.Category,
		Description: d.Description,
		Availability: domain.ProviderAvailability{
			StartHour: d.Availability.StartHour,
			EndHour:   d.Availability.EndHour,
		},
		Catalog: catalog,
	}
}
