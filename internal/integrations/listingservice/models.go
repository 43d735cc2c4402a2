package listingservice

import (
	"github.com/m04kA/SMC-MarketplaceBooking/internal/domain"
	"github.com/m04kA/SMC-MarketplaceBooking/pkg/types"
)

// Listing модель объявления из ListingService
type Listing struct {
	ID           string       `json:"id"`
	ProviderID   string       `json:"provider_id"`
	Title        string       `json:"title"`
	Category     string       `json:"category"`
	Description  string       `json:"description"`
	Availability Availability `json:"availability"`
	Services     []Service    `json:"services"`
}

type Availability struct {
	StartHour int `json:"start_hour"`
	EndHour   int `json:"end_hour"`
}

// Service позиция каталога; цены в валюте, два знака после запятой
type Service struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Rate        float64    `json:"rate"`
	TimeLimit   string     `json:"time_limit"`
	Materials   []Material `json:"materials,omitempty"`
	Description string     `json:"description"`
}

type Material struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ErrorResponse модель ошибки от ListingService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (l *Listing) toDomain() *domain.Listing {
	catalog := make([]domain.ServiceCatalogEntry, 0, len(l.Services))
	for _, s := range l.Services {
		entry := domain.ServiceCatalogEntry{
			ID:          s.ID,
			Name:        s.Name,
			Category:    s.Category,
			Rate:        types.MoneyFromFloat(s.Rate),
			TimeLimit:   s.TimeLimit,
			Description: s.Description,
		}
		if s.Materials != nil {
			entry.Materials = make([]domain.Material, 0, len(s.Materials))
			for _, m := range s.Materials {
				entry.Materials = append(entry.Materials, domain.Material{
					ID:    m.ID,
					Name:  m.Name,
					Price: types.MoneyFromFloat(m.Price),
				})
			}
		}
		catalog = append(catalog, entry)
	}

	return &domain.Listing{
		ID:          l.ID,
		ProviderID:  l.ProviderID,
		Title:       l.Title,
		Category:    l.Category,
		Description: l.Description,
		Availability: domain.ProviderAvailability{
			StartHour: l.Availability.StartHour,
			EndHour:   l.Availability.EndHour,
		},
		Catalog: catalog,
	}
}
