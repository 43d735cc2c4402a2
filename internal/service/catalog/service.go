package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-MarketplaceBooking/internal/domain"
	"github.com/m04kA/SMC-MarketplaceBooking/internal/service/catalog/models"
)

// Service сервис для чтения каталога услуг провайдера
type Service struct {
	catalog CatalogSource
	logger  Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalog CatalogSource, logger Logger) *Service {
	return &Service{
		catalog: catalog,
		logger:  logger,
	}
}

// GetServiceOptions возвращает позиции каталога объявления с вычисленной длительностью.
// Публичный метод - используется UI при выборе услуги.
// Позиции, нарушающие инварианты каталога, не показываются.
func (s *Service) GetServiceOptions(ctx context.Context, serviceID string) (*models.ServiceOptionsResponse, error) {
	serviceID = strings.TrimSpace(serviceID)
	s.logger.Info("GetServiceOptions: fetching options for service=%s", serviceID)

	if serviceID == "" {
		return nil, fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}

	listing, err := s.catalog.GetListing(ctx, serviceID)
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			s.logger.Warn("GetServiceOptions: service=%s not found", serviceID)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetServiceOptions: catalog lookup failed for service=%s: %v", serviceID, err)
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	availability := domain.EffectiveWindow(listing.Availability)

	resp := &models.ServiceOptionsResponse{
		ServiceID:  listing.ID,
		ProviderID: listing.ProviderID,
		Title:      listing.Title,
		Availability: models.AvailabilityResponse{
			StartHour: availability.StartHour,
			EndHour:   availability.EndHour,
		},
		Options: make([]models.OptionResponse, 0, len(listing.Catalog)),
	}

	for _, entry := range listing.Catalog {
		if err := entry.Validate(); err != nil {
			s.logger.Warn("GetServiceOptions: skipping entry=%s of service=%s: %v", entry.ID, serviceID, err)
			continue
		}
		resp.Options = append(resp.Options, models.FromDomainEntry(entry))
	}

	s.logger.Info("GetServiceOptions: successfully fetched %d options for service=%s", len(resp.Options), serviceID)
	return resp, nil
}
