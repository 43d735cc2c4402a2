package models

import "github.com/m04kA/SMC-MarketplaceBooking/internal/domain"

// MaterialResponse материал, доступный к услуге
type MaterialResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// OptionResponse позиция каталога с вычисленной длительностью
type OptionResponse struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Category        string             `json:"category,omitempty"`
	Description     string             `json:"description,omitempty"`
	TimeLimit       string             `json:"timeLimit"`
	DurationHours   float64            `json:"durationHours"`
	DurationMinutes int                `json:"durationMinutes"`
	Rate            float64            `json:"rate"`
	Materials       []MaterialResponse `json:"materials,omitempty"`
}

// AvailabilityResponse рабочее окно провайдера
type AvailabilityResponse struct {
	StartHour int `json:"startHour"`
	EndHour   int `json:"endHour"`
}

// ServiceOptionsResponse позиции каталога объявления
type ServiceOptionsResponse struct {
	ServiceID    string               `json:"serviceId"`
	ProviderID   string               `json:"providerId"`
	Title        string               `json:"title"`
	Availability AvailabilityResponse `json:"availability"`
	Options      []OptionResponse     `json:"options"`
}

// FromDomainEntry конвертирует позицию каталога в DTO
func FromDomainEntry(entry domain.ServiceCatalogEntry) OptionResponse {
	option := domain.ResolveServiceOption(entry)

	resp := OptionResponse{
		ID:              entry.ID,
		Name:            entry.Name,
		Category:        entry.Category,
		Description:     entry.Description,
		TimeLimit:       entry.TimeLimit,
		DurationHours:   option.DurationHours,
		DurationMinutes: option.DurationMinutes,
		Rate:            option.Rate.Float(),
	}

	for _, m := range entry.Materials {
		resp.Materials = append(resp.Materials, MaterialResponse{
			ID:    m.ID,
			Name:  m.Name,
			Price: m.Price.Float(),
		})
	}

	return resp
}
