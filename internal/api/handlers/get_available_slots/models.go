package get_available_slots

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-MarketplaceBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-MarketplaceBooking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date          string         `json:"date"` // "2025-10-15"
	ProviderID    string         `json:"providerId"`
	ServiceID     string         `json:"serviceId"`
	OptionID      *string        `json:"optionId,omitempty"`
	DurationHours float64        `json:"durationHours"`
	Slots         []SlotResponse `json:"slots"`
}

// SlotResponse HTTP response model для одного слота
type SlotResponse struct {
	StartTime            string `json:"startTime"`         // "9:00 AM"
	EndTime              string `json:"endTime,omitempty"` // "10:30 AM"
	MayIncurExtraCharges bool   `json:"mayIncurExtraCharges"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(providerID, serviceID, optionID, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, strings.TrimSpace(dateStr))
	if err != nil {
		return nil, err
	}

	req := &getAvailableSlots.Request{
		ProviderID: providerID,
		ServiceID:  serviceID,
		Date:       date,
	}
	if optionID = strings.TrimSpace(optionID); optionID != "" {
		req.OptionID = &optionID
	}
	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			StartTime:            slot.StartTime.String(),
			EndTime:              slot.EndTime.String(),
			MayIncurExtraCharges: slot.MayIncurExtraCharges,
		}
	}

	return &AvailableSlotsResponse{
		Date:          resp.Date.Format(domain.DateFormat),
		ProviderID:    resp.ProviderID,
		ServiceID:     resp.ServiceID,
		OptionID:      resp.OptionID,
		DurationHours: resp.DurationHours,
		Slots:         slots,
	}
}
