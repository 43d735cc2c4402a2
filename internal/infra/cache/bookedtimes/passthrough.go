package bookedtimes

import (
	"context"
	"time"

	"github.com/m04kA/SMC-MarketplaceBooking/pkg/types"
)

// Passthrough используется, когда Redis выключен: читает источник напрямую
type Passthrough struct {
	source Source
}

func NewPassthrough(source Source) *Passthrough {
	return &Passthrough{source: source}
}

func (p *Passthrough) GetBookedTimes(ctx context.Context, providerID string, date time.Time) ([]types.TimeString, error) {
	return p.source.GetBookedTimes(ctx, providerID, date)
}

// Invalidate ничего не делает: кэша нет
func (p *Passthrough) Invalidate(context.Context, string, time.Time) error {
	return nil
}
