package domain

import (
	"github.com/m04kA/SMC-MarketplaceBooking/pkg/types"
)

// ProviderAvailability ежедневное рабочее окно провайдера (часы, локальное время провайдера)
type ProviderAvailability struct {
	StartHour int
	EndHour   int
}

// IsValid returns true if the window is a proper [start, end) range within a day
func (a ProviderAvailability) IsValid() bool {
	return a.StartHour >= MinHour && a.EndHour <= MaxHour && a.StartHour < a.EndHour
}

// Material дополнительный материал, который клиент может выбрать к услуге
type Material struct {
	ID    string
	Name  string
	Price types.Money
}

// ServiceCatalogEntry одна позиция каталога провайдера
type ServiceCatalogEntry struct {
	ID          string
	Name        string
	Category    string
	Rate        types.Money
	TimeLimit   string    // "1.5 hours"
	Materials   []Material // nil = материалы не предлагаются
	Description string
}

// Validate проверяет инварианты позиции каталога
func (e *ServiceCatalogEntry) Validate() error {
	if e.Rate.IsNegative() {
		return ErrNegativeRate
	}
	if e.Materials != nil && len(e.Materials) == 0 {
		return ErrEmptyMaterials
	}
	for _, m := range e.Materials {
		if m.Price.IsNegative() {
			return ErrNegativeMaterialPrice
		}
	}
	return nil
}

// FindMaterial ищет материал по ID
func (e *ServiceCatalogEntry) FindMaterial(id string) (*Material, bool) {
	for i := range e.Materials {
		if e.Materials[i].ID == id {
			return &e.Materials[i], true
		}
	}
	return nil, false
}

// Listing объявление провайдера: рабочее окно и каталог услуг
type Listing struct {
	ID           string
	ProviderID   string
	Title        string
	Category     string
	Description  string
	Availability ProviderAvailability
	Catalog      []ServiceCatalogEntry
}

// FindEntry ищет позицию каталога по ID
func (l *Listing) FindEntry(id string) (*ServiceCatalogEntry, bool) {
	for i := range l.Catalog {
		if l.Catalog[i].ID == id {
			return &l.Catalog[i], true
		}
	}
	return nil, false
}
