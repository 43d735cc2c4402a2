package domain

import "strings"

// Actor аутентифицированный участник запроса.
// Email есть всегда, ProviderID только у провайдеров.
type Actor struct {
	Email      string
	ProviderID *string
}

// IsProvider true, если actor действует от имени провайдера providerID
func (a Actor) IsProvider(providerID string) bool {
	return a.ProviderID != nil && *a.ProviderID != "" && *a.ProviderID == providerID
}

// CanView true, если actor - клиент бронирования или его провайдер
func (a Actor) CanView(b *Booking) bool {
	return b.IsOwnedBy(a.Email) || a.IsProvider(b.ProviderID)
}

// NormalizedEmail email в нижнем регистре без пробелов
func (a Actor) NormalizedEmail() string {
	return strings.ToLower(strings.TrimSpace(a.Email))
}
