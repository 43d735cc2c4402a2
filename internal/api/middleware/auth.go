package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-MarketplaceBooking/internal/api/handlers"
	"github.com/m04kA/SMC-MarketplaceBooking/internal/domain"
)

const (
	// HeaderUserEmail email аутентифицированного пользователя (проставляет gateway)
	HeaderUserEmail = "X-User-Email"
	// HeaderProviderID ID провайдера, от имени которого действует пользователь
	HeaderProviderID = "X-Provider-ID"

	msgMissingUserEmail = "отсутствует email пользователя"
)

type contextKey string

const actorKey contextKey = "actor"

// Auth требует заголовок X-User-Email и кладет domain.Actor в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email := strings.TrimSpace(r.Header.Get(HeaderUserEmail))
		if email == "" || !strings.Contains(email, "@") {
			handlers.RespondUnauthorized(w, msgMissingUserEmail)
			return
		}

		actor := domain.Actor{Email: email}
		if providerID := strings.TrimSpace(r.Header.Get(HeaderProviderID)); providerID != "" {
			actor.ProviderID = &providerID
		}

		next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
	})
}

// WithActor кладет actor в контекст
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// GetActor достает actor из контекста
func GetActor(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(domain.Actor)
	return actor, ok
}
