package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/hilexa-hlxa/SafeRoute/internal/domain"
)

type ctxKey string

const identityKey ctxKey = "identity"

// WithIdentity extracts the caller identity the gateway attaches as
// headers. Requests without a valid X-User-ID are rejected: the gateway
// always sets it for authenticated traffic.
func WithIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(r.Header.Get("X-User-ID"))
		if err != nil || userID == uuid.Nil {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		identity := domain.Identity{
			UserID:  userID,
			IsAdmin: r.Header.Get("X-User-Role") == "admin",
		}

		ctx := context.WithValue(r.Context(), identityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Identity returns the caller identity stored by WithIdentity.
func Identity(ctx context.Context) (domain.Identity, bool) {
	id, ok := ctx.Value(identityKey).(domain.Identity)
	return id, ok
}
