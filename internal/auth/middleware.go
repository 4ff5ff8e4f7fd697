package auth

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/earenas/taskboard/internal/apperr"
	"github.com/earenas/taskboard/internal/models"
	"github.com/earenas/taskboard/internal/monitoring"
)

// UserStore resolves a token subject to a stored user.
type UserStore interface {
	GetUserByUsername(username string) (models.User, error)
}

type contextKey string

const userContextKey = contextKey("authUser")

// Middleware creates a middleware for protecting routes. Every request is
// re-validated and re-queried; nothing is cached across requests. All
// credential failures collapse to a single 401 so callers cannot tell a
// missing token from an expired, forged or unknown one. A disabled user is
// rejected with 400 after the credential checks out.
func Middleware(tokens *TokenService, users UserStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := ExtractToken(r)
			if !ok {
				reject(w, apperr.New(apperr.Unauthenticated, "Could not validate credentials"), "missing_credential")
				return
			}

			subject, err := tokens.Validate(token)
			if err != nil {
				reject(w, err, "invalid_token")
				return
			}

			user, err := users.GetUserByUsername(subject)
			if err != nil {
				if apperr.IsKind(err, apperr.NotFound) {
					reject(w, apperr.New(apperr.Unauthenticated, "Could not validate credentials"), "unknown_subject")
					return
				}
				log.Error().Err(err).Str("username", subject).Msg("User lookup failed during authentication")
				apperr.WriteHTTP(w, err)
				return
			}

			if user.IsDisabled {
				reject(w, apperr.New(apperr.InactiveUser, "Inactive user"), "inactive_user")
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func reject(w http.ResponseWriter, err error, reason string) {
	monitoring.AuthFailuresTotal.WithLabelValues(reason).Inc()
	log.Warn().Str("reason", reason).Msg("Rejected unauthenticated request")
	apperr.WriteHTTP(w, err)
}

// UserFromContext returns the authenticated user stored by Middleware.
func UserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(userContextKey).(models.User)
	return user, ok
}
