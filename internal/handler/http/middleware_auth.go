package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
)

// authTokenHeader is the custom header carrying the raw auth token. There is
// no scheme prefix: the header value is the token itself.
const authTokenHeader = "x-auth"

// auth is an HTTP middleware that enforces token-based authentication.
//
// It reads the x-auth header and resolves it to a user via
// [service.AuthService.Authenticate]: the signature and claims must verify,
// the purpose must be "auth", and the exact token string must still be
// present in the owner's token list. On success the resolved user and the
// raw token are stored in the request context under [utils.UserCtxKey] and
// [utils.TokenCtxKey] before delegating to the next handler.
//
// Every failure mode — absent header, malformed or expired token, revoked
// token, unknown owner — rejects the request with HTTP 401 Unauthorized and
// no handler is invoked.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString := r.Header.Get(authTokenHeader)
		if tokenString == "" {
			log.Err(ErrMissingAuthToken).Send()
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()

		user, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("token authentication failed")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		// Store the authenticated user and the raw token in the context so
		// that downstream handlers can retrieve them without re-parsing.
		ctx = context.WithValue(ctx, utils.UserCtxKey, user)
		ctx = context.WithValue(ctx, utils.TokenCtxKey, tokenString)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
