package http

import (
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := decodeJSON(r, &credentials); err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, token, err := h.services.AuthService.Register(ctx, credentials)
	if err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("user registration failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	log.Debug().Str("user_id", registeredUser.UserID).Msg("user successfully registered")

	w.Header().Set(authTokenHeader, token.SignedString)
	utils.WriteJSON(w, registeredUser, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := decodeJSON(r, &credentials); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, token, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("user login failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	log.Debug().Str("user_id", foundUser.UserID).Msg("user successfully logged in")

	w.Header().Set(authTokenHeader, token.SignedString)
	utils.WriteJSON(w, foundUser, http.StatusOK)
}

// me returns the authenticated user resolved by the token guard.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		log.Error().Str("func", "*Handler.me").Msg("no user in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// logout revokes the exact token the request authenticated with. Revoking an
// already-absent token succeeds, so repeated logouts are harmless.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, userOK := utils.GetUserFromContext(ctx)
	tokenString, tokenOK := utils.GetTokenFromContext(ctx)
	if !userOK || !tokenOK {
		log.Error().Str("func", "*Handler.logout").Msg("no user or token in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := h.services.AuthService.Logout(ctx, user.UserID, tokenString); err != nil {
		log.Err(err).Str("func", "*Handler.logout").Msg("token revocation failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}
