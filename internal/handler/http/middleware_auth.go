package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-awl-bridge/internal/app"
	"github.com/MKhiriev/go-awl-bridge/internal/logger"
	"github.com/MKhiriev/go-awl-bridge/internal/utils"
)

// auth is an HTTP middleware that enforces bearer token authentication. It
// is installed only when a token sign key is configured.
//
// The token is validated with [utils.ValidateAndParseJWTToken] against the
// configured sign key and issuer. On success the token subject (the API
// client name) is stored in the request context under [utils.ClientCtxKey].
// Any failure is answered with 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteError(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		token, err := utils.ValidateAndParseJWTToken(tokenString, h.settings.TokenSignKey, h.settings.TokenIssuer)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), utils.ClientCtxKey, token.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
