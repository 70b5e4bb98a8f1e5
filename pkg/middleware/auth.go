package middleware

import (
	"net/http"
	"strings"

	"sendit/pkg/utils"

	"go.uber.org/zap"
)

// TokenParser validates a signed token; satisfied by *utils.TokenIssuer.
type TokenParser interface {
	Parse(tokenString string, expected utils.TokenType) (*utils.Claims, error)
}

// AuthJWT accepts only access tokens sent as "Authorization: Bearer <token>"
// and stores the token identity in the request context.
func AuthJWT(tokens TokenParser, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			scheme, token, found := strings.Cut(authHeader, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			claims, err := tokens.Parse(strings.TrimSpace(token), utils.AccessToken)
			if err != nil {
				logger.Warn("Rejected access token",
					zap.Error(err),
					zap.String("request_id", utils.GetRequestIDFromContext(r.Context())),
				)
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx := utils.SetUserContext(r.Context(), claims.Identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
