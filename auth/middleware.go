package auth

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/user/inventory-go/apperror"
	"github.com/user/inventory-go/config"
	"github.com/user/inventory-go/respond"
)

type contextKey string

// userIDKey stores the authenticated user's ID in the request context.
const userIDKey contextKey = "userID"

// JWTMiddleware requires a valid "Authorization: Bearer <token>" header and puts the
// token's user ID into the request context.
func JWTMiddleware(cfg *config.AuthConfig, log *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respond.Error(w, r, log, apperror.NewAuthError("Authorization header is missing", nil))
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				respond.Error(w, r, log, apperror.NewAuthError("Authorization header format must be Bearer {token}", nil))
				return
			}

			claims, err := ParseToken(parts[1], cfg.JWTSecret)
			if err != nil {
				log.Debug("rejected token", zap.Error(err))
				respond.Error(w, r, log, apperror.NewAuthError("Invalid or expired token", err))
				return
			}

			ctx := NewContextWithUserID(r.Context(), claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// NewContextWithUserID returns a child context carrying userID.
func NewContextWithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext retrieves the userID set by JWTMiddleware.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
