package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"texstock/internal/domain"
	apperror "texstock/internal/errors"
	"texstock/internal/pkg/token"
)

// ContextKey is the unexported-type key used to store the authenticated
// claims in the request context without colliding with string keys.
type ContextKey int

const (
	UserClaimsKey ContextKey = iota
)

// UserClaims is the verified (subject, role) pair attached to the request
// context. Downstream code trusts it; nothing below the middleware parses
// tokens again.
type UserClaims struct {
	UserID string
	Role   domain.UserRole
}

// TokenService is the validation contract the middleware needs.
type TokenService interface {
	ValidateToken(tokenString string) (*token.CustomClaims, error)
}

// NewAuthMiddleware builds a middleware validating the bearer token and
// attaching UserClaims to the request context.
func NewAuthMiddleware(tokenSvc TokenService) func(next http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {

			// 1. Extract the token from "Authorization: Bearer <token>".
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || len(authHeader) < 7 || authHeader[:7] != "Bearer " {
				writeAuthError(w, apperror.NewUnauthorizedError("missing or malformed authorization header"))
				return
			}

			tokenString := authHeader[7:]

			// 2. Validate it.
			claims, err := tokenSvc.ValidateToken(tokenString)
			if err != nil {
				writeAuthError(w, apperror.NewUnauthorizedError("invalid or expired token"))
				return
			}

			// 3. Attach the claims to the context.
			userClaims := UserClaims{
				UserID: claims.UserID,
				Role:   domain.UserRole(claims.Role),
			}

			ctx := context.WithValue(r.Context(), UserClaimsKey, userClaims)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
	}
}

// GetUserClaimsFromContext extracts the claims inside a handler.
func GetUserClaimsFromContext(ctx context.Context) (UserClaims, bool) {
	claims, ok := ctx.Value(UserClaimsKey).(UserClaims)
	return claims, ok
}

// PermissionMiddleware restricts a handler to the listed roles. It must run
// after NewAuthMiddleware.
func PermissionMiddleware(requiredRoles ...domain.UserRole) func(next http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {

			claims, ok := GetUserClaimsFromContext(r.Context())
			if !ok {
				writeAuthError(w, apperror.NewUnauthorizedError("authorization required, token not processed"))
				return
			}

			for _, requiredRole := range requiredRoles {
				if claims.Role == requiredRole {
					next.ServeHTTP(w, r)
					return
				}
			}

			writeAuthError(w, apperror.NewForbiddenError("access denied, insufficient role"))
		}
	}
}

// writeAuthError emits the standardized error body for auth failures.
func writeAuthError(w http.ResponseWriter, err apperror.AppError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.HTTPStatus())
	json.NewEncoder(w).Encode(domain.ErrorResponse{
		Code:     err.HTTPStatus(),
		Category: err.Category(),
		Message:  err.Error(),
	})
}
