package middleware

import (
	"context"
	"net/http"
	"strings"

	"invoice-backend/internal/auth"
	"invoice-backend/internal/repositories"
)

type contextKey string

const OwnerIDKey contextKey = "owner_id"
const EmailKey contextKey = "email"

type AuthMiddleware struct {
	jwtManager *auth.JWTManager
	userRepo   *repositories.UserRepository
}

func NewAuthMiddleware(jwtManager *auth.JWTManager, userRepo *repositories.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager: jwtManager,
		userRepo:   userRepo,
	}
}

// Authenticate resolves the owner identity from the Bearer token. Writes
// without a valid identity are rejected outright; reads pass through without
// an owner in context and handlers answer them with empty results, so a
// logged-out UI degrades instead of crashing.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := m.resolveClaims(r)
		if !ok {
			if r.Method == http.MethodGet || r.Method == http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}
			http.Error(w, "Authorization required", http.StatusUnauthorized)
			return
		}

		// Check database for current user status so a suspension takes
		// effect before the token expires.
		user, err := m.userRepo.Get(r.Context(), claims.UserID)
		if err != nil || !user.IsActive {
			http.Error(w, "Invalid or suspended account", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), OwnerIDKey, user.ID)
		ctx = context.WithValue(ctx, EmailKey, user.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *AuthMiddleware) resolveClaims(r *http.Request) (*auth.Claims, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, false
	}

	// Extract token from "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}

	claims, err := m.jwtManager.ValidateToken(parts[1])
	if err != nil {
		return nil, false
	}
	return claims, true
}

// GetOwnerIDFromContext extracts the owner id from request context
func GetOwnerIDFromContext(ctx context.Context) (int64, bool) {
	ownerID, ok := ctx.Value(OwnerIDKey).(int64)
	return ownerID, ok
}

// GetEmailFromContext extracts email from request context
func GetEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(EmailKey).(string)
	return email, ok
}
