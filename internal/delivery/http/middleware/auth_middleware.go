package middleware

import (
	"fmt"
	"go-swipehire-backend/config"
	"go-swipehire-backend/internal/delivery/http/response"
	"go-swipehire-backend/internal/domain"
	"go-swipehire-backend/pkg/auth"
	"go-swipehire-backend/pkg/logger"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates the Supabase session token and resolves the
// acting user from the database. The role claim in the token is never
// trusted; roles live in the users table and are immutable there.
func AuthMiddleware(jwksProvider *auth.Provider, cfg *config.Config, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		var tokenString string

		// 1. Try to get token from Header
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else {
			// 2. Try to get token from Cookie
			cookie, err := c.Cookie("auth_token")
			if err == nil && cookie != "" {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); ok {
				// HS256 - Use Secret
				if cfg.SupabaseJWTSecret == "" {
					return nil, fmt.Errorf("HS256 token received but SUPABASE_JWT_SECRET is not configured")
				}
				return []byte(cfg.SupabaseJWTSecret), nil
			}

			if _, ok := token.Method.(*jwt.SigningMethodRSA); ok {
				// RS256 - Use JWKS
				return jwksProvider.KeyFunc(token)
			}

			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		})

		if err != nil || !token.Valid {
			logger.Log.Debug("Token validation failed", "error", err)
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Invalid claims", nil)
			c.Abort()
			return
		}

		// Extract Supabase standard claims
		sub, _ := claims["sub"].(string)
		email, _ := claims["email"].(string)

		// The auth sync endpoint is the one place a valid token without a
		// local user row is acceptable; everything else requires the row.
		user, err := authUC.GetCurrentUser(c.Request.Context(), sub)
		if err != nil {
			if c.FullPath() == "/v1/auth/sync" {
				c.Set(string(domain.KeyUserID), sub)
				c.Set(string(domain.KeyUserEmail), email)
				c.Next()
				return
			}
			response.Error(c, http.StatusUnauthorized, "User not found", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), sub)
		c.Set(string(domain.KeyUserEmail), email)
		c.Set(string(domain.KeyUserRole), user.Role)

		c.Next()
	}
}
