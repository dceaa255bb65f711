package auth

import (
	"errors"
	"net/http"
	"strings"

	"fitcoach/internal/api"

	"github.com/gin-gonic/gin"
)

const (
	ctxPrincipal = "principal"
	ctxEmail     = "user_email"
	ctxRole      = "user_role"
)

// Principal is the authenticated caller as seen by handlers.
type Principal struct {
	ID    string
	Email string
	Role  string
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

func unauthenticated(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, api.Err(api.CodeUnauthenticated, msg))
	c.Abort()
}

func AuthMiddleware(accessTokenSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthenticated(c, "Authorization header required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[0]) != "Bearer" {
			unauthenticated(c, "Invalid authorization header format")
			return
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			unauthenticated(c, "Token is empty")
			return
		}

		claims, err := ValidateToken(tokenString, accessTokenSecret)
		if err != nil {
			switch {
			case errors.Is(err, ErrTokenExpired):
				unauthenticated(c, "Token expired")
			case errors.Is(err, ErrInvalidTokenType):
				unauthenticated(c, "Invalid token type")
			default:
				unauthenticated(c, "Invalid or malformed token")
			}
			return
		}

		if claims.TokenType != "access" {
			unauthenticated(c, "Access token required")
			return
		}

		c.Set(ctxPrincipal, claims.Principal)
		c.Set(ctxEmail, claims.Email)
		c.Set(ctxRole, claims.Role)

		c.Next()
	}
}

func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ctxRole)
		if !exists {
			unauthenticated(c, "User role not found")
			return
		}

		roleStr, ok := role.(string)
		if !ok {
			unauthenticated(c, "Invalid role type")
			return
		}

		if roleStr != requiredRole {
			c.JSON(http.StatusForbidden, api.Err(api.CodeUnauthorized, "Insufficient permissions"))
			c.Abort()
			return
		}

		c.Next()
	}
}

func GetPrincipal(c *gin.Context) (Principal, bool) {
	id := c.GetString(ctxPrincipal)
	if id == "" {
		return Principal{}, false
	}
	return Principal{
		ID:    id,
		Email: c.GetString(ctxEmail),
		Role:  c.GetString(ctxRole),
	}, true
}
