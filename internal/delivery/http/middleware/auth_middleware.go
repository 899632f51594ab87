// Package middleware contains echo middleware specific to the HTTP API.
package middleware

import (
	"strings"

	"quickbite/internal/delivery/http/response"
	"quickbite/internal/domain/entity"
	"quickbite/internal/domain/repository"
	"quickbite/internal/domain/service"
	"quickbite/internal/usecase"

	"github.com/labstack/echo/v4"
)

const actorContextKey = "actor"

// AuthMiddleware validates JWT access tokens and resolves the acting user.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate validates the bearer token and stores the Actor on the
// context. The role and restaurant binding come from the stored profile, not
// from anything the client sends.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "TOKEN_INVALID", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid or expired token")
		}

		user, err := m.userRepo.FindUserByID(c.Request().Context(), claims.UserID)
		if err != nil {
			return response.Unauthorized(c, "TOKEN_INVALID", "Unknown user")
		}

		c.Set(actorContextKey, usecase.Actor{
			UserID:       user.ID,
			Role:         user.Role,
			RestaurantID: user.RestaurantID,
		})

		return next(c)
	}
}

// RequireRole is a middleware factory restricting a route group to one role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(required entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := c.Get(actorContextKey).(usecase.Actor)
			if !ok {
				return response.Error(c, 403, "FORBIDDEN", "Role information missing", "")
			}
			if actor.Role != required {
				return response.Error(c, 403, "FORBIDDEN", "Requires the '"+required.String()+"' role", "")
			}

			return next(c)
		}
	}
}

// GetActor returns the authenticated Actor stored by Authenticate.
func GetActor(c echo.Context) usecase.Actor {
	actor, _ := c.Get(actorContextKey).(usecase.Actor)

	return actor
}
