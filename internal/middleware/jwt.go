package middleware

import (
	"context"
	"net/http"
	"strings"

	"adamdesk/internal/common"
	"adamdesk/internal/repositories"
	"adamdesk/internal/services"

	"github.com/labstack/echo/v4"
)

// JWTMiddleware validates the bearer token and loads the authenticated
// user's organization into the request context.
func JWTMiddleware(authSvc services.AuthService, userRepo repositories.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing token")
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token format")
			}

			userID, err := authSvc.ValidateToken(tokenString)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			user, err := userRepo.GetByID(c.Request().Context(), userID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "User not found")
			}

			ctx := context.WithValue(c.Request().Context(), common.UserIDKey, user.ID)
			ctx = context.WithValue(ctx, common.OrganizationIDKey, user.OrganizationID)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
