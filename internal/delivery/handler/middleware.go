package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"task-service/internal/domain/apperr"
	"task-service/internal/domain/entities"
	"task-service/internal/domain/repositories"
	"task-service/internal/infrastructure"
)

const currentUserKey = "current_user"

// NewAuthMiddleware verifies the Bearer access token and resolves it to a
// live user. The resolved identity is stored on the request context and read
// back with CurrentUser; handlers then pass it to services explicitly.
func NewAuthMiddleware(jwtService *infrastructure.JWTService, userRepo repositories.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return errorResponse(c, http.StatusUnauthorized, "authorization header required")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return errorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			}

			userID, err := jwtService.VerifyToken(parts[1], infrastructure.TokenTypeAccess)
			if err != nil {
				return failWith(c, err)
			}

			// Tokens carry no liveness information, so the subject must
			// still resolve to an existing user.
			user, err := userRepo.FindByID(userID)
			if err != nil {
				return failWith(c, err)
			}
			if user == nil {
				return failWith(c, apperr.ErrUnknownSubject)
			}

			c.Set(currentUserKey, user)
			return next(c)
		}
	}
}

func CurrentUser(c echo.Context) *entities.User {
	user, _ := c.Get(currentUserKey).(*entities.User)
	return user
}
