package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/analytics-service/pkg/util"
)

// Guard validates bearer tokens on protected routes and checks that the
// token carries the required scope.
func Guard(tokens *TokenManager, requiredScope string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return apperrors.NewUnauthorized("missing authorization header")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return apperrors.NewUnauthorized("invalid authorization header")
		}

		claims, err := tokens.ParseToken(parts[1])
		if err != nil {
			return apperrors.NewUnauthorized("invalid token")
		}

		if requiredScope != "" && claims.Scope != requiredScope {
			return apperrors.NewUnauthorized("insufficient scope")
		}

		return c.Next()
	}
}
