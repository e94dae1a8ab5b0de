package auth

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/staffhq/staff-bot/pkg/util/errorutil"
)

// RequireScope ensures the principal's token carries every listed scope.
func RequireScope(scopes ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		for _, scope := range scopes {
			if !hasScope(principal.Scopes, scope) {
				return apperrors.NewForbidden("missing scope " + scope)
			}
		}
		return c.Next()
	}
}

func hasScope(granted []string, scope string) bool {
	return (&Claims{Scopes: granted}).HasScope(scope)
}
