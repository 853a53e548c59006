package jwt

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func deny(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "message": message})
}

// NewAuthMiddleware returns a Fiber middleware that validates Bearer JWT (HS256)
// and, when scope is not empty, requires it among the token's scopes.
// On success sets the subject into c.Locals("operator").
func NewAuthMiddleware(secret, expectedIssuer, scope string) fiber.Handler {
	secretBytes := []byte(secret)
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return deny(c, http.StatusUnauthorized, "missing Authorization header")
		}
		// Support both "Bearer <token>" and "<token>" (no prefix).
		tokenStr := strings.TrimSpace(authHeader)
		if parts := strings.SplitN(tokenStr, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			tokenStr = strings.TrimSpace(parts[1])
		}
		if tokenStr == "" {
			return deny(c, http.StatusUnauthorized, "empty token")
		}
		token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
			return secretBytes, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
		if err != nil || !token.Valid {
			return deny(c, http.StatusUnauthorized, "invalid or expired token")
		}
		claims, ok := token.Claims.(*Claims)
		if !ok {
			return deny(c, http.StatusUnauthorized, "invalid token claims")
		}
		if expectedIssuer != "" && claims.Issuer != expectedIssuer {
			return deny(c, http.StatusUnauthorized, "invalid token issuer")
		}
		if scope != "" && !claims.HasScope(scope) {
			return deny(c, http.StatusForbidden, "missing scope "+scope)
		}
		c.Locals("operator", claims.Subject)
		return c.Next()
	}
}
