package auth

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"socialearning_backend/internals/configs"
	helper "socialearning_backend/internals/helpers"
)

// TutorAuth guards the admin API. The access token comes from the
// Authorization header, with a cookie fallback for browser clients.
func TutorAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if configs.JWTSecret == "" {
			return helper.JsonError(c, fiber.StatusServiceUnavailable, "Tutor auth is not configured")
		}

		tokenString := extractToken(c)
		if tokenString == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Missing access token")
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(configs.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid or expired token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid token claims")
		}
		if role, _ := claims["role"].(string); role != "tutor" {
			return helper.JsonError(c, fiber.StatusForbidden, "Tutor access only")
		}
		name, _ := claims["sub"].(string)
		if name == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid token claims")
		}

		c.Locals("tutor_name", name)
		return c.Next()
	}
}

func extractToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return c.Cookies("access_token")
}
