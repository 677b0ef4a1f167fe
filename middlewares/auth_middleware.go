package middlewares

import (
	"strings"

	"github.com/AreveiHQ/jenii-Admin/configs"
	"github.com/AreveiHQ/jenii-Admin/responses"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// AuthMiddleware guards the dashboard routes: a valid bearer token with
// an admin role claim is required.
func AuthMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.AdminResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "No auth token, access denied",
		})
	}

	bearerToken := strings.Split(authHeader, " ")
	if len(bearerToken) != 2 || bearerToken[0] != "Bearer" {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.AdminResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Invalid authorization header format",
		})
	}

	claims := &jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(bearerToken[1], claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.EnvJWTSecret()), nil
	})
	if err != nil || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.AdminResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Token verification failed, access denied",
		})
	}

	adminId, ok := (*claims)["id"].(string)
	if !ok || adminId == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.AdminResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Admin ID not found in token",
		})
	}

	if role, _ := (*claims)["role"].(string); role != "admin" {
		return c.Status(fiber.StatusForbidden).JSON(responses.AdminResponse{
			Status:  fiber.StatusForbidden,
			Message: "Admin access only",
		})
	}

	c.Locals("adminId", adminId)
	return c.Next()
}
