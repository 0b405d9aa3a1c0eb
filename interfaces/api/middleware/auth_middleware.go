package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"gearshop/pkg/logger"
	"gearshop/pkg/utils"
)

// Protected middleware validates JWT tokens and sets admin context
func Protected(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return utils.UnauthorizedResponse(c, "Missing authorization header")
		}

		token := utils.ExtractTokenFromHeader(authHeader)
		if token == "" {
			return utils.UnauthorizedResponse(c, "Invalid authorization header format")
		}

		claims, err := utils.ValidateToken(token, jwtSecret)
		if err != nil {
			logger.WarnContext(c.UserContext(), "Token validation failed", "error", err)
			switch {
			case errors.Is(err, utils.ErrExpiredToken):
				return utils.UnauthorizedResponse(c, "Token has expired")
			case errors.Is(err, utils.ErrInvalidToken):
				return utils.UnauthorizedResponse(c, "Invalid token")
			default:
				return utils.UnauthorizedResponse(c, "Token validation failed")
			}
		}

		c.Locals("claims", claims)

		return c.Next()
	}
}

// AdminOnly middleware ensures the validated token carries the admin role
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals("claims").(*utils.JWTClaims)
		if !ok {
			return utils.UnauthorizedResponse(c, "User not authenticated")
		}

		if claims.Role != "admin" {
			return utils.ErrorResponse(c, fiber.StatusForbidden, utils.ErrCodeForbidden, "Insufficient permissions", nil)
		}

		return c.Next()
	}
}
