package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"gearshop/application/serviceimpl"
	"gearshop/domain/dto"
	"gearshop/domain/services"
	"gearshop/pkg/logger"
	"gearshop/pkg/utils"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	resp, err := h.authService.Login(ctx, &req)
	if err != nil {
		if errors.Is(err, serviceimpl.ErrAuthDisabled) {
			return utils.ErrorResponse(c, fiber.StatusForbidden, utils.ErrCodeForbidden, "Admin authentication is disabled", nil)
		}
		return utils.UnauthorizedResponse(c, "Invalid username or password")
	}

	return utils.SuccessResponse(c, resp)
}
