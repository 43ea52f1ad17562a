package handlers

import (
	"boardeasy/internal/core/services"
	"boardeasy/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles landlord authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles landlord account registration
// @Summary Register landlord account
// @Tags Auth
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input services.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	result, err := h.authService.Register(c.Context(), &input)
	if err != nil {
		return handleServiceError(c, err)
	}

	return response.Created(c, "Account created successfully", result)
}

// Login handles landlord login
// @Summary Login
// @Tags Auth
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input services.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	result, err := h.authService.Login(c.Context(), &input)
	if err != nil {
		return handleServiceError(c, err)
	}

	return response.Success(c, "Login successful", result)
}

// RefreshRequest represents refresh token request body
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Refresh handles token refresh
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.RefreshToken == "" {
		return response.BadRequest(c, "Refresh token required")
	}

	result, err := h.authService.Refresh(c.Context(), req.RefreshToken)
	if err != nil {
		return handleServiceError(c, err)
	}

	return response.Success(c, "Token refreshed", result)
}

// Logout revokes all refresh tokens of the current landlord
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	landlordID, ok := c.Locals("landlordID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	if err := h.authService.Logout(c.Context(), landlordID); err != nil {
		return handleServiceError(c, err)
	}

	return response.Success(c, "Logged out successfully", nil)
}

// Me returns the current landlord profile
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	landlordID, ok := c.Locals("landlordID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	profile, err := h.authService.GetProfile(c.Context(), landlordID)
	if err != nil {
		return handleServiceError(c, err)
	}

	return response.Success(c, "Profile retrieved successfully", profile)
}

// UpdateMe updates the current landlord profile
func (h *AuthHandler) UpdateMe(c *fiber.Ctx) error {
	landlordID, ok := c.Locals("landlordID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var input services.UpdateProfileInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	profile, err := h.authService.UpdateProfile(c.Context(), landlordID, &input)
	if err != nil {
		return handleServiceError(c, err)
	}

	return response.Success(c, "Profile updated successfully", profile)
}

// ChangePassword changes the current landlord password
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	landlordID, ok := c.Locals("landlordID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var input services.ChangePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.authService.ChangePassword(c.Context(), landlordID, &input); err != nil {
		return handleServiceError(c, err)
	}

	return response.Success(c, "Password changed successfully", nil)
}
