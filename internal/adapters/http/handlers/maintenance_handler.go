package handlers

import (
	"strconv"

	"boardeasy/internal/core/services"
	"boardeasy/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// MaintenanceHandler handles maintenance request endpoints
type MaintenanceHandler struct {
	maintenanceService *services.MaintenanceService
}

// NewMaintenanceHandler creates a new maintenance handler
func NewMaintenanceHandler(maintenanceService *services.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{maintenanceService: maintenanceService}
}

// ListRequests handles listing maintenance requests
func (h *MaintenanceHandler) ListRequests(c *fiber.Ctx) error {
	requests, err := h.maintenanceService.List(c.Context(), c.Query("status"))
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.Success(c, "Maintenance requests retrieved successfully", requests)
}

// CreateRequest handles filing a maintenance request
func (h *MaintenanceHandler) CreateRequest(c *fiber.Ctx) error {
	var input services.CreateMaintenanceInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	request, err := h.maintenanceService.Create(c.Context(), &input)
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.Created(c, "Maintenance request created successfully", request)
}

// UpdateRequest handles editing a maintenance request
func (h *MaintenanceHandler) UpdateRequest(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid maintenance request ID")
	}

	var input services.UpdateMaintenanceInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	request, err := h.maintenanceService.Update(c.Context(), uint(id), &input)
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.Success(c, "Maintenance request updated successfully", request)
}

// DeleteRequest handles deleting a maintenance request
func (h *MaintenanceHandler) DeleteRequest(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid maintenance request ID")
	}

	if err := h.maintenanceService.Delete(c.Context(), uint(id)); err != nil {
		return handleServiceError(c, err)
	}
	return response.Success(c, "Maintenance request deleted successfully", nil)
}
