package handlers

import (
	"strconv"

	"boardeasy/internal/core/services"
	"boardeasy/internal/pkg/pagination"
	"boardeasy/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// TenantHandler handles tenant management endpoints
type TenantHandler struct {
	tenantService *services.TenantService
}

// NewTenantHandler creates a new tenant handler
func NewTenantHandler(tenantService *services.TenantService) *TenantHandler {
	return &TenantHandler{tenantService: tenantService}
}

// ListTenants handles listing tenants with optional status filter
// ("Active" / "Checked Out") and pagination
// @Summary List tenants
// @Tags Tenants
// @Router /tenants [get]
func (h *TenantHandler) ListTenants(c *fiber.Ctx) error {
	tenants, err := h.tenantService.List(c.Context(), c.Query("status"))
	if err != nil {
		return handleServiceError(c, err)
	}

	// The status filter is derived in memory, so pagination applies after it
	params := pagination.GetParams(c)
	total := int64(len(tenants))
	start := params.Offset
	if start > len(tenants) {
		start = len(tenants)
	}
	end := start + params.Limit
	if end > len(tenants) {
		end = len(tenants)
	}

	return response.Success(c, "Tenants retrieved successfully", fiber.Map{
		"tenants": tenants[start:end],
		"meta":    pagination.GetMeta(params, total),
	})
}

// GetTenant handles getting a tenant by ID
func (h *TenantHandler) GetTenant(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid tenant ID")
	}

	tenant, err := h.tenantService.GetByID(c.Context(), uint(id))
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.Success(c, "Tenant retrieved successfully", tenant)
}

// CreateTenant handles creating a tenant
func (h *TenantHandler) CreateTenant(c *fiber.Ctx) error {
	var input services.TenantInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	tenant, err := h.tenantService.Create(c.Context(), &input)
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.Created(c, "Tenant created successfully", tenant)
}

// UpdateTenant handles updating a tenant
func (h *TenantHandler) UpdateTenant(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid tenant ID")
	}

	var input services.TenantInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	tenant, err := h.tenantService.Update(c.Context(), uint(id), &input)
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.Success(c, "Tenant updated successfully", tenant)
}

// DeleteTenant handles deleting a tenant
func (h *TenantHandler) DeleteTenant(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid tenant ID")
	}

	if err := h.tenantService.Delete(c.Context(), uint(id)); err != nil {
		return handleServiceError(c, err)
	}
	return response.Success(c, "Tenant deleted successfully", nil)
}
