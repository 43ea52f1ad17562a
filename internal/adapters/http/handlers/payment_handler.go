package handlers

import (
	"strconv"

	"boardeasy/internal/core/services"
	"boardeasy/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// PaymentHandler handles rent ledger and payment endpoints
type PaymentHandler struct {
	paymentService *services.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// ListLedgers returns the reconciled ledger of every active tenant plus the
// aggregate totals for the summary cards
// @Summary List active tenant ledgers
// @Tags Payments
// @Router /payments [get]
func (h *PaymentHandler) ListLedgers(c *fiber.Ctx) error {
	ledgers, totals, err := h.paymentService.ListActiveLedgers(c.Context())
	if err != nil {
		return handleServiceError(c, err)
	}

	return response.Success(c, "Ledgers retrieved successfully", fiber.Map{
		"ledgers": ledgers,
		"totals":  totals,
	})
}

// GetTenantLedger returns the reconciled ledger of one tenant
func (h *PaymentHandler) GetTenantLedger(c *fiber.Ctx) error {
	tenantID, err := strconv.ParseUint(c.Params("tenantId"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid tenant ID")
	}

	summary, err := h.paymentService.GetTenantLedger(c.Context(), uint(tenantID))
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.Success(c, "Ledger retrieved successfully", summary)
}

// RecordPayment applies a payment to a tenant's ledger
// @Summary Record payment
// @Tags Payments
// @Router /payments/tenants/{tenantId} [post]
func (h *PaymentHandler) RecordPayment(c *fiber.Ctx) error {
	tenantID, err := strconv.ParseUint(c.Params("tenantId"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid tenant ID")
	}

	var input services.RecordPaymentInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	summary, err := h.paymentService.RecordPayment(c.Context(), uint(tenantID), &input)
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.Created(c, "Payment recorded successfully", summary)
}

// UpdateStatusRequest represents manual status edit request body
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateStatus applies a manual payment status edit (Overdue and Cancelled
// are only reachable here)
func (h *PaymentHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid payment ID")
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	payment, err := h.paymentService.UpdateStatus(c.Context(), uint(id), req.Status)
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.Success(c, "Payment status updated successfully", payment)
}

// UpdatePayment edits the method/description of a payment record
func (h *PaymentHandler) UpdatePayment(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid payment ID")
	}

	var input services.UpdateDetailsInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	payment, err := h.paymentService.UpdateDetails(c.Context(), uint(id), &input)
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.Success(c, "Payment updated successfully", payment)
}

// DeletePayment deletes a payment record
func (h *PaymentHandler) DeletePayment(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid payment ID")
	}

	if err := h.paymentService.Delete(c.Context(), uint(id)); err != nil {
		return handleServiceError(c, err)
	}
	return response.Success(c, "Payment deleted successfully", nil)
}
