package handlers

import (
	"strconv"

	"boardeasy/internal/core/services"
	"boardeasy/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// RoomHandler handles room management endpoints
type RoomHandler struct {
	roomService *services.RoomService
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(roomService *services.RoomService) *RoomHandler {
	return &RoomHandler{roomService: roomService}
}

// ListRooms handles listing rooms with an optional status filter
// @Summary List rooms
// @Tags Rooms
// @Param status query string false "Available | Occupied | Maintenance"
// @Router /rooms [get]
func (h *RoomHandler) ListRooms(c *fiber.Ctx) error {
	rooms, err := h.roomService.List(c.Context(), c.Query("status"))
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.Success(c, "Rooms retrieved successfully", rooms)
}

// GetRoom handles getting a room by ID
func (h *RoomHandler) GetRoom(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid room ID")
	}

	room, err := h.roomService.GetByID(c.Context(), uint(id))
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.Success(c, "Room retrieved successfully", room)
}

// CreateRoom handles creating a room
func (h *RoomHandler) CreateRoom(c *fiber.Ctx) error {
	var input services.RoomInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	room, err := h.roomService.Create(c.Context(), &input)
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.Created(c, "Room created successfully", room)
}

// UpdateRoom handles updating a room
func (h *RoomHandler) UpdateRoom(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid room ID")
	}

	var input services.RoomInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	room, err := h.roomService.Update(c.Context(), uint(id), &input)
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.Success(c, "Room updated successfully", room)
}

// DeleteRoom handles deleting a room. Rejected with 409 while tenants are
// still assigned to it.
func (h *RoomHandler) DeleteRoom(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid room ID")
	}

	if err := h.roomService.Delete(c.Context(), uint(id)); err != nil {
		return handleServiceError(c, err)
	}
	return response.Success(c, "Room deleted successfully", nil)
}
