package services

import (
	"context"
	"errors"
	"fmt"

	"boardeasy/internal/adapters/persistence/models"
	"boardeasy/internal/adapters/persistence/repositories"
	"boardeasy/internal/core/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Room errors
var (
	ErrRoomNotFound       = fmt.Errorf("%w: room not found", domain.ErrNotFound)
	ErrRoomNumberTaken    = fmt.Errorf("%w: room number already exists", domain.ErrConstraint)
	ErrRoomHasTenants     = fmt.Errorf("%w: cannot delete room with tenants assigned", domain.ErrConstraint)
	ErrRoomNumberRequired = fmt.Errorf("%w: room number is required", domain.ErrValidation)
	ErrInvalidCapacity    = fmt.Errorf("%w: capacity must be a positive number", domain.ErrValidation)
	ErrInvalidPrice       = fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	ErrInvalidRoomStatus  = fmt.Errorf("%w: invalid room status", domain.ErrValidation)
)

// RoomService handles room business logic
type RoomService struct {
	roomRepo   repositories.RoomRepository
	tenantRepo repositories.TenantRepository
}

// NewRoomService creates a new room service
func NewRoomService(roomRepo repositories.RoomRepository, tenantRepo repositories.TenantRepository) *RoomService {
	return &RoomService{
		roomRepo:   roomRepo,
		tenantRepo: tenantRepo,
	}
}

// RoomInput represents create/update room input
type RoomInput struct {
	RoomNumber string          `json:"room_number" validate:"required"`
	Capacity   int             `json:"capacity" validate:"required,gt=0"`
	Price      decimal.Decimal `json:"price" validate:"required"`
	Status     string          `json:"status"`
}

func (in *RoomInput) validate() error {
	if in.RoomNumber == "" {
		return ErrRoomNumberRequired
	}
	if in.Capacity <= 0 {
		return ErrInvalidCapacity
	}
	if in.Price.IsNegative() {
		return ErrInvalidPrice
	}
	if in.Status == "" {
		in.Status = string(domain.RoomAvailable)
	}
	if !domain.RoomStatus(in.Status).IsValid() {
		return ErrInvalidRoomStatus
	}
	return nil
}

// Create creates a new room
func (s *RoomService) Create(ctx context.Context, input *RoomInput) (*models.Room, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	exists, err := s.roomRepo.ExistsByRoomNumber(ctx, input.RoomNumber, 0)
	if err != nil {
		return nil, persistenceErr(err)
	}
	if exists {
		return nil, ErrRoomNumberTaken
	}

	room := &models.Room{
		RoomNumber: input.RoomNumber,
		Capacity:   input.Capacity,
		Price:      input.Price.Round(2),
		Status:     input.Status,
	}

	if err := s.roomRepo.Create(ctx, room); err != nil {
		return nil, persistenceErr(err)
	}
	return room, nil
}

// GetByID gets a room by ID
func (s *RoomService) GetByID(ctx context.Context, id uint) (*models.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, persistenceErr(err)
	}
	return room, nil
}

// List lists rooms, optionally filtered by status
func (s *RoomService) List(ctx context.Context, status string) ([]*models.Room, error) {
	if status != "" && !domain.RoomStatus(status).IsValid() {
		return nil, ErrInvalidRoomStatus
	}
	rooms, err := s.roomRepo.List(ctx, status)
	if err != nil {
		return nil, persistenceErr(err)
	}
	return rooms, nil
}

// Update updates a room
func (s *RoomService) Update(ctx context.Context, id uint, input *RoomInput) (*models.Room, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	room, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	exists, err := s.roomRepo.ExistsByRoomNumber(ctx, input.RoomNumber, id)
	if err != nil {
		return nil, persistenceErr(err)
	}
	if exists {
		return nil, ErrRoomNumberTaken
	}

	room.RoomNumber = input.RoomNumber
	room.Capacity = input.Capacity
	room.Price = input.Price.Round(2)
	room.Status = input.Status

	if err := s.roomRepo.Update(ctx, room); err != nil {
		return nil, persistenceErr(err)
	}
	return room, nil
}

// Delete deletes a room. Rejected while any tenant still references the room,
// leaving the room unchanged.
func (s *RoomService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	count, err := s.tenantRepo.CountByRoomID(ctx, id, 0)
	if err != nil {
		return persistenceErr(err)
	}
	if count > 0 {
		return ErrRoomHasTenants
	}

	if err := s.roomRepo.Delete(ctx, id); err != nil {
		return persistenceErr(err)
	}
	return nil
}
