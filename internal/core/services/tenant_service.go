package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"boardeasy/internal/adapters/persistence/models"
	"boardeasy/internal/adapters/persistence/repositories"
	"boardeasy/internal/core/domain"

	"gorm.io/gorm"
)

// Tenant errors
var (
	ErrTenantNotFound     = fmt.Errorf("%w: tenant not found", domain.ErrNotFound)
	ErrTenantNameRequired = fmt.Errorf("%w: first name and last name are required", domain.ErrValidation)
	ErrRoomFull           = fmt.Errorf("%w: room is at full capacity", domain.ErrConstraint)
	ErrCheckOutBeforeIn   = fmt.Errorf("%w: check-out date must not be before check-in date", domain.ErrValidation)
)

// TenantService handles tenant business logic
type TenantService struct {
	tenantRepo repositories.TenantRepository
	roomRepo   repositories.RoomRepository
}

// NewTenantService creates a new tenant service
func NewTenantService(tenantRepo repositories.TenantRepository, roomRepo repositories.RoomRepository) *TenantService {
	return &TenantService{
		tenantRepo: tenantRepo,
		roomRepo:   roomRepo,
	}
}

// TenantInput represents create/update tenant input
type TenantInput struct {
	FirstName    string     `json:"first_name" validate:"required"`
	LastName     string     `json:"last_name" validate:"required"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	RoomID       *uint      `json:"room_id"`
	CheckInDate  *time.Time `json:"check_in_date"`
	CheckOutDate *time.Time `json:"check_out_date"`
	ProfileImage string     `json:"profile_image"`
}

func (in *TenantInput) validate() error {
	if in.FirstName == "" || in.LastName == "" {
		return ErrTenantNameRequired
	}
	if in.CheckInDate != nil && in.CheckOutDate != nil && in.CheckOutDate.Before(*in.CheckInDate) {
		return ErrCheckOutBeforeIn
	}
	return nil
}

// TenantResponse is a tenant with its derived occupancy status
type TenantResponse struct {
	*models.Tenant
	Status string `json:"status"` // Active | Checked Out
}

func tenantStatus(t *models.Tenant, now time.Time) string {
	if t.IsActive(now) {
		return "Active"
	}
	return "Checked Out"
}

// Create creates a new tenant. When a room is assigned, the room must exist
// and have a free slot (assigned tenant count below capacity).
func (s *TenantService) Create(ctx context.Context, input *TenantInput) (*TenantResponse, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	if input.RoomID != nil {
		if err := s.checkCapacity(ctx, *input.RoomID, 0); err != nil {
			return nil, err
		}
	}

	tenant := &models.Tenant{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		Phone:        input.Phone,
		RoomID:       input.RoomID,
		CheckInDate:  input.CheckInDate,
		CheckOutDate: input.CheckOutDate,
		ProfileImage: input.ProfileImage,
	}

	if err := s.tenantRepo.Create(ctx, tenant); err != nil {
		return nil, persistenceErr(err)
	}

	return &TenantResponse{Tenant: tenant, Status: tenantStatus(tenant, time.Now())}, nil
}

// GetByID gets a tenant by ID
func (s *TenantService) GetByID(ctx context.Context, id uint) (*TenantResponse, error) {
	tenant, err := s.tenantRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, persistenceErr(err)
	}
	return &TenantResponse{Tenant: tenant, Status: tenantStatus(tenant, time.Now())}, nil
}

// List lists tenants with derived status, optionally filtered by it
// (Active / Checked Out; empty keeps everyone)
func (s *TenantService) List(ctx context.Context, statusFilter string) ([]*TenantResponse, error) {
	tenants, err := s.tenantRepo.List(ctx)
	if err != nil {
		return nil, persistenceErr(err)
	}

	now := time.Now()
	result := make([]*TenantResponse, 0, len(tenants))
	for _, t := range tenants {
		status := tenantStatus(t, now)
		if statusFilter != "" && status != statusFilter {
			continue
		}
		result = append(result, &TenantResponse{Tenant: t, Status: status})
	}
	return result, nil
}

// Update updates a tenant, re-checking capacity when the room changes
func (s *TenantService) Update(ctx context.Context, id uint, input *TenantInput) (*TenantResponse, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	tenant, err := s.tenantRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, persistenceErr(err)
	}

	if input.RoomID != nil {
		if err := s.checkCapacity(ctx, *input.RoomID, id); err != nil {
			return nil, err
		}
	}

	tenant.FirstName = input.FirstName
	tenant.LastName = input.LastName
	tenant.Email = input.Email
	tenant.Phone = input.Phone
	tenant.RoomID = input.RoomID
	tenant.CheckInDate = input.CheckInDate
	tenant.CheckOutDate = input.CheckOutDate
	if input.ProfileImage != "" {
		tenant.ProfileImage = input.ProfileImage
	}
	tenant.Room = nil

	if err := s.tenantRepo.Update(ctx, tenant); err != nil {
		return nil, persistenceErr(err)
	}
	return &TenantResponse{Tenant: tenant, Status: tenantStatus(tenant, time.Now())}, nil
}

// Delete deletes a tenant
func (s *TenantService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.tenantRepo.Delete(ctx, id); err != nil {
		return persistenceErr(err)
	}
	return nil
}

// checkCapacity verifies the room exists and has a free slot, not counting
// the tenant being moved (excludeTenantID 0 when creating)
func (s *TenantService) checkCapacity(ctx context.Context, roomID uint, excludeTenantID uint) error {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoomNotFound
		}
		return persistenceErr(err)
	}

	count, err := s.tenantRepo.CountByRoomID(ctx, roomID, excludeTenantID)
	if err != nil {
		return persistenceErr(err)
	}
	if count >= int64(room.Capacity) {
		return ErrRoomFull
	}
	return nil
}
