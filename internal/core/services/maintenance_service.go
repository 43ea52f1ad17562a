package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"boardeasy/internal/adapters/persistence/models"
	"boardeasy/internal/adapters/persistence/repositories"
	"boardeasy/internal/core/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Maintenance errors
var (
	ErrMaintenanceNotFound = fmt.Errorf("%w: maintenance request not found", domain.ErrNotFound)
	ErrIssueRequired       = fmt.Errorf("%w: issue description is required", domain.ErrValidation)
	ErrInvalidMaintStatus  = fmt.Errorf("%w: invalid maintenance status", domain.ErrValidation)
	ErrInvalidMaintCost    = fmt.Errorf("%w: cost must not be negative", domain.ErrValidation)
)

// MaintenanceService handles maintenance request business logic
type MaintenanceService struct {
	maintenanceRepo repositories.MaintenanceRepository
	roomRepo        repositories.RoomRepository
}

// NewMaintenanceService creates a new maintenance service
func NewMaintenanceService(maintenanceRepo repositories.MaintenanceRepository, roomRepo repositories.RoomRepository) *MaintenanceService {
	return &MaintenanceService{
		maintenanceRepo: maintenanceRepo,
		roomRepo:        roomRepo,
	}
}

// CreateMaintenanceInput represents create maintenance request input
type CreateMaintenanceInput struct {
	RoomID           uint            `json:"room_id" validate:"required"`
	IssueDescription string          `json:"issue_description" validate:"required"`
	Cost             decimal.Decimal `json:"cost"`
}

// Create files a maintenance request against a room and flags the room as
// under maintenance
func (s *MaintenanceService) Create(ctx context.Context, input *CreateMaintenanceInput) (*models.MaintenanceRequest, error) {
	if input.IssueDescription == "" {
		return nil, ErrIssueRequired
	}
	if input.Cost.IsNegative() {
		return nil, ErrInvalidMaintCost
	}

	if _, err := s.roomRepo.GetByID(ctx, input.RoomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, persistenceErr(err)
	}

	request := &models.MaintenanceRequest{
		RoomID:           input.RoomID,
		IssueDescription: input.IssueDescription,
		Status:           string(domain.MaintenancePending),
		ReportedDate:     time.Now(),
		Cost:             input.Cost.Round(2),
	}

	if err := s.maintenanceRepo.Create(ctx, request); err != nil {
		return nil, persistenceErr(err)
	}

	if err := s.roomRepo.UpdateStatus(ctx, input.RoomID, string(domain.RoomMaintenance)); err != nil {
		return nil, persistenceErr(err)
	}

	return request, nil
}

// List lists maintenance requests, optionally filtered by status
func (s *MaintenanceService) List(ctx context.Context, status string) ([]*models.MaintenanceRequest, error) {
	if status != "" && !domain.MaintenanceStatus(status).IsValid() {
		return nil, ErrInvalidMaintStatus
	}
	requests, err := s.maintenanceRepo.List(ctx, status)
	if err != nil {
		return nil, persistenceErr(err)
	}
	return requests, nil
}

// UpdateMaintenanceInput represents update maintenance request input
type UpdateMaintenanceInput struct {
	Status           *string          `json:"status"`
	IssueDescription *string          `json:"issue_description"`
	Cost             *decimal.Decimal `json:"cost"`
}

// Update edits a maintenance request. Completing a request stamps the
// completion date and releases the room back to Available.
func (s *MaintenanceService) Update(ctx context.Context, id uint, input *UpdateMaintenanceInput) (*models.MaintenanceRequest, error) {
	request, err := s.maintenanceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMaintenanceNotFound
		}
		return nil, persistenceErr(err)
	}

	completing := false
	if input.Status != nil {
		status := domain.MaintenanceStatus(*input.Status)
		if !status.IsValid() {
			return nil, ErrInvalidMaintStatus
		}
		completing = status == domain.MaintenanceCompleted && request.Status != string(domain.MaintenanceCompleted)
		request.Status = string(status)
	}
	if input.IssueDescription != nil {
		if *input.IssueDescription == "" {
			return nil, ErrIssueRequired
		}
		request.IssueDescription = *input.IssueDescription
	}
	if input.Cost != nil {
		if input.Cost.IsNegative() {
			return nil, ErrInvalidMaintCost
		}
		request.Cost = input.Cost.Round(2)
	}
	if completing {
		now := time.Now()
		request.CompletedDate = &now
	}
	request.Room = nil

	if err := s.maintenanceRepo.Update(ctx, request); err != nil {
		return nil, persistenceErr(err)
	}

	if completing {
		if err := s.roomRepo.UpdateStatus(ctx, request.RoomID, string(domain.RoomAvailable)); err != nil {
			return nil, persistenceErr(err)
		}
	}

	return request, nil
}

// Delete deletes a maintenance request
func (s *MaintenanceService) Delete(ctx context.Context, id uint) error {
	if _, err := s.maintenanceRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMaintenanceNotFound
		}
		return persistenceErr(err)
	}
	if err := s.maintenanceRepo.Delete(ctx, id); err != nil {
		return persistenceErr(err)
	}
	return nil
}
