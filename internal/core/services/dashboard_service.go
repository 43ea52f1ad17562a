package services

import (
	"context"

	"boardeasy/internal/adapters/persistence/repositories"
	"boardeasy/internal/core/domain"
)

// DashboardService aggregates ledger and occupancy figures for display
type DashboardService struct {
	paymentService *PaymentService
	roomRepo       repositories.RoomRepository
	tenantRepo     repositories.TenantRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	paymentService *PaymentService,
	roomRepo repositories.RoomRepository,
	tenantRepo repositories.TenantRepository,
) *DashboardService {
	return &DashboardService{
		paymentService: paymentService,
		roomRepo:       roomRepo,
		tenantRepo:     tenantRepo,
	}
}

// DashboardData represents dashboard data
type DashboardData struct {
	Totals domain.LedgerTotals `json:"totals"`

	// Room statistics
	TotalRooms       int64 `json:"total_rooms"`
	AvailableRooms   int64 `json:"available_rooms"`
	OccupiedRooms    int64 `json:"occupied_rooms"`
	MaintenanceRooms int64 `json:"maintenance_rooms"`

	// Tenant statistics
	ActiveTenants int64 `json:"active_tenants"`
}

// GetDashboard returns aggregated figures across ledgers, rooms and tenants
func (s *DashboardService) GetDashboard(ctx context.Context) (*DashboardData, error) {
	_, totals, err := s.paymentService.ListActiveLedgers(ctx)
	if err != nil {
		return nil, err
	}

	data := &DashboardData{Totals: totals}

	if data.TotalRooms, err = s.roomRepo.CountByStatus(ctx, ""); err != nil {
		return nil, persistenceErr(err)
	}
	if data.AvailableRooms, err = s.roomRepo.CountByStatus(ctx, string(domain.RoomAvailable)); err != nil {
		return nil, persistenceErr(err)
	}
	if data.OccupiedRooms, err = s.roomRepo.CountByStatus(ctx, string(domain.RoomOccupied)); err != nil {
		return nil, persistenceErr(err)
	}
	if data.MaintenanceRooms, err = s.roomRepo.CountByStatus(ctx, string(domain.RoomMaintenance)); err != nil {
		return nil, persistenceErr(err)
	}
	if data.ActiveTenants, err = s.tenantRepo.CountActive(ctx); err != nil {
		return nil, persistenceErr(err)
	}

	return data, nil
}
