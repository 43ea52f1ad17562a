package repositories

import (
	"context"

	"boardeasy/internal/adapters/persistence/models"
)

// LandlordRepository defines landlord account repository interface
type LandlordRepository interface {
	Create(ctx context.Context, landlord *models.Landlord) error
	GetByID(ctx context.Context, id uint) (*models.Landlord, error)
	GetByUsername(ctx context.Context, username string) (*models.Landlord, error)
	GetByEmail(ctx context.Context, email string) (*models.Landlord, error)
	Update(ctx context.Context, landlord *models.Landlord) error
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// RefreshTokenRepository defines refresh token repository interface
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, id uint) error
	RevokeAllByLandlordID(ctx context.Context, landlordID uint) error
	DeleteExpired(ctx context.Context) error
}

// RoomRepository defines room repository interface
type RoomRepository interface {
	Create(ctx context.Context, room *models.Room) error
	GetByID(ctx context.Context, id uint) (*models.Room, error)
	GetByRoomNumber(ctx context.Context, roomNumber string) (*models.Room, error)
	Update(ctx context.Context, room *models.Room) error
	UpdateStatus(ctx context.Context, id uint, status string) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, status string) ([]*models.Room, error)
	ExistsByRoomNumber(ctx context.Context, roomNumber string, excludeID uint) (bool, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

// TenantRepository defines tenant repository interface
type TenantRepository interface {
	Create(ctx context.Context, tenant *models.Tenant) error
	GetByID(ctx context.Context, id uint) (*models.Tenant, error)
	Update(ctx context.Context, tenant *models.Tenant) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*models.Tenant, error)
	CountByRoomID(ctx context.Context, roomID uint, excludeTenantID uint) (int64, error)
	CountActiveByRoomID(ctx context.Context, roomID uint) (int64, error)
	CountActive(ctx context.Context) (int64, error)
}

// PaymentRepository defines payment repository interface. The ledger assumes
// zero-or-one payment row per tenant; GetByTenantID returns nil when none
// exists rather than an error.
type PaymentRepository interface {
	Upsert(ctx context.Context, payment *models.Payment) error
	GetByID(ctx context.Context, id uint) (*models.Payment, error)
	GetByTenantID(ctx context.Context, tenantID uint) (*models.Payment, error)
	Update(ctx context.Context, payment *models.Payment) error
	Delete(ctx context.Context, id uint) error
	ListActiveTenantLedgers(ctx context.Context) ([]*models.TenantLedgerRow, error)
	GetTenantLedgerRow(ctx context.Context, tenantID uint) (*models.TenantLedgerRow, error)
}

// MaintenanceRepository defines maintenance request repository interface
type MaintenanceRepository interface {
	Create(ctx context.Context, request *models.MaintenanceRequest) error
	GetByID(ctx context.Context, id uint) (*models.MaintenanceRequest, error)
	Update(ctx context.Context, request *models.MaintenanceRequest) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, status string) ([]*models.MaintenanceRequest, error)
}
