package repositories

import (
	"context"
	"time"

	"boardeasy/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// tenantRepository implements TenantRepository interface
type tenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository creates a new tenant repository
func NewTenantRepository(db *gorm.DB) TenantRepository {
	return &tenantRepository{db: db}
}

// Create creates a new tenant
func (r *tenantRepository) Create(ctx context.Context, tenant *models.Tenant) error {
	return r.db.WithContext(ctx).Create(tenant).Error
}

// GetByID gets a tenant by ID with its room preloaded
func (r *tenantRepository) GetByID(ctx context.Context, id uint) (*models.Tenant, error) {
	var tenant models.Tenant
	err := r.db.WithContext(ctx).Preload("Room").Where("id = ?", id).First(&tenant).Error
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// Update updates a tenant
func (r *tenantRepository) Update(ctx context.Context, tenant *models.Tenant) error {
	return r.db.WithContext(ctx).Save(tenant).Error
}

// Delete deletes a tenant
func (r *tenantRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Tenant{}, id).Error
}

// List lists tenants ordered by name with rooms preloaded
func (r *tenantRepository) List(ctx context.Context) ([]*models.Tenant, error) {
	var tenants []*models.Tenant
	err := r.db.WithContext(ctx).Preload("Room").
		Order("last_name, first_name").
		Find(&tenants).Error
	if err != nil {
		return nil, err
	}
	return tenants, nil
}

// CountByRoomID counts tenants assigned to a room, optionally excluding one
// tenant (used when re-assigning a tenant to the room it already occupies)
func (r *tenantRepository) CountByRoomID(ctx context.Context, roomID uint, excludeTenantID uint) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.Tenant{}).Where("room_id = ?", roomID)
	if excludeTenantID > 0 {
		query = query.Where("id != ?", excludeTenantID)
	}
	err := query.Count(&count).Error
	return count, err
}

// CountActiveByRoomID counts tenants of a room that have not checked out
func (r *tenantRepository) CountActiveByRoomID(ctx context.Context, roomID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Tenant{}).
		Where("room_id = ?", roomID).
		Where("check_out_date IS NULL OR check_out_date > ?", time.Now()).
		Count(&count).Error
	return count, err
}

// CountActive counts all tenants that have not checked out
func (r *tenantRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Tenant{}).
		Where("check_out_date IS NULL OR check_out_date > ?", time.Now()).
		Count(&count).Error
	return count, err
}
