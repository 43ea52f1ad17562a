package repositories

import (
	"context"

	"boardeasy/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// maintenanceRepository implements MaintenanceRepository interface
type maintenanceRepository struct {
	db *gorm.DB
}

// NewMaintenanceRepository creates a new maintenance repository
func NewMaintenanceRepository(db *gorm.DB) MaintenanceRepository {
	return &maintenanceRepository{db: db}
}

// Create creates a new maintenance request
func (r *maintenanceRepository) Create(ctx context.Context, request *models.MaintenanceRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

// GetByID gets a maintenance request by ID with its room preloaded
func (r *maintenanceRepository) GetByID(ctx context.Context, id uint) (*models.MaintenanceRequest, error) {
	var request models.MaintenanceRequest
	err := r.db.WithContext(ctx).Preload("Room").Where("id = ?", id).First(&request).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// Update updates a maintenance request
func (r *maintenanceRepository) Update(ctx context.Context, request *models.MaintenanceRequest) error {
	return r.db.WithContext(ctx).Save(request).Error
}

// Delete deletes a maintenance request
func (r *maintenanceRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.MaintenanceRequest{}, id).Error
}

// List lists maintenance requests, newest first, optionally by status
func (r *maintenanceRepository) List(ctx context.Context, status string) ([]*models.MaintenanceRequest, error) {
	var requests []*models.MaintenanceRequest
	query := r.db.WithContext(ctx).Preload("Room").Order("reported_date DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}
