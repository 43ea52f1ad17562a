package repositories

import (
	"context"

	"boardeasy/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// landlordRepository implements LandlordRepository interface
type landlordRepository struct {
	db *gorm.DB
}

// NewLandlordRepository creates a new landlord repository
func NewLandlordRepository(db *gorm.DB) LandlordRepository {
	return &landlordRepository{db: db}
}

// Create creates a new landlord account
func (r *landlordRepository) Create(ctx context.Context, landlord *models.Landlord) error {
	return r.db.WithContext(ctx).Create(landlord).Error
}

// GetByID gets a landlord by ID
func (r *landlordRepository) GetByID(ctx context.Context, id uint) (*models.Landlord, error) {
	var landlord models.Landlord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&landlord).Error
	if err != nil {
		return nil, err
	}
	return &landlord, nil
}

// GetByUsername gets a landlord by username
func (r *landlordRepository) GetByUsername(ctx context.Context, username string) (*models.Landlord, error) {
	var landlord models.Landlord
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&landlord).Error
	if err != nil {
		return nil, err
	}
	return &landlord, nil
}

// GetByEmail gets a landlord by email
func (r *landlordRepository) GetByEmail(ctx context.Context, email string) (*models.Landlord, error) {
	var landlord models.Landlord
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&landlord).Error
	if err != nil {
		return nil, err
	}
	return &landlord, nil
}

// Update updates a landlord account
func (r *landlordRepository) Update(ctx context.Context, landlord *models.Landlord) error {
	return r.db.WithContext(ctx).Save(landlord).Error
}

// ExistsByUsername checks if username exists
func (r *landlordRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Landlord{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

// ExistsByEmail checks if email exists
func (r *landlordRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Landlord{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// Count counts landlord accounts
func (r *landlordRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Landlord{}).Count(&count).Error
	return count, err
}
