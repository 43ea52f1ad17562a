package repositories

import (
	"context"

	"boardeasy/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// roomRepository implements RoomRepository interface
type roomRepository struct {
	db *gorm.DB
}

// NewRoomRepository creates a new room repository
func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{db: db}
}

// Create creates a new room
func (r *roomRepository) Create(ctx context.Context, room *models.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

// GetByID gets a room by ID
func (r *roomRepository) GetByID(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// GetByRoomNumber gets a room by its number
func (r *roomRepository) GetByRoomNumber(ctx context.Context, roomNumber string) (*models.Room, error) {
	var room models.Room
	err := r.db.WithContext(ctx).Where("room_number = ?", roomNumber).First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// Update updates a room
func (r *roomRepository) Update(ctx context.Context, room *models.Room) error {
	return r.db.WithContext(ctx).Save(room).Error
}

// UpdateStatus updates only the room status
func (r *roomRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).Model(&models.Room{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// Delete deletes a room
func (r *roomRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Room{}, id).Error
}

// List lists rooms, optionally filtered by status
func (r *roomRepository) List(ctx context.Context, status string) ([]*models.Room, error) {
	var rooms []*models.Room
	query := r.db.WithContext(ctx).Order("room_number")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

// ExistsByRoomNumber checks if a room number is taken by another room
func (r *roomRepository) ExistsByRoomNumber(ctx context.Context, roomNumber string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.Room{}).Where("room_number = ?", roomNumber)
	if excludeID > 0 {
		query = query.Where("id != ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

// CountByStatus counts rooms in a status ("" counts all rooms)
func (r *roomRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.Room{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Count(&count).Error
	return count, err
}
