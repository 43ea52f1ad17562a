package services_test

import (
	"testing"
	"time"

	"boardeasy/internal/adapters/persistence/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory sqlite database with the full schema.
// Each test gets its own database; nothing is shared between tests.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))
	return db
}

func seedRoom(t *testing.T, db *gorm.DB, number string, capacity int, price int64, status string) *models.Room {
	t.Helper()

	room := &models.Room{
		RoomNumber: number,
		Capacity:   capacity,
		Price:      decimal.NewFromInt(price),
		Status:     status,
	}
	require.NoError(t, db.Create(room).Error)
	return room
}

func seedTenant(t *testing.T, db *gorm.DB, roomID *uint, first, last string, checkIn *time.Time, checkOut *time.Time) *models.Tenant {
	t.Helper()

	tenant := &models.Tenant{
		FirstName:    first,
		LastName:     last,
		RoomID:       roomID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
	}
	require.NoError(t, db.Create(tenant).Error)
	return tenant
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func monthsAgo(n int) *time.Time {
	t := time.Now().AddDate(0, -n, 0)
	return &t
}
