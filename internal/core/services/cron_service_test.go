package services_test

import (
	"context"
	"testing"

	"boardeasy/internal/adapters/persistence/repositories"
	"boardeasy/internal/core/domain"
	"boardeasy/internal/core/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncRoomStatuses(t *testing.T) {
	db := setupTestDB(t)
	roomRepo := repositories.NewRoomRepository(db)
	svc := services.NewCronService(roomRepo, repositories.NewTenantRepository(db))
	ctx := context.Background()

	// Marked Available but has an active tenant
	stale := seedRoom(t, db, "101", 2, 1000, "Available")
	seedTenant(t, db, &stale.ID, "Maria", "Santos", monthsAgo(1), nil)

	// Marked Occupied but the only tenant checked out
	vacated := seedRoom(t, db, "102", 2, 1000, "Occupied")
	seedTenant(t, db, &vacated.ID, "Juan", "Cruz", monthsAgo(3), monthsAgo(1))

	// Under maintenance: never touched, active tenant or not
	flagged := seedRoom(t, db, "103", 2, 1000, "Maintenance")
	seedTenant(t, db, &flagged.ID, "Pedro", "Reyes", monthsAgo(1), nil)

	// Already correct: no write expected
	settled := seedRoom(t, db, "104", 2, 1000, "Available")

	require.NoError(t, svc.SyncRoomStatuses(ctx))

	got, err := roomRepo.GetByID(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.RoomOccupied), got.Status)

	got, err = roomRepo.GetByID(ctx, vacated.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.RoomAvailable), got.Status)

	got, err = roomRepo.GetByID(ctx, flagged.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.RoomMaintenance), got.Status)

	got, err = roomRepo.GetByID(ctx, settled.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.RoomAvailable), got.Status)
}

func TestSyncRoomStatusesIdempotent(t *testing.T) {
	db := setupTestDB(t)
	roomRepo := repositories.NewRoomRepository(db)
	svc := services.NewCronService(roomRepo, repositories.NewTenantRepository(db))
	ctx := context.Background()

	room := seedRoom(t, db, "101", 2, 1000, "Available")
	seedTenant(t, db, &room.ID, "Maria", "Santos", monthsAgo(1), nil)

	require.NoError(t, svc.SyncRoomStatuses(ctx))
	require.NoError(t, svc.SyncRoomStatuses(ctx))

	got, err := roomRepo.GetByID(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.RoomOccupied), got.Status)
}
