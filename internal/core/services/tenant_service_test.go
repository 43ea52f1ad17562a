package services_test

import (
	"context"
	"testing"
	"time"

	"boardeasy/internal/adapters/persistence/repositories"
	"boardeasy/internal/core/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTenantService(db *gorm.DB) *services.TenantService {
	return services.NewTenantService(
		repositories.NewTenantRepository(db),
		repositories.NewRoomRepository(db),
	)
}

func TestCreateTenant(t *testing.T) {
	db := setupTestDB(t)
	svc := newTenantService(db)
	ctx := context.Background()

	room := seedRoom(t, db, "101", 2, 1000, "Available")

	resp, err := svc.Create(ctx, &services.TenantInput{
		FirstName:   "Maria",
		LastName:    "Santos",
		RoomID:      &room.ID,
		CheckInDate: monthsAgo(1),
	})
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "Active", resp.Status)
	assert.Equal(t, "Maria Santos", resp.FullName())
}

func TestCreateTenantValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := newTenantService(db)
	ctx := context.Background()

	_, err := svc.Create(ctx, &services.TenantInput{FirstName: "Maria"})
	assert.ErrorIs(t, err, services.ErrTenantNameRequired)

	checkIn := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	_, err = svc.Create(ctx, &services.TenantInput{
		FirstName:    "Maria",
		LastName:     "Santos",
		CheckInDate:  &checkIn,
		CheckOutDate: &checkOut,
	})
	assert.ErrorIs(t, err, services.ErrCheckOutBeforeIn)

	unknownRoom := uint(999)
	_, err = svc.Create(ctx, &services.TenantInput{
		FirstName: "Maria",
		LastName:  "Santos",
		RoomID:    &unknownRoom,
	})
	assert.ErrorIs(t, err, services.ErrRoomNotFound)
}

func TestRoomCapacityEnforced(t *testing.T) {
	db := setupTestDB(t)
	svc := newTenantService(db)
	ctx := context.Background()

	single := seedRoom(t, db, "101", 1, 1000, "Available")
	double := seedRoom(t, db, "102", 2, 1500, "Available")

	first, err := svc.Create(ctx, &services.TenantInput{
		FirstName: "Maria", LastName: "Santos", RoomID: &single.ID,
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &services.TenantInput{
		FirstName: "Juan", LastName: "Cruz", RoomID: &single.ID,
	})
	assert.ErrorIs(t, err, services.ErrRoomFull)

	// Updating a tenant already in the room does not count them twice
	_, err = svc.Update(ctx, first.ID, &services.TenantInput{
		FirstName: "Maria", LastName: "Santos-Reyes", RoomID: &single.ID,
	})
	require.NoError(t, err)

	// Moving out frees the slot
	_, err = svc.Update(ctx, first.ID, &services.TenantInput{
		FirstName: "Maria", LastName: "Santos-Reyes", RoomID: &double.ID,
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &services.TenantInput{
		FirstName: "Juan", LastName: "Cruz", RoomID: &single.ID,
	})
	require.NoError(t, err)
}

func TestListTenantsByDerivedStatus(t *testing.T) {
	db := setupTestDB(t)
	svc := newTenantService(db)
	ctx := context.Background()

	room := seedRoom(t, db, "101", 4, 1000, "Occupied")
	seedTenant(t, db, &room.ID, "Maria", "Santos", monthsAgo(2), nil)
	seedTenant(t, db, &room.ID, "Juan", "Cruz", monthsAgo(3), monthsAgo(1))
	future := time.Now().AddDate(0, 1, 0)
	seedTenant(t, db, &room.ID, "Pedro", "Reyes", monthsAgo(2), timePtr(future))

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	active, err := svc.List(ctx, "Active")
	require.NoError(t, err)
	require.Len(t, active, 2)
	for _, tenant := range active {
		assert.Equal(t, "Active", tenant.Status)
	}

	out, err := svc.List(ctx, "Checked Out")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Juan Cruz", out[0].FullName())
}

func TestDeleteTenant(t *testing.T) {
	db := setupTestDB(t)
	svc := newTenantService(db)
	ctx := context.Background()

	room := seedRoom(t, db, "101", 2, 1000, "Occupied")
	tenant := seedTenant(t, db, &room.ID, "Maria", "Santos", monthsAgo(1), nil)

	require.NoError(t, svc.Delete(ctx, tenant.ID))
	assert.ErrorIs(t, svc.Delete(ctx, tenant.ID), services.ErrTenantNotFound)
}
