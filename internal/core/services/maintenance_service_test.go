package services_test

import (
	"context"
	"testing"

	"boardeasy/internal/adapters/persistence/repositories"
	"boardeasy/internal/core/domain"
	"boardeasy/internal/core/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newMaintenanceService(db *gorm.DB) (*services.MaintenanceService, repositories.RoomRepository) {
	roomRepo := repositories.NewRoomRepository(db)
	return services.NewMaintenanceService(repositories.NewMaintenanceRepository(db), roomRepo), roomRepo
}

func TestCreateMaintenanceRequestFlagsRoom(t *testing.T) {
	db := setupTestDB(t)
	svc, roomRepo := newMaintenanceService(db)
	ctx := context.Background()

	room := seedRoom(t, db, "301", 2, 1000, "Available")

	request, err := svc.Create(ctx, &services.CreateMaintenanceInput{
		RoomID:           room.ID,
		IssueDescription: "leaking faucet",
		Cost:             decimal.NewFromInt(350),
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.MaintenancePending), request.Status)
	assert.Nil(t, request.CompletedDate)

	updated, err := roomRepo.GetByID(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.RoomMaintenance), updated.Status)
}

func TestCreateMaintenanceValidation(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newMaintenanceService(db)
	ctx := context.Background()

	room := seedRoom(t, db, "301", 2, 1000, "Available")

	_, err := svc.Create(ctx, &services.CreateMaintenanceInput{RoomID: room.ID})
	assert.ErrorIs(t, err, services.ErrIssueRequired)

	_, err = svc.Create(ctx, &services.CreateMaintenanceInput{
		RoomID:           room.ID,
		IssueDescription: "broken window",
		Cost:             decimal.NewFromInt(-5),
	})
	assert.ErrorIs(t, err, services.ErrInvalidMaintCost)

	_, err = svc.Create(ctx, &services.CreateMaintenanceInput{
		RoomID:           999,
		IssueDescription: "broken window",
	})
	assert.ErrorIs(t, err, services.ErrRoomNotFound)
}

func TestCompletingRequestReleasesRoom(t *testing.T) {
	db := setupTestDB(t)
	svc, roomRepo := newMaintenanceService(db)
	ctx := context.Background()

	room := seedRoom(t, db, "301", 2, 1000, "Available")

	request, err := svc.Create(ctx, &services.CreateMaintenanceInput{
		RoomID:           room.ID,
		IssueDescription: "leaking faucet",
	})
	require.NoError(t, err)

	inProgress := string(domain.MaintenanceInProgress)
	request, err = svc.Update(ctx, request.ID, &services.UpdateMaintenanceInput{Status: &inProgress})
	require.NoError(t, err)
	assert.Nil(t, request.CompletedDate)

	completed := string(domain.MaintenanceCompleted)
	cost := decimal.NewFromInt(420)
	request, err = svc.Update(ctx, request.ID, &services.UpdateMaintenanceInput{
		Status: &completed,
		Cost:   &cost,
	})
	require.NoError(t, err)
	assert.NotNil(t, request.CompletedDate)
	assert.True(t, request.Cost.Equal(cost))

	updated, err := roomRepo.GetByID(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.RoomAvailable), updated.Status)
}

func TestListMaintenanceRequests(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newMaintenanceService(db)
	ctx := context.Background()

	roomA := seedRoom(t, db, "301", 2, 1000, "Available")
	roomB := seedRoom(t, db, "302", 2, 1000, "Available")

	_, err := svc.Create(ctx, &services.CreateMaintenanceInput{RoomID: roomA.ID, IssueDescription: "leaking faucet"})
	require.NoError(t, err)
	request, err := svc.Create(ctx, &services.CreateMaintenanceInput{RoomID: roomB.ID, IssueDescription: "broken window"})
	require.NoError(t, err)

	completed := string(domain.MaintenanceCompleted)
	_, err = svc.Update(ctx, request.ID, &services.UpdateMaintenanceInput{Status: &completed})
	require.NoError(t, err)

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	pending, err := svc.List(ctx, string(domain.MaintenancePending))
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	_, err = svc.List(ctx, "Done")
	assert.ErrorIs(t, err, services.ErrInvalidMaintStatus)
}

func TestDeleteMaintenanceRequest(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newMaintenanceService(db)
	ctx := context.Background()

	room := seedRoom(t, db, "301", 2, 1000, "Available")
	request, err := svc.Create(ctx, &services.CreateMaintenanceInput{
		RoomID:           room.ID,
		IssueDescription: "leaking faucet",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, request.ID))
	assert.ErrorIs(t, svc.Delete(ctx, request.ID), services.ErrMaintenanceNotFound)
}
