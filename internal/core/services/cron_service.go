package services

import (
	"context"
	"log"

	"boardeasy/internal/adapters/persistence/repositories"
	"boardeasy/internal/core/domain"

	"github.com/robfig/cron/v3"
)

// CronService runs scheduled background jobs
type CronService struct {
	roomRepo   repositories.RoomRepository
	tenantRepo repositories.TenantRepository
	cron       *cron.Cron
}

// NewCronService creates a new cron service
func NewCronService(roomRepo repositories.RoomRepository, tenantRepo repositories.TenantRepository) *CronService {
	return &CronService{
		roomRepo:   roomRepo,
		tenantRepo: tenantRepo,
		cron:       cron.New(),
	}
}

// Start schedules the nightly room-status sync (02:00 daily)
func (s *CronService) Start() {
	s.cron.AddFunc("0 2 * * *", func() {
		if err := s.SyncRoomStatuses(context.Background()); err != nil {
			log.Printf("❌ Room status sync error: %v", err)
		}
	})
	s.cron.Start()
	log.Println("🚀 CronService started (room status sync at 02:00 daily)")
}

// Stop stops the scheduler
func (s *CronService) Stop() {
	s.cron.Stop()
	log.Println("🛑 CronService stopped")
}

// SyncRoomStatuses reconciles room statuses against active tenants: occupied
// rooms with nobody left become Available, available rooms with an active
// tenant become Occupied. Rooms under maintenance are never touched, and
// payment statuses are never modified here.
func (s *CronService) SyncRoomStatuses(ctx context.Context) error {
	rooms, err := s.roomRepo.List(ctx, "")
	if err != nil {
		return err
	}

	synced := 0
	for _, room := range rooms {
		if room.Status == string(domain.RoomMaintenance) {
			continue
		}

		active, err := s.tenantRepo.CountActiveByRoomID(ctx, room.ID)
		if err != nil {
			return err
		}

		want := string(domain.RoomAvailable)
		if active > 0 {
			want = string(domain.RoomOccupied)
		}
		if room.Status == want {
			continue
		}

		if err := s.roomRepo.UpdateStatus(ctx, room.ID, want); err != nil {
			return err
		}
		synced++
	}

	if synced > 0 {
		log.Printf("✅ Room status sync: %d room(s) updated", synced)
	}
	return nil
}
