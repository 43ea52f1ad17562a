package config

import (
	"log"

	"boardeasy/internal/adapters/persistence/models"
	"boardeasy/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedDefaultLandlord(); err != nil {
		log.Printf("⚠️ Landlord seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedDefaultLandlord seeds a default landlord account when none exists.
// For development/testing only; in production, create the account through
// the register endpoint.
func (s *Seeder) seedDefaultLandlord() error {
	var count int64
	s.db.Model(&models.Landlord{}).Count(&count)
	if count > 0 {
		return nil // An account already exists
	}

	hashedPassword, err := password.Hash("admin123456")
	if err != nil {
		return err
	}

	landlord := &models.Landlord{
		Username:  "admin",
		Email:     "admin@boardeasy.local",
		Password:  hashedPassword,
		FirstName: "Default",
		LastName:  "Landlord",
	}

	if err := s.db.Create(landlord).Error; err != nil {
		return err
	}

	log.Println("🌱 Seeded default landlord account (admin)")
	return nil
}
