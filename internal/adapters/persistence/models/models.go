package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ============================================================
// Auth: Landlord Accounts
// ============================================================

// Landlord represents the landlords table
type Landlord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email     string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	FirstName string    `gorm:"size:50;not null" json:"first_name"`
	LastName  string    `gorm:"size:50;not null" json:"last_name"`
	Phone     string    `gorm:"size:20" json:"phone"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Landlord) TableName() string {
	return "landlords"
}

// LandlordResponse DTO
type LandlordResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

func (l *Landlord) ToResponse() *LandlordResponse {
	return &LandlordResponse{
		ID:        l.ID,
		Username:  l.Username,
		Email:     l.Email,
		FirstName: l.FirstName,
		LastName:  l.LastName,
		Phone:     l.Phone,
		CreatedAt: l.CreatedAt,
	}
}

// RefreshToken represents the refresh_tokens table
type RefreshToken struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	LandlordID uint       `gorm:"index;not null" json:"landlord_id"`
	TokenHash  string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt  time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt  *time.Time `gorm:"index" json:"revoked_at"`
	Landlord   Landlord   `gorm:"foreignKey:LandlordID" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// ============================================================
// Boarding House: Rooms, Tenants, Payments
// ============================================================

// Room represents the rooms table
type Room struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	RoomNumber string          `gorm:"uniqueIndex;size:10;not null" json:"room_number"`
	Capacity   int             `gorm:"not null" json:"capacity"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Status     string          `gorm:"size:20;default:'Available'" json:"status"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Room) TableName() string {
	return "rooms"
}

// Tenant represents the tenants table
type Tenant struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	FirstName    string     `gorm:"size:50;not null" json:"first_name"`
	LastName     string     `gorm:"size:50;not null" json:"last_name"`
	Email        string     `gorm:"size:100" json:"email"`
	Phone        string     `gorm:"size:20" json:"phone"`
	RoomID       *uint      `gorm:"index" json:"room_id"`
	CheckInDate  *time.Time `gorm:"type:date" json:"check_in_date"`
	CheckOutDate *time.Time `gorm:"type:date" json:"check_out_date"`
	ProfileImage string     `gorm:"size:255" json:"profile_image"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	Room         *Room      `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}

func (Tenant) TableName() string {
	return "tenants"
}

// FullName returns "First Last"
func (t *Tenant) FullName() string {
	return t.FirstName + " " + t.LastName
}

// IsActive reports whether the tenant has not checked out as of now
func (t *Tenant) IsActive(now time.Time) bool {
	return t.CheckOutDate == nil || t.CheckOutDate.After(now)
}

// Payment represents the payments table. The unique index on tenant_id
// enforces the zero-or-one payment row per tenant that the ledger assumes.
type Payment struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	TenantID      uint            `gorm:"uniqueIndex;not null" json:"tenant_id"`
	AmountRent    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount_rent"`
	AmountPaid    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount_paid"`
	Balance       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"balance"`
	Status        string          `gorm:"size:32;default:'Pending'" json:"status"`
	PaymentDate   *time.Time      `gorm:"type:date" json:"payment_date"`
	PaymentMethod string          `gorm:"size:32" json:"payment_method"`
	Reference     string          `gorm:"size:36" json:"reference"`
	Description   string          `gorm:"type:text" json:"description"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	Tenant        *Tenant         `gorm:"foreignKey:TenantID" json:"-"`
}

func (Payment) TableName() string {
	return "payments"
}

// MaintenanceRequest represents the maintenance_requests table
type MaintenanceRequest struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	RoomID           uint            `gorm:"index;not null" json:"room_id"`
	IssueDescription string          `gorm:"type:text;not null" json:"issue_description"`
	Status           string          `gorm:"size:20;default:'Pending'" json:"status"`
	ReportedDate     time.Time       `gorm:"type:date;not null" json:"reported_date"`
	CompletedDate    *time.Time      `gorm:"type:date" json:"completed_date"`
	Cost             decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"cost"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	Room             *Room           `gorm:"foreignKey:RoomID" json:"-"`
}

func (MaintenanceRequest) TableName() string {
	return "maintenance_requests"
}

// ============================================================
// Joined Projections
// ============================================================

// TenantLedgerRow is the LEFT JOIN projection across tenants, rooms and
// payments that the ledger reconciles: tenant occupancy, room pricing, and
// the payment columns (nullable when no payment row exists yet).
type TenantLedgerRow struct {
	TenantID     uint
	FirstName    string
	LastName     string
	CheckInDate  *time.Time
	CheckOutDate *time.Time
	RoomPrice    decimal.Decimal
	RoomNumber   string
	PaymentID    *uint
	AmountRent   *decimal.Decimal
	AmountPaid   *decimal.Decimal
	Balance      *decimal.Decimal
	Status       *string
}

// AutoMigrate migrates all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Landlord{},
		&RefreshToken{},
		&Room{},
		&Tenant{},
		&Payment{},
		&MaintenanceRequest{},
	)
}
