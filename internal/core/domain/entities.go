package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RoomStatus represents the occupancy state of a room
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "Available"
	RoomOccupied    RoomStatus = "Occupied"
	RoomMaintenance RoomStatus = "Maintenance"
)

// IsValid reports whether s is a known room status
func (s RoomStatus) IsValid() bool {
	switch s {
	case RoomAvailable, RoomOccupied, RoomMaintenance:
		return true
	}
	return false
}

// PaymentStatus represents the state of a tenant's payment record
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentPaid      PaymentStatus = "Paid"
	PaymentOverdue   PaymentStatus = "Overdue"
	PaymentCancelled PaymentStatus = "Cancelled"
)

// IsValid reports whether s is a known payment status
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentOverdue, PaymentCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether a manual status edit from s to target is
// allowed. Recording a payment moves Pending/Overdue to Paid automatically and
// is not governed by this table. Cancelled is terminal for manual edits.
func (s PaymentStatus) CanTransitionTo(target PaymentStatus) bool {
	if !s.IsValid() || !target.IsValid() || s == target {
		return false
	}
	switch s {
	case PaymentPending:
		return target == PaymentPaid || target == PaymentOverdue || target == PaymentCancelled
	case PaymentPaid:
		return target == PaymentPending || target == PaymentCancelled
	case PaymentOverdue:
		return target == PaymentPending || target == PaymentPaid || target == PaymentCancelled
	case PaymentCancelled:
		return false
	}
	return false
}

// MaintenanceStatus represents the state of a maintenance request
type MaintenanceStatus string

const (
	MaintenancePending    MaintenanceStatus = "Pending"
	MaintenanceInProgress MaintenanceStatus = "In Progress"
	MaintenanceCompleted  MaintenanceStatus = "Completed"
)

// IsValid reports whether s is a known maintenance status
func (s MaintenanceStatus) IsValid() bool {
	switch s {
	case MaintenancePending, MaintenanceInProgress, MaintenanceCompleted:
		return true
	}
	return false
}

// PaymentMethods lists the accepted payment methods
var PaymentMethods = []string{"Cash", "GCash", "Bank Transfer", "Maya"}

// IsValidPaymentMethod reports whether method is accepted
func IsValidPaymentMethod(method string) bool {
	for _, m := range PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}

// Room represents a room in the domain layer
type Room struct {
	ID         uint
	RoomNumber string
	Capacity   int
	Price      decimal.Decimal
	Status     RoomStatus
}

// Tenant represents a tenant in the domain layer
type Tenant struct {
	ID           uint
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	RoomID       *uint
	CheckInDate  *time.Time
	CheckOutDate *time.Time
	ProfileImage string
}

// IsActive reports whether the tenant still occupies a room as of now:
// no check-out date, or a check-out date in the future.
func (t *Tenant) IsActive(now time.Time) bool {
	return t.CheckOutDate == nil || t.CheckOutDate.After(now)
}

// Landlord represents a landlord account in the domain layer
type Landlord struct {
	ID        uint
	Username  string
	Email     string
	Password  string // Hashed
	FirstName string
	LastName  string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LedgerSummary is the derived rent/payment state for one tenant at a point
// in time: accrued rent, cumulative paid, outstanding balance and status.
type LedgerSummary struct {
	TenantID   uint            `json:"tenant_id"`
	TenantName string          `json:"tenant_name"`
	RoomNumber string          `json:"room_number"`
	PaymentID  *uint           `json:"payment_id"`
	AmountRent decimal.Decimal `json:"amount_rent"`
	AmountPaid decimal.Decimal `json:"amount_paid"`
	Balance    decimal.Decimal `json:"balance"`
	Status     PaymentStatus   `json:"status"`
}

// LedgerTotals aggregates ledger summaries for dashboard display
type LedgerTotals struct {
	TotalRent    decimal.Decimal `json:"total_rent"`
	TotalPaid    decimal.Decimal `json:"total_paid"`
	TotalBalance decimal.Decimal `json:"total_balance"`
}
