package repositories

import (
	"context"
	"errors"
	"time"

	"boardeasy/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// paymentRepository implements PaymentRepository interface
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

// ledgerColumns is the projection the ledger reconciles: tenant occupancy,
// room pricing and the (nullable) payment columns.
const ledgerColumns = `tenants.id AS tenant_id,
	tenants.first_name,
	tenants.last_name,
	tenants.check_in_date,
	tenants.check_out_date,
	rooms.price AS room_price,
	rooms.room_number,
	payments.id AS payment_id,
	payments.amount_rent,
	payments.amount_paid,
	payments.balance,
	payments.status`

// Upsert inserts a payment record, or updates it in place when it has an ID.
// One row per tenant; subsequent payments update the existing row.
func (r *paymentRepository) Upsert(ctx context.Context, payment *models.Payment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}

// GetByID gets a payment by ID
func (r *paymentRepository) GetByID(ctx context.Context, id uint) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&payment).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// GetByTenantID gets the payment row of a tenant, nil when none exists
func (r *paymentRepository) GetByTenantID(ctx context.Context, tenantID uint) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

// Update updates a payment record
func (r *paymentRepository) Update(ctx context.Context, payment *models.Payment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}

// Delete deletes a payment record
func (r *paymentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Payment{}, id).Error
}

// ListActiveTenantLedgers joins tenants, rooms and payments for every tenant
// that has not checked out, LEFT JOINing payments so tenants without a
// payment row still appear.
func (r *paymentRepository) ListActiveTenantLedgers(ctx context.Context) ([]*models.TenantLedgerRow, error) {
	var rows []*models.TenantLedgerRow
	err := r.db.WithContext(ctx).Table("tenants").
		Select(ledgerColumns).
		Joins("JOIN rooms ON tenants.room_id = rooms.id").
		Joins("LEFT JOIN payments ON tenants.id = payments.tenant_id").
		Where("tenants.check_out_date IS NULL OR tenants.check_out_date > ?", time.Now()).
		Order("tenants.last_name, tenants.first_name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetTenantLedgerRow fetches the ledger projection for one tenant, nil when
// the tenant does not exist or has no room assignment.
func (r *paymentRepository) GetTenantLedgerRow(ctx context.Context, tenantID uint) (*models.TenantLedgerRow, error) {
	var rows []*models.TenantLedgerRow
	err := r.db.WithContext(ctx).Table("tenants").
		Select(ledgerColumns).
		Joins("JOIN rooms ON tenants.room_id = rooms.id").
		Joins("LEFT JOIN payments ON tenants.id = payments.tenant_id").
		Where("tenants.id = ?", tenantID).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}
