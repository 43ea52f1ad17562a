package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"boardeasy/internal/adapters/persistence/models"
	"boardeasy/internal/adapters/persistence/repositories"
	"boardeasy/internal/core/domain"
	"boardeasy/internal/core/ledger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payment errors
var (
	ErrPaymentNotFound      = fmt.Errorf("%w: payment not found", domain.ErrNotFound)
	ErrLedgerTenantNotFound = fmt.Errorf("%w: tenant not found or has no room assigned", domain.ErrNotFound)
	ErrInvalidStatusValue   = fmt.Errorf("%w: invalid payment status", domain.ErrValidation)
	ErrStatusTransition     = fmt.Errorf("%w: status transition not allowed", domain.ErrConstraint)
)

// PaymentService wires the rent ledger engine to the persistence gateway
type PaymentService struct {
	paymentRepo repositories.PaymentRepository
}

// NewPaymentService creates a new payment service
func NewPaymentService(paymentRepo repositories.PaymentRepository) *PaymentService {
	return &PaymentService{paymentRepo: paymentRepo}
}

// GetTenantLedger returns the reconciled ledger summary for one tenant.
// Accrued rent is always recomputed live from the occupancy; the payment row
// contributes cumulative paid and the stored status.
func (s *PaymentService) GetTenantLedger(ctx context.Context, tenantID uint) (*domain.LedgerSummary, error) {
	row, err := s.paymentRepo.GetTenantLedgerRow(ctx, tenantID)
	if err != nil {
		return nil, persistenceErr(err)
	}
	if row == nil {
		return nil, ErrLedgerTenantNotFound
	}

	summary := reconcileRow(row, time.Now())
	return &summary, nil
}

// ListActiveLedgers returns reconciled ledgers for all tenants that have not
// checked out, plus the aggregate totals for the summary cards.
func (s *PaymentService) ListActiveLedgers(ctx context.Context) ([]domain.LedgerSummary, domain.LedgerTotals, error) {
	rows, err := s.paymentRepo.ListActiveTenantLedgers(ctx)
	if err != nil {
		return nil, domain.LedgerTotals{}, persistenceErr(err)
	}

	now := time.Now()
	summaries := make([]domain.LedgerSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, reconcileRow(row, now))
	}

	return summaries, ledger.AggregateTotals(summaries), nil
}

// RecordPaymentInput represents record payment input
type RecordPaymentInput struct {
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Method      string          `json:"method" validate:"required"`
	Description string          `json:"description"`
}

// RecordPayment applies one payment to a tenant's ledger: validates the
// amount, computes the new record state through the engine, and persists it
// as a single insert-or-update. Validation failures abort before any write.
func (s *PaymentService) RecordPayment(ctx context.Context, tenantID uint, input *RecordPaymentInput) (*domain.LedgerSummary, error) {
	row, err := s.paymentRepo.GetTenantLedgerRow(ctx, tenantID)
	if err != nil {
		return nil, persistenceErr(err)
	}
	if row == nil {
		return nil, ErrLedgerTenantNotFound
	}

	now := time.Now()
	accrued := ledger.AccruedRent(row.CheckInDate, row.CheckOutDate, row.RoomPrice, now)

	record, err := ledger.ApplyPayment(recordFromRow(row), tenantID, accrued, input.Amount, input.Method)
	if err != nil {
		return nil, err
	}

	// Load the existing row (if any) so the update keeps its identity fields
	payment, err := s.paymentRepo.GetByTenantID(ctx, tenantID)
	if err != nil {
		return nil, persistenceErr(err)
	}
	if payment == nil {
		payment = &models.Payment{TenantID: tenantID}
	}

	payment.AmountRent = record.AmountRent.Round(2)
	payment.AmountPaid = record.AmountPaid.Round(2)
	payment.Balance = record.Balance.Round(2)
	payment.Status = string(record.Status)
	payment.PaymentDate = &now
	payment.PaymentMethod = input.Method
	payment.Reference = uuid.NewString()
	if input.Description != "" {
		payment.Description = input.Description
	}

	if err := s.paymentRepo.Upsert(ctx, payment); err != nil {
		return nil, persistenceErr(err)
	}

	summary := ledger.Reconcile(tenantID, &ledger.PaymentRecord{
		ID:         payment.ID,
		TenantID:   tenantID,
		AmountRent: record.AmountRent,
		AmountPaid: record.AmountPaid,
		Balance:    record.Balance,
		Status:     record.Status,
	}, accrued)
	summary.TenantName = row.FirstName + " " + row.LastName
	summary.RoomNumber = row.RoomNumber
	return &summary, nil
}

// UpdateStatus applies a manual status edit. Overdue and Cancelled are only
// ever reached here; the transition table rejects edits such as reviving a
// cancelled record.
func (s *PaymentService) UpdateStatus(ctx context.Context, paymentID uint, newStatus string) (*models.Payment, error) {
	target := domain.PaymentStatus(newStatus)
	if !target.IsValid() {
		return nil, ErrInvalidStatusValue
	}

	payment, err := s.getPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	current := domain.PaymentStatus(payment.Status)
	if !current.CanTransitionTo(target) {
		return nil, ErrStatusTransition
	}

	payment.Status = string(target)
	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, persistenceErr(err)
	}
	return payment, nil
}

// UpdateDetailsInput represents payment detail edit input
type UpdateDetailsInput struct {
	Method      *string `json:"method"`
	Description *string `json:"description"`
}

// UpdateDetails edits the non-ledger fields of a payment record
func (s *PaymentService) UpdateDetails(ctx context.Context, paymentID uint, input *UpdateDetailsInput) (*models.Payment, error) {
	payment, err := s.getPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if input.Method != nil {
		if !domain.IsValidPaymentMethod(*input.Method) {
			return nil, ledger.ErrInvalidMethod
		}
		payment.PaymentMethod = *input.Method
	}
	if input.Description != nil {
		payment.Description = *input.Description
	}

	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, persistenceErr(err)
	}
	return payment, nil
}

// Delete deletes a payment record
func (s *PaymentService) Delete(ctx context.Context, paymentID uint) error {
	if _, err := s.getPayment(ctx, paymentID); err != nil {
		return err
	}
	if err := s.paymentRepo.Delete(ctx, paymentID); err != nil {
		return persistenceErr(err)
	}
	return nil
}

func (s *PaymentService) getPayment(ctx context.Context, paymentID uint) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, persistenceErr(err)
	}
	return payment, nil
}

// recordFromRow converts the nullable payment columns of a ledger join row
// into an engine record, nil when the tenant has no payment row yet
func recordFromRow(row *models.TenantLedgerRow) *ledger.PaymentRecord {
	if row.PaymentID == nil {
		return nil
	}

	record := &ledger.PaymentRecord{
		ID:       *row.PaymentID,
		TenantID: row.TenantID,
		Status:   domain.PaymentPending,
	}
	if row.AmountRent != nil {
		record.AmountRent = *row.AmountRent
	}
	if row.AmountPaid != nil {
		record.AmountPaid = *row.AmountPaid
	}
	if row.Balance != nil {
		record.Balance = *row.Balance
	}
	if row.Status != nil {
		record.Status = domain.PaymentStatus(*row.Status)
	}
	return record
}

// reconcileRow runs one join row through the engine and fills display fields
func reconcileRow(row *models.TenantLedgerRow, now time.Time) domain.LedgerSummary {
	accrued := ledger.AccruedRent(row.CheckInDate, row.CheckOutDate, row.RoomPrice, now)
	summary := ledger.Reconcile(row.TenantID, recordFromRow(row), accrued)
	summary.TenantName = row.FirstName + " " + row.LastName
	summary.RoomNumber = row.RoomNumber
	return summary
}
