// Package ledger implements the rent accrual and payment reconciliation rules.
// It is pure computation: persistence and HTTP concerns live in the adapters,
// and the payment service wires the two together.
package ledger

import (
	"fmt"
	"time"

	"boardeasy/internal/core/domain"

	"github.com/shopspring/decimal"
)

// Ledger errors
var (
	ErrInvalidAmount  = fmt.Errorf("%w: amount must be greater than 0", domain.ErrValidation)
	ErrInvalidMethod  = fmt.Errorf("%w: unknown payment method", domain.ErrValidation)
	ErrRecordRequired = fmt.Errorf("%w: payment record required", domain.ErrValidation)
)

// AccruedRent computes the rent owed for an occupancy span using whole-month
// billing with a day-of-month threshold: a partial month bills as a full
// month only once the end date's day-of-month exceeds the check-in day.
// A nil check-in means no occupancy and no accrual. The month count never
// goes below zero (a same-month checkout with day not exceeded owes nothing).
func AccruedRent(checkIn, checkOut *time.Time, monthlyPrice decimal.Decimal, asOf time.Time) decimal.Decimal {
	if checkIn == nil {
		return decimal.Zero
	}

	end := asOf
	if checkOut != nil {
		end = *checkOut
	}

	months := (end.Year()-checkIn.Year())*12 + int(end.Month()) - int(checkIn.Month())
	if end.Day() > checkIn.Day() {
		months++
	}
	if months <= 0 {
		return decimal.Zero
	}

	return monthlyPrice.Mul(decimal.NewFromInt(int64(months)))
}

// PaymentRecord is the persisted payment state the engine reconciles against.
type PaymentRecord struct {
	ID         uint
	TenantID   uint
	AmountRent decimal.Decimal
	AmountPaid decimal.Decimal
	Balance    decimal.Decimal
	Status     domain.PaymentStatus
}

// Reconcile derives a ledger summary for a tenant. When no payment record
// exists yet, it synthesizes one (nothing paid, full accrual outstanding,
// Pending) without persisting it. When a record exists, the accrued rent is
// recomputed live from the occupancy rather than read from the frozen
// amount_rent column, cumulative paid comes from the record, and the balance
// is derived from the two. The stored status is read as-is.
func Reconcile(tenantID uint, record *PaymentRecord, accruedRent decimal.Decimal) domain.LedgerSummary {
	if record == nil {
		return domain.LedgerSummary{
			TenantID:   tenantID,
			AmountRent: accruedRent,
			AmountPaid: decimal.Zero,
			Balance:    accruedRent,
			Status:     domain.PaymentPending,
		}
	}

	return domain.LedgerSummary{
		TenantID:   tenantID,
		PaymentID:  &record.ID,
		AmountRent: accruedRent,
		AmountPaid: record.AmountPaid,
		Balance:    accruedRent.Sub(record.AmountPaid),
		Status:     record.Status,
	}
}

// ApplyPayment computes the payment record state after recording one payment.
// The amount is validated before any state is produced; the caller persists
// nothing when an error is returned. One formula applies uniformly:
// newPaid = paid + amount, newBalance = accrued − newPaid, and the status
// becomes Paid once the balance reaches zero or below, Pending otherwise.
func ApplyPayment(existing *PaymentRecord, tenantID uint, accruedRent, amount decimal.Decimal, method string) (*PaymentRecord, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}
	if !domain.IsValidPaymentMethod(method) {
		return nil, ErrInvalidMethod
	}

	record := &PaymentRecord{TenantID: tenantID}
	paid := decimal.Zero
	if existing != nil {
		record.ID = existing.ID
		paid = existing.AmountPaid
	}

	record.AmountRent = accruedRent
	record.AmountPaid = paid.Add(amount)
	record.Balance = accruedRent.Sub(record.AmountPaid)
	record.Status = domain.PaymentPending
	if record.Balance.LessThanOrEqual(decimal.Zero) {
		record.Status = domain.PaymentPaid
	}

	return record, nil
}

// ClassifyStatus reads the stored status of a payment record. Overdue and
// Cancelled are never derived here; they are set only through explicit edits.
func ClassifyStatus(record *PaymentRecord) (domain.PaymentStatus, error) {
	if record == nil {
		return "", ErrRecordRequired
	}
	return record.Status, nil
}

// AggregateTotals sums rent, paid and balance across ledger summaries.
func AggregateTotals(summaries []domain.LedgerSummary) domain.LedgerTotals {
	totals := domain.LedgerTotals{
		TotalRent:    decimal.Zero,
		TotalPaid:    decimal.Zero,
		TotalBalance: decimal.Zero,
	}

	for _, s := range summaries {
		totals.TotalRent = totals.TotalRent.Add(s.AmountRent)
		totals.TotalPaid = totals.TotalPaid.Add(s.AmountPaid)
		totals.TotalBalance = totals.TotalBalance.Add(s.Balance)
	}

	return totals
}
