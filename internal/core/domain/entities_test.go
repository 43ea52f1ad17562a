package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPaymentStatusTransitions(t *testing.T) {
	cases := []struct {
		from    PaymentStatus
		to      PaymentStatus
		allowed bool
	}{
		{PaymentPending, PaymentPaid, true},
		{PaymentPending, PaymentOverdue, true},
		{PaymentPending, PaymentCancelled, true},
		{PaymentPaid, PaymentPending, true},
		{PaymentPaid, PaymentOverdue, false},
		{PaymentPaid, PaymentCancelled, true},
		{PaymentOverdue, PaymentPending, true},
		{PaymentOverdue, PaymentPaid, true},
		{PaymentOverdue, PaymentCancelled, true},
		{PaymentCancelled, PaymentPending, false},
		{PaymentCancelled, PaymentPaid, false},
		{PaymentCancelled, PaymentOverdue, false},
		{PaymentPending, PaymentPending, false},
		{PaymentPending, PaymentStatus("Bogus"), false},
		{PaymentStatus("Bogus"), PaymentPaid, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestStatusValidity(t *testing.T) {
	assert.True(t, RoomAvailable.IsValid())
	assert.True(t, RoomMaintenance.IsValid())
	assert.False(t, RoomStatus("Vacant").IsValid())

	assert.True(t, PaymentOverdue.IsValid())
	assert.False(t, PaymentStatus("").IsValid())

	assert.True(t, MaintenanceInProgress.IsValid())
	assert.False(t, MaintenanceStatus("Done").IsValid())
}

func TestIsValidPaymentMethod(t *testing.T) {
	for _, m := range PaymentMethods {
		assert.True(t, IsValidPaymentMethod(m), m)
	}
	assert.False(t, IsValidPaymentMethod("cash"))
	assert.False(t, IsValidPaymentMethod(""))
}

func TestTenantIsActive(t *testing.T) {
	now := time.Now()
	past := now.AddDate(0, -1, 0)
	future := now.AddDate(0, 1, 0)

	assert.True(t, (&Tenant{}).IsActive(now))
	assert.True(t, (&Tenant{CheckOutDate: &future}).IsActive(now))
	assert.False(t, (&Tenant{CheckOutDate: &past}).IsActive(now))
}
