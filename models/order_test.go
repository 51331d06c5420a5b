package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newWaitingOrder() *Order {
	return &Order{
		Code:          "ORD-TEST01",
		CustomerName:  "Shackleton",
		Status:        StatusWaiting,
		PaymentStatus: PaymentPending,
	}
}

func TestSetStatusFlow(t *testing.T) {
	o := newWaitingOrder()

	assert.NoError(t, o.SetStatus(StatusPreparing))
	assert.NoError(t, o.SetStatus(StatusPrepared))
	assert.NoError(t, o.SetStatus(StatusServed))
	assert.Equal(t, StatusServed, o.Status)

	// Served terminal: tidak ada transisi lanjutan.
	err := o.SetStatus(StatusWaiting)
	assert.ErrorContains(t, err, "can no longer change")
	assert.Equal(t, StatusServed, o.Status)
}

func TestSetStatusRejectsCancelled(t *testing.T) {
	o := newWaitingOrder()

	err := o.SetStatus(StatusCancelled)
	assert.ErrorContains(t, err, "cancel action")
	assert.Equal(t, StatusWaiting, o.Status)
}

func TestSetStatusRejectsUnknown(t *testing.T) {
	o := newWaitingOrder()
	assert.ErrorContains(t, o.SetStatus("Teleported"), "unknown order status")
}

func TestCancelKeepsPendingPayment(t *testing.T) {
	o := newWaitingOrder()

	assert.NoError(t, o.Cancel())
	assert.Equal(t, StatusCancelled, o.Status)
	assert.Equal(t, PaymentPending, o.PaymentStatus)
}

func TestCancelRefundsPaidOrder(t *testing.T) {
	for _, paid := range []PaymentStatus{PaymentPaidCash, PaymentPaidOnline} {
		o := newWaitingOrder()
		o.PaymentStatus = paid

		assert.NoError(t, o.Cancel())
		assert.Equal(t, StatusCancelled, o.Status)
		assert.Equal(t, PaymentRefunded, o.PaymentStatus)
	}
}

func TestCancelTerminalOrder(t *testing.T) {
	o := newWaitingOrder()
	o.Status = StatusServed
	assert.ErrorContains(t, o.Cancel(), "can no longer change")

	o = newWaitingOrder()
	assert.NoError(t, o.Cancel())
	assert.ErrorContains(t, o.Cancel(), "can no longer change")
}

func TestSetPaymentStatus(t *testing.T) {
	o := newWaitingOrder()

	assert.NoError(t, o.SetPaymentStatus(PaymentPaidCash))
	assert.Equal(t, PaymentPaidCash, o.PaymentStatus)

	assert.NoError(t, o.SetPaymentStatus(PaymentRefunded))
	assert.Equal(t, PaymentRefunded, o.PaymentStatus)

	// Refunded mengunci pembayaran.
	err := o.SetPaymentStatus(PaymentPaidOnline)
	assert.ErrorContains(t, err, "payment status is locked")
}

func TestSetPaymentStatusRefundRequiresPayment(t *testing.T) {
	o := newWaitingOrder()
	assert.ErrorContains(t, o.SetPaymentStatus(PaymentRefunded), "no payment to refund")
}

func TestSetPaymentStatusLockedAfterCancel(t *testing.T) {
	o := newWaitingOrder()
	assert.NoError(t, o.Cancel())
	assert.ErrorContains(t, o.SetPaymentStatus(PaymentPaidCash), "cancelled")
}

func TestSetPaymentStatusRejectsUnknown(t *testing.T) {
	o := newWaitingOrder()
	assert.ErrorContains(t, o.SetPaymentStatus("Bartered"), "unknown payment status")
}
