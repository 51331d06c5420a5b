package models

import (
	"fmt"
	"time"
)

type OrderStatus string

const (
	StatusWaiting   OrderStatus = "Waiting"
	StatusPreparing OrderStatus = "Preparing"
	StatusPrepared  OrderStatus = "Prepared"
	StatusServed    OrderStatus = "Served"
	StatusCancelled OrderStatus = "Cancelled"
)

// IsTerminal: Served dan Cancelled mengunci order dari perubahan apapun.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusServed || s == StatusCancelled
}

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusWaiting, StatusPreparing, StatusPrepared, StatusServed, StatusCancelled:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "Pending"
	PaymentPaidCash   PaymentStatus = "Paid (Cash)"
	PaymentPaidOnline PaymentStatus = "Paid (Online)"
	PaymentRefunded   PaymentStatus = "Refunded"
)

func (p PaymentStatus) Valid() bool {
	switch p {
	case PaymentPending, PaymentPaidCash, PaymentPaidOnline, PaymentRefunded:
		return true
	}
	return false
}

func (p PaymentStatus) IsPaid() bool {
	return p == PaymentPaidCash || p == PaymentPaidOnline
}

type Order struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	Code          string        `gorm:"type:varchar(20);uniqueIndex;not null" json:"code"`
	CustomerName  string        `gorm:"type:varchar(255);not null" json:"customer_name"`
	Total         float64       `gorm:"type:decimal(10,2);not null;default:0.00" json:"total"`
	ItemCount     int           `gorm:"not null;default:0" json:"item_count"`
	Status        OrderStatus   `gorm:"type:varchar(20);not null;default:'Waiting'" json:"status"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(20);not null;default:'Pending'" json:"payment_status"`
	CreatedAt     time.Time     `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time     `gorm:"not null" json:"updated_at"`
}

// SetStatus memindahkan status order lewat selector dashboard. Dari status
// terminal tidak ada jalan keluar; Cancelled hanya lewat Cancel().
func (o *Order) SetStatus(next OrderStatus) error {
	if !next.Valid() {
		return fmt.Errorf("unknown order status: %s", next)
	}
	if o.Status.IsTerminal() {
		return fmt.Errorf("order %s is %s and can no longer change", o.Code, o.Status)
	}
	if next == StatusCancelled {
		return fmt.Errorf("use the cancel action to cancel order %s", o.Code)
	}
	o.Status = next
	return nil
}

// Cancel membatalkan order. Order yang sudah dibayar otomatis di-refund;
// order Pending dibiarkan Pending.
func (o *Order) Cancel() error {
	if o.Status.IsTerminal() {
		return fmt.Errorf("order %s is %s and can no longer change", o.Code, o.Status)
	}
	o.Status = StatusCancelled
	if o.PaymentStatus.IsPaid() {
		o.PaymentStatus = PaymentRefunded
	}
	return nil
}

// SetPaymentStatus mengganti status pembayaran. Terkunci kalau order sudah
// Cancelled atau pembayaran sudah Refunded.
func (o *Order) SetPaymentStatus(next PaymentStatus) error {
	if !next.Valid() {
		return fmt.Errorf("unknown payment status: %s", next)
	}
	if o.Status == StatusCancelled {
		return fmt.Errorf("order %s is cancelled; payment status is locked", o.Code)
	}
	if o.PaymentStatus == PaymentRefunded {
		return fmt.Errorf("order %s is refunded; payment status is locked", o.Code)
	}
	if next == PaymentRefunded && !o.PaymentStatus.IsPaid() {
		return fmt.Errorf("order %s has no payment to refund", o.Code)
	}
	o.PaymentStatus = next
	return nil
}
