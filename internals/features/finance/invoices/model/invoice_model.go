package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	InvoiceStatusPending   = "pending"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusExpired   = "expired"
	InvoiceStatusCancelled = "cancelled"
)

// InvoiceModel merepresentasikan tabel `invoices`
// (tagihan biaya kelas per enrollment, dibayar via Midtrans Snap)
type InvoiceModel struct {
	InvoiceID           uuid.UUID `json:"invoice_id" gorm:"column:invoice_id;type:uuid;default:gen_random_uuid();primaryKey"`
	InvoiceEnrollmentID uuid.UUID `json:"invoice_enrollment_id" gorm:"column:invoice_enrollment_id;type:uuid;not null;index"`

	// Order ID unik untuk Midtrans
	InvoiceOrderID string `json:"invoice_order_id" gorm:"column:invoice_order_id;type:varchar(64);not null;uniqueIndex"`

	InvoiceAmount      int64   `json:"invoice_amount" gorm:"column:invoice_amount;not null"`
	InvoiceDescription *string `json:"invoice_description,omitempty" gorm:"column:invoice_description;type:text"`
	InvoiceStatus      string  `json:"invoice_status" gorm:"column:invoice_status;type:varchar(20);not null;default:'pending'"`
	InvoiceSnapToken   *string `json:"invoice_snap_token,omitempty" gorm:"column:invoice_snap_token;type:text"`

	InvoicePaidAt *time.Time `json:"invoice_paid_at,omitempty" gorm:"column:invoice_paid_at;type:timestamptz"`

	InvoiceCreatedAt time.Time      `json:"invoice_created_at" gorm:"column:invoice_created_at;type:timestamptz;not null;default:now()"`
	InvoiceUpdatedAt time.Time      `json:"invoice_updated_at" gorm:"column:invoice_updated_at;type:timestamptz;not null;default:now()"`
	DeletedAt        gorm.DeletedAt `json:"invoice_deleted_at,omitempty" gorm:"column:invoice_deleted_at;type:timestamptz;index"`
}

func (InvoiceModel) TableName() string {
	return "invoices"
}
