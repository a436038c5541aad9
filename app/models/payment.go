package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PaymentMethodCard     = "card"
	PaymentMethodPaypal   = "paypal"
	PaymentMethodTransfer = "bank_transfer"
)

// Payment is the financial record paired 1:1 with a membership
// creation. Rows are append-only; nothing updates a payment after it
// is written.
type Payment struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	MembershipID    uint            `gorm:"not null;index" json:"membership_id"`
	UserID          uint            `gorm:"not null;index" json:"user_id"`
	Amount          decimal.Decimal `gorm:"type:decimal(10,2)" json:"amount"`
	Currency        string          `gorm:"type:varchar(3);default:'USD'" json:"currency"`
	PaymentMethod   string          `gorm:"type:varchar(32)" json:"payment_method"`
	PaymentIntentID string          `gorm:"type:varchar(191);index" json:"payment_intent_id"`
	InvoiceNumber   string          `gorm:"type:varchar(64);uniqueIndex" json:"invoice_number"`
	BillingName     string          `gorm:"type:varchar(150)" json:"billing_name"`
	BillingEmail    string          `gorm:"type:varchar(200)" json:"billing_email"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
}
