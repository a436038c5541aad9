package membership

import "github.com/shopspring/decimal"

// CreateInput carries everything needed to open a membership period
// and its paired payment record.
type CreateInput struct {
	UserID          uint
	Tier            string
	Price           decimal.Decimal
	Currency        string
	PaymentMethod   string
	PaymentIntentID string
	InvoiceNumber   string
	BillingName     string
	BillingEmail    string
}
