package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	MethodCreditCard PaymentMethod = "credit_card"
	MethodBoleto     PaymentMethod = "boleto"
	MethodPix        PaymentMethod = "pix"
)

type TransactionStatus string

const (
	StatusPending  TransactionStatus = "pending"
	StatusPaid     TransactionStatus = "paid"
	StatusFailed   TransactionStatus = "failed"
	StatusCanceled TransactionStatus = "canceled"
	StatusExpired  TransactionStatus = "expired"
)

// Terminal reports whether no further status transition is allowed.
// Pending is the sole initial state; everything else is final.
func (s TransactionStatus) Terminal() bool {
	return s != StatusPending
}

// Transaction is one donation attempt. A row is inserted as pending
// before any gateway call and survives every failure path afterwards;
// terminal rows are an immutable audit trail.
type Transaction struct {
	ID               int               `db:"id" json:"id"`
	MaintainerID     int               `db:"maintainer_id" json:"maintainer_id"`
	OngID            int               `db:"ong_id" json:"ong_id"`
	CampaignID       *int              `db:"campaign_id" json:"campaign_id,omitempty"`
	BaseID           *int              `db:"base_id" json:"base_id,omitempty"`
	ProjectID        *int              `db:"project_id" json:"project_id,omitempty"`
	AttendeeID       *int              `db:"attendee_id" json:"attendee_id,omitempty"`
	Amount           decimal.Decimal   `db:"amount" json:"amount"`
	CommissionAmount decimal.Decimal   `db:"commission_amount" json:"commission_amount"`
	PaymentMethod    PaymentMethod     `db:"payment_method" json:"payment_method"`
	Status           TransactionStatus `db:"status" json:"status"`
	OrderID          *string           `db:"order_id" json:"order_id,omitempty"`
	ChargeID         *string           `db:"charge_id" json:"charge_id,omitempty"`
	CardID           *string           `db:"card_id" json:"card_id,omitempty"`
	BoletoURL        *string           `db:"boleto_url" json:"boleto_url,omitempty"`
	BoletoBarcode    *string           `db:"boleto_barcode" json:"boleto_barcode,omitempty"`
	PixQRCode        *string           `db:"pix_qr_code" json:"pix_qr_code,omitempty"`
	PixCode          *string           `db:"pix_code" json:"pix_code,omitempty"`
	ErrorMessage     *string           `db:"error_message" json:"error_message,omitempty"`
	CreatedAt        time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time         `db:"updated_at" json:"updated_at"`
}

// CardDetails carries full card data when no vault token is supplied.
// The data is forwarded to the gateway for tokenization and never stored.
type CardDetails struct {
	Number         string `json:"number"`
	HolderName     string `json:"holder_name"`
	ExpirationDate string `json:"expiration_date"`
	CVV            string `json:"cvv"`
}

func (d *CardDetails) Complete() bool {
	return d != nil && d.Number != "" && d.HolderName != "" && d.ExpirationDate != "" && d.CVV != ""
}

type CreatePaymentRequest struct {
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	PaymentMethod PaymentMethod   `json:"payment_method" binding:"required,payment_method"`
	OngID         int             `json:"ong_id" binding:"required"`
	CampaignID    *int            `json:"campaign_id,omitempty"`
	BaseID        *int            `json:"base_id,omitempty"`
	ProjectID     *int            `json:"project_id,omitempty"`
	AttendeeID    *int            `json:"attendee_id,omitempty"`
	CardID        *string         `json:"card_id,omitempty"`
	CardDetails   *CardDetails    `json:"card_details,omitempty"`
}

// GatewayResult collects the fields the orchestrator copies back onto
// the transaction after a successful order creation.
type GatewayResult struct {
	OrderID       *string
	ChargeID      *string
	CardID        *string
	BoletoURL     *string
	BoletoBarcode *string
	PixQRCode     *string
	PixCode       *string
}
