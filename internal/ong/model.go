package ong

import (
	"time"

	"github.com/shopspring/decimal"
)

// ONG is a beneficiary organization. CommissionRate is the platform's
// cut of each donation; RecipientID is the organization's payout account
// at the payment gateway.
type ONG struct {
	ID             int             `db:"id" json:"id"`
	UserID         int             `db:"user_id" json:"user_id"`
	Name           string          `db:"name" json:"name"`
	Description    string          `db:"description" json:"description"`
	CommissionRate decimal.Decimal `db:"commission_rate" json:"commission_rate"`
	RecipientID    string          `db:"recipient_id" json:"recipient_id"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
}

type Campaign struct {
	ID        int       `db:"id" json:"id"`
	OngID     int       `db:"ong_id" json:"ong_id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Base is a physical unit of an ONG (a shelter, a community center).
type Base struct {
	ID        int       `db:"id" json:"id"`
	OngID     int       `db:"ong_id" json:"ong_id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type Project struct {
	ID        int       `db:"id" json:"id"`
	OngID     int       `db:"ong_id" json:"ong_id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type Attendee struct {
	ID        int       `db:"id" json:"id"`
	ProjectID int       `db:"project_id" json:"project_id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

var one = decimal.NewFromInt(1)

type CreateONGRequest struct {
	Name           string          `json:"name" binding:"required"`
	Description    string          `json:"description"`
	CommissionRate decimal.Decimal `json:"commission_rate" binding:"required"`
	RecipientID    string          `json:"recipient_id" binding:"required"`
}

type CreateNamedRequest struct {
	Name string `json:"name" binding:"required"`
}
