package maintainer

import "time"

// Maintainer is a donor identity linked to a platform user. ClientID
// caches the payment gateway's customer id once one has been created.
type Maintainer struct {
	ID        int       `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"user_id"`
	ClientID  *string   `db:"client_id" json:"client_id,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`

	// Joined from users for gateway customer creation.
	Name        string `db:"name" json:"name"`
	Email       string `db:"email" json:"email"`
	Document    string `db:"document" json:"document"`
	PhoneNumber string `db:"phone_number" json:"phone_number"`
}

// Card is a vault reference to a tokenized instrument. The token itself
// lives in the gateway; only metadata is stored locally.
type Card struct {
	ID             int       `db:"id" json:"id"`
	MaintainerID   int       `db:"maintainer_id" json:"maintainer_id"`
	CardID         string    `db:"card_id" json:"card_id"`
	LastFourDigits string    `db:"last_four_digits" json:"last_four_digits"`
	Brand          string    `db:"brand" json:"brand"`
	Status         string    `db:"status" json:"status"` // active, inactive, expired
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}
