package maintainer

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var (
	ErrNotFound     = errors.New("maintainer not found")
	ErrCardNotFound = errors.New("card not found")
)

const maintainerSelect = `
	SELECT m.id, m.user_id, m.client_id, m.created_at,
	       u.name, u.email, u.document, u.phone_number
	FROM maintainers m
	JOIN users u ON m.user_id = u.id
`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, userID int) (*Maintainer, error) {
	query := `
		INSERT INTO maintainers (user_id)
		VALUES ($1)
		RETURNING id
	`

	var id int
	if err := r.db.GetContext(ctx, &id, query, userID); err != nil {
		return nil, err
	}

	return r.FindByID(ctx, id)
}

func (r *repository) FindByID(ctx context.Context, id int) (*Maintainer, error) {
	var m Maintainer
	err := r.db.GetContext(ctx, &m, maintainerSelect+` WHERE m.id = $1`, id)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repository) FindByUserID(ctx context.Context, userID int) (*Maintainer, error) {
	var m Maintainer
	err := r.db.GetContext(ctx, &m, maintainerSelect+` WHERE m.user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repository) SetClientID(ctx context.Context, id int, clientID string) error {
	query := `UPDATE maintainers SET client_id = $2 WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, id, clientID)
	return err
}

func (r *repository) SaveCard(ctx context.Context, maintainerID int, cardID, lastFourDigits, brand string) (*Card, error) {
	query := `
		INSERT INTO cards (maintainer_id, card_id, last_four_digits, brand, status)
		VALUES ($1, $2, $3, $4, 'active')
		RETURNING id, maintainer_id, card_id, last_four_digits, brand, status, created_at, updated_at
	`

	var card Card
	err := r.db.GetContext(ctx, &card, query, maintainerID, cardID, lastFourDigits, brand)
	if err != nil {
		return nil, err
	}

	return &card, nil
}

func (r *repository) ListCards(ctx context.Context, maintainerID int) ([]Card, error) {
	query := `
		SELECT id, maintainer_id, card_id, last_four_digits, brand, status, created_at, updated_at
		FROM cards
		WHERE maintainer_id = $1
		ORDER BY created_at DESC
	`

	var cards []Card
	err := r.db.SelectContext(ctx, &cards, query, maintainerID)
	if err != nil {
		return nil, err
	}

	return cards, nil
}

func (r *repository) SetCardStatus(ctx context.Context, maintainerID int, cardID, status string) error {
	query := `
		UPDATE cards
		SET status = $3, updated_at = NOW()
		WHERE maintainer_id = $1 AND card_id = $2
	`

	result, err := r.db.ExecContext(ctx, query, maintainerID, cardID, status)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrCardNotFound
	}

	return nil
}
