package payment

import (
	"context"

	"github.com/jmoiron/sqlx"
)

const transactionColumns = `id, maintainer_id, ong_id, campaign_id, base_id, project_id, attendee_id,
	amount, commission_amount, payment_method, status, order_id, charge_id, card_id,
	boleto_url, boleto_barcode, pix_qr_code, pix_code, error_message, created_at, updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateDraft(ctx context.Context, t *Transaction) (*Transaction, error) {
	query := `
		INSERT INTO transactions (maintainer_id, ong_id, campaign_id, base_id, project_id, attendee_id,
			amount, commission_amount, payment_method, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 'pending')
		RETURNING ` + transactionColumns

	var created Transaction
	err := r.db.GetContext(ctx, &created, query,
		t.MaintainerID, t.OngID, t.CampaignID, t.BaseID, t.ProjectID, t.AttendeeID,
		t.Amount, t.CommissionAmount, t.PaymentMethod)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) FindByID(ctx context.Context, id int) (*Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	var t Transaction
	err := r.db.GetContext(ctx, &t, query, id)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

func (r *repository) FindByOrderID(ctx context.Context, orderID string) (*Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE order_id = $1`

	var t Transaction
	err := r.db.GetContext(ctx, &t, query, orderID)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

func (r *repository) ListByMaintainer(ctx context.Context, maintainerID int) ([]Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE maintainer_id = $1 ORDER BY created_at DESC`

	var transactions []Transaction
	err := r.db.SelectContext(ctx, &transactions, query, maintainerID)
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

func (r *repository) ApplyGatewayResult(ctx context.Context, id int, res GatewayResult) (*Transaction, error) {
	query := `
		UPDATE transactions
		SET order_id = $2, charge_id = $3, card_id = $4,
			boleto_url = $5, boleto_barcode = $6, pix_qr_code = $7, pix_code = $8,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + transactionColumns

	var t Transaction
	err := r.db.GetContext(ctx, &t, query, id,
		res.OrderID, res.ChargeID, res.CardID,
		res.BoletoURL, res.BoletoBarcode, res.PixQRCode, res.PixCode)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id int, status TransactionStatus, errorMessage *string) (bool, error) {
	// Guarded on the current status so a terminal row never regresses,
	// no matter how often the gateway redelivers an event.
	query := `
		UPDATE transactions
		SET status = $2, error_message = COALESCE($3, error_message), updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
	`

	result, err := r.db.ExecContext(ctx, query, id, status, errorMessage)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}
