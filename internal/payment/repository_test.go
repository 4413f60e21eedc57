package payment

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() {
		sqlxDB.Close()
	}

	return repo, mock, closer
}

func txColumns() []string {
	return []string{
		"id", "maintainer_id", "ong_id", "campaign_id", "base_id", "project_id", "attendee_id",
		"amount", "commission_amount", "payment_method", "status", "order_id", "charge_id", "card_id",
		"boleto_url", "boleto_barcode", "pix_qr_code", "pix_code", "error_message", "created_at", "updated_at",
	}
}

func pendingRow(id int) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(txColumns()).
		AddRow(id, 3, 1, nil, nil, nil, nil,
			"100.00", "4.00", "pix", "pending", nil, nil, nil,
			nil, nil, nil, nil, nil, now, now)
}

func TestCreateDraftAssignsID(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery("INSERT INTO transactions").
		WithArgs(3, 1, nil, nil, nil, nil,
			decimal.RequireFromString("100.00"), decimal.RequireFromString("4.00"), MethodPix).
		WillReturnRows(pendingRow(10))

	tx, err := repo.CreateDraft(context.Background(), &Transaction{
		MaintainerID:     3,
		OngID:            1,
		Amount:           decimal.RequireFromString("100.00"),
		CommissionAmount: decimal.RequireFromString("4.00"),
		PaymentMethod:    MethodPix,
	})
	require.NoError(t, err)
	require.Equal(t, 10, tx.ID)
	require.Equal(t, StatusPending, tx.Status)
	require.Nil(t, tx.OrderID)
}

func TestFindByOrderID(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery("SELECT (.+) FROM transactions WHERE order_id").
		WithArgs("or_123").
		WillReturnRows(pendingRow(10))

	tx, err := repo.FindByOrderID(context.Background(), "or_123")
	require.NoError(t, err)
	require.Equal(t, 10, tx.ID)
}

func TestFindByOrderIDNoMatch(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery("SELECT (.+) FROM transactions WHERE order_id").
		WithArgs("or_unknown").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByOrderID(context.Background(), "or_unknown")
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestUpdateStatusAppliesToPendingRow(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectExec("UPDATE transactions").
		WithArgs(10, StatusPaid, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	applied, err := repo.UpdateStatus(context.Background(), 10, StatusPaid, nil)
	require.NoError(t, err)
	require.True(t, applied)
}

func TestUpdateStatusSkipsTerminalRow(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	// The status guard matches no row once the transaction is
	// terminal, so a stale or duplicate event cannot regress it.
	mock.ExpectExec("UPDATE transactions").
		WithArgs(10, StatusExpired, nil).
		WillReturnResult(sqlmock.NewResult(0, 0))

	applied, err := repo.UpdateStatus(context.Background(), 10, StatusExpired, nil)
	require.NoError(t, err)
	require.False(t, applied)
}

func TestApplyGatewayResult(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()
	orderID := "or_123"
	chargeID := "ch_123"
	qrURL := "https://qr.example/pix.png"
	qrCode := "pix-raw"

	mock.ExpectQuery("UPDATE transactions").
		WithArgs(10, &orderID, &chargeID, nil, nil, nil, &qrURL, &qrCode).
		WillReturnRows(sqlmock.NewRows(txColumns()).
			AddRow(10, 3, 1, nil, nil, nil, nil,
				"100.00", "4.00", "pix", "pending", orderID, chargeID, nil,
				nil, nil, qrURL, qrCode, nil, now, now))

	tx, err := repo.ApplyGatewayResult(context.Background(), 10, GatewayResult{
		OrderID:   &orderID,
		ChargeID:  &chargeID,
		PixQRCode: &qrURL,
		PixCode:   &qrCode,
	})
	require.NoError(t, err)
	require.Equal(t, "or_123", *tx.OrderID)
	require.Equal(t, "https://qr.example/pix.png", *tx.PixQRCode)
}

func TestListByMaintainer(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()
	rows := sqlmock.NewRows(txColumns()).
		AddRow(11, 3, 1, nil, nil, nil, nil,
			"50.00", "2.00", "boleto", "paid", "or_2", "ch_2", nil,
			nil, nil, nil, nil, nil, now, now).
		AddRow(10, 3, 1, nil, nil, nil, nil,
			"100.00", "4.00", "pix", "failed", "or_1", "ch_1", nil,
			nil, nil, nil, nil, "insufficient_funds", now, now)

	mock.ExpectQuery("SELECT (.+) FROM transactions WHERE maintainer_id").
		WithArgs(3).
		WillReturnRows(rows)

	transactions, err := repo.ListByMaintainer(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, transactions, 2)
	require.Equal(t, StatusPaid, transactions[0].Status)
	require.Equal(t, "insufficient_funds", *transactions[1].ErrorMessage)
}
