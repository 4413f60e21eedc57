package webhook

import (
	"context"
	"encoding/json"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateLog(ctx context.Context, event string, payload json.RawMessage) (*Log, error) {
	query := `
		INSERT INTO webhook_logs (event, payload)
		VALUES ($1, $2)
		RETURNING id, event, payload, received_at
	`

	var log Log
	err := r.db.GetContext(ctx, &log, query, event, []byte(payload))
	if err != nil {
		return nil, err
	}

	return &log, nil
}

func (r *repository) ListLogs(ctx context.Context, limit int) ([]Log, error) {
	query := `
		SELECT id, event, payload, received_at
		FROM webhook_logs
		ORDER BY received_at DESC
		LIMIT $1
	`

	var logs []Log
	err := r.db.SelectContext(ctx, &logs, query, limit)
	if err != nil {
		return nil, err
	}

	return logs, nil
}
