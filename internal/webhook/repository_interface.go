package webhook

import (
	"context"
	"encoding/json"
)

type Repository interface {
	CreateLog(ctx context.Context, event string, payload json.RawMessage) (*Log, error)
	ListLogs(ctx context.Context, limit int) ([]Log, error)
}
