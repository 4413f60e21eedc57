package payment

import "context"

type Repository interface {
	// CreateDraft inserts a pending transaction and returns it with its
	// id assigned, so a crash mid-flow still leaves a reconcilable row.
	CreateDraft(ctx context.Context, t *Transaction) (*Transaction, error)
	FindByID(ctx context.Context, id int) (*Transaction, error)
	// FindByOrderID is the webhook lookup path, backed by a unique
	// index on order_id.
	FindByOrderID(ctx context.Context, orderID string) (*Transaction, error)
	ListByMaintainer(ctx context.Context, maintainerID int) ([]Transaction, error)
	// ApplyGatewayResult copies gateway identifiers and method
	// artifacts onto the row after a successful order creation.
	ApplyGatewayResult(ctx context.Context, id int, res GatewayResult) (*Transaction, error)
	// UpdateStatus moves a pending row to the given status. The write
	// is guarded on the current status being pending, so terminal rows
	// are never regressed; it reports whether the update applied.
	UpdateStatus(ctx context.Context, id int, status TransactionStatus, errorMessage *string) (bool, error)
}
